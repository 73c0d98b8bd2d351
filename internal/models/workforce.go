package models

import (
	"github.com/brand-d/tailorshop/internal/shop"
)

// Workforce applies hiring and firing, moves motivation toward its
// wage-driven target, updates the machine park and its wear, and tracks
// the maintenance backlog. It runs first: production reads the headcount,
// motivation and wear it writes to next.
func Workforce(p *shop.Params, prev *shop.State, d shop.Decisions, next *shop.State) []shop.Warning {
	var warns []shop.Warning

	next.Workers = max(prev.Workers+d.HireWorkers, 0)
	next.Wage = d.Wage

	// Motivation tracks a target set by the wage relative to the
	// reference wage, nudged by the recent profit trend. With nothing
	// changed it decays toward that baseline.
	raw := 0.5 + (d.Wage-p.ReferenceWage)/p.WageScale
	target := 100 * raw / 1.7
	target += shop.Clamp(prev.Profit/p.ProfitTrendScale, -p.ProfitTrendCap, p.ProfitTrendCap)
	target = shop.Clamp(target, 0, shop.MotivationMax)

	motivation := prev.Motivation + p.MotivationAdjust*(target-prev.Motivation)

	// Large single-period headcount swings unsettle the whole crew.
	if delta := d.HireWorkers; delta > p.ShockThreshold || delta < -p.ShockThreshold {
		motivation -= p.ShockPenalty
	}
	next.Motivation = shop.Clamp(motivation, 0, shop.MotivationMax)

	next.Machines = max(prev.Machines+d.BuyMachines, 0)

	// Wear: the park loses a fixed share of condition each period, picks
	// up extra wear from last period's usage intensity, and recovers with
	// maintenance spend spread over the machines.
	condition := p.ConditionRetention * (shop.WearMax - prev.Wear)
	if next.Machines > 0 {
		condition += d.Maintenance / float64(next.Machines) * p.MaintenanceEffect
		condition -= p.UsageWearRate * prev.UnitsProduced / float64(next.Machines)
	}
	next.Wear = shop.Clamp(shop.WearMax-condition, 0, shop.WearMax)

	// Backlog accumulates while wear sits above the service level and is
	// worked off by maintenance spend.
	backlog := prev.MaintenanceBacklog
	if next.Wear > p.WearServiceLevel {
		backlog += next.Wear - p.WearServiceLevel
	}
	if next.Machines > 0 {
		backlog -= d.Maintenance / float64(next.Machines) * p.MaintenanceEffect
	}
	next.MaintenanceBacklog = shop.NonNegative(backlog)

	if next.Workers == 0 && prev.UnitsSold > 0 {
		warns = append(warns, shop.Warningf(shop.WarnNoWorkers,
			"workforce reduced to zero while demand is nonzero"))
	}

	return warns
}
