package models

import (
	"github.com/brand-d/tailorshop/internal/shop"
)

// tradeMachines prices a machine purchase or sale. Machines sell below
// list price, discounted further by the condition of the park.
func tradeMachines(p *shop.Params, prev *shop.State, delta int) float64 {
	if delta > 0 {
		return float64(delta) * p.MachinePrice
	}
	return float64(delta) * p.MachinePrice * p.MachineResale * prev.MachineCondition()
}

// Finance aggregates the period's monetary flows. It runs last: revenue
// needs the units sold by Demand. Interest on the cash balance is folded
// into cost so that cash always moves by exactly revenue minus cost.
func Finance(p *shop.Params, prev *shop.State, d shop.Decisions, next *shop.State) []shop.Warning {
	var warns []shop.Warning

	next.Revenue = next.UnitsSold * d.Price

	material := d.MaterialOrder * prev.MaterialPrice
	wages := float64(next.Workers) * d.Wage
	trade := tradeMachines(p, prev, d.BuyMachines)
	overhead := p.OverheadRent +
		p.FinishedStorage*prev.FinishedStock +
		p.MaterialStorage*prev.MaterialStock

	interest := -prev.Cash * p.PositiveInterest
	if prev.Cash < 0 {
		interest = -prev.Cash * p.NegativeInterest
	}

	next.Cost = material + wages + d.Advertising + d.Maintenance + trade + overhead + interest
	next.Profit = next.Revenue - next.Cost
	next.Cash = prev.Cash + next.Profit
	next.CumulativeProfit = prev.CumulativeProfit + next.Profit

	// Negative cash throttles next period's purchase ceilings in
	// proportion to the deficit.
	next.CreditFactor = 1
	if next.Cash < 0 {
		next.CreditFactor = 1 / (1 - next.Cash/p.CreditScale)
		warns = append(warns, shop.Warningf(shop.WarnLowCash,
			"cash at %.0f, purchase ceilings reduced to %.0f%%", next.Cash, 100*next.CreditFactor))
	}

	next.MaterialPrice = p.MaterialPriceAt(next.Period)

	next.CompanyValue = next.Cash +
		float64(next.Machines)*p.MachinePrice*next.MachineCondition() +
		next.FinishedStock*p.FinishedUnitValue +
		next.MaterialStock*p.MaterialUnitValue

	return warns
}
