package models

import (
	"math"

	"github.com/brand-d/tailorshop/internal/shop"
)

// Capacity is the effective output limit for the period: the labor side
// and the machine side each cap production, and the scarcer one wins.
func Capacity(p *shop.Params, next *shop.State) float64 {
	// sqrt of the satisfaction ratio, so capacity responds to low morale
	// sharply and to high morale with diminishing returns
	motivationEffect := math.Sqrt(1.7 * next.Motivation / shop.MotivationMax)
	labor := float64(next.Workers) * p.UnitsPerWorker * motivationEffect
	machine := float64(next.Machines) * p.UnitsPerMachine * next.MachineCondition()
	return math.Min(labor, machine)
}

// Production turns material into finished goods up to the effective
// capacity. It runs after Workforce (capacity depends on the updated
// headcount, motivation and wear) and before Demand (sales are capped by
// the stock it produces).
func Production(p *shop.Params, prev *shop.State, d shop.Decisions, next *shop.State) []shop.Warning {
	var warns []shop.Warning

	capacity := Capacity(p, next)

	materialAvailable := prev.MaterialStock + d.MaterialOrder
	materialLimit := materialAvailable / p.MaterialPerUnit

	produced := math.Min(capacity, materialLimit)
	if produced < capacity {
		warns = append(warns, shop.Warningf(shop.WarnMaterialScarce,
			"material limits production to %.0f of %.0f units", produced, capacity))
	}

	next.UnitsProduced = produced
	next.ProductionIdle = 0
	if capacity > 0 {
		next.ProductionIdle = (capacity - produced) / capacity
	}

	next.MaterialStock = shop.NonNegative(materialAvailable - produced*p.MaterialPerUnit)

	stock := prev.FinishedStock + produced
	if stock > p.StorageCapacity {
		warns = append(warns, shop.Warningf(shop.WarnStorageOverflow,
			"%.0f finished units discarded, storage full", stock-p.StorageCapacity))
		stock = p.StorageCapacity
	}
	next.FinishedStock = stock

	return warns
}
