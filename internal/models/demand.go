package models

import (
	"math"

	"github.com/brand-d/tailorshop/internal/shop"
)

// DemandFor is the number of units the market asks for at the given
// price and awareness level. A non-positive price takes the product off
// the market entirely.
func DemandFor(p *shop.Params, price, awareness float64) float64 {
	if price <= 0 {
		return 0
	}
	base := awareness/2 + p.BaseDemand
	elasticity := p.ElasticityGain * math.Exp(-price*price/p.ElasticityScale)
	return base * elasticity
}

// Demand accumulates advertising into the awareness index, computes the
// period's demand and sells from finished stock. Unmet demand is lost, it
// does not carry over.
func Demand(p *shop.Params, prev *shop.State, d shop.Decisions, next *shop.State) []shop.Warning {
	var warns []shop.Warning

	adEffect := math.Min(d.Advertising/p.AdDivisor, p.AdEffectMax)
	awareness := p.AwarenessDecay*prev.Awareness + (1-p.AwarenessDecay)*adEffect
	next.Awareness = shop.Clamp(awareness, 0, shop.AwarenessMax)
	next.Advertising = d.Advertising
	next.Price = d.Price

	demand := DemandFor(p, d.Price, next.Awareness)
	sold := math.Min(demand, next.FinishedStock)

	next.Demand = demand
	next.UnitsSold = sold
	next.LostSales = demand - sold
	next.FinishedStock = shop.NonNegative(next.FinishedStock - sold)

	if next.LostSales > 0 {
		warns = append(warns, shop.Warningf(shop.WarnLostSales,
			"%.0f units of demand unmet", next.LostSales))
	}

	return warns
}
