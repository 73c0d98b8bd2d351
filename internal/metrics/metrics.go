// Package metrics aggregates run-level figures from period snapshots.
package metrics

import "github.com/brand-d/tailorshop/internal/shop"

// Metric observes each snapshot of a run and reduces it to one value.
type Metric interface {
	Name() string
	Observe(s shop.State)
	Value() float64
	Reset()
}

// CumulativeProfit reports the total profit over the observed periods.
type CumulativeProfit struct {
	total float64
}

func NewCumulativeProfit() *CumulativeProfit { return &CumulativeProfit{} }

func (m *CumulativeProfit) Name() string { return "cumulative_profit" }
func (m *CumulativeProfit) Observe(s shop.State) { m.total += s.Profit }
func (m *CumulativeProfit) Value() float64 { return m.total }
func (m *CumulativeProfit) Reset() { m.total = 0 }

// LostSales reports the total demand that went unmet.
type LostSales struct {
	total float64
}

func NewLostSales() *LostSales { return &LostSales{} }

func (m *LostSales) Name() string { return "lost_sales" }
func (m *LostSales) Observe(s shop.State) { m.total += s.LostSales }
func (m *LostSales) Value() float64 { return m.total }
func (m *LostSales) Reset() { m.total = 0 }

// IdleRatio reports the mean fraction of production capacity left unused.
type IdleRatio struct {
	total   float64
	samples int
}

func NewIdleRatio() *IdleRatio { return &IdleRatio{} }

func (m *IdleRatio) Name() string { return "idle_ratio" }

func (m *IdleRatio) Observe(s shop.State) {
	if s.Period == 0 {
		return
	}
	m.total += s.ProductionIdle
	m.samples++
}

func (m *IdleRatio) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *IdleRatio) Reset() {
	m.total = 0
	m.samples = 0
}

// CompanyValue reports the company value of the last observed period.
type CompanyValue struct {
	last float64
}

func NewCompanyValue() *CompanyValue { return &CompanyValue{} }

func (m *CompanyValue) Name() string { return "company_value" }
func (m *CompanyValue) Observe(s shop.State) { m.last = s.CompanyValue }
func (m *CompanyValue) Value() float64 { return m.last }
func (m *CompanyValue) Reset() { m.last = 0 }

// Defaults returns the standard metric set for a run.
func Defaults() []Metric {
	return []Metric{
		NewCumulativeProfit(),
		NewLostSales(),
		NewIdleRatio(),
		NewCompanyValue(),
	}
}
