package shop

import "math"

// State is the full snapshot of the shop after one period. Snapshots are
// value types: the engine copies them into its history and never mutates a
// past entry.
type State struct {
	Period int `json:"period"`

	// Inventory
	MaterialStock float64 `json:"material_stock"`
	FinishedStock float64 `json:"finished_stock"`

	// Workforce
	Workers    int     `json:"workers"`
	Motivation float64 `json:"motivation"`
	Wage       float64 `json:"wage"`

	// Machines
	Machines           int     `json:"machines"`
	Wear               float64 `json:"wear"`
	MaintenanceBacklog float64 `json:"maintenance_backlog"`

	// Commercial
	Price       float64 `json:"price"`
	Advertising float64 `json:"advertising"`
	Awareness   float64 `json:"awareness"`

	// Production and sales for the period
	UnitsProduced  float64 `json:"units_produced"`
	ProductionIdle float64 `json:"production_idle"`
	Demand         float64 `json:"demand"`
	UnitsSold      float64 `json:"units_sold"`
	LostSales      float64 `json:"lost_sales"`

	// Financial
	MaterialPrice    float64 `json:"material_price"`
	Cash             float64 `json:"cash"`
	Revenue          float64 `json:"revenue"`
	Cost             float64 `json:"cost"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulative_profit"`
	CompanyValue     float64 `json:"company_value"`
	CreditFactor     float64 `json:"credit_factor"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// MachineCondition is the fraction of nominal machine output still
// available, derived from the wear index.
func (s *State) MachineCondition() float64 {
	return 1 - s.Wear/WearMax
}

// Decisions is the control vector for one period. Out-of-range values are
// clamped by the engine, not rejected; only NaN/Inf inputs are structural
// errors.
type Decisions struct {
	Price         float64 `yaml:"price" json:"price"`
	MaterialOrder float64 `yaml:"material_order" json:"material_order"`
	Advertising   float64 `yaml:"advertising" json:"advertising"`
	Wage          float64 `yaml:"wage" json:"wage"`
	HireWorkers   int     `yaml:"hire_workers" json:"hire_workers"`
	BuyMachines   int     `yaml:"buy_machines" json:"buy_machines"`
	Maintenance   float64 `yaml:"maintenance" json:"maintenance"`
}

// IsValid reports whether every numeric field carries a finite value.
func (d Decisions) IsValid() bool {
	for _, v := range []float64{d.Price, d.MaterialOrder, d.Advertising, d.Wage, d.Maintenance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds for the indices carried on the State.
const (
	MotivationMax = 100.0
	WearMax       = 100.0
	AwarenessMax  = 1000.0
)

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func NonNegative(v float64) float64 {
	return math.Max(v, 0)
}

// StepDown quantizes v to a multiple of step, rounding toward zero. A step
// of zero or less leaves v untouched.
func StepDown(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Trunc(v/step) * step
}
