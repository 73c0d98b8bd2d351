package shop

// Params holds every coefficient of the shop model plus the starting
// values for a run. Defaults reproduce the published tailorshop
// parameterization; experiments override individual fields.
type Params struct {
	// Starting state
	InitialCash          float64 `yaml:"initial_cash"`
	InitialFinished      float64 `yaml:"initial_finished"`
	InitialMaterial      float64 `yaml:"initial_material"`
	InitialWorkers       int     `yaml:"initial_workers"`
	InitialMachines      int     `yaml:"initial_machines"`
	InitialMotivation    float64 `yaml:"initial_motivation"`
	InitialWear          float64 `yaml:"initial_wear"`
	InitialAwareness     float64 `yaml:"initial_awareness"`
	InitialPrice         float64 `yaml:"initial_price"`
	InitialWage          float64 `yaml:"initial_wage"`
	InitialMaterialPrice float64 `yaml:"initial_material_price"`

	// Decision feasibility ranges
	PriceMax         float64 `yaml:"price_max"`
	WageMax          float64 `yaml:"wage_max"`
	AdvertisingMax   float64 `yaml:"advertising_max"`
	MaterialOrderMax float64 `yaml:"material_order_max"`
	MaintenanceMax   float64 `yaml:"maintenance_max"`
	WorkerDeltaMax   int     `yaml:"worker_delta_max"`
	MachineDeltaMax  int     `yaml:"machine_delta_max"`

	// Decision step sizes, applied when UseSteps is set
	UseSteps  bool    `yaml:"use_steps"`
	PriceStep float64 `yaml:"price_step"`
	WageStep  float64 `yaml:"wage_step"`
	AdStep    float64 `yaml:"ad_step"`
	OrderStep float64 `yaml:"order_step"`
	MaintStep float64 `yaml:"maint_step"`

	// Production
	StorageCapacity float64 `yaml:"storage_capacity"`
	UnitsPerWorker  float64 `yaml:"units_per_worker"`
	UnitsPerMachine float64 `yaml:"units_per_machine"`
	MaterialPerUnit float64 `yaml:"material_per_unit"`

	// Workforce
	ReferenceWage    float64 `yaml:"reference_wage"`
	WageScale        float64 `yaml:"wage_scale"`
	ProfitTrendScale float64 `yaml:"profit_trend_scale"`
	ProfitTrendCap   float64 `yaml:"profit_trend_cap"`
	MotivationAdjust float64 `yaml:"motivation_adjust"`
	ShockThreshold   int     `yaml:"shock_threshold"`
	ShockPenalty     float64 `yaml:"shock_penalty"`

	// Machines
	ConditionRetention float64 `yaml:"condition_retention"`
	MaintenanceEffect  float64 `yaml:"maintenance_effect"`
	UsageWearRate      float64 `yaml:"usage_wear_rate"`
	WearServiceLevel   float64 `yaml:"wear_service_level"`

	// Demand
	BaseDemand      float64 `yaml:"base_demand"`
	ElasticityGain  float64 `yaml:"elasticity_gain"`
	ElasticityScale float64 `yaml:"elasticity_scale"`
	AwarenessDecay  float64 `yaml:"awareness_decay"`
	AdDivisor       float64 `yaml:"ad_divisor"`
	AdEffectMax     float64 `yaml:"ad_effect_max"`

	// Finance
	MachinePrice      float64 `yaml:"machine_price"`
	MachineResale     float64 `yaml:"machine_resale"`
	OverheadRent      float64 `yaml:"overhead_rent"`
	FinishedStorage   float64 `yaml:"finished_storage"`
	MaterialStorage   float64 `yaml:"material_storage"`
	PositiveInterest  float64 `yaml:"positive_interest"`
	NegativeInterest  float64 `yaml:"negative_interest"`
	CreditScale       float64 `yaml:"credit_scale"`
	FinishedUnitValue float64 `yaml:"finished_unit_value"`
	MaterialUnitValue float64 `yaml:"material_unit_value"`

	// Per-period material price, cycled; empty keeps the price constant.
	MaterialPriceSeries []float64 `yaml:"material_price_series"`
}

// DefaultParams returns the reference parameterization.
func DefaultParams() Params {
	return Params{
		InitialCash:          165775,
		InitialFinished:      81,
		InitialMaterial:      16,
		InitialWorkers:       8,
		InitialMachines:      10,
		InitialMotivation:    58,
		InitialWear:          6,
		InitialAwareness:     767,
		InitialPrice:         52,
		InitialWage:          1080,
		InitialMaterialPrice: 4,

		PriceMax:         100,
		WageMax:          5000,
		AdvertisingMax:   10000,
		MaterialOrderMax: 5000,
		MaintenanceMax:   5000,
		WorkerDeltaMax:   20,
		MachineDeltaMax:  20,

		UseSteps:  false,
		PriceStep: 2,
		WageStep:  100,
		AdStep:    100,
		OrderStep: 50,
		MaintStep: 100,

		StorageCapacity: 1000,
		UnitsPerWorker:  50,
		UnitsPerMachine: 50,
		MaterialPerUnit: 1,

		ReferenceWage:    850,
		WageScale:        550,
		ProfitTrendScale: 2500,
		ProfitTrendCap:   10,
		MotivationAdjust: 0.5,
		ShockThreshold:   3,
		ShockPenalty:     8,

		ConditionRetention: 0.9,
		MaintenanceEffect:  0.034,
		UsageWearRate:      0.02,
		WearServiceLevel:   40,

		BaseDemand:      280,
		ElasticityGain:  1.25,
		ElasticityScale: 4250,
		AwarenessDecay:  0.8,
		AdDivisor:       5,
		AdEffectMax:     900,

		MachinePrice:      10000,
		MachineResale:     0.8,
		OverheadRent:      500,
		FinishedStorage:   1,
		MaterialStorage:   0.5,
		PositiveInterest:  0.0025,
		NegativeInterest:  0.0066,
		CreditScale:       50000,
		FinishedUnitValue: 20,
		MaterialUnitValue: 2,

		MaterialPriceSeries: []float64{8, 5, 5, 6, 5, 7, 7, 8, 8, 3, 5, 6, 8, 3},
	}
}

// InitialState builds the period-0 snapshot for these parameters.
func (p *Params) InitialState() State {
	return State{
		Period:        0,
		MaterialStock: NonNegative(p.InitialMaterial),
		FinishedStock: Clamp(p.InitialFinished, 0, p.StorageCapacity),
		Workers:       max(p.InitialWorkers, 0),
		Motivation:    Clamp(p.InitialMotivation, 0, MotivationMax),
		Wage:          NonNegative(p.InitialWage),
		Machines:      max(p.InitialMachines, 0),
		Wear:          Clamp(p.InitialWear, 0, WearMax),
		Price:         NonNegative(p.InitialPrice),
		Awareness:     Clamp(p.InitialAwareness, 0, AwarenessMax),
		MaterialPrice: NonNegative(p.InitialMaterialPrice),
		Cash:          p.InitialCash,
		CreditFactor:  1,
	}
}

// MaterialPriceAt returns the material unit price in effect for the given
// period, cycling through the configured series. Period 0 uses the initial
// price.
func (p *Params) MaterialPriceAt(period int) float64 {
	if period <= 0 || len(p.MaterialPriceSeries) == 0 {
		return p.InitialMaterialPrice
	}
	return p.MaterialPriceSeries[(period-1)%len(p.MaterialPriceSeries)]
}

// ClampDecisions forces d into the feasible region for the state prev. A
// warning is recorded for every field that had to be moved; step
// quantization alone does not warn. The purchase ceilings shrink with the
// credit factor carried on prev (see the finance model).
func (p *Params) ClampDecisions(prev *State, d Decisions) (Decisions, []Warning) {
	var warns []Warning
	c := d

	clampF := func(name string, v *float64, lo, hi, step float64) {
		orig := *v
		*v = Clamp(*v, lo, hi)
		if *v != orig {
			warns = append(warns, Warningf(WarnInputClamped, "%s %g clamped to %g", name, orig, *v))
		}
		if p.UseSteps {
			*v = Clamp(StepDown(*v, step), lo, hi)
		}
	}

	clampF("price", &c.Price, 0, p.PriceMax, p.PriceStep)
	clampF("wage", &c.Wage, 0, p.WageMax, p.WageStep)
	clampF("advertising", &c.Advertising, 0, p.AdvertisingMax, p.AdStep)
	clampF("maintenance", &c.Maintenance, 0, p.MaintenanceMax, p.MaintStep)

	orderMax := p.MaterialOrderMax * prev.CreditFactor
	clampF("material_order", &c.MaterialOrder, 0, orderMax, p.OrderStep)

	if c.HireWorkers < -prev.Workers || c.HireWorkers > p.WorkerDeltaMax {
		orig := c.HireWorkers
		c.HireWorkers = min(max(c.HireWorkers, -prev.Workers), p.WorkerDeltaMax)
		warns = append(warns, Warningf(WarnInputClamped, "hire_workers %d clamped to %d", orig, c.HireWorkers))
	}

	buyMax := int(float64(p.MachineDeltaMax) * prev.CreditFactor)
	if c.BuyMachines < -prev.Machines || c.BuyMachines > buyMax {
		orig := c.BuyMachines
		c.BuyMachines = min(max(c.BuyMachines, -prev.Machines), buyMax)
		warns = append(warns, Warningf(WarnInputClamped, "buy_machines %d clamped to %d", orig, c.BuyMachines))
	}

	return c, warns
}
