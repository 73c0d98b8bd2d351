package config

import "github.com/brand-d/tailorshop/internal/shop"

func preset(name string, periods int, script ...shop.Decisions) *Config {
	p := shop.DefaultParams()
	return &Config{
		Name:    name,
		Periods: periods,
		Params:  p,
		Opening: DefaultOpening(p),
		Script:  script,
	}
}

// Presets are ready-made scenarios for the CLI.
var Presets = map[string]*Config{
	// hold the documented opening decisions
	"baseline": preset("baseline", DefaultPeriods),

	// aggressive growth: hire, buy machines, stock up, advertise hard
	"expansion": preset("expansion", DefaultPeriods,
		shop.Decisions{Price: 50, Wage: 1200, Advertising: 5000, MaterialOrder: 900, Maintenance: 1500, HireWorkers: 4, BuyMachines: 4},
		shop.Decisions{Price: 50, Wage: 1200, Advertising: 5000, MaterialOrder: 900, Maintenance: 1500},
	),

	// cut every discretionary expense and run the stock down
	"austerity": preset("austerity", DefaultPeriods,
		shop.Decisions{Price: 60, Wage: 900, Advertising: 0, MaterialOrder: 100, Maintenance: 400},
	),

	// underfeed an oversized workforce with material
	"overstaffed": preset("overstaffed", DefaultPeriods,
		shop.Decisions{Price: 52, Wage: 1080, Advertising: 2800, MaterialOrder: 50, Maintenance: 1200, HireWorkers: 8, BuyMachines: 8},
		shop.Decisions{Price: 52, Wage: 1080, Advertising: 2800, MaterialOrder: 50, Maintenance: 1200},
	),
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
