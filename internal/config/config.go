package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brand-d/tailorshop/internal/shop"
)

// Config describes a scripted run: the model parameters, the number of
// periods and the decision script. A script shorter than the run repeats
// its last entry; an empty script holds the opening decisions.
type Config struct {
	Name    string           `yaml:"name"`
	Periods int              `yaml:"periods"`
	Params  shop.Params      `yaml:"params"`
	Opening shop.Decisions   `yaml:"opening"`
	Script  []shop.Decisions `yaml:"script"`
}

const DefaultPeriods = 12

// DefaultOpening returns the decision vector that keeps the shop on its
// documented starting course.
func DefaultOpening(p shop.Params) shop.Decisions {
	return shop.Decisions{
		Price:         p.InitialPrice,
		Wage:          p.InitialWage,
		Advertising:   2800,
		MaterialOrder: 400,
		Maintenance:   1200,
	}
}

func DefaultConfig() *Config {
	p := shop.DefaultParams()
	return &Config{
		Name:    "baseline",
		Periods: DefaultPeriods,
		Params:  p,
		Opening: DefaultOpening(p),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DecisionsAt returns the decisions for the given 1-based period of the
// run, following the script and holding its last entry afterwards.
func (c *Config) DecisionsAt(period int) shop.Decisions {
	if len(c.Script) == 0 {
		return c.Opening
	}
	if period-1 < len(c.Script) {
		return c.Script[period-1]
	}
	return c.Script[len(c.Script)-1]
}
