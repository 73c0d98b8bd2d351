// Package scenario drives an engine through a scripted run.
package scenario

import (
	"fmt"

	"github.com/brand-d/tailorshop/internal/config"
	"github.com/brand-d/tailorshop/internal/engine"
	"github.com/brand-d/tailorshop/internal/metrics"
	"github.com/brand-d/tailorshop/internal/shop"
)

// Result collects everything a driver needs after a run: the full
// history, the reduced metrics and the number of warnings raised.
type Result struct {
	Name     string
	History  []shop.State
	Metrics  map[string]float64
	Warnings int
}

type Scenario struct {
	cfg     *config.Config
	engine  *engine.Engine
	metrics []metrics.Metric
}

func New(cfg *config.Config, ms []metrics.Metric) *Scenario {
	return &Scenario{
		cfg:     cfg,
		engine:  engine.New(cfg.Params),
		metrics: ms,
	}
}

// Engine exposes the underlying engine, e.g. for observers.
func (s *Scenario) Engine() *engine.Engine { return s.engine }

// Run advances the engine through the configured number of periods,
// feeding every snapshot to the metrics, and closes the run.
func (s *Scenario) Run() (*Result, error) {
	if s.cfg.Periods <= 0 {
		return nil, fmt.Errorf("scenario %q: periods must be positive, got %d", s.cfg.Name, s.cfg.Periods)
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.engine.Current())
	}

	warnings := 0
	for period := 1; period <= s.cfg.Periods; period++ {
		state, err := s.engine.Advance(s.cfg.DecisionsAt(period))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.cfg.Name, err)
		}
		warnings += len(state.Warnings)
		for _, m := range s.metrics {
			m.Observe(state)
		}
	}
	s.engine.Close()

	result := &Result{
		Name:     s.cfg.Name,
		History:  s.engine.History(),
		Metrics:  make(map[string]float64, len(s.metrics)),
		Warnings: warnings,
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
