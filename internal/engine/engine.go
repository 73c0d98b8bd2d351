// Package engine advances the tailorshop model one period at a time.
//
// An Engine owns the only mutable state of a run: the append-only history
// of immutable State snapshots. It is a two-state machine, Ready until
// Close is called and Closed afterwards. Advancing is a pure, terminating
// computation; every structurally valid decision record produces a next
// State, however poor the decisions are. Economic infeasibilities become
// warnings on the snapshot, never errors.
//
// Engines are not safe for concurrent Advance calls; callers embedding one
// in a concurrent host must serialize them.
package engine

import (
	"fmt"

	"github.com/brand-d/tailorshop/internal/models"
	"github.com/brand-d/tailorshop/internal/shop"
)

type Engine struct {
	params  shop.Params
	history []shop.State
	closed  bool
}

// New initializes a run in the Ready state with the period-0 snapshot
// derived from p.
func New(p shop.Params) *Engine {
	return &Engine{
		params:  p,
		history: []shop.State{p.InitialState()},
	}
}

// Params returns the run's parameterization.
func (e *Engine) Params() shop.Params { return e.params }

// Current returns the latest snapshot.
func (e *Engine) Current() shop.State {
	return e.history[len(e.history)-1]
}

// Period returns the index of the latest snapshot.
func (e *Engine) Period() int { return e.Current().Period }

// Closed reports whether the run has ended.
func (e *Engine) Closed() bool { return e.closed }

// History returns the ordered snapshots of the run so far. The returned
// slice is a copy; past snapshots are never mutated.
func (e *Engine) History() []shop.State {
	h := make([]shop.State, len(e.history))
	copy(h, e.history)
	return h
}

// Advance applies one period of decisions and appends the resulting
// snapshot. The subsystem models run in a fixed order: workforce and
// machines first (capacity depends on them), then production (sales are
// capped by stock), then demand and sales, then finance (revenue depends
// on units sold). Out-of-range decisions are clamped with a warning;
// only NaN/Inf inputs fail, leaving the run Ready and history unchanged.
func (e *Engine) Advance(d shop.Decisions) (shop.State, error) {
	if e.closed {
		return shop.State{}, shop.ErrRunClosed
	}
	if !d.IsValid() {
		return shop.State{}, fmt.Errorf("period %d: %w", e.Period()+1, shop.ErrInvalidInput)
	}

	prev := e.Current()
	clamped, warns := e.params.ClampDecisions(&prev, d)

	next := prev
	next.Period = prev.Period + 1
	next.Warnings = nil

	warns = append(warns, models.Workforce(&e.params, &prev, clamped, &next)...)
	warns = append(warns, models.Production(&e.params, &prev, clamped, &next)...)
	warns = append(warns, models.Demand(&e.params, &prev, clamped, &next)...)
	warns = append(warns, models.Finance(&e.params, &prev, clamped, &next)...)

	next.Warnings = warns
	e.history = append(e.history, next)
	return next, nil
}

// Close ends the run and freezes its history. Further Advance calls
// return ErrRunClosed; History remains readable.
func (e *Engine) Close() { e.closed = true }
