package shop

import "errors"

// Errors returned by the engine. Economic infeasibilities are never
// errors; they become warnings on the resulting State.
var (
	// ErrInvalidInput indicates a decision record with NaN or Inf values.
	ErrInvalidInput = errors.New("shop: invalid decision input (NaN or Inf)")

	// ErrRunClosed indicates an advance was attempted after Close.
	ErrRunClosed = errors.New("shop: run is closed")
)
