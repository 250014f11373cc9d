// Package stop: sentinel errors shared by the stopping criteria.
package stop

import "errors"

// Sentinel errors returned by the stopping-criterion constructors.
var (
	// ErrNegativeIterations indicates a negative iteration budget.
	ErrNegativeIterations = errors.New("stop: maximum iterations must be non-negative")

	// ErrNegativeRuntime indicates a negative runtime budget.
	ErrNegativeRuntime = errors.New("stop: maximum runtime must be non-negative")
)
