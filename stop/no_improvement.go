package stop

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// NoImprovement stops the search after a configured number of consecutive
// iterations in which the best objective did not strictly improve. The
// counter resets to zero on every call where best improves on the best value
// this criterion has seen, including the first call.
type NoImprovement struct {
	max     int
	counter int
	target  float64
	started bool
}

var _ alns.StoppingCriterion = (*NoImprovement)(nil)

// NewNoImprovement returns a NoImprovement criterion with the given patience.
//
// Errors: ErrNegativeIterations.
func NewNoImprovement(max int) (*NoImprovement, error) {
	if max < 0 {
		return nil, ErrNegativeIterations
	}
	return &NoImprovement{max: max}, nil
}

// Patience returns the configured number of tolerated non-improving calls.
func (s *NoImprovement) Patience() int { return s.max }

// IsFinished tracks the best objective across calls: an improving call
// resets the counter and reports false; a non-improving call bumps it and
// reports whether the patience is exhausted.
func (s *NoImprovement) IsFinished(rng *rand.Rand, best, curr alns.State) bool {
	obj := best.Objective()

	if !s.started || obj < s.target {
		s.started = true
		s.target = obj
		s.counter = 0
		return false
	}

	s.counter++

	return s.counter >= s.max
}
