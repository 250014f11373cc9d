package stop

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// MaxIterations stops the search after a fixed number of iterations: with a
// budget of n, IsFinished reports false on calls 1..n−1 and true from call n
// onward, independent of the solution states.
type MaxIterations struct {
	max   int
	calls int
}

var _ alns.StoppingCriterion = (*MaxIterations)(nil)

// NewMaxIterations returns a MaxIterations criterion with the given budget.
// A budget of 0 stops after the first iteration, since the loop body runs
// before the first check.
//
// Errors: ErrNegativeIterations.
func NewMaxIterations(max int) (*MaxIterations, error) {
	if max < 0 {
		return nil, ErrNegativeIterations
	}
	return &MaxIterations{max: max}, nil
}

// Budget returns the configured iteration budget.
func (s *MaxIterations) Budget() int { return s.max }

// IsFinished counts the call and reports whether the budget is spent.
func (s *MaxIterations) IsFinished(rng *rand.Rand, best, curr alns.State) bool {
	s.calls++
	return s.calls >= s.max
}
