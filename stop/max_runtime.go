package stop

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/alns"
)

// MaxRuntime stops the search once a wall-clock budget has been spent. The
// clock starts lazily on the first IsFinished call and uses time.Since, so
// the measurement rides Go's monotonic clock and is immune to wall-clock
// adjustments.
//
// The criterion is checked only between iterations; a slow operator call can
// overrun the budget by one iteration. That is an accepted property of the
// loop, not a defect here.
type MaxRuntime struct {
	limit   time.Duration
	start   time.Time
	started bool
}

var _ alns.StoppingCriterion = (*MaxRuntime)(nil)

// NewMaxRuntime returns a MaxRuntime criterion with the given budget.
// A zero budget stops after the first iteration.
//
// Errors: ErrNegativeRuntime.
func NewMaxRuntime(limit time.Duration) (*MaxRuntime, error) {
	if limit < 0 {
		return nil, ErrNegativeRuntime
	}
	return &MaxRuntime{limit: limit}, nil
}

// Budget returns the configured runtime budget.
func (s *MaxRuntime) Budget() time.Duration { return s.limit }

// IsFinished starts the clock on its first call and reports whether the
// elapsed time has reached the budget.
func (s *MaxRuntime) IsFinished(rng *rand.Rand, best, curr alns.State) bool {
	if !s.started {
		s.start = time.Now()
		s.started = true
	}

	return time.Since(s.start) >= s.limit
}
