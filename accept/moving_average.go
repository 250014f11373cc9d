package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// MovingAverageThreshold accepts a candidate iff its objective lies within a
// fixed threshold of the mean objective over the most recent window of
// observed candidates (after Máximo & Nascimento 2021). Every call records
// the candidate's objective into the window first, so the candidate itself
// participates in the average it is judged against.
type MovingAverageThreshold struct {
	threshold float64
	window    []float64
	count     int
	pos       int
}

var _ alns.AcceptanceCriterion = (*MovingAverageThreshold)(nil)

// NewMovingAverageThreshold returns a MovingAverageThreshold criterion with
// an empty observation window.
//
// Contracts: threshold ≥ 0; window ≥ 1.
//
// Errors: ErrInvalidThreshold, ErrInvalidWindow.
func NewMovingAverageThreshold(threshold float64, window int) (*MovingAverageThreshold, error) {
	if threshold < 0 {
		return nil, ErrInvalidThreshold
	}
	if window < 1 {
		return nil, ErrInvalidWindow
	}
	return &MovingAverageThreshold{threshold: threshold, window: make([]float64, window)}, nil
}

// Accept records the candidate's objective, recomputes the window mean, and
// reports cand.Objective() ≤ mean + threshold.
//
// The mean is recomputed from the buffer on every call rather than kept as a
// running sum; over long runs the running-sum variant drifts on cancellation
// error, and the window is small by construction.
//
// Complexity: O(window) time, no allocations.
func (t *MovingAverageThreshold) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	cObj := cand.Objective()

	if t.count < len(t.window) {
		t.window[t.count] = cObj
		t.count++
	} else {
		t.window[t.pos] = cObj
		t.pos = (t.pos + 1) % len(t.window)
	}

	var sum float64
	var i int
	for i = 0; i < t.count; i++ {
		sum += t.window[i]
	}

	return cObj <= sum/float64(t.count)+t.threshold
}
