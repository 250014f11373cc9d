package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// LateAcceptanceHillClimbing compares the candidate against the objective
// recorded a fixed number of calls ago, held in a ring buffer of the given
// length (Burke & Bykov 2017). On every call:
//
//  1. the candidate is accepted iff its objective is at or below the value
//     in the buffer slot at the current position;
//  2. that slot is overwritten with the candidate's objective — the
//     candidate's, not the accepted solution's;
//  3. the position advances.
//
// The overwrite-with-candidate rule is load-bearing: it lets the acceptance
// horizon track what the search proposes rather than what it keeps, and must
// not be "fixed" to store the current objective.
//
// The buffer is filled lazily with the first call's current objective, so a
// fresh criterion behaves like plain hill climbing for its first length calls.
type LateAcceptanceHillClimbing struct {
	history []float64
	pos     int
	started bool
}

var _ alns.AcceptanceCriterion = (*LateAcceptanceHillClimbing)(nil)

// NewLateAcceptanceHillClimbing returns a criterion with a history of the
// given length. Length 1 degenerates to comparing against the previous
// call's candidate.
//
// Contracts: length ≥ 1.
//
// Errors: ErrInvalidLength.
func NewLateAcceptanceHillClimbing(length int) (*LateAcceptanceHillClimbing, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	return &LateAcceptanceHillClimbing{history: make([]float64, length)}, nil
}

// Accept applies the late-acceptance rule and rotates the buffer.
//
// Complexity: O(length) on the first call (buffer fill), O(1) afterwards.
func (t *LateAcceptanceHillClimbing) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	if !t.started {
		fill(t.history, curr.Objective())
		t.started = true
	}

	cObj := cand.Objective()
	res := cObj <= t.history[t.pos]

	t.history[t.pos] = cObj
	t.pos = (t.pos + 1) % len(t.history)

	return res
}

// fill sets every element of a to v.
func fill(a []float64, v float64) {
	var i int
	for i = range a {
		a[i] = v
	}
}
