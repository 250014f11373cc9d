package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// GreatDeluge accepts a candidate iff its objective lies at or below a water
// level that sinks by a constant rate on every call (Dueck 1993). The level
// is initialised lazily on the first call as alpha times the then-best
// objective, so the criterion needs no advance knowledge of the instance.
type GreatDeluge struct {
	alpha   float64
	rate    float64
	level   float64
	started bool
}

var _ alns.AcceptanceCriterion = (*GreatDeluge)(nil)

// NewGreatDeluge returns a GreatDeluge criterion. alpha scales the initial
// solution's objective into the starting water level; rate is subtracted
// from the level on every call.
//
// Contracts: alpha > 1; rate > 0.
//
// Errors: ErrInvalidAlpha, ErrInvalidRate.
func NewGreatDeluge(alpha, rate float64) (*GreatDeluge, error) {
	if alpha <= 1 {
		return nil, ErrInvalidAlpha
	}
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	return &GreatDeluge{alpha: alpha, rate: rate}, nil
}

// Level returns the current water level; zero before the first call.
func (t *GreatDeluge) Level() float64 { return t.level }

// Accept reports cand.Objective() ≤ level, then sinks the level by the
// configured rate — on every call, whatever the verdict.
func (t *GreatDeluge) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	if !t.started {
		t.level = t.alpha * best.Objective()
		t.started = true
	}

	res := cand.Objective() <= t.level

	t.level -= t.rate

	return res
}

// NonLinearGreatDeluge accepts a candidate iff its objective lies at or below
// the water level, but sinks the level proportionally to its gap to the
// candidate:
//
//	level ← level − beta·(level − cand),
//
// so the level chases the candidates it observes — dropping fast while
// candidates are far below it, and stalling near the frontier (Landa-Silva &
// Obit 2008). Level initialisation matches GreatDeluge.
type NonLinearGreatDeluge struct {
	alpha   float64
	beta    float64
	level   float64
	started bool
}

var _ alns.AcceptanceCriterion = (*NonLinearGreatDeluge)(nil)

// NewNonLinearGreatDeluge returns a NonLinearGreatDeluge criterion. alpha
// scales the initial objective into the starting level; beta weighs how fast
// the level chases the candidate objectives.
//
// Contracts: alpha > 1; beta ∈ (0, 1).
//
// Errors: ErrInvalidAlpha, ErrInvalidBeta.
func NewNonLinearGreatDeluge(alpha, beta float64) (*NonLinearGreatDeluge, error) {
	if alpha <= 1 {
		return nil, ErrInvalidAlpha
	}
	if beta <= 0 || beta >= 1 {
		return nil, ErrInvalidBeta
	}
	return &NonLinearGreatDeluge{alpha: alpha, beta: beta}, nil
}

// Level returns the current water level; zero before the first call.
func (t *NonLinearGreatDeluge) Level() float64 { return t.level }

// Accept reports cand.Objective() ≤ level, then moves the level toward the
// candidate's objective by the beta fraction of the gap — on every call,
// whatever the verdict.
func (t *NonLinearGreatDeluge) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	if !t.started {
		t.level = t.alpha * best.Objective()
		t.started = true
	}

	cObj := cand.Objective()
	res := cObj <= t.level

	t.level -= t.beta * (t.level - cObj)

	return res
}
