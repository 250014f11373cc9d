package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RandomAccept always accepts an improving candidate, and accepts a worse
// one with probability P regardless of how much worse it is. P decays from a
// start value toward an end value on every call, linearly or geometrically,
// and stays clamped at the end value afterwards.
type RandomAccept struct {
	start  float64
	end    float64
	step   float64
	method Method
	prob   float64
}

var _ alns.AcceptanceCriterion = (*RandomAccept)(nil)

// WorseAccept is the historical name for RandomAccept, kept for callers
// migrating from older releases.
//
// Deprecated: use RandomAccept.
type WorseAccept = RandomAccept

// NewRandomAccept returns a RandomAccept criterion whose acceptance
// probability decays from start to end with the given per-call step.
//
// Contracts: 0 ≤ end ≤ start ≤ 1; step ≥ 0; a Geometric step must not
// exceed 1.
//
// Errors: ErrInvalidProbability, ErrInvalidStep, ErrGeometricStep,
// ErrInvalidMethod.
func NewRandomAccept(start, end, step float64, method Method) (*RandomAccept, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if end < 0 || start < end || start > 1 {
		return nil, ErrInvalidProbability
	}
	if step < 0 {
		return nil, ErrInvalidStep
	}
	if method == Geometric && step > 1 {
		return nil, ErrGeometricStep
	}

	return &RandomAccept{start: start, end: end, step: step, method: method, prob: start}, nil
}

// Probability returns the current worse-acceptance probability.
func (t *RandomAccept) Probability() float64 { return t.prob }

// Accept reports true for an improving candidate, and otherwise draws
// against the current probability; the probability then decays — on every
// call, whatever the verdict.
func (t *RandomAccept) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	res := cand.Objective() < curr.Objective()
	if !res {
		res = rng.Float64() < t.prob
	}

	t.prob = math.Max(t.end, next(t.prob, t.step, t.method))

	return res
}
