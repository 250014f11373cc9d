package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RouletteWheel maintains one non-negative weight per destroy and per repair
// operator, initialised to 1. Selection probability is weight-proportional
// (with a uniform fallback when the relevant total is exactly zero), and
// after every iteration the applied operators' weights are updated as the
// convex combination
//
//	w ← decay·w + (1−decay)·scores[outcome],
//
// so operators that keep producing good outcomes accumulate weight while the
// rest decay toward the observed reward level. This is the classic adaptive
// weighting of Røpke and Pisinger (2006).
//
// Invariant: with non-negative scores and decay ∈ [0, 1), all weights remain
// non-negative for the lifetime of the scheme.
type RouletteWheel struct {
	space    operatorSpace
	scores   Scores
	decay    float64
	dWeights []float64
	rWeights []float64
}

var _ alns.SelectionScheme = (*RouletteWheel)(nil)

// NewRouletteWheel returns a RouletteWheel with all weights set to 1.
//
// Contracts: scores must be non-negative; decay ∈ [0, 1).
//
// Errors: ErrNegativeScore, ErrDecayOutOfRange, ErrNoOperators,
// ErrCouplingShape, ErrUncoupledDestroy.
func NewRouletteWheel(
	scores Scores,
	decay float64,
	numDestroy, numRepair int,
	opts ...Option,
) (*RouletteWheel, error) {
	if err := scores.validate(); err != nil {
		return nil, err
	}
	if decay < 0 || decay >= 1 {
		return nil, ErrDecayOutOfRange
	}

	space, err := newOperatorSpace(numDestroy, numRepair, opts...)
	if err != nil {
		return nil, err
	}

	return &RouletteWheel{
		space:    space,
		scores:   scores,
		decay:    decay,
		dWeights: unitWeights(numDestroy),
		rWeights: unitWeights(numRepair),
	}, nil
}

// NumDestroy reports the expected number of destroy operators.
func (s *RouletteWheel) NumDestroy() int { return s.space.numDestroy }

// NumRepair reports the expected number of repair operators.
func (s *RouletteWheel) NumRepair() int { return s.space.numRepair }

// DestroyWeights returns a copy of the destroy-operator weights.
// The weight vector itself is owned exclusively by the scheme and is mutated
// only by Update.
func (s *RouletteWheel) DestroyWeights() []float64 {
	return append([]float64(nil), s.dWeights...)
}

// RepairWeights returns a copy of the repair-operator weights.
func (s *RouletteWheel) RepairWeights() []float64 {
	return append([]float64(nil), s.rWeights...)
}

// Select samples a destroy index proportionally to the destroy weights, then
// a repair index proportionally to the repair weights among the repairs
// coupled with the chosen destroy operator.
//
// Complexity: O(numDestroy + numRepair) time, no allocations.
func (s *RouletteWheel) Select(rng *rand.Rand, best, curr alns.State) (int, int) {
	d := spin(rng, s.dWeights, nil)
	r := spin(rng, s.rWeights, s.space.repairsFor(d))

	return d, r
}

// Update applies the convex weight update to the two operators used this
// iteration. Called on every iteration, whatever the outcome.
func (s *RouletteWheel) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	s.dWeights[dIdx] = s.decay*s.dWeights[dIdx] + (1-s.decay)*s.scores[outcome]
	s.rWeights[rIdx] = s.decay*s.rWeights[rIdx] + (1-s.decay)*s.scores[outcome]
}

// unitWeights allocates a weight vector of n ones.
func unitWeights(n int) []float64 {
	w := make([]float64, n)

	var i int
	for i = range w {
		w[i] = 1
	}

	return w
}
