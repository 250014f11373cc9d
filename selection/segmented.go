package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// SegmentedRouletteWheel applies the RouletteWheel update law at a coarser
// cadence: outcome scores accumulate in per-operator segment accumulators,
// and once per segment boundary (every segLength selections) the summed
// scores fold into the weights as the convex combination
//
//	w ← decay·w + (1−decay)·segmentScore,
//
// after which the accumulators reset to zero. Freezing the weights within a
// segment lets an operator set dominate a neighbourhood before the scheme
// re-evaluates it.
type SegmentedRouletteWheel struct {
	space     operatorSpace
	scores    Scores
	decay     float64
	segLength int
	calls     int

	dWeights []float64
	rWeights []float64
	dSegment []float64
	rSegment []float64
}

var _ alns.SelectionScheme = (*SegmentedRouletteWheel)(nil)

// NewSegmentedRouletteWheel returns a SegmentedRouletteWheel with all weights
// set to 1 and empty segment accumulators.
//
// Contracts: scores must be non-negative; decay ∈ [0, 1); segLength ≥ 1.
//
// Errors: ErrNegativeScore, ErrDecayOutOfRange, ErrSegmentLength,
// ErrNoOperators, ErrCouplingShape, ErrUncoupledDestroy.
func NewSegmentedRouletteWheel(
	scores Scores,
	decay float64,
	segLength int,
	numDestroy, numRepair int,
	opts ...Option,
) (*SegmentedRouletteWheel, error) {
	if err := scores.validate(); err != nil {
		return nil, err
	}
	if decay < 0 || decay >= 1 {
		return nil, ErrDecayOutOfRange
	}
	if segLength < 1 {
		return nil, ErrSegmentLength
	}

	space, err := newOperatorSpace(numDestroy, numRepair, opts...)
	if err != nil {
		return nil, err
	}

	return &SegmentedRouletteWheel{
		space:     space,
		scores:    scores,
		decay:     decay,
		segLength: segLength,
		dWeights:  unitWeights(numDestroy),
		rWeights:  unitWeights(numRepair),
		dSegment:  make([]float64, numDestroy),
		rSegment:  make([]float64, numRepair),
	}, nil
}

// NumDestroy reports the expected number of destroy operators.
func (s *SegmentedRouletteWheel) NumDestroy() int { return s.space.numDestroy }

// NumRepair reports the expected number of repair operators.
func (s *SegmentedRouletteWheel) NumRepair() int { return s.space.numRepair }

// DestroyWeights returns a copy of the destroy-operator weights as of the
// last segment boundary.
func (s *SegmentedRouletteWheel) DestroyWeights() []float64 {
	return append([]float64(nil), s.dWeights...)
}

// RepairWeights returns a copy of the repair-operator weights as of the last
// segment boundary.
func (s *SegmentedRouletteWheel) RepairWeights() []float64 {
	return append([]float64(nil), s.rWeights...)
}

// Select folds the segment accumulators into the weights when a segment
// boundary is reached, then samples weight-proportionally exactly as the
// plain RouletteWheel does.
//
// Complexity: O(numDestroy + numRepair) time, no allocations.
func (s *SegmentedRouletteWheel) Select(rng *rand.Rand, best, curr alns.State) (int, int) {
	s.calls++
	if s.calls%s.segLength == 0 {
		s.foldSegment()
	}

	d := spin(rng, s.dWeights, nil)
	r := spin(rng, s.rWeights, s.space.repairsFor(d))

	return d, r
}

// Update adds the outcome score to the applied operators' segment
// accumulators; the weights themselves stay frozen until the boundary.
func (s *SegmentedRouletteWheel) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	s.dSegment[dIdx] += s.scores[outcome]
	s.rSegment[rIdx] += s.scores[outcome]
}

// foldSegment applies the convex update with the segment sums and resets the
// accumulators for the next segment.
func (s *SegmentedRouletteWheel) foldSegment() {
	var i int
	for i = range s.dWeights {
		s.dWeights[i] = s.decay*s.dWeights[i] + (1-s.decay)*s.dSegment[i]
		s.dSegment[i] = 0
	}
	for i = range s.rWeights {
		s.rWeights[i] = s.decay*s.rWeights[i] + (1-s.decay)*s.rSegment[i]
		s.rSegment[i] = 0
	}
}
