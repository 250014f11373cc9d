package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RandomSelect samples a destroy and a repair operator independently and
// uniformly at random each iteration, restricted to the allowed pairs when a
// coupling matrix is configured. It performs no learning: Update is a no-op.
//
// Useful as a baseline, and as the honest choice when operator performance
// is not expected to differ.
type RandomSelect struct {
	space operatorSpace
}

var _ alns.SelectionScheme = (*RandomSelect)(nil)

// NewRandomSelect returns a RandomSelect for the given operator counts.
//
// Errors: ErrNoOperators, ErrCouplingShape, ErrUncoupledDestroy.
func NewRandomSelect(numDestroy, numRepair int, opts ...Option) (*RandomSelect, error) {
	space, err := newOperatorSpace(numDestroy, numRepair, opts...)
	if err != nil {
		return nil, err
	}
	return &RandomSelect{space: space}, nil
}

// NumDestroy reports the expected number of destroy operators.
func (s *RandomSelect) NumDestroy() int { return s.space.numDestroy }

// NumRepair reports the expected number of repair operators.
func (s *RandomSelect) NumRepair() int { return s.space.numRepair }

// Select returns a uniformly random destroy index, then a uniformly random
// repair index among those coupled with it.
//
// Complexity: O(1).
func (s *RandomSelect) Select(rng *rand.Rand, best, curr alns.State) (int, int) {
	d := rng.Intn(s.space.numDestroy)

	repairs := s.space.repairsFor(d)
	if repairs == nil {
		return d, rng.Intn(s.space.numRepair)
	}

	return d, repairs[rng.Intn(len(repairs))]
}

// Update is a no-op: random selection does not learn.
func (s *RandomSelect) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {}
