package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// HillClimbing accepts a candidate iff it is no worse than the current
// solution, ties included. Stateless; the zero value is ready to use.
type HillClimbing struct{}

var _ alns.AcceptanceCriterion = HillClimbing{}

// Accept reports cand.Objective() ≤ curr.Objective().
func (HillClimbing) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	return cand.Objective() <= curr.Objective()
}

// AlwaysAccept accepts every candidate, turning the search into a random
// walk over the operators' neighbourhoods. Stateless; the zero value is
// ready to use.
type AlwaysAccept struct{}

var _ alns.AcceptanceCriterion = AlwaysAccept{}

// Accept always reports true.
func (AlwaysAccept) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	return true
}
