package selection

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// AlphaUCB treats each allowed (destroy, repair) pair as a bandit arm,
// following the α-UCB scheme Hendel (2022) adapted for ALNS in mixed-integer
// programming. Per arm it maintains a pull count and a running mean reward;
// the arm played in iteration t maximises
//
//	mean[a] + alpha·sqrt(ln(totalPulls) / pulls[a]).
//
// Cold start: any never-pulled arm is played first (in row-major pair order)
// before the UCB formula is consulted, so every arm gathers at least one
// observation. Selection is deterministic given the learning state; the RNG
// parameter is unused.
//
// alpha controls the width of the confidence bonus: larger values force
// inferior arms to be re-tried more often (more exploration).
type AlphaUCB struct {
	space  operatorSpace
	scores Scores
	alpha  float64

	// mean and pulls are indexed by d·numRepair + r over the full pair grid;
	// disallowed pairs simply never accrue pulls.
	mean   []float64
	pulls  []int
	total  int
	cursor int // next cold-start position in space.pairs
}

var _ alns.SelectionScheme = (*AlphaUCB)(nil)

// NewAlphaUCB returns an AlphaUCB scheme with empty arm statistics.
//
// Contracts: scores must be non-negative; alpha ∈ [0, 1].
//
// Errors: ErrNegativeScore, ErrAlphaOutOfRange, ErrNoOperators,
// ErrCouplingShape, ErrUncoupledDestroy.
func NewAlphaUCB(
	scores Scores,
	alpha float64,
	numDestroy, numRepair int,
	opts ...Option,
) (*AlphaUCB, error) {
	if err := scores.validate(); err != nil {
		return nil, err
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrAlphaOutOfRange
	}

	space, err := newOperatorSpace(numDestroy, numRepair, opts...)
	if err != nil {
		return nil, err
	}

	return &AlphaUCB{
		space:  space,
		scores: scores,
		alpha:  alpha,
		mean:   make([]float64, numDestroy*numRepair),
		pulls:  make([]int, numDestroy*numRepair),
	}, nil
}

// NumDestroy reports the expected number of destroy operators.
func (s *AlphaUCB) NumDestroy() int { return s.space.numDestroy }

// NumRepair reports the expected number of repair operators.
func (s *AlphaUCB) NumRepair() int { return s.space.numRepair }

// Select returns the never-pulled arm next in row-major order while any
// remains, then the arm maximising the UCB value, breaking ties toward the
// earlier pair.
//
// Complexity: O(numDestroy·numRepair) time, no allocations.
func (s *AlphaUCB) Select(rng *rand.Rand, best, curr alns.State) (int, int) {
	// Cold start: the cursor only ever advances, so the scan is amortised O(1).
	for s.cursor < len(s.space.pairs) {
		arm := s.space.pairs[s.cursor]
		if s.pulls[s.armIndex(arm)] == 0 {
			return arm.Destroy, arm.Repair
		}
		s.cursor++
	}

	var (
		logTotal = math.Log(float64(s.total))
		bestArm  = s.space.pairs[0]
		bestVal  = math.Inf(-1)
	)
	for _, arm := range s.space.pairs {
		i := s.armIndex(arm)
		val := s.mean[i] + s.alpha*math.Sqrt(logTotal/float64(s.pulls[i]))
		if val > bestVal {
			bestVal = val
			bestArm = arm
		}
	}

	return bestArm.Destroy, bestArm.Repair
}

// Update increments the chosen arm's pull count and folds the outcome reward
// into its running mean.
func (s *AlphaUCB) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	i := dIdx*s.space.numRepair + rIdx

	s.pulls[i]++
	s.total++
	s.mean[i] += (s.scores[outcome] - s.mean[i]) / float64(s.pulls[i])
}

// armIndex flattens an arm into the row-major statistics index.
func (s *AlphaUCB) armIndex(a Arm) int {
	return a.Destroy*s.space.numRepair + a.Repair
}
