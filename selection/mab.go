package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// Arm identifies one (destroy, repair) operator pair viewed as a bandit arm.
type Arm struct {
	Destroy int
	Repair  int
}

// Policy is the external bandit capability MABSelector delegates to. Any
// multi-armed-bandit algorithm fits behind it: Predict proposes the next arm,
// PartialFit feeds one observation back.
//
// Predict's second result reports whether the policy has fitted observations;
// before the first fit the selector falls back to a uniformly random allowed
// pair, so a fresh policy needs no special cold-start handling of its own.
//
// The context argument carries the solution state's feature vector when the
// state implements alns.ContextualState, and nil otherwise; non-contextual
// policies are free to ignore it.
type Policy interface {
	// Predict proposes the arm to play, drawing any randomness from rng.
	Predict(rng *rand.Rand, context []float64) (Arm, bool)

	// PartialFit records one (arm, reward) observation.
	PartialFit(arm Arm, reward float64, context []float64)
}

// MABSelector frames operator selection as a multi-armed-bandit problem and
// delegates both selection and learning to an external Policy. Outcome tiers
// map to rewards through the scheme's Scores vector; contextual policies
// additionally receive the state's context vector.
type MABSelector struct {
	space  operatorSpace
	scores Scores
	policy Policy
}

var _ alns.SelectionScheme = (*MABSelector)(nil)

// NewMABSelector returns a MABSelector delegating to policy.
//
// Contracts: scores must be non-negative; policy must be non-nil.
//
// Errors: ErrNegativeScore, ErrNilPolicy, ErrNoOperators, ErrCouplingShape,
// ErrUncoupledDestroy.
func NewMABSelector(
	scores Scores,
	policy Policy,
	numDestroy, numRepair int,
	opts ...Option,
) (*MABSelector, error) {
	if err := scores.validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}

	space, err := newOperatorSpace(numDestroy, numRepair, opts...)
	if err != nil {
		return nil, err
	}

	return &MABSelector{space: space, scores: scores, policy: policy}, nil
}

// NumDestroy reports the expected number of destroy operators.
func (s *MABSelector) NumDestroy() int { return s.space.numDestroy }

// NumRepair reports the expected number of repair operators.
func (s *MABSelector) NumRepair() int { return s.space.numRepair }

// Select asks the policy for an arm, passing the current state's context
// vector when available. When the policy has no fitted observations yet, or
// proposes a pair outside the allowed space, Select falls back to a uniformly
// random allowed pair so the policy receives its first observations.
//
// Complexity: policy-dependent; the fallback is O(1).
func (s *MABSelector) Select(rng *rand.Rand, best, curr alns.State) (int, int) {
	if arm, ok := s.policy.Predict(rng, contextOf(curr)); ok && s.space.allowed(arm.Destroy, arm.Repair) {
		return arm.Destroy, arm.Repair
	}

	pair := s.space.pairs[rng.Intn(len(s.space.pairs))]

	return pair.Destroy, pair.Repair
}

// Update feeds the outcome's reward for the applied pair back into the
// policy, together with the candidate state's context vector.
func (s *MABSelector) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	s.policy.PartialFit(Arm{Destroy: dIdx, Repair: rIdx}, s.scores[outcome], contextOf(cand))
}
