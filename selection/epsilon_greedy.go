package selection

import "math/rand"

// EpsilonGreedy is a reference Policy for MABSelector: with probability
// epsilon it explores a uniformly random known arm, otherwise it exploits the
// arm with the highest mean observed reward (ties broken toward the arm seen
// first). Arms are registered lazily through PartialFit, so the selector's
// uniform cold-start fallback doubles as the initial exploration phase.
//
// The policy is non-contextual and ignores the context vector.
type EpsilonGreedy struct {
	epsilon float64
	arms    []Arm
	index   map[Arm]int
	pulls   []int
	mean    []float64
}

var _ Policy = (*EpsilonGreedy)(nil)

// NewEpsilonGreedy returns an EpsilonGreedy policy with no observations.
//
// Contracts: epsilon ∈ [0, 1].
//
// Errors: ErrEpsilonOutOfRange.
func NewEpsilonGreedy(epsilon float64) (*EpsilonGreedy, error) {
	if epsilon < 0 || epsilon > 1 {
		return nil, ErrEpsilonOutOfRange
	}
	return &EpsilonGreedy{epsilon: epsilon, index: make(map[Arm]int)}, nil
}

// Predict proposes an arm, or reports false while no arm has been observed.
//
// Complexity: O(len(arms)) time, no allocations.
func (p *EpsilonGreedy) Predict(rng *rand.Rand, context []float64) (Arm, bool) {
	if len(p.arms) == 0 {
		return Arm{}, false
	}

	if rng.Float64() < p.epsilon {
		return p.arms[rng.Intn(len(p.arms))], true
	}

	var (
		bestIdx = 0
		i       int
	)
	for i = 1; i < len(p.arms); i++ {
		if p.mean[i] > p.mean[bestIdx] {
			bestIdx = i
		}
	}

	return p.arms[bestIdx], true
}

// PartialFit folds one observation into the arm's running mean, registering
// the arm on first sight.
func (p *EpsilonGreedy) PartialFit(arm Arm, reward float64, context []float64) {
	i, ok := p.index[arm]
	if !ok {
		i = len(p.arms)
		p.index[arm] = i
		p.arms = append(p.arms, arm)
		p.pulls = append(p.pulls, 0)
		p.mean = append(p.mean, 0)
	}

	p.pulls[i]++
	p.mean[i] += (reward - p.mean[i]) / float64(p.pulls[i])
}
