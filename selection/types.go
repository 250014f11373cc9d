// SPDX-License-Identifier: MIT

// Package selection: shared types, sentinel errors, and the operator-space
// plumbing (pair counts, optional coupling matrix, weighted sampling) used by
// every selection scheme.
package selection

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// Sentinel errors returned by the selection-scheme constructors.
var (
	// ErrNoOperators indicates a non-positive destroy or repair operator count.
	ErrNoOperators = errors.New("selection: number of destroy and repair operators must be positive")

	// ErrCouplingShape indicates that the coupling matrix does not have
	// numDestroy rows of numRepair columns.
	ErrCouplingShape = errors.New("selection: coupling matrix shape does not match operator counts")

	// ErrUncoupledDestroy indicates a destroy operator with no allowed repair
	// operator; such an operator could be selected but never applied.
	ErrUncoupledDestroy = errors.New("selection: destroy operator has no coupled repair operator")

	// ErrNegativeScore indicates a negative outcome score; weights and rewards
	// must stay non-negative.
	ErrNegativeScore = errors.New("selection: outcome scores must be non-negative")

	// ErrDecayOutOfRange indicates a decay parameter outside [0, 1).
	ErrDecayOutOfRange = errors.New("selection: decay must lie in [0, 1)")

	// ErrSegmentLength indicates a segment length below 1.
	ErrSegmentLength = errors.New("selection: segment length must be at least 1")

	// ErrAlphaOutOfRange indicates an exploration parameter outside [0, 1].
	ErrAlphaOutOfRange = errors.New("selection: alpha must lie in [0, 1]")

	// ErrEpsilonOutOfRange indicates an exploration probability outside [0, 1].
	ErrEpsilonOutOfRange = errors.New("selection: epsilon must lie in [0, 1]")

	// ErrNilPolicy indicates that a nil bandit policy was passed to NewMABSelector.
	ErrNilPolicy = errors.New("selection: bandit policy is nil")
)

// Scores maps each outcome tier to a non-negative reward magnitude, indexed
// by alns.Outcome. By convention scores[OutcomeBest] ≥ scores[OutcomeBetter]
// ≥ scores[OutcomeAccepted] ≥ scores[OutcomeRejected] = 0, but only
// non-negativity is enforced; the magnitudes are tuning parameters.
type Scores [alns.NumOutcomes]float64

// DefaultScores returns a reasonable starting parameterisation:
// 25 for a new best, 5 for better, 1 for accepted, 0 for rejected.
func DefaultScores() Scores {
	return Scores{25, 5, 1, 0}
}

// validate reports ErrNegativeScore when any tier magnitude is negative.
func (s Scores) validate() error {
	var i int
	for i = range s {
		if s[i] < 0 {
			return ErrNegativeScore
		}
	}
	return nil
}

// Option configures a selection scheme at construction time.
type Option func(*schemeOptions)

// schemeOptions collects the construction-time settings shared by all schemes.
type schemeOptions struct {
	coupling [][]bool
}

// WithCoupling restricts which (destroy, repair) pairs may be selected.
// coupling[d][r] == true means destroy operator d may be followed by repair
// operator r. A nil matrix (the default) allows every pair. The matrix must
// have one row per destroy operator and one column per repair operator, and
// every row must allow at least one repair operator.
func WithCoupling(coupling [][]bool) Option {
	return func(o *schemeOptions) {
		o.coupling = coupling
	}
}

// operatorSpace is the validated pair space every scheme selects from:
// operator counts plus the optional coupling matrix, with the per-destroy
// repair candidates precomputed so the hot path allocates nothing.
type operatorSpace struct {
	numDestroy int
	numRepair  int

	// coupled[d] lists the repair indices allowed after destroy d;
	// nil when the space is unconstrained.
	coupled [][]int

	// pairs enumerates every allowed (destroy, repair) pair in row-major
	// order; used for uniform-pair fallbacks and bandit arms.
	pairs []Arm
}

// newOperatorSpace validates the counts and coupling and precomputes the
// allowed-pair views.
//
// Errors: ErrNoOperators, ErrCouplingShape, ErrUncoupledDestroy.
//
// Complexity: O(numDestroy·numRepair) time and space.
func newOperatorSpace(numDestroy, numRepair int, opts ...Option) (operatorSpace, error) {
	if numDestroy <= 0 || numRepair <= 0 {
		return operatorSpace{}, ErrNoOperators
	}

	var cfg schemeOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	space := operatorSpace{numDestroy: numDestroy, numRepair: numRepair}

	var d, r int
	if cfg.coupling == nil {
		space.pairs = make([]Arm, 0, numDestroy*numRepair)
		for d = 0; d < numDestroy; d++ {
			for r = 0; r < numRepair; r++ {
				space.pairs = append(space.pairs, Arm{Destroy: d, Repair: r})
			}
		}
		return space, nil
	}

	if len(cfg.coupling) != numDestroy {
		return operatorSpace{}, ErrCouplingShape
	}

	space.coupled = make([][]int, numDestroy)
	for d = 0; d < numDestroy; d++ {
		if len(cfg.coupling[d]) != numRepair {
			return operatorSpace{}, ErrCouplingShape
		}
		for r = 0; r < numRepair; r++ {
			if cfg.coupling[d][r] {
				space.coupled[d] = append(space.coupled[d], r)
				space.pairs = append(space.pairs, Arm{Destroy: d, Repair: r})
			}
		}
		if len(space.coupled[d]) == 0 {
			return operatorSpace{}, ErrUncoupledDestroy
		}
	}

	return space, nil
}

// allowed reports whether destroy d may be followed by repair r.
func (s *operatorSpace) allowed(d, r int) bool {
	if d < 0 || d >= s.numDestroy || r < 0 || r >= s.numRepair {
		return false
	}
	if s.coupled == nil {
		return true
	}

	var i int
	for i = range s.coupled[d] {
		if s.coupled[d][i] == r {
			return true
		}
	}

	return false
}

// repairsFor returns the repair indices allowed after destroy d, or nil when
// the space is unconstrained (meaning: all of 0..numRepair-1).
func (s *operatorSpace) repairsFor(d int) []int {
	if s.coupled == nil {
		return nil
	}
	return s.coupled[d]
}

// spin samples an index proportionally to weights, optionally restricted to
// the allowed subset (nil ⇒ all indices). When the relevant total weight is
// exactly zero the sample falls back to uniform over the same candidates.
//
// Contracts: weights must be non-negative; allowed, when non-nil, must be
// non-empty with in-range indices.
//
// Complexity: O(len(weights)) time, O(1) space.
func spin(rng *rand.Rand, weights []float64, allowed []int) int {
	var (
		total float64
		t     float64
		i     int
	)

	if allowed == nil {
		for i = range weights {
			total += weights[i]
		}
		if total <= 0 {
			// Uniform fallback keeps the scheme usable when every weight
			// has decayed to zero.
			return rng.Intn(len(weights))
		}
		t = rng.Float64() * total
		for i = range weights {
			t -= weights[i]
			if t < 0 {
				return i
			}
		}
		// Floating-point tail: t may survive the walk by a rounding hair.
		return len(weights) - 1
	}

	for _, i = range allowed {
		total += weights[i]
	}
	if total <= 0 {
		return allowed[rng.Intn(len(allowed))]
	}
	t = rng.Float64() * total
	for _, i = range allowed {
		t -= weights[i]
		if t < 0 {
			return i
		}
	}

	return allowed[len(allowed)-1]
}

// contextOf extracts the optional context vector from a state, or nil when
// the state does not expose one.
func contextOf(s alns.State) []float64 {
	if c, ok := s.(alns.ContextualState); ok {
		return c.Context()
	}
	return nil
}
