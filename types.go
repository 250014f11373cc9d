// Package alns - core contracts and sentinel errors.
//
// This file defines the capabilities shared by the orchestrator and the three
// decision subsystems (operator selection, acceptance, stopping), together
// with the outcome classification and the strict sentinel errors returned by
// registration and by Run before the first iteration executes.
package alns

import (
	"errors"
	"math/rand"
)

// Sentinel errors reported by operator registration and by Run's
// pre-iteration validation. Any error returned by a destroy/repair operator
// or an on-best callback is forwarded as-is and is deliberately NOT wrapped
// in one of these.
var (
	// ErrNilOperator indicates that a nil operator function was registered.
	ErrNilOperator = errors.New("alns: operator is nil")

	// ErrEmptyOperatorName indicates that an operator was registered without a name.
	// Names key the per-operator statistics, so they must be non-empty.
	ErrEmptyOperatorName = errors.New("alns: operator name is empty")

	// ErrDuplicateOperator indicates that an operator name was registered twice
	// within the same registry (destroy or repair).
	ErrDuplicateOperator = errors.New("alns: operator name already registered")

	// ErrNoDestroyOperators indicates that Run was called with an empty destroy registry.
	ErrNoDestroyOperators = errors.New("alns: no destroy operators registered")

	// ErrNoRepairOperators indicates that Run was called with an empty repair registry.
	ErrNoRepairOperators = errors.New("alns: no repair operators registered")

	// ErrNilInitialState indicates that Run was called with a nil initial state.
	ErrNilInitialState = errors.New("alns: initial state is nil")

	// ErrNilSelectionScheme indicates that Run was called with a nil selection scheme.
	ErrNilSelectionScheme = errors.New("alns: selection scheme is nil")

	// ErrNilAcceptanceCriterion indicates that Run was called with a nil acceptance criterion.
	ErrNilAcceptanceCriterion = errors.New("alns: acceptance criterion is nil")

	// ErrNilStoppingCriterion indicates that Run was called with a nil stopping criterion.
	ErrNilStoppingCriterion = errors.New("alns: stopping criterion is nil")

	// ErrShapeMismatch indicates that the selection scheme was constructed for a
	// different number of destroy/repair operators than the registries hold.
	ErrShapeMismatch = errors.New("alns: selection scheme shape does not match operator registries")

	// ErrSelectionOutOfRange indicates that a selection scheme returned an
	// operator index outside the registry bounds.
	ErrSelectionOutOfRange = errors.New("alns: selected operator index out of range")

	// ErrNilCandidate indicates that a destroy or repair operator returned a nil
	// state without an error.
	ErrNilCandidate = errors.New("alns: operator returned a nil state")
)

// State is the solution-state capability required by the search: a single
// objective value, where lower is better. Maximisation problems must be
// expressed as negated objectives. The engine treats states as opaque and
// immutable; operators receive the current state and must return a new one.
type State interface {
	// Objective computes the state's associated objective value.
	Objective() float64
}

// ContextualState is an optional extension of State that exposes a context
// vector for bandit-style operator selection. Selection schemes discover the
// capability via a type assertion; states without it simply yield no context.
type ContextualState interface {
	State

	// Context returns the feature vector describing the state.
	Context() []float64
}

// Operator transforms a state into a new state, drawing all randomness from
// rng. The extra argument is the user-supplied context passed to Run,
// forwarded verbatim. Destroy operators receive the current state; repair
// operators receive the destroyed state. Operators must not mutate their
// input. A non-nil error aborts the run immediately.
type Operator func(s State, rng *rand.Rand, extra any) (State, error)

// Callback observes a new global best solution. Callbacks run synchronously,
// inside the iteration, in registration order. A non-nil error aborts the run.
type Callback func(best State, rng *rand.Rand, extra any) error

// Outcome classifies a candidate solution relative to the current and best
// solutions. The integer values index score vectors in the selection schemes.
type Outcome int

const (
	// OutcomeBest - the candidate is a new global best.
	OutcomeBest Outcome = iota

	// OutcomeBetter - the candidate improves the current solution, but not the best.
	OutcomeBetter

	// OutcomeAccepted - the candidate does not improve the current solution,
	// but the acceptance criterion accepted it anyway.
	OutcomeAccepted

	// OutcomeRejected - the candidate was rejected.
	OutcomeRejected

	// NumOutcomes is the number of outcome tiers; score vectors have this length.
	NumOutcomes = iota
)

// String returns a stable, lower-case name for the outcome tier.
func (o Outcome) String() string {
	switch o {
	case OutcomeBest:
		return "best"
	case OutcomeBetter:
		return "better"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SelectionScheme chooses a (destroy, repair) operator pair each iteration
// and learns from the iteration's outcome. Implementations live in the
// selection subpackage. NumDestroy/NumRepair report the operator-pair shape
// the scheme was constructed for; Run verifies it against the registries
// before the first iteration.
type SelectionScheme interface {
	// Select returns indices into the destroy and repair registries.
	Select(rng *rand.Rand, best, curr State) (dIdx, rIdx int)

	// Update feeds the iteration's outcome back into the scheme's learning
	// state. It is called on every iteration, independent of acceptance.
	Update(cand State, dIdx, rIdx int, outcome Outcome)

	// NumDestroy reports the expected number of destroy operators.
	NumDestroy() int

	// NumRepair reports the expected number of repair operators.
	NumRepair() int
}

// AcceptanceCriterion decides whether a candidate replaces the current
// solution. Implementations live in the accept subpackage. Stateful criteria
// advance their cooling/decay schedule on every call, whatever the verdict.
type AcceptanceCriterion interface {
	// Accept reports whether the candidate should become the current solution.
	Accept(rng *rand.Rand, best, curr, cand State) bool
}

// StoppingCriterion decides whether the iteration loop terminates. It is
// queried once at the end of every iteration; implementations live in the
// stop subpackage.
type StoppingCriterion interface {
	// IsFinished reports whether the search should stop.
	IsFinished(rng *rand.Rand, best, curr State) bool
}
