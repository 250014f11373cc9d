// Package alns - the adaptive large neighbourhood search orchestrator.
//
// This file implements the ruin-and-recreate iteration loop: operator
// registries, outcome classification, callback dispatch, and statistics
// accumulation. The three decision subsystems (selection, acceptance,
// stopping) are supplied by the caller as capabilities; see types.go for
// their contracts and the selection/accept/stop subpackages for the
// implementations.
//
// Design principles:
//   - Deterministic: one shared RNG drives every stochastic decision.
//   - Strict sentinels: configuration errors surface before iteration one;
//     operator and callback errors are forwarded as-is.
//   - Single-threaded: one iteration completes fully before the next begins;
//     no locking, no blocking I/O, no hidden goroutines.
package alns

import (
	"math/rand"
	"time"
)

// namedOperator binds a registered operator to its registration name.
// Registry order is insertion order; indices are stable for a whole run.
type namedOperator struct {
	name string
	op   Operator
}

// ALNS drives the adaptive large neighbourhood search loop over
// user-registered destroy and repair operators. The implementation optimises
// for minimisation, following Pisinger and Røpke (2010).
//
// Construct with New, register at least one destroy and one repair operator,
// then call Run. The instance owns the shared random source and the operator
// registries; the decision subsystems passed to Run own their own learning
// and cooling state. Reusing a stateful scheme or criterion across two runs
// shares that internal state across them - a documented precondition, not an
// error the engine can detect.
type ALNS struct {
	rng     *rand.Rand
	destroy []namedOperator
	repair  []namedOperator
	onBest  []Callback
}

// New returns an empty ALNS instance configured by opts.
// With no options the instance uses the deterministic default-seeded RNG.
func New(opts ...Option) *ALNS {
	var cfg = defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ALNS{rng: cfg.rng}
}

// AddDestroyOperator registers op under name in the destroy registry.
// Names must be unique within the registry; they identify the operator in
// the per-operator statistics.
//
// Errors: ErrNilOperator, ErrEmptyOperatorName, ErrDuplicateOperator.
func (a *ALNS) AddDestroyOperator(op Operator, name string) error {
	reg, err := appendOperator(a.destroy, op, name)
	if err != nil {
		return err
	}
	a.destroy = reg

	return nil
}

// AddRepairOperator registers op under name in the repair registry.
// Names must be unique within the registry; they identify the operator in
// the per-operator statistics.
//
// Errors: ErrNilOperator, ErrEmptyOperatorName, ErrDuplicateOperator.
func (a *ALNS) AddRepairOperator(op Operator, name string) error {
	reg, err := appendOperator(a.repair, op, name)
	if err != nil {
		return err
	}
	a.repair = reg

	return nil
}

// DestroyOperators returns the registered destroy operator names in
// registration order. The slice is a copy; indices match selection indices.
func (a *ALNS) DestroyOperators() []string {
	return operatorNames(a.destroy)
}

// RepairOperators returns the registered repair operator names in
// registration order. The slice is a copy; indices match selection indices.
func (a *ALNS) RepairOperators() []string {
	return operatorNames(a.repair)
}

// OnBest registers a callback invoked whenever the search finds a new global
// best solution. Callbacks run synchronously inside the iteration, in
// registration order, with the new best state, the shared RNG, and the extra
// context passed to Run.
func (a *ALNS) OnBest(cb Callback) {
	if cb == nil {
		return
	}
	a.onBest = append(a.onBest, cb)
}

// Run executes the adaptive large neighbourhood search from initial until
// stopc reports completion, and returns the best state observed together
// with per-iteration statistics.
//
// Each iteration:
//  1. sel chooses a (destroy, repair) operator pair;
//  2. the pair is applied to the current state, producing a candidate;
//  3. the outcome is classified: a new best, better than current, accepted
//     by acc, or rejected;
//  4. current (and possibly best) are replaced, on-best callbacks fire;
//  5. sel.Update learns from the outcome - on every iteration, independent
//     of acceptance;
//  6. the iteration is recorded;
//  7. stopc is queried; the loop terminates when it reports true.
//
// The extra argument is forwarded verbatim to every operator and callback
// invocation; use it for shared problem data such as a neighbourhood index.
//
// Contracts:
//   - At least one destroy and one repair operator must be registered.
//   - sel must be constructed for exactly the registered operator counts.
//   - The loop body runs before the first stopping check, so at least one
//     iteration executes.
//
// Errors: the configuration sentinels from types.go before iteration one;
// afterwards, any error returned by an operator or callback aborts the run
// as-is, with no partial Result.
func (a *ALNS) Run(
	initial State,
	sel SelectionScheme,
	acc AcceptanceCriterion,
	stopc StoppingCriterion,
	extra any,
) (Result, error) {
	if err := a.validateRun(initial, sel, acc, stopc); err != nil {
		return Result{}, err
	}

	var (
		start   = time.Now()
		stats   = newStatistics()
		best    = initial
		curr    = initial
		bestObj = initial.Objective()
		currObj = bestObj
	)

	for {
		dIdx, rIdx := sel.Select(a.rng, best, curr)
		if dIdx < 0 || dIdx >= len(a.destroy) || rIdx < 0 || rIdx >= len(a.repair) {
			return Result{}, ErrSelectionOutOfRange
		}

		// Ruin, then recreate. Operator errors are programming defects and
		// abort the run without a partial Result.
		cand, err := a.applyPair(curr, dIdx, rIdx, extra)
		if err != nil {
			return Result{}, err
		}
		candObj := cand.Objective()

		// Classification order is fixed: best and better are decided purely by
		// objectives; the acceptance criterion only breaks the remaining ties.
		var outcome Outcome
		switch {
		case candObj < bestObj:
			outcome = OutcomeBest
		case candObj < currObj:
			outcome = OutcomeBetter
		case acc.Accept(a.rng, best, curr, cand):
			outcome = OutcomeAccepted
		default:
			outcome = OutcomeRejected
		}

		if outcome != OutcomeRejected {
			curr, currObj = cand, candObj
		}
		if outcome == OutcomeBest {
			best, bestObj = cand, candObj
			for _, cb := range a.onBest {
				if err = cb(best, a.rng, extra); err != nil {
					return Result{}, err
				}
			}
		}

		sel.Update(cand, dIdx, rIdx, outcome)

		stats.record(
			IterationRecord{
				Objective: currObj,
				Elapsed:   time.Since(start),
				Destroy:   dIdx,
				Repair:    rIdx,
				Outcome:   outcome,
			},
			a.destroy[dIdx].name,
			a.repair[rIdx].name,
		)

		if stopc.IsFinished(a.rng, best, curr) {
			break
		}
	}

	return Result{Best: best, BestObjective: bestObj, Statistics: stats}, nil
}

// applyPair applies the chosen destroy and repair operators in sequence,
// forwarding the shared RNG and the user context verbatim to both.
func (a *ALNS) applyPair(curr State, dIdx, rIdx int, extra any) (State, error) {
	destroyed, err := a.destroy[dIdx].op(curr, a.rng, extra)
	if err != nil {
		return nil, err
	}
	if destroyed == nil {
		return nil, ErrNilCandidate
	}

	cand, err := a.repair[rIdx].op(destroyed, a.rng, extra)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, ErrNilCandidate
	}

	return cand, nil
}

// validateRun enforces Run's preconditions before any iteration executes.
func (a *ALNS) validateRun(
	initial State,
	sel SelectionScheme,
	acc AcceptanceCriterion,
	stopc StoppingCriterion,
) error {
	if initial == nil {
		return ErrNilInitialState
	}
	if sel == nil {
		return ErrNilSelectionScheme
	}
	if acc == nil {
		return ErrNilAcceptanceCriterion
	}
	if stopc == nil {
		return ErrNilStoppingCriterion
	}
	if len(a.destroy) == 0 {
		return ErrNoDestroyOperators
	}
	if len(a.repair) == 0 {
		return ErrNoRepairOperators
	}
	if sel.NumDestroy() != len(a.destroy) || sel.NumRepair() != len(a.repair) {
		return ErrShapeMismatch
	}

	return nil
}

// appendOperator validates and appends a named operator to a registry.
func appendOperator(reg []namedOperator, op Operator, name string) ([]namedOperator, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if name == "" {
		return nil, ErrEmptyOperatorName
	}

	var i int
	for i = range reg {
		if reg[i].name == name {
			return nil, ErrDuplicateOperator
		}
	}

	return append(reg, namedOperator{name: name, op: op}), nil
}

// operatorNames copies a registry's names, preserving registration order.
func operatorNames(reg []namedOperator) []string {
	names := make([]string, len(reg))

	var i int
	for i = range reg {
		names[i] = reg[i].name
	}

	return names
}
