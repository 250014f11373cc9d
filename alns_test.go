// Package alns_test exercises the orchestrator through its public API:
// registration, pre-iteration validation, the iteration loop's outcome
// classification and callback dispatch, statistics collection, determinism,
// and error propagation from user code.
package alns_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/alns"
)

// -----------------------------------------------------------------------------
// Test doubles (minimal, stdlib-only)
// -----------------------------------------------------------------------------

// num is the simplest possible solution state: its own value is its objective.
type num float64

func (n num) Objective() float64 { return float64(n) }

// fixedSelect always proposes the same operator pair and records every
// learning update it receives.
type fixedSelect struct {
	d, r     int
	nd, nr   int
	outcomes []alns.Outcome
}

func (s *fixedSelect) Select(rng *rand.Rand, best, curr alns.State) (int, int) { return s.d, s.r }
func (s *fixedSelect) Update(cand alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	s.outcomes = append(s.outcomes, outcome)
}
func (s *fixedSelect) NumDestroy() int { return s.nd }
func (s *fixedSelect) NumRepair() int  { return s.nr }

// verdict is a canned acceptance criterion.
type verdict bool

func (v verdict) Accept(rng *rand.Rand, best, curr, cand alns.State) bool { return bool(v) }

// afterN stops once IsFinished has been called n times.
type afterN struct{ n, calls int }

func (s *afterN) IsFinished(rng *rand.Rand, best, curr alns.State) bool {
	s.calls++
	return s.calls >= s.n
}

// returnState is an operator that always returns the given state.
func returnState(st alns.State) alns.Operator {
	return func(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return st, nil
	}
}

// identity is a repair operator passing the destroyed state through.
func identity(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
	return s, nil
}

// -----------------------------------------------------------------------------
// Registration
// -----------------------------------------------------------------------------

func TestAddOperator_Validation(t *testing.T) {
	engine := alns.New()

	require.ErrorIs(t, engine.AddDestroyOperator(nil, "d"), alns.ErrNilOperator)
	require.ErrorIs(t, engine.AddDestroyOperator(identity, ""), alns.ErrEmptyOperatorName)

	require.NoError(t, engine.AddDestroyOperator(identity, "d"))
	require.ErrorIs(t, engine.AddDestroyOperator(identity, "d"), alns.ErrDuplicateOperator)

	// The same name is fine in the other registry.
	require.NoError(t, engine.AddRepairOperator(identity, "d"))
	require.ErrorIs(t, engine.AddRepairOperator(identity, "d"), alns.ErrDuplicateOperator)
}

func TestOperatorNames_RegistrationOrder(t *testing.T) {
	engine := alns.New()
	require.NoError(t, engine.AddDestroyOperator(identity, "b"))
	require.NoError(t, engine.AddDestroyOperator(identity, "a"))
	require.NoError(t, engine.AddRepairOperator(identity, "r"))

	require.Equal(t, []string{"b", "a"}, engine.DestroyOperators())
	require.Equal(t, []string{"r"}, engine.RepairOperators())
}

// -----------------------------------------------------------------------------
// Run preconditions
// -----------------------------------------------------------------------------

func TestRun_Preconditions(t *testing.T) {
	sel := &fixedSelect{nd: 1, nr: 1}
	stopc := &afterN{n: 1}

	engine := alns.New()
	_, err := engine.Run(num(1), sel, verdict(true), stopc, nil)
	require.ErrorIs(t, err, alns.ErrNoDestroyOperators)

	require.NoError(t, engine.AddDestroyOperator(identity, "d"))
	_, err = engine.Run(num(1), sel, verdict(true), stopc, nil)
	require.ErrorIs(t, err, alns.ErrNoRepairOperators)

	require.NoError(t, engine.AddRepairOperator(identity, "r"))

	_, err = engine.Run(nil, sel, verdict(true), stopc, nil)
	require.ErrorIs(t, err, alns.ErrNilInitialState)
	_, err = engine.Run(num(1), nil, verdict(true), stopc, nil)
	require.ErrorIs(t, err, alns.ErrNilSelectionScheme)
	_, err = engine.Run(num(1), sel, nil, stopc, nil)
	require.ErrorIs(t, err, alns.ErrNilAcceptanceCriterion)
	_, err = engine.Run(num(1), sel, verdict(true), nil, nil)
	require.ErrorIs(t, err, alns.ErrNilStoppingCriterion)

	wrong := &fixedSelect{nd: 2, nr: 1}
	_, err = engine.Run(num(1), wrong, verdict(true), stopc, nil)
	require.ErrorIs(t, err, alns.ErrShapeMismatch)
}

func TestRun_SelectionOutOfRange(t *testing.T) {
	engine := alns.New()
	require.NoError(t, engine.AddDestroyOperator(identity, "d"))
	require.NoError(t, engine.AddRepairOperator(identity, "r"))

	sel := &fixedSelect{d: 3, r: 0, nd: 1, nr: 1}
	_, err := engine.Run(num(1), sel, verdict(true), &afterN{n: 1}, nil)
	require.ErrorIs(t, err, alns.ErrSelectionOutOfRange)
}

// -----------------------------------------------------------------------------
// Loop semantics
// -----------------------------------------------------------------------------

// RunSuite exercises the classification, replacement, learning-update and
// statistics behavior of a full run.
type RunSuite struct {
	suite.Suite
}

// TestOutcomeClassification drives one iteration per tier by scripting the
// candidate each operator pair produces.
func (s *RunSuite) TestOutcomeClassification() {
	// Candidates, in iteration order: 5 (new best vs initial 10), 7 is worse
	// than current 5 and rejected, 7 again but accepted, 6 better than
	// current 7 yet worse than best 5. The criterion is consulted only for
	// the two non-improving candidates, in that order.
	script := []alns.State{num(5), num(7), num(7), num(6)}
	verdicts := []bool{false, true}

	var iter, asked int
	destroy := func(st alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return script[iter], nil
	}
	acc := acceptFunc(func() bool {
		v := verdicts[asked]
		asked++
		return v
	})

	engine := alns.New()
	s.Require().NoError(engine.AddDestroyOperator(destroy, "scripted"))
	s.Require().NoError(engine.AddRepairOperator(func(st alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		defer func() { iter++ }()
		return st, nil
	}, "identity"))

	sel := &fixedSelect{nd: 1, nr: 1}
	res, err := engine.Run(num(10), sel, acc, &afterN{n: len(script)}, nil)
	s.Require().NoError(err)

	s.Require().Equal(
		[]alns.Outcome{alns.OutcomeBest, alns.OutcomeRejected, alns.OutcomeAccepted, alns.OutcomeBetter},
		sel.outcomes,
	)
	s.Require().Equal(float64(5), res.BestObjective)

	objs := res.Statistics.Objectives()
	s.Require().Equal([]float64{5, 5, 7, 6}, objs)
}

// TestBestInvariant checks best ≤ every recorded current objective.
func (s *RunSuite) TestBestInvariant() {
	rng := rand.New(rand.NewSource(7))
	destroy := func(st alns.State, r *rand.Rand, extra any) (alns.State, error) {
		return num(float64(st.(num)) + float64(r.Intn(11)-5)), nil
	}

	engine := alns.New(alns.WithRNG(rng))
	s.Require().NoError(engine.AddDestroyOperator(destroy, "jitter"))
	s.Require().NoError(engine.AddRepairOperator(identity, "identity"))

	res, err := engine.Run(num(100), &fixedSelect{nd: 1, nr: 1}, verdict(true), &afterN{n: 200}, nil)
	s.Require().NoError(err)

	for _, obj := range res.Statistics.Objectives() {
		s.Require().LessOrEqual(res.BestObjective, obj)
	}
}

// TestCallbacks verifies on-best callbacks fire only on new bests, in
// registration order, with the extra context forwarded verbatim.
func (s *RunSuite) TestCallbacks() {
	script := []alns.State{num(5), num(7), num(3)}

	var iter int
	destroy := func(st alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		defer func() { iter++ }()
		return script[iter], nil
	}

	type shared struct{ tag string }
	ctx := &shared{tag: "payload"}

	engine := alns.New()
	s.Require().NoError(engine.AddDestroyOperator(destroy, "scripted"))
	s.Require().NoError(engine.AddRepairOperator(identity, "identity"))

	var calls []string
	engine.OnBest(func(best alns.State, rng *rand.Rand, extra any) error {
		s.Require().Same(ctx, extra)
		calls = append(calls, "first")
		return nil
	})
	engine.OnBest(func(best alns.State, rng *rand.Rand, extra any) error {
		calls = append(calls, "second")
		return nil
	})

	_, err := engine.Run(num(10), &fixedSelect{nd: 1, nr: 1}, verdict(false), &afterN{n: len(script)}, ctx)
	s.Require().NoError(err)

	// Two new bests (5 and 3), two callbacks each, order preserved.
	s.Require().Equal([]string{"first", "second", "first", "second"}, calls)
}

// TestStatistics verifies record count, per-operator aggregates and name keys.
func (s *RunSuite) TestStatistics() {
	engine := alns.New()
	s.Require().NoError(engine.AddDestroyOperator(returnState(num(50)), "noop"))
	s.Require().NoError(engine.AddRepairOperator(identity, "identity"))

	res, err := engine.Run(num(50), &fixedSelect{nd: 1, nr: 1}, verdict(true), &afterN{n: 25}, nil)
	s.Require().NoError(err)

	stats := res.Statistics
	s.Require().Equal(25, stats.Iterations())
	s.Require().Len(stats.Records(), 25)

	// Every iteration re-proposed the same objective: all accepted.
	counts := stats.DestroyCounts()["noop"]
	s.Require().Equal(25, counts[alns.OutcomeAccepted])
	s.Require().Equal(25, stats.RepairCounts()["identity"][alns.OutcomeAccepted])
	s.Require().GreaterOrEqual(stats.TotalElapsed(), stats.Records()[0].Elapsed)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

// acceptFunc adapts a closure into an acceptance criterion.
type acceptFunc func() bool

func (f acceptFunc) Accept(rng *rand.Rand, best, curr, cand alns.State) bool { return f() }

// -----------------------------------------------------------------------------
// Error propagation
// -----------------------------------------------------------------------------

func TestRun_OperatorErrorAborts(t *testing.T) {
	boom := errors.New("boom")

	engine := alns.New()
	require.NoError(t, engine.AddDestroyOperator(func(st alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return nil, boom
	}, "failing"))
	require.NoError(t, engine.AddRepairOperator(identity, "identity"))

	_, err := engine.Run(num(1), &fixedSelect{nd: 1, nr: 1}, verdict(true), &afterN{n: 10}, nil)
	require.ErrorIs(t, err, boom)
}

func TestRun_CallbackErrorAborts(t *testing.T) {
	boom := errors.New("observer failed")

	engine := alns.New()
	require.NoError(t, engine.AddDestroyOperator(returnState(num(-1)), "improver"))
	require.NoError(t, engine.AddRepairOperator(identity, "identity"))
	engine.OnBest(func(best alns.State, rng *rand.Rand, extra any) error { return boom })

	_, err := engine.Run(num(1), &fixedSelect{nd: 1, nr: 1}, verdict(true), &afterN{n: 10}, nil)
	require.ErrorIs(t, err, boom)
}

func TestRun_NilCandidateDetected(t *testing.T) {
	engine := alns.New()
	require.NoError(t, engine.AddDestroyOperator(func(st alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return nil, nil
	}, "broken"))
	require.NoError(t, engine.AddRepairOperator(identity, "identity"))

	_, err := engine.Run(num(1), &fixedSelect{nd: 1, nr: 1}, verdict(true), &afterN{n: 1}, nil)
	require.ErrorIs(t, err, alns.ErrNilCandidate)
}
