// Package stop_test exercises the stopping criteria call by call, including
// their interplay with the search loop's check-at-end contract.
package stop_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/stop"
)

// obj is a minimal test state whose value is its objective.
type obj float64

func (o obj) Objective() float64 { return float64(o) }

func newRNG(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// -----------------------------------------------------------------------------
// MaxIterations
// -----------------------------------------------------------------------------

func TestMaxIterations_Validation(t *testing.T) {
	_, err := stop.NewMaxIterations(-1)
	require.ErrorIs(t, err, stop.ErrNegativeIterations)
}

func TestMaxIterations_CallCount(t *testing.T) {
	rng := newRNG(1)
	crit, err := stop.NewMaxIterations(3)
	require.NoError(t, err)
	require.Equal(t, 3, crit.Budget())

	require.False(t, crit.IsFinished(rng, obj(0), obj(0)))
	require.False(t, crit.IsFinished(rng, obj(0), obj(0)))
	require.True(t, crit.IsFinished(rng, obj(0), obj(0)))
	// Stays finished.
	require.True(t, crit.IsFinished(rng, obj(0), obj(0)))
}

func TestMaxIterations_ZeroBudget(t *testing.T) {
	rng := newRNG(2)
	crit, err := stop.NewMaxIterations(0)
	require.NoError(t, err)

	// The loop body runs before the first check, so 0 means one iteration.
	require.True(t, crit.IsFinished(rng, obj(0), obj(0)))
}

// -----------------------------------------------------------------------------
// MaxRuntime
// -----------------------------------------------------------------------------

func TestMaxRuntime_Validation(t *testing.T) {
	_, err := stop.NewMaxRuntime(-time.Second)
	require.ErrorIs(t, err, stop.ErrNegativeRuntime)
}

func TestMaxRuntime_ZeroBudgetStopsImmediately(t *testing.T) {
	rng := newRNG(3)
	crit, err := stop.NewMaxRuntime(0)
	require.NoError(t, err)

	require.True(t, crit.IsFinished(rng, obj(0), obj(0)))
}

func TestMaxRuntime_ClockStartsOnFirstCall(t *testing.T) {
	rng := newRNG(4)

	// The clock must not start at construction time.
	crit, err := stop.NewMaxRuntime(20 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 20*time.Millisecond, crit.Budget())
	time.Sleep(25 * time.Millisecond)

	require.False(t, crit.IsFinished(rng, obj(0), obj(0)))
	time.Sleep(25 * time.Millisecond)
	require.True(t, crit.IsFinished(rng, obj(0), obj(0)))
}

// -----------------------------------------------------------------------------
// NoImprovement
// -----------------------------------------------------------------------------

func TestNoImprovement_Validation(t *testing.T) {
	_, err := stop.NewNoImprovement(-1)
	require.ErrorIs(t, err, stop.ErrNegativeIterations)
}

func TestNoImprovement_CountsAndResets(t *testing.T) {
	rng := newRNG(5)
	crit, err := stop.NewNoImprovement(2)
	require.NoError(t, err)
	require.Equal(t, 2, crit.Patience())

	// First call establishes the baseline.
	require.False(t, crit.IsFinished(rng, obj(10), obj(10)))
	// Two stagnant calls exhaust a patience of 2...
	require.False(t, crit.IsFinished(rng, obj(10), obj(10)))
	// ...unless an improvement lands first.
	require.False(t, crit.IsFinished(rng, obj(9), obj(9)))
	require.False(t, crit.IsFinished(rng, obj(9), obj(10)))
	require.True(t, crit.IsFinished(rng, obj(9), obj(10)))
}

func TestNoImprovement_RequiresStrictImprovement(t *testing.T) {
	rng := newRNG(6)
	crit, err := stop.NewNoImprovement(1)
	require.NoError(t, err)

	require.False(t, crit.IsFinished(rng, obj(10), obj(10)))
	// Equal best is not an improvement.
	require.True(t, crit.IsFinished(rng, obj(10), obj(10)))
}

func TestNoImprovement_ZeroPatience(t *testing.T) {
	rng := newRNG(7)
	crit, err := stop.NewNoImprovement(0)
	require.NoError(t, err)

	// The first call is the baseline reset and reports false; the search
	// therefore always completes its first iteration.
	require.False(t, crit.IsFinished(rng, obj(10), obj(10)))
	require.True(t, crit.IsFinished(rng, obj(10), obj(10)))
}

// -----------------------------------------------------------------------------
// Interface compliance
// -----------------------------------------------------------------------------

func TestCriteriaSatisfyStoppingCriterion(t *testing.T) {
	var crits []alns.StoppingCriterion

	mi, err := stop.NewMaxIterations(1)
	require.NoError(t, err)
	mr, err := stop.NewMaxRuntime(time.Second)
	require.NoError(t, err)
	ni, err := stop.NewNoImprovement(1)
	require.NoError(t, err)

	crits = append(crits, mi, mr, ni)
	require.Len(t, crits, 3)
}
