// Package alns_test provides runnable, deterministic examples that show the
// full search lifecycle: build an engine, register operators, pick a
// selection scheme, an acceptance criterion and a stopping criterion, then
// read the result.
//
// Design goals:
//   - Deterministic: fixed seeds only → identical output on CI.
//   - Minimal dependencies: a one-dimensional toy objective keeps the
//     examples self-contained and easy to read.
package alns_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/accept"
	"github.com/katalvlaran/alns/selection"
	"github.com/katalvlaran/alns/stop"
)

// point is a toy one-dimensional state minimising x².
type point float64

func (p point) Objective() float64 { return float64(p) * float64(p) }

// Example_minimise walks a point towards zero with two destroy moves
// (a step left and a step right) and an identity repair, steered by a
// roulette wheel and plain hill climbing.
func Example_minimise() {
	// 1) Build the engine with a fixed seed so the run is reproducible.
	engine := alns.New(alns.WithSeed(42))

	// 2) Register operators. Destroy proposes a move; repair completes it.
	step := func(delta float64) alns.Operator {
		return func(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
			return point(float64(s.(point)) + delta), nil
		}
	}
	_ = engine.AddDestroyOperator(step(-1), "step_left")
	_ = engine.AddDestroyOperator(step(+1), "step_right")
	_ = engine.AddRepairOperator(func(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return s, nil
	}, "identity")

	// 3) Assemble the scheme, criterion and stop rule.
	sel, _ := selection.NewRouletteWheel(selection.DefaultScores(), 0.8, 2, 1)
	stopc, _ := stop.NewMaxIterations(100)

	// 4) Run from x=10 and report stable facts about the outcome.
	res, err := engine.Run(point(10), sel, accept.HillClimbing{}, stopc, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("iterations:", res.Statistics.Iterations())
	fmt.Println("improved:", res.BestObjective < point(10).Objective())
	// Output:
	// iterations: 100
	// improved: true
}

// Example_onBest registers an observer that fires each time the incumbent
// best is replaced.
func Example_onBest() {
	engine := alns.New(alns.WithSeed(1))

	_ = engine.AddDestroyOperator(func(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return point(float64(s.(point)) - 1), nil
	}, "step_left")
	_ = engine.AddRepairOperator(func(s alns.State, rng *rand.Rand, extra any) (alns.State, error) {
		return s, nil
	}, "identity")

	var improvements int
	engine.OnBest(func(best alns.State, rng *rand.Rand, extra any) error {
		improvements++
		return nil
	})

	sel, _ := selection.NewRandomSelect(1, 1)
	stopc, _ := stop.NewMaxIterations(3)
	_, _ = engine.Run(point(3), sel, accept.HillClimbing{}, stopc, nil)

	// Each step from x=3 towards x=0 lowers x², so every iteration improves.
	fmt.Println("improvements:", improvements)
	// Output:
	// improvements: 3
}
