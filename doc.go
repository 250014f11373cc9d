// Package alns is an engine for the adaptive large neighbourhood search
// (ALNS) metaheuristic: a ruin-and-recreate iterative search that transforms
// a current solution through a chosen destroy/repair operator pair, evaluates
// the result against an acceptance rule, and adapts operator choice based on
// observed outcomes.
//
// 🚀 What is ALNS?
//
//	Each iteration, the engine picks one destroy and one repair operator,
//	applies them to the current solution, and classifies the candidate:
//		• best     — a new global best
//		• better   — improves the current solution
//		• accepted — worse, but the acceptance criterion let it through
//		• rejected — discarded
//	The classification feeds an adaptive weighting (or bandit) scheme, so
//	operators that perform well are chosen more often.
//
// ✨ Why choose this engine?
//
//   - Pluggable everywhere – selection, acceptance and stopping are small
//     interfaces with one implementation per variant; bring your own operators
//     and solution states
//   - Deterministic – a single shared RNG drives every stochastic decision;
//     same seed ⇒ bit-identical runs
//   - Pure Go – no cgo, no hidden deps
//   - Honest failure semantics – operator errors abort the run as-is; nothing
//     is retried behind your back
//
// Everything is organized under three subpackages plus this core:
//
//	selection/ — RandomSelect, RouletteWheel, SegmentedRouletteWheel, AlphaUCB, MABSelector
//	accept/    — HillClimbing, SimulatedAnnealing, RecordToRecordTravel, GreatDeluge, LAHC, …
//	stop/      — MaxIterations, MaxRuntime, NoImprovement
//
// Quick example (minimise x², stepping x by ±1):
//
//	engine := alns.New(alns.WithSeed(42))
//	_ = engine.AddDestroyOperator(stepDown, "down")
//	_ = engine.AddRepairOperator(identity, "identity")
//
//	sel, _ := selection.NewRandomSelect(1, 1)
//	stopc, _ := stop.NewMaxIterations(100)
//	res, err := engine.Run(initial, sel, accept.HillClimbing{}, stopc, nil)
//	if err != nil {
//	  // a configuration sentinel, or an error from one of your operators
//	}
//	fmt.Println("best objective:", res.BestObjective)
//
// The engine optimises for minimisation; express maximisation problems as
// negated objectives. Solution states are opaque to the engine — the only
// required capability is Objective() float64.
//
// See the package docs of selection, accept and stop for the per-variant
// parameterisations, and examples/ for complete walkthroughs.
package alns
