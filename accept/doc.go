// Package accept provides the acceptance criteria for the ALNS engine: the
// subsystem that decides whether a candidate solution replaces the current
// one. The classic trade-off lives here — strict criteria converge fast but
// stall in local optima, permissive ones escape optima at the cost of slower
// convergence.
//
// Overview:
//
//   - AlwaysAccept             — every candidate is accepted (a random walk).
//   - HillClimbing             — accepts iff the candidate is no worse; stateless.
//   - RecordToRecordTravel     — accepts within a decaying threshold of the current solution.
//   - SimulatedAnnealing       — Metropolis rule with a cooling temperature;
//     AutofitSimulatedAnnealing derives the schedule from a target first-iteration
//     acceptance probability and an iteration budget (Ropke & Pisinger 2006).
//   - GreatDeluge              — accepts below a water level sinking by a constant rate.
//   - NonLinearGreatDeluge     — water level sinks proportionally to its gap to the candidate.
//   - LateAcceptanceHillClimbing — compares against the objective recorded a fixed
//     number of calls ago, held in a ring buffer.
//   - MovingAverageThreshold   — accepts within a fixed margin of the recent candidates' mean.
//   - RandomAccept             — accepts worse candidates with a decaying probability
//     (WorseAccept is the historical alias).
//
// Statefulness:
//
//   - Every stateful criterion advances its schedule (cooling, sinking,
//     buffer rotation, probability decay) on every Accept call, whatever the
//     verdict. Degenerate numeric states are clamped at a configured floor
//     rather than reaching zero, so no criterion can divide by zero.
//
// Determinism:
//
//   - Criteria hold no random source; acceptance randomness draws from the
//     *rand.Rand passed into Accept, the same stream the orchestrator uses
//     everywhere else.
//
// Error handling: constructors validate parameters and return the sentinel
// errors declared in types.go; Accept itself never fails.
//
// Lifecycle: a criterion instance is single-use per run; reusing one across
// two runs carries its cooling/decay state into the second run.
package accept
