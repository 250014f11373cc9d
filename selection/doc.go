// Package selection provides the operator-selection schemes for the ALNS
// engine: the subsystem that chooses which destroy/repair operator pair to
// apply each iteration, and that learns from the iteration's outcome.
//
// Overview:
//
//   - RandomSelect            — uniform over the allowed operator pairs; no learning.
//   - RouletteWheel           — weight-proportional sampling with a per-iteration
//     convex weight update (Røpke & Pisinger's classic adaptive weights).
//   - SegmentedRouletteWheel  — the same update law, but scores accumulate over a
//     fixed-length segment and fold into the weights once per segment boundary.
//   - AlphaUCB                — an upper-confidence-bound bandit over operator
//     pairs (Hendel 2022).
//   - MABSelector             — delegates selection and learning to an external
//     bandit Policy; EpsilonGreedy ships as a reference implementation.
//
// Every scheme is constructed for an exact (numDestroy, numRepair) shape and
// optionally a coupling matrix restricting which pairs may be selected
// (WithCoupling). The orchestrator verifies the shape against its registries
// before the first iteration.
//
// Outcome scores:
//
//   - Schemes that learn take a Scores vector mapping each outcome tier
//     (best, better, accepted, rejected) to a non-negative reward. The exact
//     magnitudes are tuning parameters; DefaultScores returns 25/5/1/0.
//
// Determinism:
//
//   - All sampling draws from the *rand.Rand passed into Select; schemes hold
//     no random source of their own, so a run is reproducible end-to-end from
//     the orchestrator's seed.
//
// Error handling (sentinel errors):
//
//   - ErrNoOperators:      non-positive operator counts.
//   - ErrCouplingShape:    coupling matrix does not match the operator counts.
//   - ErrUncoupledDestroy: a destroy operator with no allowed repair operator.
//   - ErrNegativeScore:    a negative outcome score.
//   - ErrDecayOutOfRange:  decay outside [0, 1).
//   - ErrSegmentLength:    segment length below 1.
//   - ErrAlphaOutOfRange:  alpha outside [0, 1].
//   - ErrEpsilonOutOfRange: epsilon outside [0, 1].
//   - ErrNilPolicy:        nil bandit policy.
//
// Lifecycle: a scheme instance is stateful and single-use per run; reusing
// one across two runs carries its learned weights into the second run.
package selection
