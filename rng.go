// Package alns - RNG seed policy for the orchestrator.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Single stream: every stochastic decision point (operator sampling,
//     acceptance randomness, operator bodies, callbacks) draws from the one
//     *rand.Rand owned by the orchestrator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The loop is strictly sequential,
//     so the shared stream needs no locking. Do not share it across goroutines.
package alns

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
