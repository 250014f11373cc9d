// Package alns - functional configuration for the orchestrator.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Reusability: option state is unexported; New consumes ...Option.
//   - Safe by construction: nonsensical values fall back to documented defaults
//     rather than panicking (a nil RNG is replaced by the default seeded stream).
package alns

import "math/rand"

// Option configures an ALNS instance at construction time.
type Option func(*options)

// options collects the orchestrator's construction-time settings.
type options struct {
	rng *rand.Rand
}

// defaultOptions returns the documented zero-value behavior: a deterministic
// RNG seeded with the fixed default seed.
func defaultOptions() options {
	return options{rng: rngFromSeed(0)}
}

// WithRNG sets the shared random source used for every stochastic decision in
// the run: operator selection, acceptance randomness, and the rng argument
// forwarded to operators and callbacks. Passing nil keeps the default stream.
//
// All consumers must share this one instance; instantiating a second source
// anywhere breaks run-to-run reproducibility.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed replaces the shared random source with a deterministic stream
// seeded from seed. Policy: seed==0 ⇒ the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rngFromSeed(seed)
	}
}
