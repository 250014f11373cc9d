// SPDX-License-Identifier: MIT

// Package accept: shared types, sentinel errors, and the decay-schedule
// helper used by the threshold-style acceptance criteria.
package accept

import "errors"

// Sentinel errors returned by the acceptance-criterion constructors.
var (
	// ErrInvalidTemperature indicates a non-positive start or end temperature.
	ErrInvalidTemperature = errors.New("accept: temperatures must be strictly positive")

	// ErrTemperatureOrder indicates a start temperature below the end temperature.
	ErrTemperatureOrder = errors.New("accept: start temperature must not be below end temperature")

	// ErrInvalidThreshold indicates a negative threshold parameter.
	ErrInvalidThreshold = errors.New("accept: thresholds must be non-negative")

	// ErrThresholdOrder indicates a start threshold below the end threshold.
	ErrThresholdOrder = errors.New("accept: start threshold must not be below end threshold")

	// ErrGeometricThreshold indicates a geometric schedule over a zero
	// threshold, which cannot decay anywhere.
	ErrGeometricThreshold = errors.New("accept: geometric schedule requires positive thresholds")

	// ErrInvalidStep indicates a negative schedule step.
	ErrInvalidStep = errors.New("accept: step must be non-negative")

	// ErrGeometricStep indicates a geometric step above 1, which would grow
	// the schedule instead of decaying it.
	ErrGeometricStep = errors.New("accept: geometric step must not exceed 1")

	// ErrInvalidMethod indicates an unknown updating method.
	ErrInvalidMethod = errors.New("accept: unknown updating method")

	// ErrInvalidCalls indicates a non-positive decay horizon.
	ErrInvalidCalls = errors.New("accept: number of calls must be at least 1")

	// ErrInvalidAlpha indicates a water-level factor not exceeding 1.
	ErrInvalidAlpha = errors.New("accept: alpha must exceed 1")

	// ErrInvalidBeta indicates a water-level decay factor outside (0, 1).
	ErrInvalidBeta = errors.New("accept: beta must lie in (0, 1)")

	// ErrInvalidRate indicates a non-positive water-level rate.
	ErrInvalidRate = errors.New("accept: rate must be positive")

	// ErrInvalidLength indicates a late-acceptance history shorter than 1.
	ErrInvalidLength = errors.New("accept: history length must be at least 1")

	// ErrInvalidWindow indicates a moving-average window shorter than 1.
	ErrInvalidWindow = errors.New("accept: window must be at least 1")

	// ErrInvalidProbability indicates acceptance probabilities violating
	// 0 ≤ end ≤ start ≤ 1.
	ErrInvalidProbability = errors.New("accept: probabilities must satisfy 0 <= end <= start <= 1")

	// ErrInvalidWorse indicates an autofit worse-fraction outside [0, 1].
	ErrInvalidWorse = errors.New("accept: worse must lie in [0, 1]")

	// ErrInvalidAcceptProb indicates an autofit target probability outside (0, 1).
	ErrInvalidAcceptProb = errors.New("accept: accept probability must lie in (0, 1)")

	// ErrInvalidIterations indicates a non-positive autofit iteration budget.
	ErrInvalidIterations = errors.New("accept: number of iterations must be positive")
)

// Method selects how a criterion's threshold-like parameter (temperature,
// threshold, probability) decays on each call.
//
//	Linear    — value ← value − step
//	Geometric — value ← value · step
type Method int

const (
	// Linear subtracts the step on every call.
	Linear Method = iota

	// Geometric multiplies by the step on every call.
	Geometric
)

// validateMethod reports ErrInvalidMethod for values outside the enum.
func validateMethod(m Method) error {
	if m != Linear && m != Geometric {
		return ErrInvalidMethod
	}
	return nil
}

// next returns the schedule value after one decay step. Clamping to the
// schedule's floor is the caller's responsibility.
func next(current, step float64, method Method) float64 {
	if method == Geometric {
		return current * step
	}
	return current - step
}
