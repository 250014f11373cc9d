// Package alns - the outcome of a completed run.
package alns

// Result holds the outcome of a completed search: the best state observed,
// its objective value, and the accumulated per-iteration statistics.
type Result struct {
	// Best is the best state observed during the entire run.
	Best State

	// BestObjective is Best's objective value, captured when Best was found.
	BestObjective float64

	// Statistics records every completed iteration; treat as read-only.
	Statistics *Statistics
}
