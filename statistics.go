// Package alns - per-iteration statistics collection.
package alns

import "time"

// IterationRecord captures one completed iteration of the search loop.
type IterationRecord struct {
	// Objective is the current solution's objective after the iteration.
	Objective float64

	// Elapsed is the wall-clock time since Run started, measured on the
	// monotonic clock when the iteration was recorded.
	Elapsed time.Duration

	// Destroy and Repair are the chosen operator indices into the registries.
	Destroy int
	Repair  int

	// Outcome is the iteration's classification tier.
	Outcome Outcome
}

// OutcomeCounts aggregates how often an operator participated in each outcome
// tier; index with an Outcome value.
type OutcomeCounts [NumOutcomes]int

// Statistics accumulates one record per completed iteration, plus aggregate
// outcome counts per operator name. It is populated by Run and finalized when
// the loop terminates; the returned Result must be treated as read-only.
type Statistics struct {
	records       []IterationRecord
	destroyCounts map[string]OutcomeCounts
	repairCounts  map[string]OutcomeCounts
}

// newStatistics returns an empty Statistics ready for collection.
func newStatistics() *Statistics {
	return &Statistics{
		destroyCounts: make(map[string]OutcomeCounts),
		repairCounts:  make(map[string]OutcomeCounts),
	}
}

// record appends one iteration and updates the per-operator aggregates.
func (s *Statistics) record(rec IterationRecord, destroyName, repairName string) {
	s.records = append(s.records, rec)

	dc := s.destroyCounts[destroyName]
	dc[rec.Outcome]++
	s.destroyCounts[destroyName] = dc

	rc := s.repairCounts[repairName]
	rc[rec.Outcome]++
	s.repairCounts[repairName] = rc
}

// Iterations reports the number of completed iterations; it always equals
// len(Records()).
func (s *Statistics) Iterations() int {
	return len(s.records)
}

// Records returns the per-iteration records in iteration order.
// The slice is the internal backing store; callers must not modify it.
func (s *Statistics) Records() []IterationRecord {
	return s.records
}

// Objectives returns the recorded current-solution objective values in
// iteration order, tracking the search's progress.
func (s *Statistics) Objectives() []float64 {
	out := make([]float64, len(s.records))

	var i int
	for i = range s.records {
		out[i] = s.records[i].Objective
	}

	return out
}

// DestroyCounts returns outcome-tier counts per destroy operator name.
// The map is the internal backing store; callers must not modify it.
func (s *Statistics) DestroyCounts() map[string]OutcomeCounts {
	return s.destroyCounts
}

// RepairCounts returns outcome-tier counts per repair operator name.
// The map is the internal backing store; callers must not modify it.
func (s *Statistics) RepairCounts() map[string]OutcomeCounts {
	return s.repairCounts
}

// TotalElapsed reports the wall-clock duration of the whole run, i.e. the
// elapsed time recorded with the final iteration. Zero before any iteration.
func (s *Statistics) TotalElapsed() time.Duration {
	if len(s.records) == 0 {
		return 0
	}
	return s.records[len(s.records)-1].Elapsed
}
