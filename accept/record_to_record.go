package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RecordToRecordTravel accepts a candidate iff its objective lies within a
// threshold of the current solution's objective. The threshold decays from a
// start value toward an end value over a configured number of calls, after
// which it stays clamped at the end value (Dueck & Scheuer 1990).
type RecordToRecordTravel struct {
	start     float64
	end       float64
	step      float64
	method    Method
	threshold float64
}

var _ alns.AcceptanceCriterion = (*RecordToRecordTravel)(nil)

// NewRecordToRecordTravel returns a RecordToRecordTravel whose threshold
// decays from start to end over calls invocations, linearly or geometrically.
// The per-call step is derived from the three values:
//
//	Linear:    step = (start − end) / calls
//	Geometric: step = (end / start)^(1/calls)
//
// Contracts: 0 ≤ end ≤ start; calls ≥ 1; the geometric schedule additionally
// requires both thresholds to be positive.
//
// Errors: ErrInvalidThreshold, ErrThresholdOrder, ErrGeometricThreshold,
// ErrInvalidCalls, ErrInvalidMethod.
func NewRecordToRecordTravel(start, end float64, calls int, method Method) (*RecordToRecordTravel, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if start < 0 || end < 0 {
		return nil, ErrInvalidThreshold
	}
	if start < end {
		return nil, ErrThresholdOrder
	}
	if calls < 1 {
		return nil, ErrInvalidCalls
	}

	var step float64
	if method == Geometric {
		if start <= 0 || end <= 0 {
			return nil, ErrGeometricThreshold
		}
		step = math.Pow(end/start, 1/float64(calls))
	} else {
		step = (start - end) / float64(calls)
	}

	return &RecordToRecordTravel{
		start:     start,
		end:       end,
		step:      step,
		method:    method,
		threshold: start,
	}, nil
}

// Threshold returns the current threshold value.
func (t *RecordToRecordTravel) Threshold() float64 { return t.threshold }

// Accept reports cand.Objective() ≤ curr.Objective() + threshold, then
// decays the threshold — on every call, whatever the verdict.
func (t *RecordToRecordTravel) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	res := cand.Objective() <= curr.Objective()+t.threshold

	t.threshold = math.Max(t.end, next(t.threshold, t.step, t.method))

	return res
}
