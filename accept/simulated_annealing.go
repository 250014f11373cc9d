package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// SimulatedAnnealing applies the Metropolis rule: a candidate no worse than
// the current solution is always accepted, a worse one with probability
//
//	exp(−(cand − curr) / T),
//
// where T is the cooling temperature. T decays on every call, additively
// (Linear) or multiplicatively (Geometric), floored at the end temperature so
// the exponent never divides by zero (Kirkpatrick et al. 1983; the ALNS
// parameterisation follows Santini et al. 2018).
//
// One uniform draw is consumed on every call, improving candidates included,
// which keeps the shared random stream's advance independent of the verdict.
type SimulatedAnnealing struct {
	start       float64
	end         float64
	step        float64
	method      Method
	temperature float64
}

var _ alns.AcceptanceCriterion = (*SimulatedAnnealing)(nil)

// NewSimulatedAnnealing returns a SimulatedAnnealing criterion cooling from
// start to end with the given per-call step.
//
// Contracts: start ≥ end > 0; step ≥ 0; a Geometric step must not exceed 1.
//
// Errors: ErrInvalidTemperature, ErrTemperatureOrder, ErrInvalidStep,
// ErrGeometricStep, ErrInvalidMethod.
func NewSimulatedAnnealing(start, end, step float64, method Method) (*SimulatedAnnealing, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if start <= 0 || end <= 0 {
		return nil, ErrInvalidTemperature
	}
	if start < end {
		return nil, ErrTemperatureOrder
	}
	if step < 0 {
		return nil, ErrInvalidStep
	}
	if method == Geometric && step > 1 {
		return nil, ErrGeometricStep
	}

	return &SimulatedAnnealing{
		start:       start,
		end:         end,
		step:        step,
		method:      method,
		temperature: start,
	}, nil
}

// AutofitSimulatedAnnealing derives the cooling schedule from intent instead
// of raw constants: the start temperature is chosen so that a candidate
// worse·100% worse than the initial solution is accepted with probability
// acceptProb on the first call, and the step so that the temperature reaches
// 1 within iters calls. End temperature is fixed at 1. The procedure is due
// to Ropke and Pisinger (2006).
//
//	start = −worse · initObj / ln(acceptProb)
//	Linear:    step = (start − 1) / iters
//	Geometric: step = (1 / start)^(1/iters)
//
// Contracts: worse ∈ [0, 1]; acceptProb ∈ (0, 1); iters ≥ 1. A zero initObj
// or worse yields a zero start temperature, reported as ErrInvalidTemperature.
//
// Errors: ErrInvalidWorse, ErrInvalidAcceptProb, ErrInvalidIterations,
// ErrInvalidMethod, plus everything NewSimulatedAnnealing reports.
func AutofitSimulatedAnnealing(
	initObj, worse, acceptProb float64,
	iters int,
	method Method,
) (*SimulatedAnnealing, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if worse < 0 || worse > 1 {
		return nil, ErrInvalidWorse
	}
	if acceptProb <= 0 || acceptProb >= 1 {
		return nil, ErrInvalidAcceptProb
	}
	if iters < 1 {
		return nil, ErrInvalidIterations
	}

	start := -worse * initObj / math.Log(acceptProb)

	var step float64
	if method == Geometric {
		step = math.Pow(1/start, 1/float64(iters))
	} else {
		step = (start - 1) / float64(iters)
	}

	return NewSimulatedAnnealing(start, 1, step, method)
}

// Temperature returns the current temperature.
func (t *SimulatedAnnealing) Temperature() float64 { return t.temperature }

// Accept applies the Metropolis rule at the current temperature, then cools
// — on every call, whatever the verdict.
func (t *SimulatedAnnealing) Accept(rng *rand.Rand, best, curr, cand alns.State) bool {
	prob := math.Exp((curr.Objective() - cand.Objective()) / t.temperature)

	t.temperature = math.Max(t.end, next(t.temperature, t.step, t.method))

	// For an improving candidate prob ≥ 1, so the draw always passes.
	return prob >= rng.Float64()
}
