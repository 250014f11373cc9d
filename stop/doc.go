// Package stop provides the stopping criteria for the ALNS engine: the
// subsystem deciding when the iteration loop terminates.
//
// Overview:
//
//   - MaxIterations — stops after a fixed number of iterations.
//   - MaxRuntime    — stops once a wall-clock budget is spent, measured on
//     the monotonic clock from the first check.
//   - NoImprovement — stops after a run of consecutive iterations without a
//     strict improvement of the best objective.
//
// The orchestrator queries the criterion once at the end of every iteration,
// so a slow operator call can overrun a runtime budget by up to one
// iteration; the budget bounds when the loop stops checking, not how long an
// operator may run. There is no external cancel signal — termination is
// expressed entirely through a criterion returning true.
//
// Lifecycle: criteria are stateful (call counters, lazy clocks) and
// single-use per run; reusing one across two runs carries its state over.
package stop
