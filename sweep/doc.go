// Package sweep drives the Monte-Carlo noise-parameter sweeps: for each
// code radius it builds the code once, extracts stabilizer and logical
// generators once, then walks the noise grid in order, fanning the trials
// of every point across workers and aggregating success fractions.
//
// 🚀 Shape of a run:
//
//	Config ─▶ Orchestrator ─▶ per radius: construct → push/extract →
//	  per grid point: Dispatcher ─▶ Backend trials ─▶ (p, rate) →
//	Result per radius, in grid order.
//
// ✨ Guarantees:
//   - trials are partitioned across workers as evenly as possible
//     (remainder to the first workers) over disjoint counts — no trial is
//     lost or duplicated, so the sample size is invariant to Workers;
//   - each worker owns an independent deterministic RNG stream derived by
//     SplitMix64 mixing, and only a success count crosses back — no shared
//     mutable state, no locks;
//   - any worker error aborts the whole batch as ErrBackendFailure; a rate
//     is never computed from fewer trials than requested;
//   - the expensive push/extract step runs once per radius, never per
//     noise point.
//
// Cancellation: the dispatcher blocks until all workers finish; a context
// cancellation propagates through the errgroup. No per-trial timeout is
// imposed — a stalled backend stalls the sweep.
package sweep
