// Package noisegrid builds the ordered sequences of physical error rates a
// threshold sweep scans.
//
// Two modes:
//   - Range(start, end, step) — arithmetic stepping, both endpoints
//     inclusive, hardened against floating-point accumulation so the final
//     value lands exactly on end whenever step divides the range.
//   - Linspace(start, end, n) — exactly n evenly spaced points (gonum
//     floats.Span underneath), matching the linspace-style scans used for
//     depolarizing-noise figures.
//
// Both modes are deterministic and side-effect free; malformed inputs
// (end < start, step ≤ 0, n < 1) yield ErrInvalidRange.
package noisegrid
