// Package report is the presentation layer of a sweep: human-readable
// progress lines while scanning, optional reference curves loaded from
// externally generated data files, and the comparison figure assembled
// from the per-radius results.
//
// The core sweep knows nothing about any of this — it hands over results
// as plain (p, rate) sequences. Presentation failures degrade gracefully:
// a missing reference file for one radius is reported and skipped, never
// aborting the sweep that produced the results.
package report
