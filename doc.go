// Package hqec is an in-memory laboratory for holographic quantum
// error-correcting codes — build HaPPY pentagon networks, extract their
// stabilizers, and measure logical success rates under noise.
//
// 🚀 What is HQEC-Tesseract?
//
//	A deterministic, reproducible Monte-Carlo sweep engine that brings together:
//		• GF(2) primitives: binary matrices, RREF, nullspaces, symplectic forms
//		• Pauli algebra: operators, stabilizer sets, syndromes, logical pairs
//		• HaPPY construction: zero-rate & max-rate pentagon codes by radius
//		• Operator pushing: bulk-to-boundary stabilizer/logical extraction
//		• Decoders: erasure recoverability & depolarizing coset likelihood
//		• Sweeps: noise grids, parallel trial dispatch, per-radius results
//		• Reporting: console transcripts & comparison figures with overlays
//
// ✨ Why choose HQEC-Tesseract?
//
//   - Reproducible – one seed fixes every trial stream, at any worker count
//   - Fail-fast – malformed ranges, ratios and codes are rejected up front
//   - Honest statistics – a failed batch is abandoned, never averaged short
//   - Extensible – decoders plug in behind one small Backend interface
//
// Everything is organized under focused subpackages:
//
//	gf2/       — GF(2) matrix algebra: RREF, rank, solve, nullspace
//	qec/       — Pauli operators, stabilizer sets, syndromes
//	happy/     — pentagon-network construction & operator pushing
//	noisegrid/ — inclusive float64 noise grids
//	decoder/   — erasure & depolarizing Monte-Carlo backends
//	sweep/     — configuration, trial dispatcher, sweep orchestrator
//	report/    — console reporter, reference data, comparison plots
//	cmd/hqec/  — the command-line front end
//
// Quick sketch of a sweep:
//
//	cfg := sweep.DefaultConfig()
//	cfg.Radii = []int{0, 1}
//	orch, err := sweep.New(cfg, decoder.ErasureBackend{})
//	if err != nil { ... }
//	results, err := orch.Run(ctx)
//
// Each result carries one ordered (p, rate, stderr) point per grid value,
// ready for report.ComparisonPlot.
package hqec
