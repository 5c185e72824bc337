// Package gf2 provides dense linear algebra over GF(2), the two-element
// field, sized for stabilizer-code workloads (hundreds of columns).
//
// What lives here:
//   - Matrix: a dense row-major bit matrix stored as [][]uint8 (0/1 entries)
//   - RowReduce: in-place reduced row-echelon form with pivot reporting
//   - Rank, InRowSpan, Solve, NullspaceBasis: the solvers the stabilizer
//     push, erasure recoverability check and coset decoder are built on
//
// Design:
//   - Determinism: every routine is a pure function of its inputs; no RNG,
//     no global state, no panics on user input.
//   - Representation: uint8 entries rather than packed words. The codes this
//     repository targets stay well below the size where word-packing pays
//     for its complexity, and byte rows keep the elimination loops readable.
//
// Performance:
//   - RowReduce: O(r·c·min(r,c)) time, O(1) extra memory (in-place).
//   - Solve/InRowSpan/NullspaceBasis: one reduction plus O(r·c) bookkeeping.
package gf2
