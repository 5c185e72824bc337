// Package decoder provides the two interchangeable noise/decoder backends
// behind the threshold sweeps, under one narrow contract: given an
// immutable code context, a noise setting and a trial count, return the
// fraction of trials in which the logical information survived.
//
// ✨ Backends:
//   - Erasure      — each trial erases every physical qubit independently
//     with probability p, then decides recoverability exactly: the erasure
//     is fatal iff some combination of the protected logical operators can
//     be cleaned off the intact qubits by stabilizers (a GF(2) rank test).
//     A whole probability range can be evaluated in one call via
//     RecoveryRates; this is an optimization of the same contract.
//   - Depolarizing — each trial samples an X/Y/Z error per qubit with
//     probabilities p·rx, p·ry, p·rz, builds a syndrome-consistent
//     correction from precomputed destabilizers, then picks the most
//     likely logical coset: an exact sum over the stabilizer group for
//     small codes, a greedy likelihood climb otherwise. Success means the
//     residual error lies in the stabilizer group.
//
// ⚙️ Contract points shared by both backends:
//   - sequential trials driven by the caller's *rand.Rand, so a dispatcher
//     can fan trials out across workers with independent streams;
//   - rate ∈ [0,1]; p = 0 yields exactly 1.0;
//   - an empty logical-operator set is a contract violation and returns
//     qec.ErrDegenerateCode — a recovery rate is undefined with nothing
//     to protect.
package decoder
