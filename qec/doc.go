// Package qec implements the binary-symplectic stabilizer formalism the
// decoders and the operator push are written against.
//
// 🚀 What is the symplectic picture?
//
//	An n-qubit Pauli operator (up to phase) is a pair of bit vectors
//	(x, z) ∈ GF(2)ⁿ × GF(2)ⁿ: x marks qubits acted on by X, z by Z, and a
//	qubit with both bits set carries Y. Multiplication is bitwise XOR and
//	two Paulis commute iff their symplectic form ⟨a,b⟩ = a.x·b.z + a.z·b.x
//	vanishes mod 2. Phases are not tracked; none of the recovery-rate
//	statistics in this repository depend on them.
//
// ✨ Key types:
//   - Pauli         — one operator, ParsePauli("XZZXI") / String() round-trip
//   - StabilizerSet — ordered generators of the stabilizer group
//   - LogicalPair   — the X̄/Z̄ generators protecting one logical qubit
//
// ⚙️ Usage:
//
//	s, _ := qec.ParsePauli("XZZXI")
//	e, _ := qec.ParsePauli("IIXII")
//	fmt.Println(s.Commutes(e)) // false: one anticommuting overlap
//
// All operations are deterministic and safe for concurrent readers; Pauli
// values are treated as immutable once built.
package qec
