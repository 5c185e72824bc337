// SPDX-License-Identifier: MIT
package qec

import "strings"

// Pauli is an n-qubit Pauli operator up to phase, in binary symplectic form.
// X[i]=1 marks an X action on qubit i, Z[i]=1 a Z action; both set means Y.
// Len(X) == Len(Z) always holds for values built through this package.
type Pauli struct {
	X []uint8
	Z []uint8
}

// NewPauli returns the n-qubit identity operator.
// Complexity: O(n).
func NewPauli(n int) Pauli {
	return Pauli{X: make([]uint8, n), Z: make([]uint8, n)}
}

// ParsePauli builds a Pauli from a literal such as "XZZXI".
// Returns ErrBadPauliLiteral on any character outside I, X, Y, Z.
// Complexity: O(n).
func ParsePauli(s string) (Pauli, error) {
	p := NewPauli(len(s))
	for i, c := range s {
		switch c {
		case 'I':
		case 'X':
			p.X[i] = 1
		case 'Y':
			p.X[i] = 1
			p.Z[i] = 1
		case 'Z':
			p.Z[i] = 1
		default:
			return Pauli{}, ErrBadPauliLiteral
		}
	}
	return p, nil
}

// Len returns the number of qubits the operator acts on.
func (p Pauli) Len() int { return len(p.X) }

// Clone returns an independent deep copy of p.
func (p Pauli) Clone() Pauli {
	return Pauli{
		X: append([]uint8(nil), p.X...),
		Z: append([]uint8(nil), p.Z...),
	}
}

// IsIdentity reports whether p acts trivially on every qubit.
// Complexity: O(n).
func (p Pauli) IsIdentity() bool {
	for i := range p.X {
		if p.X[i] == 1 || p.Z[i] == 1 {
			return false
		}
	}
	return true
}

// Weight returns the number of qubits p acts on non-trivially.
// Complexity: O(n).
func (p Pauli) Weight() int {
	w := 0
	for i := range p.X {
		if p.X[i] == 1 || p.Z[i] == 1 {
			w++
		}
	}
	return w
}

// Mul returns the phase-free product p·q (bitwise XOR of symplectic parts).
// Returns ErrLengthMismatch when the operands differ in qubit count.
// Complexity: O(n).
func (p Pauli) Mul(q Pauli) (Pauli, error) {
	if p.Len() != q.Len() {
		return Pauli{}, ErrLengthMismatch
	}
	out := p.Clone()
	for i := range q.X {
		out.X[i] ^= q.X[i]
		out.Z[i] ^= q.Z[i]
	}
	return out, nil
}

// MulInPlace multiplies q into p without allocating. Lengths must match;
// callers inside hot trial loops are expected to have validated once.
func (p Pauli) MulInPlace(q Pauli) {
	for i := range q.X {
		p.X[i] ^= q.X[i]
		p.Z[i] ^= q.Z[i]
	}
}

// Commutes reports whether p and q commute, via the symplectic form
// Σ (p.x·q.z + p.z·q.x) mod 2 == 0.
// Complexity: O(n).
func (p Pauli) Commutes(q Pauli) bool {
	var acc uint8
	for i := range p.X {
		acc ^= p.X[i]&q.Z[i] ^ p.Z[i]&q.X[i]
	}
	return acc == 0
}

// Symplectic returns p as a single 2n-bit vector, X part first.
// The returned slice is fresh; mutating it does not affect p.
func (p Pauli) Symplectic() []uint8 {
	v := make([]uint8, 0, 2*p.Len())
	v = append(v, p.X...)
	return append(v, p.Z...)
}

// FromSymplectic builds a Pauli from a 2n-bit vector, X part first.
func FromSymplectic(v []uint8) Pauli {
	n := len(v) / 2
	return Pauli{
		X: append([]uint8(nil), v[:n]...),
		Z: append([]uint8(nil), v[n:]...),
	}
}

// String renders p as an I/X/Y/Z literal, the inverse of ParsePauli.
func (p Pauli) String() string {
	var b strings.Builder
	b.Grow(p.Len())
	for i := range p.X {
		switch {
		case p.X[i] == 1 && p.Z[i] == 1:
			b.WriteByte('Y')
		case p.X[i] == 1:
			b.WriteByte('X')
		case p.Z[i] == 1:
			b.WriteByte('Z')
		default:
			b.WriteByte('I')
		}
	}
	return b.String()
}
