package qec

import "github.com/lo568los/HQEC-Tesseract/gf2"

// StabilizerSet is an ordered collection of stabilizer generators.
// Generators are expected to commute pairwise; Validate checks this.
type StabilizerSet []Pauli

// LogicalPair holds the X̄ and Z̄ generators protecting one logical qubit.
type LogicalPair struct {
	X Pauli
	Z Pauli
}

// NumQubits returns the physical qubit count, or 0 for an empty set.
func (s StabilizerSet) NumQubits() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Len()
}

// Validate checks that all generators share one qubit count and commute
// pairwise. Returns ErrLengthMismatch on ragged generators.
// Complexity: O(g²·n).
func (s StabilizerSet) Validate() error {
	n := s.NumQubits()
	for _, g := range s {
		if g.Len() != n {
			return ErrLengthMismatch
		}
	}
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if !s[i].Commutes(s[j]) {
				return ErrNonCommuting
			}
		}
	}
	return nil
}

// Syndrome returns the commutation pattern of err against each generator:
// bit i is 1 iff err anticommutes with s[i].
// Complexity: O(g·n).
func (s StabilizerSet) Syndrome(err Pauli) []uint8 {
	syn := make([]uint8, len(s))
	for i, g := range s {
		if !g.Commutes(err) {
			syn[i] = 1
		}
	}
	return syn
}

// SymplecticMatrix stacks the generators as rows of a 2n-column GF(2)
// matrix, X part first. The matrix shares no storage with s.
func (s StabilizerSet) SymplecticMatrix() gf2.Matrix {
	m := make(gf2.Matrix, len(s))
	for i, g := range s {
		m[i] = g.Symplectic()
	}
	return m
}

// Contains reports whether p lies in the group generated by s (up to phase).
// Complexity: one GF(2) reduction of the generator matrix.
func (s StabilizerSet) Contains(p Pauli) (bool, error) {
	if p.Len() != s.NumQubits() {
		return false, ErrLengthMismatch
	}
	return gf2.InRowSpan(s.SymplecticMatrix(), p.Symplectic())
}

// CheckLogicals guards the degenerate-code contract shared by every decoder
// backend: with no logical operators a recovery rate is undefined.
func CheckLogicals(pairs []LogicalPair) error {
	if len(pairs) == 0 {
		return ErrDegenerateCode
	}
	return nil
}
