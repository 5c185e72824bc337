package qec

import "errors"

var (
	// ErrDegenerateCode indicates a code description with no logical
	// operators: a recovery rate is undefined with nothing to protect.
	ErrDegenerateCode = errors.New("qec: code has no logical operators")

	// ErrLengthMismatch indicates Paulis of different qubit counts were
	// combined.
	ErrLengthMismatch = errors.New("qec: pauli length mismatch")

	// ErrBadPauliLiteral indicates a character outside I, X, Y, Z in a
	// Pauli string literal.
	ErrBadPauliLiteral = errors.New("qec: invalid pauli literal")

	// ErrNonCommuting indicates stabilizer generators that fail to commute
	// pairwise, so they do not generate a valid stabilizer group.
	ErrNonCommuting = errors.New("qec: stabilizer generators do not commute")
)
