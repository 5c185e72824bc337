package qec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lo568los/HQEC-Tesseract/qec"
)

// TestParsePauli_RoundTrip verifies literal -> Pauli -> literal identity.
func TestParsePauli_RoundTrip(t *testing.T) {
	for _, lit := range []string{"IXYZ", "XZZXI", "YYYYY", "I"} {
		p, err := qec.ParsePauli(lit)
		require.NoError(t, err, "literal %q must parse", lit)
		assert.Equal(t, lit, p.String(), "round trip for %q", lit)
	}
}

// TestParsePauli_BadLiteral ensures invalid characters error.
func TestParsePauli_BadLiteral(t *testing.T) {
	_, err := qec.ParsePauli("XZA")
	assert.ErrorIs(t, err, qec.ErrBadPauliLiteral)
}

// TestPauli_Commutes covers the canonical commutation cases: X and Z on
// the same qubit anticommute, on distinct qubits they commute, and two
// overlapping anticommuting pairs cancel.
func TestPauli_Commutes(t *testing.T) {
	x0, _ := qec.ParsePauli("XI")
	z0, _ := qec.ParsePauli("ZI")
	z1, _ := qec.ParsePauli("IZ")
	xx, _ := qec.ParsePauli("XX")
	zz, _ := qec.ParsePauli("ZZ")

	assert.False(t, x0.Commutes(z0), "X and Z on one qubit anticommute")
	assert.True(t, x0.Commutes(z1), "disjoint supports commute")
	assert.True(t, xx.Commutes(zz), "two anticommuting overlaps cancel mod 2")
}

// TestPauli_MulWeight checks the phase-free product and weight counting.
func TestPauli_MulWeight(t *testing.T) {
	a, _ := qec.ParsePauli("XXI")
	b, _ := qec.ParsePauli("IZZ")

	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "XYZ", p.String(), "X·Z = Y on the overlap qubit")
	assert.Equal(t, 3, p.Weight())

	_, err = a.Mul(qec.NewPauli(2))
	assert.ErrorIs(t, err, qec.ErrLengthMismatch)
}

// TestStabilizerSet_Syndrome verifies the five-qubit code flags a single
// X error on the generators it anticommutes with.
func TestStabilizerSet_Syndrome(t *testing.T) {
	stabs := fiveQubit(t)
	errOp, _ := qec.ParsePauli("IXIII")

	syn := stabs.Syndrome(errOp)
	assert.Equal(t, []uint8{1, 0, 0, 0}, syn, "X on qubit 1 anticommutes with the first generator only")
}

// TestStabilizerSet_Contains checks group membership: products of
// generators are in, logicals are out.
func TestStabilizerSet_Contains(t *testing.T) {
	stabs := fiveQubit(t)

	prod, err := stabs[0].Mul(stabs[1])
	require.NoError(t, err)
	in, err := stabs.Contains(prod)
	require.NoError(t, err)
	assert.True(t, in, "generator products belong to the group")

	logicalX, _ := qec.ParsePauli("XXXXX")
	in, err = stabs.Contains(logicalX)
	require.NoError(t, err)
	assert.False(t, in, "the logical X̄ is not a stabilizer")
}

// TestStabilizerSet_Validate accepts the five-qubit generators and rejects
// a non-commuting set.
func TestStabilizerSet_Validate(t *testing.T) {
	assert.NoError(t, fiveQubit(t).Validate())

	x0, _ := qec.ParsePauli("XI")
	z0, _ := qec.ParsePauli("ZI")
	bad := qec.StabilizerSet{x0, z0}
	assert.ErrorIs(t, bad.Validate(), qec.ErrNonCommuting)
}

// TestCheckLogicals enforces the degenerate-code contract.
func TestCheckLogicals(t *testing.T) {
	assert.ErrorIs(t, qec.CheckLogicals(nil), qec.ErrDegenerateCode)

	x, _ := qec.ParsePauli("XXXXX")
	z, _ := qec.ParsePauli("ZZZZZ")
	assert.NoError(t, qec.CheckLogicals([]qec.LogicalPair{{X: x, Z: z}}))
}

// fiveQubit builds the [[5,1,3]] generators used across these tests.
func fiveQubit(t *testing.T) qec.StabilizerSet {
	t.Helper()
	var stabs qec.StabilizerSet
	for _, lit := range []string{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"} {
		p, err := qec.ParsePauli(lit)
		require.NoError(t, err)
		stabs = append(stabs, p)
	}
	return stabs
}
