package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lo568los/HQEC-Tesseract/gf2"
)

// TestRowReduce_Identity verifies that an identity matrix is a fixed point
// with one pivot per row.
func TestRowReduce_Identity(t *testing.T) {
	m := gf2.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	pivots, err := gf2.RowReduce(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pivots, "identity pivots on the diagonal")
	assert.Equal(t, gf2.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m, "identity is already reduced")
}

// TestRowReduce_DependentRows verifies dependent rows reduce to zero and
// do not count toward the rank.
func TestRowReduce_DependentRows(t *testing.T) {
	m := gf2.Matrix{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1}, // sum of the first two
	}
	pivots, err := gf2.RowReduce(m)
	require.NoError(t, err)
	assert.Len(t, pivots, 2, "third row is dependent")
	assert.Equal(t, []uint8{0, 0, 0}, m[2], "dependent row eliminated to zero")
}

// TestRowReduce_Ragged ensures ragged input errors with ErrBadShape.
func TestRowReduce_Ragged(t *testing.T) {
	m := gf2.Matrix{{1, 0}, {1}}
	_, err := gf2.RowReduce(m)
	assert.ErrorIs(t, err, gf2.ErrBadShape, "ragged rows must be rejected")
}

// TestRank_DoesNotMutate checks Rank works on a copy.
func TestRank_DoesNotMutate(t *testing.T) {
	m := gf2.Matrix{{1, 1}, {1, 0}}
	orig := m.Clone()
	r, err := gf2.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.Equal(t, orig, m, "Rank must not mutate its input")
}

// TestInRowSpan covers membership and non-membership.
func TestInRowSpan(t *testing.T) {
	m := gf2.Matrix{{1, 1, 0}, {0, 1, 1}}

	in, err := gf2.InRowSpan(m, []uint8{1, 0, 1})
	require.NoError(t, err)
	assert.True(t, in, "sum of both rows is in the span")

	in, err = gf2.InRowSpan(m, []uint8{1, 0, 0})
	require.NoError(t, err)
	assert.False(t, in, "(1,0,0) is independent of the rows")
}

// TestSolve verifies the returned coefficients reproduce the target and
// that unreachable targets report ok=false.
func TestSolve(t *testing.T) {
	a := gf2.Matrix{{1, 1, 0}, {0, 1, 1}, {0, 0, 1}}
	b := []uint8{1, 0, 0}

	coeff, ok, err := gf2.Solve(a, b)
	require.NoError(t, err)
	require.True(t, ok, "target is in the row space")

	got := make([]uint8, 3)
	for i, c := range coeff {
		if c == 1 {
			gf2.AddRow(got, a[i])
		}
	}
	assert.Equal(t, b, got, "coefficients must reproduce the target")

	_, ok, err = gf2.Solve(gf2.Matrix{{1, 1, 0}}, []uint8{0, 1, 0})
	require.NoError(t, err)
	assert.False(t, ok, "unreachable target must report ok=false")
}

// TestSolve_DimensionMismatch checks the b-length guard.
func TestSolve_DimensionMismatch(t *testing.T) {
	_, _, err := gf2.Solve(gf2.Matrix{{1, 0}}, []uint8{1})
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestNullspaceBasis verifies every basis vector annihilates the rows and
// that the dimension matches rows minus rank.
func TestNullspaceBasis(t *testing.T) {
	a := gf2.Matrix{
		{1, 0},
		{0, 1},
		{1, 1}, // dependent
	}
	basis, err := gf2.NullspaceBasis(a)
	require.NoError(t, err)
	require.Len(t, basis, 1, "3 rows, rank 2 => 1-dimensional left-nullspace")

	combo := make([]uint8, 2)
	for i, c := range basis[0] {
		if c == 1 {
			gf2.AddRow(combo, a[i])
		}
	}
	assert.Equal(t, []uint8{0, 0}, combo, "basis vector must annihilate the rows")
}

// TestNullspaceBasis_NoConstraints: with zero columns every coefficient
// vector is valid, so the basis has full dimension.
func TestNullspaceBasis_NoConstraints(t *testing.T) {
	a := gf2.Matrix{{}, {}, {}}
	basis, err := gf2.NullspaceBasis(a)
	require.NoError(t, err)
	assert.Len(t, basis, 3, "no constraints => whole coefficient space")
}

// TestTranspose checks shape and entries.
func TestTranspose(t *testing.T) {
	m := gf2.Matrix{{1, 0, 1}, {0, 1, 1}}
	tr, err := gf2.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, gf2.Matrix{{1, 0}, {0, 1}, {1, 1}}, tr)
}
