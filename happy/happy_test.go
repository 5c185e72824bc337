package happy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lo568los/HQEC-Tesseract/happy"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

// TestSetup_InvalidRadius rejects negative radii for both variants.
func TestSetup_InvalidRadius(t *testing.T) {
	_, err := happy.SetupZeroRate(-1)
	assert.ErrorIs(t, err, happy.ErrInvalidRadius)
	_, err = happy.SetupMaxRate(-1)
	assert.ErrorIs(t, err, happy.ErrInvalidRadius)
}

// TestSetup_Sizes pins the layered pentagon-network growth: tiles
// 1, 6, 26 and boundary qubits 5, 20, 80 for radii 0, 1, 2.
func TestSetup_Sizes(t *testing.T) {
	wantTensors := []int{1, 6, 26}
	wantQubits := []int{5, 20, 80}
	for r := 0; r <= 2; r++ {
		code, err := happy.SetupZeroRate(r)
		require.NoError(t, err)
		assert.Equal(t, wantTensors[r], code.NumTensors(), "tiles at R=%d", r)
		assert.Equal(t, wantQubits[r], code.NumQubits(), "qubits at R=%d", r)
		assert.Equal(t, 1, code.NumLogical(), "zero rate protects one qubit")
	}
}

// TestSetup_MaxRateLogicals: one protected qubit per tile.
func TestSetup_MaxRateLogicals(t *testing.T) {
	code, err := happy.SetupMaxRate(1)
	require.NoError(t, err)
	assert.Equal(t, code.NumTensors(), code.NumLogical())
}

// TestPush_FiveQubitCode: the radius-0 zero-rate code must reproduce the
// [[5,1,3]] code exactly — four stabilizers, logicals XXXXX and ZZZZZ.
func TestPush_FiveQubitCode(t *testing.T) {
	code, err := happy.SetupZeroRate(0)
	require.NoError(t, err)
	res, err := happy.Push(code)
	require.NoError(t, err)

	stabs := happy.ExtractStabilizers(res)
	require.Len(t, stabs, 4, "n-k = 4 generators")
	assert.NoError(t, stabs.Validate(), "generators must commute pairwise")

	zs, xs := happy.ExtractLogicals(res)
	require.Len(t, zs, 1)
	require.Len(t, xs, 1)

	// Representatives are only fixed up to stabilizer multiplication:
	// check logical-class equality against the canonical XXXXX / ZZZZZ.
	wantX, _ := qec.ParsePauli("XXXXX")
	wantZ, _ := qec.ParsePauli("ZZZZZ")
	assertSameClass(t, stabs, xs[0], wantX, "logical X̄")
	assertSameClass(t, stabs, zs[0], wantZ, "logical Z̄")
}

// assertSameClass checks got·want lies in the stabilizer group, i.e. both
// operators act identically on the code space.
func assertSameClass(t *testing.T, stabs qec.StabilizerSet, got, want qec.Pauli, msg string) {
	t.Helper()
	diff, err := got.Mul(want)
	require.NoError(t, err)
	same, err := stabs.Contains(diff)
	require.NoError(t, err)
	assert.True(t, same, msg)
}

// TestPush_RadiusOneAlgebra validates the full stabilizer algebra of the
// radius-1 code: generator count n-k, pairwise commutation, logicals that
// commute with every stabilizer, anticommute within their pair, and are
// not themselves stabilizers.
func TestPush_RadiusOneAlgebra(t *testing.T) {
	code, err := happy.SetupZeroRate(1)
	require.NoError(t, err)
	res, err := happy.Push(code)
	require.NoError(t, err)

	stabs := happy.ExtractStabilizers(res)
	zs, xs := happy.ExtractLogicals(res)
	n := code.NumQubits()

	require.Len(t, stabs, n-1, "n-k independent generators for k=1")
	require.NoError(t, stabs.Validate())

	require.Len(t, xs, 1)
	require.Len(t, zs, 1)
	for _, g := range stabs {
		assert.True(t, g.Commutes(xs[0]), "X̄ must centralize the stabilizers")
		assert.True(t, g.Commutes(zs[0]), "Z̄ must centralize the stabilizers")
	}
	assert.False(t, xs[0].Commutes(zs[0]), "X̄ and Z̄ anticommute")

	inX, err := stabs.Contains(xs[0])
	require.NoError(t, err)
	inZ, err := stabs.Contains(zs[0])
	require.NoError(t, err)
	assert.False(t, inX, "X̄ is not a stabilizer")
	assert.False(t, inZ, "Z̄ is not a stabilizer")
}

// TestPush_MaxRateAlgebra spot-checks the multi-logical case at radius 1:
// k equals the tile count, stabilizers number n-k, and logical pairs are
// symplectically paired (anticommute only with their partner).
func TestPush_MaxRateAlgebra(t *testing.T) {
	code, err := happy.SetupMaxRate(1)
	require.NoError(t, err)
	res, err := happy.Push(code)
	require.NoError(t, err)

	stabs := happy.ExtractStabilizers(res)
	zs, xs := happy.ExtractLogicals(res)
	n := code.NumQubits()
	k := code.NumLogical()

	require.Len(t, xs, k)
	require.Len(t, zs, k)
	require.Len(t, stabs, n-k)
	require.NoError(t, stabs.Validate())

	for i := range xs {
		for j := range zs {
			if i == j {
				assert.False(t, xs[i].Commutes(zs[j]), "X̄_%d anticommutes with its own Z̄", i)
			} else {
				assert.True(t, xs[i].Commutes(zs[j]), "X̄_%d commutes with Z̄_%d", i, j)
			}
		}
		for _, g := range stabs {
			assert.True(t, g.Commutes(xs[i]))
			assert.True(t, g.Commutes(zs[i]))
		}
	}
}

// TestPush_Nil guards the nil-description contract.
func TestPush_Nil(t *testing.T) {
	_, err := happy.Push(nil)
	assert.ErrorIs(t, err, happy.ErrNilTensorList)
}
