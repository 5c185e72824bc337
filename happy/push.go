// SPDX-License-Identifier: MIT
package happy

import (
	"github.com/lo568los/HQEC-Tesseract/gf2"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

// fiveQubitStabilizers are the four cyclic generators of the [[5,1,3]]
// code, the stabilizer group of every tile's planar legs.
var fiveQubitStabilizers = []string{
	"XZZXI",
	"IXZZX",
	"XIXZZ",
	"ZXIXZ",
}

// PushResult holds the generator data produced by contracting a code
// description: the code's stabilizers and its logical X̄/Z̄ generators,
// ordered by logical-qubit index. Derived once per radius and shared
// read-only across all noise points.
type PushResult struct {
	// NumQubits is the physical qubit count n.
	NumQubits int

	// Stabilizers are the independent stabilizer generators on the
	// boundary qubits.
	Stabilizers qec.StabilizerSet

	// LogicalXs and LogicalZs are the boundary representatives of each
	// protected qubit's X̄ and Z̄, indexed by logical qubit.
	LogicalXs []qec.Pauli
	LogicalZs []qec.Pauli
}

// ExtractStabilizers returns the ordered stabilizer generators of a push
// result.
func ExtractStabilizers(r *PushResult) qec.StabilizerSet {
	return r.Stabilizers
}

// ExtractLogicals returns the logical Z then X generator sequences of a
// push result, each ordered by logical-qubit index.
func ExtractLogicals(r *PushResult) (zs, xs []qec.Pauli) {
	return r.LogicalZs, r.LogicalXs
}

// Push contracts the tensor network over GF(2) and returns the code's
// stabilizer and logical generators on the boundary qubits.
//
// Stage 1 (Stack): collect every tile's local generators over all legs.
// Stage 2 (Match): keep the combinations whose action agrees across each
// bond — the left-nullspace of the bond-mismatch matrix.
// Stage 3 (Project): restrict matched elements to open legs, then split
// into stabilizers (trivial on logical legs) and per-qubit logicals
// (single-leg X or Z action, solved for explicitly).
//
// Complexity: polynomial in the tile count; dominated by one nullspace
// over the stacked generator matrix.
func Push(tl *TensorList) (*PushResult, error) {
	if tl == nil {
		return nil, ErrNilTensorList
	}

	totalLegs := tl.numPlanar + tl.numLogical
	gens := stackLocalGenerators(tl, totalLegs)

	// Bond-mismatch matrix: one x and one z constraint column per bond.
	mismatch := make(gf2.Matrix, len(gens))
	for j, g := range gens {
		row := make([]uint8, 2*len(tl.bonds))
		for i, b := range tl.bonds {
			row[2*i] = g[b[0]] ^ g[b[1]]                       // x parts
			row[2*i+1] = g[totalLegs+b[0]] ^ g[totalLegs+b[1]] // z parts
		}
		mismatch[j] = row
	}
	coeffs, err := gf2.NullspaceBasis(mismatch)
	if err != nil {
		return nil, err
	}

	// Project matched combinations onto the open legs.
	n := len(tl.boundary)
	k := tl.numLogical
	open := make(gf2.Matrix, 0, len(coeffs))
	for _, c := range coeffs {
		full := make([]uint8, 2*totalLegs)
		for j, bit := range c {
			if bit == 1 {
				gf2.AddRow(full, gens[j])
			}
		}
		open = append(open, projectOpen(tl, full, totalLegs))
	}
	if _, err = gf2.RowReduce(open); err != nil {
		return nil, err
	}
	open = dropZeroRows(open)

	res := &PushResult{NumQubits: n}

	// Stabilizers: combinations trivial on every logical leg.
	logAction := make(gf2.Matrix, len(open))
	for j, g := range open {
		row := make([]uint8, 2*k)
		for i := 0; i < k; i++ {
			row[2*i] = g[n+i]       // x on logical leg i
			row[2*i+1] = g[2*n+k+i] // z on logical leg i
		}
		logAction[j] = row
	}
	stabCoeffs, err := gf2.NullspaceBasis(logAction)
	if err != nil {
		return nil, err
	}
	stabs := make(gf2.Matrix, 0, len(stabCoeffs))
	for _, c := range stabCoeffs {
		full := make([]uint8, 2*(n+k))
		for j, bit := range c {
			if bit == 1 {
				gf2.AddRow(full, open[j])
			}
		}
		stabs = append(stabs, dropLogicalCols(full, n, k))
	}
	if _, err = gf2.RowReduce(stabs); err != nil {
		return nil, err
	}
	for _, row := range dropZeroRows(stabs) {
		res.Stabilizers = append(res.Stabilizers, qec.FromSymplectic(row))
	}

	// Logicals: solve for single-leg X (then Z) action per protected qubit.
	for i := 0; i < k; i++ {
		for _, part := range []int{0, 1} { // 0 -> X̄, 1 -> Z̄
			target := make([]uint8, 2*k)
			target[2*i+part] = 1
			sel, ok, serr := gf2.Solve(logAction, target)
			if serr != nil {
				return nil, serr
			}
			if !ok {
				return nil, ErrPushInconsistent
			}
			full := make([]uint8, 2*(n+k))
			for j, bit := range sel {
				if bit == 1 {
					gf2.AddRow(full, open[j])
				}
			}
			p := qec.FromSymplectic(dropLogicalCols(full, n, k))
			if part == 0 {
				res.LogicalXs = append(res.LogicalXs, p)
			} else {
				res.LogicalZs = append(res.LogicalZs, p)
			}
		}
	}
	return res, nil
}

// stackLocalGenerators emits every tile's generators as symplectic rows
// over all legs (x parts first): the four five-qubit stabilizers, plus
// either the two logical-leg couplings X_L·XXXXX and Z_L·ZZZZZ, or the
// fixed-leg generator ZZZZZ for tiles without a logical leg.
func stackLocalGenerators(tl *TensorList, totalLegs int) gf2.Matrix {
	var gens gf2.Matrix
	for _, t := range tl.Tensors {
		for _, lit := range fiveQubitStabilizers {
			p, _ := qec.ParsePauli(lit)
			row := make([]uint8, 2*totalLegs)
			for i, leg := range t.Planar {
				row[leg] = p.X[i]
				row[totalLegs+leg] = p.Z[i]
			}
			gens = append(gens, row)
		}
		if t.Logical >= 0 {
			logLeg := tl.numPlanar + t.Logical
			xrow := make([]uint8, 2*totalLegs)
			xrow[logLeg] = 1
			zrow := make([]uint8, 2*totalLegs)
			zrow[totalLegs+logLeg] = 1
			for _, leg := range t.Planar {
				xrow[leg] = 1
				zrow[totalLegs+leg] = 1
			}
			gens = append(gens, xrow, zrow)
		} else {
			zrow := make([]uint8, 2*totalLegs)
			for _, leg := range t.Planar {
				zrow[totalLegs+leg] = 1
			}
			gens = append(gens, zrow)
		}
	}
	return gens
}

// projectOpen restricts a full symplectic row to the open legs: boundary
// planar legs (in qubit order) followed by logical legs.
func projectOpen(tl *TensorList, full []uint8, totalLegs int) []uint8 {
	n := len(tl.boundary)
	k := tl.numLogical
	out := make([]uint8, 2*(n+k))
	for q, leg := range tl.boundary {
		out[q] = full[leg]
		out[n+k+q] = full[totalLegs+leg]
	}
	for i := 0; i < k; i++ {
		out[n+i] = full[tl.numPlanar+i]
		out[n+k+n+i] = full[totalLegs+tl.numPlanar+i]
	}
	return out
}

// dropLogicalCols removes the logical-leg columns from an open-leg row,
// leaving a 2n-bit symplectic vector over the physical qubits.
func dropLogicalCols(row []uint8, n, k int) []uint8 {
	out := make([]uint8, 2*n)
	copy(out[:n], row[:n])
	copy(out[n:], row[n+k:n+k+n])
	return out
}

// dropZeroRows removes all-zero rows left behind by row reduction.
func dropZeroRows(m gf2.Matrix) gf2.Matrix {
	out := m[:0]
	for _, row := range m {
		zero := true
		for _, bit := range row {
			if bit == 1 {
				zero = false
				break
			}
		}
		if !zero {
			out = append(out, row)
		}
	}
	return out
}
