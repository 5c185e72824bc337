// SPDX-License-Identifier: MIT
package decoder

import (
	"context"
	"math"
	"math/rand"

	"github.com/lo568los/HQEC-Tesseract/gf2"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

// DefaultExactGroupLimit bounds n-k for the exact coset-likelihood sum
// (2^(n-k) group elements per class). Above it the backend falls back to
// a greedy likelihood climb on class representatives.
const DefaultExactGroupLimit = 14

// DepolarizingBackend decodes sampled Pauli errors by maximum-likelihood
// coset choice.
//
// Per trial:
//  1. sample an error (X/Y/Z w.p. p·rx, p·ry, p·rz per qubit);
//  2. assemble a syndrome-consistent correction from precomputed
//     destabilizers;
//  3. pick the logical coset with the highest likelihood under the channel
//     — summed exactly over the stabilizer group when n-k is small enough,
//     otherwise estimated from a greedily improved representative;
//  4. success iff error times correction lands in the stabilizer group.
type DepolarizingBackend struct {
	// ExactGroupLimit overrides DefaultExactGroupLimit when positive.
	ExactGroupLimit int
}

// Name implements Backend.
func (DepolarizingBackend) Name() string { return "depolarizing" }

// Rate implements Backend. Contract mirrors ErasureBackend.Rate: rate in
// [0,1], exactly 1.0 at p=0, qec.ErrDegenerateCode on empty logicals.
func (d DepolarizingBackend) Rate(ctx context.Context, batch *Batch, noise Noise, trials int, rng *rand.Rand) (float64, error) {
	dp, ok := noise.(Depolarizing)
	if !ok {
		return 0, ErrNoiseMismatch
	}
	if err := dp.Validate(); err != nil {
		return 0, err
	}
	if trials < 1 {
		return 0, ErrInvalidTrials
	}
	if err := batch.checkLogicals(); err != nil {
		return 0, err
	}

	dec, err := newCosetDecoder(batch, d.limit())
	if err != nil {
		return 0, err
	}

	n := batch.NumQubits()
	successes := 0
	for t := 0; t < trials; t++ {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		errOp := sampleError(n, dp, rng)
		okTrial, derr := dec.decode(errOp, dp)
		if derr != nil {
			return 0, derr
		}
		if okTrial {
			successes++
		}
	}
	return float64(successes) / float64(trials), nil
}

func (d DepolarizingBackend) limit() int {
	if d.ExactGroupLimit > 0 {
		return d.ExactGroupLimit
	}
	return DefaultExactGroupLimit
}

// sampleError draws one Pauli error from the channel.
func sampleError(n int, dp Depolarizing, rng *rand.Rand) qec.Pauli {
	e := qec.NewPauli(n)
	px := dp.Prob * dp.RX
	py := dp.Prob * dp.RY
	pz := dp.Prob * dp.RZ
	for q := 0; q < n; q++ {
		r := rng.Float64()
		switch {
		case r < px:
			e.X[q] = 1
		case r < px+py:
			e.X[q] = 1
			e.Z[q] = 1
		case r < px+py+pz:
			e.Z[q] = 1
		}
	}
	return e
}

// cosetDecoder carries the per-batch precomputation shared by all trials:
// reduced stabilizer generators for membership tests and one destabilizer
// per generator for syndrome-consistent corrections.
type cosetDecoder struct {
	batch *Batch
	limit int

	stabs   []qec.Pauli // independent stabilizer generators
	destabs []qec.Pauli // destabs[i] anticommutes with stabs[i] only
	classes []qec.Pauli // logical coset moves tried during decoding
}

// newCosetDecoder solves for the destabilizers once per batch: destab i is
// any Pauli whose commutation pattern against the stabilizers is the i-th
// unit vector, obtained from the transposed symplectic-dual system.
func newCosetDecoder(batch *Batch, limit int) (*cosetDecoder, error) {
	stabs := batch.Stabilizers
	n := batch.NumQubits()

	// Symplectic-dual rows: commutation of v with stab g is ⟨[z|x](g), v⟩.
	dual := make(gf2.Matrix, len(stabs))
	for i, g := range stabs {
		row := make([]uint8, 2*n)
		copy(row[:n], g.Z)
		copy(row[n:], g.X)
		dual[i] = row
	}
	dualT, err := gf2.Transpose(dual)
	if err != nil {
		return nil, err
	}

	destabs := make([]qec.Pauli, len(stabs))
	for i := range stabs {
		target := make([]uint8, len(stabs))
		target[i] = 1
		v, ok, serr := gf2.Solve(dualT, target)
		if serr != nil {
			return nil, serr
		}
		if !ok {
			// Dependent generator set; dependent rows have no destabilizer.
			return nil, qec.ErrNonCommuting
		}
		destabs[i] = qec.FromSymplectic(v)
	}

	return &cosetDecoder{
		batch:   batch,
		limit:   limit,
		stabs:   stabs,
		destabs: destabs,
		classes: cosetMoves(batch),
	}, nil
}

// cosetMoves lists the logical multiplications considered when choosing a
// coset: identity plus every X̄_i, Z̄_i and X̄_iZ̄_i. For one logical qubit
// this is the full class set {I, X̄, Z̄, Ȳ}; for more it is the
// coordinate-descent move set.
func cosetMoves(batch *Batch) []qec.Pauli {
	n := batch.NumQubits()
	moves := []qec.Pauli{qec.NewPauli(n)}
	for i := range batch.LogicalXs {
		moves = append(moves, batch.LogicalXs[i])
		if i < len(batch.LogicalZs) {
			y, _ := batch.LogicalXs[i].Mul(batch.LogicalZs[i])
			moves = append(moves, batch.LogicalZs[i], y)
		}
	}
	return moves
}

// decode runs steps 2-4 for one sampled error. Returns whether the chosen
// correction preserved the logical state.
func (d *cosetDecoder) decode(errOp qec.Pauli, dp Depolarizing) (bool, error) {
	// Pure-error correction with the observed syndrome.
	syn := qec.StabilizerSet(d.stabs).Syndrome(errOp)
	correction := qec.NewPauli(errOp.Len())
	for i, bit := range syn {
		if bit == 1 {
			correction.MulInPlace(d.destabs[i])
		}
	}

	// Most likely coset: compare candidate corrections correction·move.
	best := correction
	bestScore := math.Inf(-1)
	for _, move := range d.classes {
		cand, err := correction.Mul(move)
		if err != nil {
			return false, err
		}
		score, err := d.classScore(cand, dp)
		if err != nil {
			return false, err
		}
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	// Success iff the residual operator is a stabilizer.
	residual, err := errOp.Mul(best)
	if err != nil {
		return false, err
	}
	return qec.StabilizerSet(d.stabs).Contains(residual)
}

// classScore rates one coset. Exact mode sums the channel probability of
// every element rep·s over the stabilizer group (Gray-code enumeration);
// otherwise the representative is hill-climbed over the generators and
// scored alone. Scores are comparable within one decode call only.
func (d *cosetDecoder) classScore(rep qec.Pauli, dp Depolarizing) (float64, error) {
	if len(d.stabs) <= d.limit {
		return d.exactCosetProb(rep, dp)
	}
	return climb(rep, d.stabs, dp), nil
}

// exactCosetProb enumerates the 2^g stabilizer elements in Gray-code
// order, mutating a single working Pauli, and sums the channel
// probabilities of the whole coset.
func (d *cosetDecoder) exactCosetProb(rep qec.Pauli, dp Depolarizing) (float64, error) {
	cur := rep.Clone()
	total := pauliProb(cur, dp)
	steps := uint(1) << uint(len(d.stabs))
	for i := uint(1); i < steps; i++ {
		// Gray code: flip the generator at the lowest set bit of i.
		flip := 0
		for j := i; j&1 == 0; j >>= 1 {
			flip++
		}
		cur.MulInPlace(d.stabs[flip])
		total += pauliProb(cur, dp)
	}
	return total, nil
}

// climb greedily multiplies generators into rep while the log-likelihood
// improves. Deterministic; at most one improving pass per generator per
// round, bounded rounds.
func climb(rep qec.Pauli, stabs []qec.Pauli, dp Depolarizing) float64 {
	const maxRounds = 32

	cur := rep.Clone()
	curScore := pauliLogProb(cur, dp)
	for round := 0; round < maxRounds; round++ {
		improved := false
		for _, s := range stabs {
			cur.MulInPlace(s)
			if score := pauliLogProb(cur, dp); score > curScore {
				curScore = score
				improved = true
			} else {
				cur.MulInPlace(s) // undo
			}
		}
		if !improved {
			break
		}
	}
	return curScore
}

// pauliProb is the channel probability of one Pauli pattern.
func pauliProb(p qec.Pauli, dp Depolarizing) float64 {
	pi := 1 - dp.Prob
	px := dp.Prob * dp.RX
	py := dp.Prob * dp.RY
	pz := dp.Prob * dp.RZ

	prob := 1.0
	for q := range p.X {
		switch {
		case p.X[q] == 1 && p.Z[q] == 1:
			prob *= py
		case p.X[q] == 1:
			prob *= px
		case p.Z[q] == 1:
			prob *= pz
		default:
			prob *= pi
		}
	}
	return prob
}

// pauliLogProb is log(pauliProb); -Inf entries are legitimate and simply
// lose every comparison.
func pauliLogProb(p qec.Pauli, dp Depolarizing) float64 {
	return math.Log(pauliProb(p, dp))
}
