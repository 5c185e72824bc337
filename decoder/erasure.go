// SPDX-License-Identifier: MIT
package decoder

import (
	"context"
	"math/rand"

	"github.com/lo568los/HQEC-Tesseract/gf2"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

// ErasureBackend decides recoverability under the erasure channel with an
// exact algebraic criterion rather than an actual decoding attempt: an
// erasure pattern E is fatal iff some non-trivial combination of the
// protected logical operators can be multiplied by stabilizers so that
// its whole support lies inside E. Equivalently, the logicals restricted
// to the intact qubits become linearly dependent modulo the restricted
// stabilizers — a single GF(2) rank comparison per trial.
type ErasureBackend struct{}

// Name implements Backend.
func (ErasureBackend) Name() string { return "erasure" }

// Rate implements Backend: `trials` independent erasure patterns at
// probability noise.P(), returning the fraction that remained recoverable.
//
// Contract: rate in [0,1]; p=0 gives exactly 1.0 (nothing erased, all
// generators survive); empty logicals give qec.ErrDegenerateCode.
// Complexity per trial: one reduction of a (g+2k)×2n GF(2) matrix.
func (e ErasureBackend) Rate(ctx context.Context, batch *Batch, noise Noise, trials int, rng *rand.Rand) (float64, error) {
	er, ok := noise.(Erasure)
	if !ok {
		return 0, ErrNoiseMismatch
	}
	if err := er.Validate(); err != nil {
		return 0, err
	}
	if trials < 1 {
		return 0, ErrInvalidTrials
	}
	if err := batch.checkLogicals(); err != nil {
		return 0, err
	}

	n := batch.NumQubits()
	intact := make([]bool, n)
	successes := 0
	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for q := 0; q < n; q++ {
			intact[q] = rng.Float64() >= er.Prob
		}
		rec, err := recoverable(batch, intact)
		if err != nil {
			return 0, err
		}
		if rec {
			successes++
		}
	}
	return float64(successes) / float64(trials), nil
}

// RecoveryRates evaluates a whole ascending probability grid in one call,
// sharing the trial loop machinery across points. Same contract as Rate,
// point by point; this is an optimization, not a different interface.
func (e ErasureBackend) RecoveryRates(ctx context.Context, batch *Batch, grid []float64, trials int, rng *rand.Rand) ([]RatePoint, error) {
	out := make([]RatePoint, 0, len(grid))
	for _, p := range grid {
		rate, err := e.Rate(ctx, batch, Erasure{Prob: p}, trials, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, RatePoint{P: p, Rate: rate})
	}
	return out, nil
}

// recoverable applies the rank criterion for one erasure pattern.
// intact[q] marks qubits that survived. The pattern is recoverable iff
// rank([S|_C ; L|_C]) == rank(S|_C) + (number of logical generators),
// with C the intact set and restriction keeping C's x and z columns.
func recoverable(batch *Batch, intact []bool) (bool, error) {
	logicals := make([]qec.Pauli, 0, len(batch.LogicalZs)+len(batch.LogicalXs))
	logicals = append(logicals, batch.LogicalZs...)
	logicals = append(logicals, batch.LogicalXs...)

	stabRows := restrictRows(batch.Stabilizers, intact)
	allRows := append(stabRows.Clone(), restrictRows(logicals, intact)...)

	stabRank, err := gf2.Rank(stabRows)
	if err != nil {
		return false, err
	}
	fullRank, err := gf2.Rank(allRows)
	if err != nil {
		return false, err
	}
	return fullRank == stabRank+len(logicals), nil
}

// restrictRows maps Paulis to symplectic rows over the intact columns only.
func restrictRows(ps []qec.Pauli, intact []bool) gf2.Matrix {
	keep := 0
	for _, ok := range intact {
		if ok {
			keep++
		}
	}
	rows := make(gf2.Matrix, len(ps))
	for i, p := range ps {
		row := make([]uint8, 0, 2*keep)
		for q, ok := range intact {
			if ok {
				row = append(row, p.X[q])
			}
		}
		for q, ok := range intact {
			if ok {
				row = append(row, p.Z[q])
			}
		}
		rows[i] = row
	}
	return rows
}
