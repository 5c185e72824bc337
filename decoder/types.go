// SPDX-License-Identifier: MIT
// Package decoder: backend contract, noise parameterizations, shared context.
package decoder

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/lo568los/HQEC-Tesseract/happy"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

var (
	// ErrInvalidTrials is returned for a trial count below one.
	ErrInvalidTrials = errors.New("decoder: trial count must be >= 1")

	// ErrInvalidNoise is returned for noise parameters outside their
	// domain: p outside [0,1], negative ratios, or ratios not summing to 1.
	ErrInvalidNoise = errors.New("decoder: invalid noise parameters")

	// ErrNoiseMismatch is returned when a backend receives the other
	// backend's noise parameterization.
	ErrNoiseMismatch = errors.New("decoder: noise model does not match backend")
)

// ratioTolerance bounds the accepted drift of rx+ry+rz from 1.
const ratioTolerance = 1e-9

// Noise is the tagged union of the two supported channel models.
type Noise interface {
	// P returns the total physical error probability.
	P() float64

	// Validate checks the parameterization's domain invariants.
	Validate() error
}

// Erasure parameterizes the erasure channel: each physical qubit is
// independently erased with probability Prob.
type Erasure struct {
	Prob float64
}

// P returns the erasure probability.
func (e Erasure) P() float64 { return e.Prob }

// Validate requires Prob in [0,1].
func (e Erasure) Validate() error {
	if e.Prob < 0 || e.Prob > 1 || math.IsNaN(e.Prob) {
		return ErrInvalidNoise
	}
	return nil
}

// Depolarizing parameterizes the Pauli channel: each qubit independently
// suffers X, Y or Z with probabilities Prob·RX, Prob·RY, Prob·RZ. The
// ratios must be non-negative and sum to one.
type Depolarizing struct {
	Prob float64
	RX   float64
	RY   float64
	RZ   float64
}

// P returns the total error probability.
func (d Depolarizing) P() float64 { return d.Prob }

// Validate requires Prob in [0,1], non-negative ratios summing to 1.
func (d Depolarizing) Validate() error {
	if d.Prob < 0 || d.Prob > 1 || math.IsNaN(d.Prob) {
		return ErrInvalidNoise
	}
	if d.RX < 0 || d.RY < 0 || d.RZ < 0 {
		return ErrInvalidNoise
	}
	if math.Abs(d.RX+d.RY+d.RZ-1) > ratioTolerance {
		return ErrInvalidNoise
	}
	return nil
}

// Batch is the immutable code context shared read-only by every trial of
// every worker: the full code description plus the generators extracted
// from one push. Built once per radius.
type Batch struct {
	Code        *happy.TensorList
	Stabilizers qec.StabilizerSet
	LogicalXs   []qec.Pauli
	LogicalZs   []qec.Pauli
}

// NewBatch assembles the per-radius context from a code description and
// its push result.
func NewBatch(code *happy.TensorList, res *happy.PushResult) *Batch {
	zs, xs := happy.ExtractLogicals(res)
	return &Batch{
		Code:        code,
		Stabilizers: happy.ExtractStabilizers(res),
		LogicalXs:   xs,
		LogicalZs:   zs,
	}
}

// NumQubits returns the physical qubit count of the context.
func (b *Batch) NumQubits() int { return b.Stabilizers.NumQubits() }

// checkLogicals enforces the degenerate-code contract shared by both
// backends.
func (b *Batch) checkLogicals() error {
	if len(b.LogicalXs) == 0 && len(b.LogicalZs) == 0 {
		return qec.ErrDegenerateCode
	}
	return nil
}

// Backend is the uniform decoder contract the sweep engine is written
// against: run `trials` independent trials at one noise point and return
// the success fraction. Implementations run trials sequentially with the
// supplied rng; parallelism belongs to the caller, which fans disjoint
// trial partitions out with independent rng streams.
type Backend interface {
	// Name identifies the backend in progress lines and log fields.
	Name() string

	// Rate returns successes/trials in [0,1].
	Rate(ctx context.Context, batch *Batch, noise Noise, trials int, rng *rand.Rand) (float64, error)
}

// RatePoint is one (noise value, rate) sample of a range evaluation.
type RatePoint struct {
	P    float64
	Rate float64
}
