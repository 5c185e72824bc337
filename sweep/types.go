// SPDX-License-Identifier: MIT
// Package sweep: sentinel error set and configuration.
package sweep

import (
	"errors"

	"github.com/lo568los/HQEC-Tesseract/happy"
	"github.com/lo568los/HQEC-Tesseract/noisegrid"
)

var (
	// ErrBackendFailure wraps any trial error inside a batch. The whole
	// batch is abandoned: averaging over fewer trials than requested would
	// silently bias the statistic.
	ErrBackendFailure = errors.New("sweep: decoder backend failed, batch abandoned")

	// ErrInvalidTrials is returned for a configured trial count below one.
	ErrInvalidTrials = errors.New("sweep: trials must be >= 1")

	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = errors.New("sweep: workers must be >= 1")

	// ErrInvalidRatio is returned when rx or rz is negative or rx+rz
	// exceeds 1, which would force a negative ry.
	ErrInvalidRatio = errors.New("sweep: pauli ratios must satisfy rx,rz >= 0 and rx+rz <= 1")

	// ErrNoRadii is returned for an empty radii list.
	ErrNoRadii = errors.New("sweep: at least one radius required")
)

// Config enumerates every knob of a sweep run. The zero value is not
// runnable; start from DefaultConfig.
type Config struct {
	// Radii lists the code radii to process, in order.
	Radii []int `yaml:"radii"`

	// Variant selects the zero-rate or max-rate construction.
	Variant happy.Variant `yaml:"-"`

	// PStart, PEnd, PStep define the noise grid (both endpoints included
	// whenever PStep divides the range).
	PStart float64 `yaml:"p_start"`
	PEnd   float64 `yaml:"p_end"`
	PStep  float64 `yaml:"p_step"`

	// Trials is the Monte-Carlo sample size per grid point.
	Trials int `yaml:"trials"`

	// RX and RZ are the X and Z shares of the depolarizing channel;
	// RY is implied as 1-RX-RZ and must not be negative.
	RX float64 `yaml:"rx"`
	RZ float64 `yaml:"rz"`

	// Workers is the trial-level parallelism per grid point.
	Workers int `yaml:"workers"`

	// Seed fixes the base RNG stream; 0 selects the stable default seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig mirrors the standard depolarizing-channel scan:
// rx = rz = 1/3 (so ry = 1/3), one worker, a modest trial count.
func DefaultConfig() Config {
	return Config{
		Radii:   []int{0},
		PStart:  0.0,
		PEnd:    0.5,
		PStep:   0.05,
		Trials:  200,
		RX:      1.0 / 3.0,
		RZ:      1.0 / 3.0,
		Workers: 1,
	}
}

// RY returns the implied Y share 1-RX-RZ.
func (c Config) RY() float64 { return 1 - c.RX - c.RZ }

// Validate fails fast on any malformed knob, including the ratio
// invariant rx+rz <= 1 (a silent negative ry is never produced).
func (c Config) Validate() error {
	if len(c.Radii) == 0 {
		return ErrNoRadii
	}
	for _, r := range c.Radii {
		if r < 0 {
			return happy.ErrInvalidRadius
		}
	}
	if c.PEnd < c.PStart || c.PStep <= 0 {
		return noisegrid.ErrInvalidRange
	}
	if c.Trials < 1 {
		return ErrInvalidTrials
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.RX < 0 || c.RZ < 0 || c.RX+c.RZ > 1 {
		return ErrInvalidRatio
	}
	return nil
}

// Grid materializes the configured noise grid.
func (c Config) Grid() ([]float64, error) {
	return noisegrid.Range(c.PStart, c.PEnd, c.PStep)
}

// Point is one aggregated (noise value, success rate) sample. StdErr is
// the binomial standard error sqrt(rate·(1-rate)/trials).
type Point struct {
	P      float64
	Rate   float64
	StdErr float64
}

// Result is one radius's ordered sweep outcome, in noise-grid order.
type Result struct {
	Radius  int
	Backend string
	Points  []Point
}

// XYs returns the plotting-library-agnostic (x, y) sequence of the result.
func (r Result) XYs() [][2]float64 {
	out := make([][2]float64, len(r.Points))
	for i, pt := range r.Points {
		out[i] = [2]float64{pt.P, pt.Rate}
	}
	return out
}
