// SPDX-License-Identifier: MIT
package noisegrid

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidRange is returned for a malformed probability range:
// end before start, a non-positive step, or a non-positive point count.
var ErrInvalidRange = errors.New("noisegrid: invalid probability range")

// stepEpsilonFrac is the fraction of one step tolerated when deciding
// whether an accumulated value still belongs to [start, end]. It absorbs
// float drift without ever admitting a genuine extra step.
const stepEpsilonFrac = 1e-9

// Range returns the ascending grid start, start+step, ... covering
// [start, end] with both endpoints included whenever step divides the
// range. Accumulated floating error near end is snapped onto end rather
// than dropped or overshot.
//
// Contract:
//   - result is non-decreasing and begins at start;
//   - last element equals end (exactly) when (end-start)/step is integral
//     within tolerance;
//   - ErrInvalidRange when end < start or step <= 0.
//
// Complexity: O((end-start)/step).
func Range(start, end, step float64) ([]float64, error) {
	if end < start || step <= 0 {
		return nil, ErrInvalidRange
	}

	eps := step * stepEpsilonFrac
	grid := make([]float64, 0, int((end-start)/step)+2)
	for i := 0; ; i++ {
		p := start + float64(i)*step
		if p > end+eps {
			break
		}
		if math.Abs(p-end) <= eps {
			p = end
		}
		grid = append(grid, p)
	}
	return grid, nil
}

// Linspace returns exactly n evenly spaced points over [start, end],
// endpoints included. n == 1 is allowed only for a degenerate range where
// start == end; otherwise a single point cannot include both endpoints.
//
// Complexity: O(n).
func Linspace(start, end float64, n int) ([]float64, error) {
	if end < start || n < 1 {
		return nil, ErrInvalidRange
	}
	if n == 1 {
		if start != end {
			return nil, ErrInvalidRange
		}
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, end), nil
}
