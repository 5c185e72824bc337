// SPDX-License-Identifier: MIT
package report

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMissingReferenceData indicates an absent or unusable reference file
// for one radius. Presentation-layer only: callers report it and skip the
// radius's overlay, they never abort the sweep.
var ErrMissingReferenceData = errors.New("report: reference data unavailable")

// referenceFilePattern is the fixed naming convention of externally
// generated comparison data, keyed by radius.
const referenceFilePattern = "hqec_tesseract_logical_error_rates_lin_R=%d.txt"

// ReferenceFileName returns the conventional file name for a radius.
func ReferenceFileName(radius int) string {
	return fmt.Sprintf(referenceFilePattern, radius)
}

// LoadReference reads the reference logical error rates for a radius from
// dir: one float per line, blank lines ignored. Any problem — missing
// file, empty file, a malformed value — yields ErrMissingReferenceData
// (wrapped with detail).
func LoadReference(dir string, radius int) ([]float64, error) {
	path := filepath.Join(dir, ReferenceFileName(radius))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingReferenceData, err)
	}
	defer f.Close()

	var rates []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingReferenceData, path, perr)
		}
		rates = append(rates, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingReferenceData, path, err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingReferenceData, path)
	}
	return rates, nil
}
