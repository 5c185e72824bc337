package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lo568los/HQEC-Tesseract/sweep"
)

func writeReference(t *testing.T, dir string, radius int, body string) {
	t.Helper()
	path := filepath.Join(dir, ReferenceFileName(radius))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestReferenceFileName(t *testing.T) {
	assert.Equal(t, "hqec_tesseract_logical_error_rates_lin_R=2.txt", ReferenceFileName(2))
}

func TestLoadReference_OK(t *testing.T) {
	dir := t.TempDir()
	writeReference(t, dir, 0, "0.01\n0.05\n\n0.12\n")

	rates, err := LoadReference(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.05, 0.12}, rates, "blank lines are skipped")
}

func TestLoadReference_Missing(t *testing.T) {
	_, err := LoadReference(t.TempDir(), 3)
	assert.ErrorIs(t, err, ErrMissingReferenceData)
}

func TestLoadReference_Empty(t *testing.T) {
	dir := t.TempDir()
	writeReference(t, dir, 1, "\n\n")
	_, err := LoadReference(dir, 1)
	assert.ErrorIs(t, err, ErrMissingReferenceData)
}

func TestLoadReference_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeReference(t, dir, 1, "0.1\nnot-a-number\n")
	_, err := LoadReference(dir, 1)
	assert.ErrorIs(t, err, ErrMissingReferenceData)
}

// TestConsole_Transcript checks the exact scan transcript format.
func TestConsole_Transcript(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "zero-rate HaPPY")

	c.RadiusStart(1, 20, 1)
	c.Point(1, 0.0, 1.0)
	c.Point(1, 0.05, 0.987)
	c.RadiusDone(sweep.Result{Radius: 1})

	want := "\nScanning zero-rate HaPPY (R=1) with 20 physical and 1 logical qubits:\n" +
		"  p=0.00 -> success rate 1.000\n" +
		"  p=0.05 -> success rate 0.987\n"
	assert.Equal(t, want, buf.String())
}

func sampleResults() []sweep.Result {
	return []sweep.Result{{
		Radius:  0,
		Backend: "erasure",
		Points: []sweep.Point{
			{P: 0.0, Rate: 1.0},
			{P: 0.1, Rate: 0.95},
			{P: 0.2, Rate: 0.80},
		},
	}}
}

// TestComparisonPlot_Smoke renders a minimal figure to disk.
func TestComparisonPlot_Smoke(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sweep.png")
	err := ComparisonPlot(out, sampleResults(), PlotOptions{
		Title:  "recovery rate",
		XLabel: "p",
		YLabel: "success rate",
	})
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestComparisonPlot_ReferenceOverlay: a present reference file adds the
// overlay, an absent one degrades silently instead of failing the plot.
func TestComparisonPlot_ReferenceOverlay(t *testing.T) {
	refDir := t.TempDir()
	writeReference(t, refDir, 0, "0.0\n0.04\n0.18\n")

	out := filepath.Join(t.TempDir(), "overlay.png")
	err := ComparisonPlot(out, sampleResults(), PlotOptions{
		Title:        "recovery rate",
		ReferenceDir: refDir,
	})
	require.NoError(t, err)

	// Same plot with no reference file on disk still succeeds.
	out2 := filepath.Join(t.TempDir(), "no-overlay.png")
	err = ComparisonPlot(out2, sampleResults(), PlotOptions{
		ReferenceDir: t.TempDir(),
	})
	require.NoError(t, err)
}
