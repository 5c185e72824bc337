// SPDX-License-Identifier: MIT
package report

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lo568los/HQEC-Tesseract/noisegrid"
	"github.com/lo568los/HQEC-Tesseract/sweep"
)

// PlotOptions shapes a comparison figure.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string

	// ReferenceDir, when non-empty, is searched for per-radius reference
	// files (see ReferenceFileName); each found file adds a dashed
	// 1-error-rate overlay. A missing file is logged and skipped.
	ReferenceDir string

	// Logger for skipped-reference warnings; nop when nil.
	Logger *zap.Logger
}

// ComparisonPlot renders the per-radius sweep curves (plus any available
// reference overlays) to an image file; the format follows the path
// extension (.png, .svg, .pdf). Reference-data problems never fail the
// plot — they degrade per radius.
func ComparisonPlot(path string, results []sweep.Result, opts PlotOptions) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Y.Min, p.Y.Max = -0.05, 1.05
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, res := range results {
		line, pts, err := plotter.NewLinePoints(resultXYs(res))
		if err != nil {
			return fmt.Errorf("report: radius %d curve: %w", res.Radius, err)
		}
		line.Color = plotutil.Color(i)
		pts.Color = plotutil.Color(i)
		pts.Shape = plotutil.Shape(i)
		p.Add(line, pts)
		p.Legend.Add(fmt.Sprintf("R=%d", res.Radius), line, pts)

		if opts.ReferenceDir == "" || len(res.Points) == 0 {
			continue
		}
		ref, rerr := referenceXYs(opts.ReferenceDir, res)
		if rerr != nil {
			log.Warn("reference overlay skipped",
				zap.Int("radius", res.Radius), zap.Error(rerr))
			continue
		}
		refLine, lerr := plotter.NewLine(ref)
		if lerr != nil {
			return fmt.Errorf("report: radius %d reference: %w", res.Radius, lerr)
		}
		refLine.Color = plotutil.Color(i)
		refLine.Dashes = plotutil.Dashes(1)
		p.Add(refLine)
		p.Legend.Add(fmt.Sprintf("Tesseract R=%d", res.Radius), refLine)
	}

	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}

// resultXYs converts a sweep result to plotter coordinates.
func resultXYs(res sweep.Result) plotter.XYs {
	xys := make(plotter.XYs, len(res.Points))
	for i, pt := range res.Points {
		xys[i].X = pt.P
		xys[i].Y = pt.Rate
	}
	return xys
}

// referenceXYs loads one radius's reference logical error rates and maps
// them to success coordinates (1-err) over an even grid spanning the same
// p range as the sweep result.
func referenceXYs(dir string, res sweep.Result) (plotter.XYs, error) {
	errRates, err := LoadReference(dir, res.Radius)
	if err != nil {
		return nil, err
	}
	first := res.Points[0].P
	last := res.Points[len(res.Points)-1].P
	ps, err := noisegrid.Linspace(first, last, len(errRates))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingReferenceData, err)
	}
	xys := make(plotter.XYs, len(errRates))
	for i, e := range errRates {
		xys[i].X = ps[i]
		xys[i].Y = 1 - e
	}
	return xys, nil
}
