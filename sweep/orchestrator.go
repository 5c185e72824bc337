// SPDX-License-Identifier: MIT
package sweep

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lo568los/HQEC-Tesseract/decoder"
	"github.com/lo568los/HQEC-Tesseract/happy"
	"github.com/lo568los/HQEC-Tesseract/qec"
)

// Reporter receives sweep progress as it happens. Implementations must be
// cheap; they run on the orchestrating goroutine between grid points.
type Reporter interface {
	// RadiusStart fires after construction/extraction, before scanning.
	RadiusStart(radius, physicalQubits, logicalQubits int)

	// Point fires for every aggregated grid point, in grid order.
	Point(radius int, p, rate float64)

	// RadiusDone fires with the radius's complete ordered result.
	RadiusDone(res Result)
}

// nopReporter is the default when no Reporter is supplied.
type nopReporter struct{}

func (nopReporter) RadiusStart(int, int, int) {}
func (nopReporter) Point(int, float64, float64) {}
func (nopReporter) RadiusDone(Result)           {}

// rangeRunner is the optional whole-range fast path a backend may offer
// (the erasure backend does). It carries the same statistical contract as
// point-by-point evaluation.
type rangeRunner interface {
	RecoveryRates(ctx context.Context, batch *decoder.Batch, grid []float64, trials int, rng *rand.Rand) ([]decoder.RatePoint, error)
}

// Orchestrator runs one configured sweep across all radii.
//
// Per-radius state machine: Init → Constructed → Extracted →
// Scanning(point_i) → Done. Construction and extraction happen exactly
// once per radius; radii are processed sequentially, trials within a
// point in parallel.
type Orchestrator struct {
	cfg     Config
	backend decoder.Backend
	rep     Reporter
	log     *zap.Logger
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithReporter installs a progress Reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.rep = r
		}
	}
}

// WithLogger installs a structured logger (zap.NewNop otherwise).
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// New validates the configuration and assembles an Orchestrator for the
// given backend.
func New(cfg Config, backend decoder.Backend, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := &Orchestrator{
		cfg:     cfg,
		backend: backend,
		rep:     nopReporter{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Run executes the sweep and returns one Result per radius, in the
// configured radius order. Any grid or backend error aborts the run;
// nothing is silently degraded.
func (o *Orchestrator) Run(ctx context.Context) ([]Result, error) {
	grid, err := o.cfg.Grid()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := o.log.With(
		zap.String("run_id", runID),
		zap.String("backend", o.backend.Name()),
		zap.String("variant", o.cfg.Variant.String()),
	)
	log.Info("sweep started",
		zap.Ints("radii", o.cfg.Radii),
		zap.Int("grid_points", len(grid)),
		zap.Int("trials", o.cfg.Trials),
		zap.Int("workers", o.cfg.Workers),
	)

	base := rngFromSeed(o.cfg.Seed)
	results := make([]Result, 0, len(o.cfg.Radii))
	for _, radius := range o.cfg.Radii {
		res, rerr := o.runRadius(ctx, log, radius, grid, base)
		if rerr != nil {
			return nil, fmt.Errorf("radius %d: %w", radius, rerr)
		}
		results = append(results, res)
	}
	log.Info("sweep finished", zap.Int("results", len(results)))
	return results, nil
}

// runRadius walks one radius through the full state machine.
func (o *Orchestrator) runRadius(ctx context.Context, log *zap.Logger, radius int, grid []float64, base *rand.Rand) (Result, error) {
	// Init → Constructed.
	code, err := o.construct(radius)
	if err != nil {
		return Result{}, err
	}

	// Constructed → Extracted: the expensive, cacheable step. Exactly one
	// push per radius, reused across all noise points.
	pushed, err := happy.Push(code)
	if err != nil {
		return Result{}, err
	}
	batch := decoder.NewBatch(code, pushed)
	if len(batch.LogicalXs) == 0 && len(batch.LogicalZs) == 0 {
		return Result{}, qec.ErrDegenerateCode
	}

	log.Info("code extracted",
		zap.Int("radius", radius),
		zap.Int("physical_qubits", batch.NumQubits()),
		zap.Int("logical_qubits", code.NumLogical()),
		zap.Int("stabilizers", len(batch.Stabilizers)),
	)
	o.rep.RadiusStart(radius, batch.NumQubits(), code.NumLogical())

	// Extracted → Scanning.
	res := Result{Radius: radius, Backend: o.backend.Name()}
	if rr, ok := o.backend.(rangeRunner); ok && o.cfg.Workers == 1 {
		// Whole-range fast path: same contract, one call.
		pts, rerr := rr.RecoveryRates(ctx, batch, grid, o.cfg.Trials, deriveRNG(base, 0))
		if rerr != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrBackendFailure, rerr)
		}
		for _, pt := range pts {
			res.Points = append(res.Points, o.finishPoint(log, radius, pt.P, pt.Rate))
		}
	} else {
		disp := Dispatcher{Workers: o.cfg.Workers}
		for _, p := range grid {
			rate, derr := disp.Run(ctx, o.backend, batch, o.noiseAt(p), o.cfg.Trials, base)
			if derr != nil {
				return Result{}, derr
			}
			res.Points = append(res.Points, o.finishPoint(log, radius, p, rate))
		}
	}

	// Scanning → Done.
	o.rep.RadiusDone(res)
	return res, nil
}

// construct builds the Code Instance for one radius.
func (o *Orchestrator) construct(radius int) (*happy.TensorList, error) {
	if o.cfg.Variant == happy.MaxRate {
		return happy.SetupMaxRate(radius)
	}
	return happy.SetupZeroRate(radius)
}

// noiseAt normalizes one grid value for the active backend: a scalar
// erasure probability, or the ratio triple scaled by p for the
// depolarizing channel.
func (o *Orchestrator) noiseAt(p float64) decoder.Noise {
	if _, ok := o.backend.(decoder.ErasureBackend); ok {
		return decoder.Erasure{Prob: p}
	}
	return decoder.Depolarizing{Prob: p, RX: o.cfg.RX, RY: o.cfg.RY(), RZ: o.cfg.RZ}
}

// finishPoint records and reports one aggregated grid point.
func (o *Orchestrator) finishPoint(log *zap.Logger, radius int, p, rate float64) Point {
	pt := Point{
		P:      p,
		Rate:   rate,
		StdErr: math.Sqrt(rate * (1 - rate) / float64(o.cfg.Trials)),
	}
	log.Debug("point aggregated",
		zap.Int("radius", radius),
		zap.Float64("p", p),
		zap.Float64("rate", rate),
	)
	o.rep.Point(radius, p, rate)
	return pt
}
