// SPDX-License-Identifier: MIT
package sweep

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lo568los/HQEC-Tesseract/decoder"
)

// Dispatcher executes the trials of one noise point, optionally fanning
// them out across workers. Workers receive disjoint trial counts and
// independent RNG streams; only success counts are joined, so the
// aggregate sample size is exactly the requested trial count regardless
// of parallelism.
type Dispatcher struct {
	// Workers is the parallelism degree; capped at the trial count.
	Workers int
}

// Run returns successes/trials for one noise point.
//
// Failure semantics: the first worker error cancels the remaining workers
// and the whole batch fails wrapped in ErrBackendFailure — a partial rate
// over fewer trials is never reported.
//
// Blocking: Run waits for every worker; there are no streaming results.
func (d Dispatcher) Run(ctx context.Context, backend decoder.Backend, batch *decoder.Batch, noise decoder.Noise, trials int, base *rand.Rand) (float64, error) {
	if trials < 1 {
		return 0, ErrInvalidTrials
	}
	if d.Workers < 1 {
		return 0, ErrInvalidWorkers
	}

	chunks := partition(trials, d.Workers)

	// Derive every worker stream before launching: rand.Rand must not be
	// shared across goroutines.
	rngs := make([]*rand.Rand, len(chunks))
	for i := range chunks {
		rngs[i] = deriveRNG(base, uint64(i))
	}

	successes := make([]float64, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			rate, err := backend.Rate(gctx, batch, noise, chunk, rngs[i])
			if err != nil {
				return err
			}
			successes[i] = rate * float64(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	var total float64
	for _, s := range successes {
		total += s
	}
	// Each worker contribution is an integer success count; rounding heals
	// the float division round-trip through Backend.Rate.
	return math.Round(total) / float64(trials), nil
}

// partition splits trials into at most workers near-equal chunks, larger
// chunks first, skipping empty ones. Sum of chunks == trials always.
func partition(trials, workers int) []int {
	if workers > trials {
		workers = trials
	}
	chunks := make([]int, 0, workers)
	q, r := trials/workers, trials%workers
	for i := 0; i < workers; i++ {
		c := q
		if i < r {
			c++
		}
		if c > 0 {
			chunks = append(chunks, c)
		}
	}
	return chunks
}
