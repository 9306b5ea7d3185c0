package boot

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/Data-Wise/medfit-sub001/observe"
)

// runIterations executes n independent resample iterations and returns the
// statistic values in iteration order.
//
// Each iteration owns a random source seeded by iterationSeed, so the result
// is identical whether iterations run sequentially or across a worker pool.
// Any single iteration failure aborts the whole run, annotated with its
// iteration index; partial results are never returned.
func runIterations(ctx context.Context, s sampler, n int, seed uint64, parallel bool, workers int, logger observe.Logger) ([]float64, error) {
	if parallel && (workers < 2 || runtime.GOMAXPROCS(0) < 2) {
		logger.Warn(ctx, "parallel execution unavailable, falling back to sequential",
			observe.Field{Key: "workers", Value: workers},
			observe.Field{Key: "gomaxprocs", Value: runtime.GOMAXPROCS(0)})
		parallel = false
	}

	dist := make([]float64, n)

	if !parallel {
		for i := 0; i < n; i++ {
			v, err := s.draw(rand.New(rand.NewSource(iterationSeed(seed, i))))
			if err != nil {
				return nil, fmt.Errorf("iteration %d: %w", i, err)
			}
			dist[i] = v
		}
		return dist, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			// A cancelled group stops scheduling work; iterations in
			// flight run to completion (no mid-iteration suspension points).
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := s.draw(rand.New(rand.NewSource(iterationSeed(seed, i))))
			if err != nil {
				return fmt.Errorf("iteration %d: %w", i, err)
			}
			dist[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dist, nil
}
