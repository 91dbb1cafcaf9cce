package montecarlo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/random"
)

// Run performs trials independent experiments on an n-by-n grid and
// summarizes the observed thresholds.
//
// Errors: ErrInvalidArgument if n <= 0 or trials <= 0; ctx.Err() on cancellation.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("Run: %w: n and trials must be greater than 0, got n=%d trials=%d",
			ErrInvalidArgument, n, trials)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	thresholds := make([]float64, trials)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			m, err := Simulate(gctx, n, random.Derive(cfg.seed, uint64(i)))
			if err != nil {
				return err
			}
			thresholds[i] = Threshold(m)
			if cfg.observer != nil {
				mu.Lock()
				cfg.observer(i, thresholds[i])
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return summarize(n, thresholds, cfg.confidence), nil
}

// Simulate runs one trial: it opens sites chosen by src until the grid
// percolates and returns the final model.
//
// The context is polled once per n openings.
// Errors: ErrInvalidArgument if n <= 0; ctx.Err() on cancellation.
func Simulate(ctx context.Context, n int, src random.Source) (*percolation.Model, error) {
	m, err := percolation.New(n)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	for step := 0; !m.Percolates(); step++ {
		if step%n == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row := src.UniformInt(1, n+1)
		col := src.UniformInt(1, n+1)
		if err := m.Open(row, col); err != nil {
			return nil, fmt.Errorf("Simulate: %w", err)
		}
	}
	return m, nil
}

// Threshold returns the fraction of open sites in m.
func Threshold(m *percolation.Model) float64 {
	n := m.Size()
	return float64(m.NumberOfOpenSites()) / float64(n*n)
}
