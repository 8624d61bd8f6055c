package netid

import (
	"context"
	"fmt"

	"github.com/projecteru2/core/log"
	"golang.org/x/sync/errgroup"
)

// Batch calls fn count times on at most workers goroutines and returns the
// results in call order. The first error cancels outstanding calls.
func Batch[T any](ctx context.Context, count, workers int, fn func() (T, error)) ([]T, error) {
	if count <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	logger := log.WithFunc("netid.Batch")
	logger.Debugf(ctx, "generating %d values on %d workers", count, workers)

	out := make([]T, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn()
			if err != nil {
				return fmt.Errorf("value %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
