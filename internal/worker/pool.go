package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs fn for every item concurrently and returns the results in input
// order. At most limit calls run at once; limit <= 0 means no bound.
//
// The first error cancels the context passed to the remaining calls and is
// returned alone. No partial results are returned on failure.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	results := make([]R, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			// Each goroutine owns its own slot
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
