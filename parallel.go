package ordsort

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SortEach sorts every batch in place, running up to workers sorts at once.
// Each batch is sorted by a fresh Sorter obtained from factory, so no
// instrumentation is shared between goroutines. rule may be nil to sort by
// each sorter's natural order.
//
// The returned Stats are indexed like batches. The first error cancels any
// batch that has not started yet; a sort already running is never
// interrupted. workers <= 0 means no limit.
func SortEach[E any](ctx context.Context, batches [][]E, factory func() Sorter[E], rule CompareGeneric[E], workers int) ([]Stats, error) {
	if ctx == nil || factory == nil {
		return nil, NewArgumentError("SortEach", "context and factory must not be nil")
	}

	stats := make([]Stats, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := factory()
			var err error
			if rule == nil {
				_, err = s.Sort(batches[i])
			} else {
				_, err = s.SortFunc(batches[i], rule)
			}
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			stats[i] = s.Stats()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
