// Package batch runs one fetch per identifier concurrently and hands the
// results back in argument order, so output never depends on which request
// finished first.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result wraps the outcome for one identifier.
type Result[T any] struct {
	ID    string
	Value T
	Err   error
}

// ExecuteAll runs fn for each id concurrently and collects the results.
//
// Parameters:
//   - ctx: parent context; cancelling it (Ctrl+C) reaches every in-flight fn
//   - ids: identifiers in argument order
//   - limit: maximum calls in flight; limit <= 0 means unbounded
//   - fn: the fetch for one identifier
//
// Returns:
//   - []Result[T]: one entry per id, in ids order, not completion order
//
// Notes:
//   - This helper does not fail fast. A failing id does not cancel the
//     others; its error is recorded in the corresponding Result.
//   - fn always returns nil to the errgroup, so gctx is only cancelled when
//     ctx is.
func ExecuteAll[T any](
	ctx context.Context,
	ids []string,
	limit int,
	fn func(ctx context.Context, id string) (T, error),
) []Result[T] {
	results := make([]Result[T], len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			val, err := fn(gctx, id)
			// each goroutine owns results[i]
			results[i] = Result[T]{ID: id, Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
