package executor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunConcurrent runs each of runs as its own Executor.RunAll call on
// its own goroutine, via an errgroup.Group, and returns the results in
// the same order as runs once every one of them has finished or ctx is
// cancelled. It exists for the common case of several independent
// groups of futures (say, one connection's worth of work each) that
// should make progress in parallel, each with its own single-threaded
// round-robin scheduler underneath.
func RunConcurrent(ctx context.Context, runs ...*Executor) ([][]any, error) {
	results := make([][]any, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range runs {
		i, e := i, e
		g.Go(func() error {
			results[i] = e.RunAll(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
