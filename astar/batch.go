package astar

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridstar/grid"
)

// Request is one start/goal pair for FindPaths.
type Request struct {
	Start, Goal grid.Point
}

// FindPaths runs one independent search per request, concurrently, over a
// single snapshot of g taken at call time. Each search owns its SearchState
// and frontier; only the immutable snapshot is shared.
//
// results[i] answers reqs[i]. The first failing request cancels the rest and
// its error is returned. Hooks given in opts are invoked from several
// goroutines and must be safe for concurrent use. A WithContext option in
// opts is superseded by ctx.
func FindPaths(ctx context.Context, g *grid.Grid, reqs []Request, opts ...Option) ([]*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}
	snap := g.Snapshot()
	results := make([]*Result, len(reqs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			ro := o
			ro.Ctx = egCtx
			s, err := newSearch(snap, req.Start, req.Goal, ro)
			if err != nil {
				return fmt.Errorf("astar: request %d: %w", i, err)
			}
			res, err := s.Run()
			if err != nil {
				return fmt.Errorf("astar: request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
