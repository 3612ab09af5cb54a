package model

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// AdvanceAll steps every engine the given number of generations concurrently
// and returns the last snapshot of each, in input order. Engines must already
// be seeded and must not be shared with other goroutines while this runs.
func AdvanceAll(ctx context.Context, engines []Engine, generations int) ([][][]int, error) {
	var (
		snapshots = make([][][]int, len(engines))
		eg, egCtx = errgroup.WithContext(ctx)
	)

	for i, engine := range engines {
		eg.Go(func() error {
			for gen := range generations {
				if err := egCtx.Err(); err != nil {
					return errors.Wrapf(err, "[AdvanceAll] engine %d stopped at generation %d", i, gen)
				}
				snapshot, err := engine.Next()
				if err != nil {
					return errors.Wrapf(err, "[AdvanceAll] engine %d", i)
				}
				snapshots[i] = snapshot
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
