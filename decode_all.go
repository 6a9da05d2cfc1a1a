// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"context"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes values concurrently and returns the results in input order.
// It stops early and returns ctx's error if ctx is cancelled.
func DecodeAll[F constraints.Float](ctx context.Context, values []F) ([]Decoded, error) {
	result := make([]Decoded, len(values))
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(values) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for from := 0; from < len(values); from += chunk {
		from, to := from, from+chunk
		if to > len(values) {
			to = len(values)
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				result[i] = Decode(values[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
