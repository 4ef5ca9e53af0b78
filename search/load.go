package search

import (
	"context"
	"sync"

	"github.com/fwojciec/optsearch"
	"golang.org/x/sync/errgroup"
)

// LoadAll loads every named dataset concurrently and returns them keyed by
// the same names. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, sources map[string]optsearch.DatasetService) (map[string]*optsearch.Dataset, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	datasets := make(map[string]*optsearch.Dataset, len(sources))

	for name, source := range sources {
		g.Go(func() error {
			dataset, err := source.Load(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			datasets[name] = dataset
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}
