package mock

import (
	"context"

	"github.com/fwojciec/optsearch"
)

var _ optsearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of optsearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q optsearch.Query) (*optsearch.Result, error)
}

func (s *Searcher) Search(ctx context.Context, q optsearch.Query) (*optsearch.Result, error) {
	return s.SearchFn(ctx, q)
}
