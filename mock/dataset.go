package mock

import (
	"context"

	"github.com/fwojciec/optsearch"
)

var _ optsearch.DatasetService = (*DatasetService)(nil)

// DatasetService is a mock implementation of optsearch.DatasetService.
type DatasetService struct {
	LoadFn func(ctx context.Context) (*optsearch.Dataset, error)
}

func (s *DatasetService) Load(ctx context.Context) (*optsearch.Dataset, error) {
	return s.LoadFn(ctx)
}
