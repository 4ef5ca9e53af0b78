package search_test

import (
	"context"
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/mock"
	"github.com/fwojciec/optsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll(t *testing.T) {
	t.Parallel()

	t.Run("loads every source keyed by name", func(t *testing.T) {
		t.Parallel()

		sources := map[string]optsearch.DatasetService{
			"symbols": &mock.DatasetService{
				LoadFn: func(ctx context.Context) (*optsearch.Dataset, error) {
					return testDataset("CONFIG_A"), nil
				},
			},
			"boards": &mock.DatasetService{
				LoadFn: func(ctx context.Context) (*optsearch.Dataset, error) {
					return testDataset("frdm_k64f"), nil
				},
			},
		}

		datasets, err := search.LoadAll(context.Background(), sources)
		require.NoError(t, err)
		require.Len(t, datasets, 2)
		assert.Equal(t, "CONFIG_A", datasets["symbols"].Records[0].Name())
		assert.Equal(t, "frdm_k64f", datasets["boards"].Records[0].Name())
	})

	t.Run("returns the first failure", func(t *testing.T) {
		t.Parallel()

		sources := map[string]optsearch.DatasetService{
			"symbols": &mock.DatasetService{
				LoadFn: func(ctx context.Context) (*optsearch.Dataset, error) {
					return nil, optsearch.Errorf(optsearch.ENOTFOUND, "database not found")
				},
			},
		}

		_, err := search.LoadAll(context.Background(), sources)
		require.Error(t, err)
		assert.Equal(t, optsearch.ENOTFOUND, optsearch.ErrorCode(err))
	})
}
