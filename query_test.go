package optsearch_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbolDataset() *optsearch.Dataset {
	return &optsearch.Dataset{Records: []optsearch.Record{
		{"name": "CONFIG_A", "type": "bool"},
		{"name": "CONFIG_AB", "type": "int"},
		{"name": "CONFIG_B", "type": "bool"},
	}}
}

func TestEvaluate_Term(t *testing.T) {
	t.Parallel()

	t.Run("prefix pattern matches in order", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(symbolDataset(), optsearch.Query{Term: "^CONFIG_A"})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Records, 2)
		assert.Equal(t, "CONFIG_A", res.Records[0].Name())
		assert.Equal(t, "CONFIG_AB", res.Records[1].Name())
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(symbolDataset(), optsearch.Query{Term: "^config_b$"})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("invalid pattern returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := optsearch.Evaluate(symbolDataset(), optsearch.Query{Term: "[unclosed"})

		assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
	})

	t.Run("empty dataset returns zero count for any term", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(&optsearch.Dataset{}, optsearch.Query{Term: ".*"})

		require.NoError(t, err)
		assert.Empty(t, res.Records)
		assert.Zero(t, res.Total)
	})
}

func TestEvaluate_Unconstrained(t *testing.T) {
	t.Parallel()

	t.Run("MatchNone returns nothing for an empty query", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(symbolDataset(), optsearch.Query{Unconstrained: optsearch.MatchNone})

		require.NoError(t, err)
		assert.Zero(t, res.Total)
	})

	t.Run("MatchAll returns the full dataset for an empty query", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(symbolDataset(), optsearch.Query{Unconstrained: optsearch.MatchAll})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Len(t, res.Records, 3)
	})
}

func TestEvaluate_Filters(t *testing.T) {
	t.Parallel()

	boards := &optsearch.Dataset{Records: []optsearch.Record{
		{"name": "frdm_k64f", "arch": "arm"},
		{"name": "nucleo_f401re", "arch": "arm"},
		{"name": "hifive1", "arch": "riscv"},
	}}

	t.Run("filter yields exactly the matching records", func(t *testing.T) {
		t.Parallel()

		filters := optsearch.NewFilterState()
		filters.Apply("arch", []string{"arm"})

		res, err := optsearch.Evaluate(boards, optsearch.Query{Filters: filters, Unconstrained: optsearch.MatchAll})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Records, 2)
		assert.Equal(t, "frdm_k64f", res.Records[0].Name())
		assert.Equal(t, "nucleo_f401re", res.Records[1].Name())
	})

	t.Run("term and filters conjoin", func(t *testing.T) {
		t.Parallel()

		filters := optsearch.NewFilterState()
		filters.Apply("arch", []string{"arm"})

		res, err := optsearch.Evaluate(boards, optsearch.Query{Term: "^frdm", Filters: filters})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})
}

func TestEvaluate_Pagination(t *testing.T) {
	t.Parallel()

	records := make([]optsearch.Record, 25)
	for i := range records {
		records[i] = optsearch.Record{"name": fmt.Sprintf("CONFIG_%03d", i)}
	}
	dataset := &optsearch.Dataset{Records: records}

	t.Run("each window returns at most a page of records", func(t *testing.T) {
		t.Parallel()

		for offset, want := range map[int]int{0: 10, 10: 10, 20: 5} {
			res, err := optsearch.Evaluate(dataset, optsearch.Query{
				Term:     "^CONFIG_",
				Offset:   offset,
				PageSize: 10,
			})

			require.NoError(t, err)
			assert.Equal(t, 25, res.Total)
			assert.Len(t, res.Records, want)
		}
	})

	t.Run("window preserves match rank order", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(dataset, optsearch.Query{Term: "^CONFIG_", Offset: 10, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, "CONFIG_010", res.Records[0].Name())
		assert.Equal(t, "CONFIG_019", res.Records[9].Name())
	})

	t.Run("offset past the end returns an empty page with full count", func(t *testing.T) {
		t.Parallel()

		res, err := optsearch.Evaluate(dataset, optsearch.Query{Term: "^CONFIG_", Offset: 30, PageSize: 10})

		require.NoError(t, err)
		assert.Empty(t, res.Records)
		assert.Equal(t, 25, res.Total)
	})

	t.Run("negative offset returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := optsearch.Evaluate(dataset, optsearch.Query{Term: "^CONFIG_", Offset: -10, PageSize: 10})

		assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
	})
}

func TestEvaluate_NilDataset(t *testing.T) {
	t.Parallel()

	_, err := optsearch.Evaluate(nil, optsearch.Query{})

	assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
}
