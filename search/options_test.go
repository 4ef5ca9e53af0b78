package search_test

import (
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/search"
	"github.com/stretchr/testify/assert"
)

func TestChipOptions(t *testing.T) {
	t.Parallel()

	t.Run("collects distinct values in sorted order", func(t *testing.T) {
		t.Parallel()

		dataset := &optsearch.Dataset{Records: []optsearch.Record{
			{"name": "b1", "arch": "riscv"},
			{"name": "b2", "arch": "arm"},
			{"name": "b3", "arch": "arm"},
		}}

		options := search.ChipOptions(dataset, "arch")
		assert.Equal(t, []optsearch.Option{
			{Value: "arm", Label: "arm"},
			{Value: "riscv", Label: "riscv"},
		}, options)
	})

	t.Run("flattens array-valued fields", func(t *testing.T) {
		t.Parallel()

		dataset := &optsearch.Dataset{Records: []optsearch.Record{
			{"name": "b1", "supported": []any{"gpio", "i2c"}},
			{"name": "b2", "supported": []any{"spi", "gpio"}},
		}}

		options := search.ChipOptions(dataset, "supported")
		values := make([]string, 0, len(options))
		for _, o := range options {
			values = append(values, o.Value)
		}
		assert.Equal(t, []string{"gpio", "i2c", "spi"}, values)
	})

	t.Run("sorts numeric values numerically", func(t *testing.T) {
		t.Parallel()

		dataset := &optsearch.Dataset{Records: []optsearch.Record{
			{"name": "b1", "cores": float64(10)},
			{"name": "b2", "cores": float64(2)},
			{"name": "b3", "cores": float64(1)},
		}}

		options := search.ChipOptions(dataset, "cores")
		values := make([]string, 0, len(options))
		for _, o := range options {
			values = append(values, o.Value)
		}
		assert.Equal(t, []string{"1", "2", "10"}, values)
	})

	t.Run("resolves count objects to their count", func(t *testing.T) {
		t.Parallel()

		dataset := &optsearch.Dataset{Records: []optsearch.Record{
			{"name": "b1", "i2c": map[string]any{"count": float64(2)}},
		}}

		options := search.ChipOptions(dataset, "i2c")
		assert.Equal(t, []optsearch.Option{{Value: "2", Label: "2"}}, options)
	})

	t.Run("skips records missing the field", func(t *testing.T) {
		t.Parallel()

		dataset := &optsearch.Dataset{Records: []optsearch.Record{
			{"name": "b1", "vendor": "nxp"},
			{"name": "b2"},
		}}

		options := search.ChipOptions(dataset, "vendor")
		assert.Equal(t, []optsearch.Option{{Value: "nxp", Label: "nxp"}}, options)
	})
}
