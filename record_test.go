package optsearch_test

import (
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Name(t *testing.T) {
	t.Parallel()

	t.Run("returns name field", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"name": "CONFIG_FOO"}

		assert.Equal(t, "CONFIG_FOO", r.Name())
	})

	t.Run("returns empty string when absent", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"prompt": "Foo"}

		assert.Empty(t, r.Name())
	})

	t.Run("returns empty string for non-string name", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"name": 42}

		assert.Empty(t, r.Name())
	})
}

func TestRecord_Field(t *testing.T) {
	t.Parallel()

	t.Run("returns scalar values directly", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"arch": "arm"}

		v, ok := r.Field("arch")

		assert.True(t, ok)
		assert.Equal(t, "arm", v)
	})

	t.Run("resolves nested count objects", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"i2c": map[string]any{"count": float64(2)}}

		v, ok := r.Field("i2c")

		assert.True(t, ok)
		assert.Equal(t, float64(2), v)
	})

	t.Run("reports missing fields", func(t *testing.T) {
		t.Parallel()

		r := optsearch.Record{"name": "x"}

		_, ok := r.Field("arch")

		assert.False(t, ok)
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		err := optsearch.Record{}.Validate()

		assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
	})

	t.Run("accepts named record", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, optsearch.Record{"name": "CONFIG_FOO"}.Validate())
	})
}

func TestDecodeDataset(t *testing.T) {
	t.Parallel()

	t.Run("decodes record array", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[{"name":"CONFIG_A","type":"bool"},{"name":"CONFIG_B"}]`)

		ds, err := optsearch.DecodeDataset(data)

		require.NoError(t, err)
		require.Len(t, ds.Records, 2)
		assert.Equal(t, []string{"CONFIG_A", "CONFIG_B"}, ds.Names())
		assert.Equal(t, "bool", ds.Records[0]["type"])
	})

	t.Run("returns EINVALID for malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := optsearch.DecodeDataset([]byte(`{"not":"an array"}`))

		assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
	})

	t.Run("decodes empty array", func(t *testing.T) {
		t.Parallel()

		ds, err := optsearch.DecodeDataset([]byte(`[]`))

		require.NoError(t, err)
		assert.Empty(t, ds.Records)
	})
}
