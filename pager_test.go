package optsearch_test

import (
	"testing"

	"github.com/fwojciec/optsearch"
	"github.com/stretchr/testify/assert"
)

func TestPager_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("prev is disabled at offset zero", func(t *testing.T) {
		t.Parallel()

		p := optsearch.NewPager()

		assert.False(t, p.CanPrev())

		p.Prev()

		assert.Zero(t, p.Offset)
	})

	t.Run("next is disabled once the window passes the total", func(t *testing.T) {
		t.Parallel()

		p := optsearch.NewPager()

		assert.True(t, p.CanNext(25)) // 0 -> 10
		p.Next()
		assert.True(t, p.CanNext(25)) // 10 -> 20
		p.Next()
		assert.False(t, p.CanNext(25)) // 20+10 > 25
	})

	t.Run("reset returns to the first page", func(t *testing.T) {
		t.Parallel()

		p := optsearch.NewPager()
		p.Next()
		p.Next()
		p.Reset()

		assert.Zero(t, p.Offset)
		assert.Equal(t, 1, p.Page())
	})
}

func TestPager_PageNumbers(t *testing.T) {
	t.Parallel()

	t.Run("derives current and total pages", func(t *testing.T) {
		t.Parallel()

		p := optsearch.NewPager()
		p.Next()

		assert.Equal(t, 2, p.Page())
		assert.Equal(t, 3, p.Pages(25))
	})

	t.Run("exact multiple of page size yields a trailing page", func(t *testing.T) {
		t.Parallel()

		p := optsearch.NewPager()

		// Accepted behavior carried over from the original site.
		assert.Equal(t, 3, p.Pages(20))
		assert.True(t, p.CanNext(20))
	})
}
