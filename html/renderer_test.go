package html_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, fragment string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders a symbol as a definition list", func(t *testing.T) {
		t.Parallel()

		r := html.NewRenderer()
		fragment, err := r.Render(optsearch.Record{
			"name":     "CONFIG_GPIO",
			"prompt":   "GPIO Drivers",
			"type":     "bool",
			"defaults": []any{"y", "n if DEBUG"},
			"filename": "drivers/gpio/Kconfig",
			"linenr":   float64(7),
		})

		require.NoError(t, err)
		doc := parseFragment(t, fragment)

		dt := doc.Find("dt")
		assert.Equal(t, "CONFIG_GPIO GPIO Drivers", strings.Join(strings.Fields(dt.Text()), " "))
		href, _ := dt.Find("a").Attr("href")
		assert.Equal(t, "#CONFIG_GPIO", href)

		dds := doc.Find("dd")
		assert.Equal(t, 3, dds.Length()) // type, defaults, location
		assert.Contains(t, doc.Find("dl").Text(), "y, n if DEBUG")
		assert.Contains(t, doc.Find("dl").Text(), "drivers/gpio/Kconfig:7")
	})

	t.Run("renders a board with resolved peripheral counts", func(t *testing.T) {
		t.Parallel()

		r := html.NewRenderer()
		fragment, err := r.Render(optsearch.Record{
			"name":            "frdm_k64f",
			"arch":            "arm",
			"main_flash_size": float64(1024),
		})

		require.NoError(t, err)
		doc := parseFragment(t, fragment)

		text := doc.Find("dl").Text()
		assert.Contains(t, text, "arm")
		assert.Contains(t, text, "1024")
	})

	t.Run("preserves cross-reference markup in field values", func(t *testing.T) {
		t.Parallel()

		r := html.NewRenderer()
		fragment, err := r.Render(optsearch.Record{
			"name":    "CONFIG_SPI",
			"selects": []any{`<a href="#CONFIG_GPIO">CONFIG_GPIO</a>`},
		})

		require.NoError(t, err)
		doc := parseFragment(t, fragment)

		href, ok := doc.Find("dd a").Attr("href")
		assert.True(t, ok)
		assert.Equal(t, "#CONFIG_GPIO", href)
	})

	t.Run("nameless record returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := html.NewRenderer().Render(optsearch.Record{"type": "bool"})

		assert.Equal(t, optsearch.EINVALID, optsearch.ErrorCode(err))
	})
}
