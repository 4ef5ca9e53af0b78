// Package goquery adapts legacy bound form controls to typed chip
// configuration. The original pages bound each filter chip to a hidden
// native <select multiple> element; ParseSelect extracts that control's
// option structure so a Chip can be constructed from explicit data instead
// of runtime DOM introspection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optsearch"
)

// BoundControl is the extracted semantic content of a bound select element.
type BoundControl struct {
	// Key is the select element's name attribute, used as the filter key.
	Key string

	// Options holds one entry per <option>, in document order, with
	// Checked reflecting the selected attribute.
	Options []optsearch.Option
}

// ParseSelect extracts the first select control from the given HTML.
// A missing select element, a select without a name attribute, or a select
// without options is a misconfigured binding: it returns EINVALID so the
// caller can log a diagnostic and refuse to render the chip, leaving the
// native control visible as a fallback.
func ParseSelect(html string) (*BoundControl, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, optsearch.Errorf(optsearch.EINVALID, "failed to parse bound control: %v", err)
	}

	sel := doc.Find("select").First()
	if sel.Length() == 0 {
		return nil, optsearch.Errorf(optsearch.EINVALID, "bound control has no select element")
	}

	name, ok := sel.Attr("name")
	if !ok || name == "" {
		return nil, optsearch.Errorf(optsearch.EINVALID, "bound select has no name attribute")
	}

	control := &BoundControl{Key: name}
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		label := strings.TrimSpace(opt.Text())
		value, ok := opt.Attr("value")
		if !ok || value == "" {
			value = label
		}
		_, selected := opt.Attr("selected")
		control.Options = append(control.Options, optsearch.Option{
			Value:   value,
			Label:   label,
			Checked: selected,
		})
	})

	if len(control.Options) == 0 {
		return nil, optsearch.Errorf(optsearch.EINVALID, "bound select %q has no options", name)
	}

	return control, nil
}
