// Package html renders records as self-contained HTML fragments shaped
// like the original documentation page's result entries: a definition list
// with the symbol name as the term and one row per descriptive field.
package html

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/fwojciec/optsearch"
)

// Ensure Renderer implements optsearch.Renderer at compile time.
var _ optsearch.Renderer = (*Renderer)(nil)

// fragmentTemplate mirrors the dl/dt/dd layout of the original results
// list. Field values may carry cross-reference anchors produced by the
// database builder, so they are injected as-is.
const fragmentTemplate = `<dl class="record">
<dt id="{{.Anchor}}"><a href="#{{.Anchor}}">{{.Name}}</a>{{if .Prompt}} <em>{{.Prompt}}</em>{{end}}</dt>
{{- range .Rows}}
<dd><strong>{{.Label}}</strong> {{.Value}}</dd>
{{- end}}
</dl>`

// symbolFields are the descriptive fields surfaced for config symbols, in
// display order; boardFields likewise for hardware boards.
var (
	symbolFields = []string{"type", "help", "dependencies", "defaults", "alt_defaults", "selects", "selected_by", "implies", "implied_by", "ranges", "choices", "menupath"}
	boardFields  = []string{"arch", "vendor", "main_flash_size", "main_ram_size"}
)

// Renderer produces one HTML fragment per record.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("fragment").Parse(fragmentTemplate)),
	}
}

type row struct {
	Label string
	Value template.HTML
}

type fragment struct {
	Anchor string
	Name   string
	Prompt string
	Rows   []row
}

// Render returns a self-contained display fragment for the record.
func (r *Renderer) Render(rec optsearch.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	f := fragment{
		Anchor: rec.Name(),
		Name:   rec.Name(),
	}
	if prompt, ok := rec["prompt"].(string); ok {
		f.Prompt = prompt
	}

	for _, key := range append(append([]string{}, symbolFields...), boardFields...) {
		v, ok := rec.Field(key)
		if !ok {
			continue
		}
		value := fieldValue(v)
		if value == "" {
			continue
		}
		f.Rows = append(f.Rows, row{Label: key, Value: template.HTML(value)})
	}

	if filename, ok := rec["filename"].(string); ok && filename != "" {
		loc := filename
		if linenr, ok := rec["linenr"].(float64); ok {
			loc = fmt.Sprintf("%s:%d", filename, int(linenr))
		}
		f.Rows = append(f.Rows, row{Label: "location", Value: template.HTML(template.HTMLEscapeString(loc))})
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, f); err != nil {
		return "", optsearch.Errorf(optsearch.EINTERNAL, "rendering record %q: %v", rec.Name(), err)
	}
	return b.String(), nil
}

// fieldValue flattens a database field into display text. List fields join
// with commas; nested counts and numbers format as integers when whole.
func fieldValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := fieldValue(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}
