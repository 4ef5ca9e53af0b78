package optsearch

import (
	"fmt"
	"strings"
)

// FormatRecords formats records for terminal display. Each record shows its
// name plus the well-known descriptive fields present in the database
// (prompt/type/location for symbols, arch/vendor for boards). Records are
// separated by blank lines.
func FormatRecords(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		var b strings.Builder
		b.WriteString(r.Name())
		if prompt, ok := r["prompt"].(string); ok && prompt != "" {
			b.WriteString("  " + prompt)
		}
		for _, key := range []string{"type", "arch", "vendor", "menupath"} {
			if v, ok := r[key].(string); ok && v != "" {
				b.WriteString("\n  " + key + ": " + v)
			}
		}
		if filename, ok := r["filename"].(string); ok && filename != "" {
			loc := filename
			if linenr, ok := r["linenr"].(float64); ok {
				loc = fmt.Sprintf("%s:%d", filename, int(linenr))
			}
			b.WriteString("\n  location: " + loc)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
