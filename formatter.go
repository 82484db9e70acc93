package ramendex

import (
	"fmt"
	"strings"
)

// FormatRecords formats records for terminal display.
// Uses the title if available, falls back to the URL.
// Records are separated by blank lines.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		header := r.Title
		if header == "" {
			header = r.URL
		}
		var meta []string
		meta = append(meta, string(r.Section))
		if r.MenuCategory != "" {
			meta = append(meta, string(r.MenuCategory))
		}
		if r.Price != "" {
			meta = append(meta, r.Price)
		}
		parts = append(parts, fmt.Sprintf("## %s (%s)\n%s", header, strings.Join(meta, ", "), r.Content))
	}

	return strings.Join(parts, "\n\n")
}
