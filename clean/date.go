package clean

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// Layouts without a year; the year is taken from the clock.
var yearlessDateLayouts = []string{
	"Jan 2",
	"January 2",
}

// StandardizeDate rewrites a publication date as YYYY-MM-DD. Relative dates
// ("3 days ago") and unrecognized formats are returned trimmed but otherwise
// unchanged.
func StandardizeDate(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(strings.ToLower(s), "ago") {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	year := strconv.Itoa(now.Year())
	for _, layout := range yearlessDateLayouts {
		if t, err := time.Parse(layout+", 2006", s+", "+year); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return s
}
