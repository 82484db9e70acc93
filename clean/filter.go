package clean

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/ramendex"
)

// Validator decides whether a canonical record is worth keeping.
type Validator struct {
	minContent map[ramendex.Section]int
	skipURLs   []string
	skipTitles map[string]bool
}

// NewValidator builds a Validator from the vocabulary's validity tables.
func NewValidator(v *Vocabulary) *Validator {
	skipTitles := make(map[string]bool, len(v.SkipTitles))
	for _, t := range v.SkipTitles {
		skipTitles[strings.ToLower(strings.TrimSpace(t))] = true
	}
	minContent := make(map[ramendex.Section]int, len(v.MinContentLength))
	for s, n := range v.MinContentLength {
		minContent[s] = n
	}
	return &Validator{
		minContent: minContent,
		skipURLs:   append([]string(nil), v.SkipURLPatterns...),
		skipTitles: skipTitles,
	}
}

// Valid reports whether r should be kept. Menu records with a title are
// always valid; their empty content is back-filled by the caller.
func (v *Validator) Valid(r *ramendex.Record) bool {
	if r.Title == "" {
		return false
	}
	if v.isListingPage(r) {
		return false
	}
	if r.Section == ramendex.SectionMenu {
		return true
	}
	return utf8.RuneCountInString(r.Content) >= v.minContent[r.Section]
}

func (v *Validator) isListingPage(r *ramendex.Record) bool {
	for _, p := range v.skipURLs {
		if p != "" && strings.Contains(r.URL, p) {
			return true
		}
	}
	if v.skipTitles[strings.ToLower(r.Title)] {
		return true
	}
	return isSiteRoot(r.URL)
}

func isSiteRoot(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return (u.Path == "" || u.Path == "/") && u.RawQuery == ""
}
