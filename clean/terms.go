package clean

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// terms matches any of a fixed list of keywords, case-insensitively.
// ASCII keywords only match as whole words; other keywords match anywhere.
type terms struct {
	re *regexp.Regexp
}

func newTerms(words []string, plural bool) terms {
	words = slices.Clone(words)
	slices.SortStableFunc(words, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	parts := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		q := regexp.QuoteMeta(w)
		if isASCII(w) {
			if plural {
				q += "s?"
			}
			q = `\b` + q + `\b`
		}
		parts = append(parts, q)
	}
	if len(parts) == 0 {
		return terms{}
	}
	return terms{re: regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)}
}

func (t terms) match(s string) bool {
	return t.re != nil && t.re.MatchString(s)
}

func (t terms) find(s string) string {
	if t.re == nil {
		return ""
	}
	return t.re.FindString(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
