package clean

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern       = regexp.MustCompile(`<[^>]+>`)
	invisiblePattern = regexp.MustCompile(`[\x{200B}-\x{200D}\x{2060}\x{FEFF}]`)
	spaceRunPattern  = regexp.MustCompile(`[ \t\f\v]+`)
	blankRunPattern  = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips markup and entities, removes invisible characters,
// applies NFKC and collapses whitespace. It is total and idempotent: passes
// repeat until one changes nothing, so escaped markup of any depth is
// fully decoded.
func Normalize(s string) string {
	for {
		next := normalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = invisiblePattern.ReplaceAllString(s, "")
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRunPattern.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankRunPattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Encodings tried, in order, when reversing a mis-decoded UTF-8 text.
var repairEncodings = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// Runes that UTF-8 lead and continuation bytes turn into when mis-decoded
// as an 8-bit encoding.
var leadGlyphs, continuationGlyphs = mojibakeGlyphs()

func mojibakeGlyphs() (lead, cont map[rune]bool) {
	lead, cont = map[rune]bool{}, map[rune]bool{}
	for _, cm := range repairEncodings {
		for b := 0xC2; b <= 0xF4; b++ {
			lead[cm.DecodeByte(byte(b))] = true
		}
		for b := 0x80; b <= 0xBF; b++ {
			cont[cm.DecodeByte(byte(b))] = true
		}
	}
	return lead, cont
}

// MojibakeScore returns the ratio of mis-decoded UTF-8 byte pairs among the
// first sample runes of s.
func MojibakeScore(s string, sample int) float64 {
	if sample <= 0 {
		sample = 500
	}
	var prev rune
	var n, pairs int
	for _, r := range s {
		if n == sample {
			break
		}
		if n > 0 && leadGlyphs[prev] && continuationGlyphs[r] {
			pairs++
		}
		prev = r
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(pairs) / float64(n)
}

// Repairer reverses double-encoding corruption.
type Repairer struct {
	sample    int
	threshold float64
}

// NewRepairer returns a Repairer using the vocabulary's mojibake settings.
func NewRepairer(v *Vocabulary) *Repairer {
	return &Repairer{
		sample:    v.MojibakeSampleRunes,
		threshold: v.MojibakeThreshold,
	}
}

// Repair returns s with double-encoding corruption reversed and true, or s
// unchanged and false when no corruption is detected or no candidate
// repair lowers the corruption score.
func (r *Repairer) Repair(s string) (string, bool) {
	score := MojibakeScore(s, r.sample)
	if score == 0 || score < r.threshold {
		return s, false
	}
	for _, cm := range repairEncodings {
		b, err := cm.NewEncoder().String(s)
		if err != nil || !utf8.ValidString(b) {
			continue
		}
		if MojibakeScore(b, r.sample) < score {
			return b, true
		}
	}
	return s, false
}
