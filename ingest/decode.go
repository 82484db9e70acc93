package ingest

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts a saved page to UTF-8. Pages that are already valid
// UTF-8 pass through with any byte order mark removed. Otherwise the
// charset is detected and decoded; bytes that still fail to decode are
// replaced with U+FFFD. The detected charset name is returned, or "UTF-8".
func Decode(data []byte) (string, string) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), "UTF-8"
	}

	result, err := chardet.NewHtmlDetector().DetectBest(data)
	if err != nil || result == nil {
		return strings.ToValidUTF8(string(data), "\uFFFD"), "UTF-8"
	}

	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD"), "UTF-8"
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD"), "UTF-8"
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = result.Charset
	}
	return strings.ToValidUTF8(string(decoded), "\uFFFD"), name
}
