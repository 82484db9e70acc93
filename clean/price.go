package clean

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/ramendex"
)

var (
	currencyPricePattern = regexp.MustCompile(`[¥￥]\s*([0-9][0-9,]*)|([0-9][0-9,]*)\s*円`)
	bareNumberPattern    = regexp.MustCompile(`[0-9][0-9,]*`)
)

// ParsePrice extracts a price from text and returns it in canonical form
// ("¥1,200"). The first currency-tagged amount wins. Without one, the
// largest bare number is used. Returns "" if text holds no amount.
func ParsePrice(text string) string {
	if p := ParseTaggedPrice(text); p != "" {
		return p
	}
	largest := 0
	for _, m := range bareNumberPattern.FindAllString(text, -1) {
		if n, ok := parseAmount(m); ok && n > largest {
			largest = n
		}
	}
	if largest == 0 {
		return ""
	}
	return FormatYen(largest)
}

// ParseTaggedPrice is ParsePrice without the bare-number fallback.
func ParseTaggedPrice(text string) string {
	for _, m := range currencyPricePattern.FindAllStringSubmatch(text, -1) {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if n, ok := parseAmount(digits); ok && n > 0 {
			return FormatYen(n)
		}
	}
	return ""
}

// PriceAmount returns the integer amount embedded in a price string.
func PriceAmount(price string) (int, bool) {
	m := bareNumberPattern.FindString(price)
	if m == "" {
		return 0, false
	}
	return parseAmount(m)
}

func parseAmount(s string) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// FormatYen renders n with the canonical currency symbol and thousands
// separators.
func FormatYen(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	b.WriteString("¥")
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Bucket returns the price range of a price string, or "" if it holds no
// amount.
func Bucket(price string) ramendex.PriceRange {
	n, ok := PriceAmount(price)
	if !ok {
		return ""
	}
	return BucketAmount(n)
}

// BucketAmount returns the half-open price range containing n.
func BucketAmount(n int) ramendex.PriceRange {
	switch {
	case n < 1000:
		return ramendex.PriceUnder1000
	case n < 2000:
		return ramendex.Price1000To2000
	case n < 3000:
		return ramendex.Price2000To3000
	case n < 5000:
		return ramendex.Price3000To5000
	case n < 10000:
		return ramendex.Price5000To10000
	}
	return ramendex.PriceOver10000
}
