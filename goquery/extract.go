package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
	"golang.org/x/net/html"
)

// blockTags start a new text line when rendered.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}

// skipTags never contribute visible text.
var skipTags = map[string]bool{
	"head": true, "iframe": true, "noscript": true, "script": true,
	"style": true, "svg": true, "template": true,
}

// chromeSelector matches site chrome that is never part of a page's content.
const chromeSelector = "script, style, noscript, nav, header, footer"

func newDocument(rawHTML string, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, ramendex.Errorf(ramendex.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil, ramendex.Errorf(ramendex.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}

// contentRoot returns the element holding the page's content: main, then
// article, then body.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

// textLines renders the visible text of a selection as lines, one per block
// element, with runs of whitespace collapsed and empty lines dropped.
func textLines(sel *goquery.Selection) []string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.NewReplacer("\r", " ", "\n", " ").Replace(n.Data))
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
	}

	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// firstText returns the trimmed text of the first selector that matches
// a non-empty element.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		var text string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text = selectionText(s)
			return text == ""
		})
		if text != "" {
			return text
		}
	}
	return ""
}

// metaContent returns the content of the first meta tag whose property or
// name attribute equals one of keys.
func metaContent(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		for _, attr := range []string{"property", "name"} {
			content, ok := doc.Find("meta[" + attr + "='" + key + "']").First().Attr("content")
			if ok && strings.TrimSpace(content) != "" {
				return strings.TrimSpace(content)
			}
		}
	}
	return ""
}

// pageTitle returns the h1 text, falling back to og:title and <title>.
func pageTitle(doc *goquery.Document) string {
	if title := firstText(doc, "h1"); title != "" {
		return title
	}
	if title := metaContent(doc, "og:title"); title != "" {
		return title
	}
	return firstText(doc, "title")
}

// canonicalURL returns the page's canonical link resolved against base,
// or base itself when the page declares none.
func canonicalURL(doc *goquery.Document, base *url.URL) string {
	href, ok := doc.Find("link[rel='canonical']").First().Attr("href")
	if ok {
		if resolved := resolveURL(base, href); resolved != "" {
			return resolved
		}
	}
	stripped := *base
	stripped.Fragment = ""
	return stripped.String()
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or is not HTTP.
// Fragments are stripped from the resolved URL.
func resolveURL(base *url.URL, href string) string {
	if isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// urlPath returns the lower-cased path of pageURL, or "" if it cannot be parsed.
func urlPath(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Path)
}
