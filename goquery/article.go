package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.PageParser = (*ArticleParser)(nil)

// minParagraphRunes is the length a paragraph must exceed to count as
// article text rather than a caption or button label.
const minParagraphRunes = 20

// ArticleParser parses brand pages (stories, news posts, company profiles)
// into a single Brand Information record.
//
// Content comes from the Extractor and Converter when both are set and the
// extractor finds a main body. Otherwise it falls back to the page's long
// paragraphs joined by blank lines.
type ArticleParser struct {
	Extractor ramendex.Extractor
	Converter ramendex.Converter
}

// NewArticleParser creates a new ArticleParser. Either collaborator may be nil.
func NewArticleParser(extractor ramendex.Extractor, converter ramendex.Converter) *ArticleParser {
	return &ArticleParser{Extractor: extractor, Converter: converter}
}

// Name returns the parser identifier.
func (p *ArticleParser) Name() string {
	return "article"
}

// Parse extracts the brand record.
func (p *ArticleParser) Parse(html string, pageURL string) ([]ramendex.RawRecord, error) {
	doc, base, err := newDocument(html, pageURL)
	if err != nil {
		return nil, err
	}

	title := pageTitle(doc)
	content, extractedTitle := p.extract(html)
	if title == "" {
		title = extractedTitle
	}
	if content == "" {
		content = strings.Join(paragraphs(doc), "\n\n")
	}

	rec := ramendex.RawRecord{
		"url":     canonicalURL(doc, base),
		"title":   title,
		"content": content,
		"section": string(ramendex.SectionBrand),
	}
	if date := articleDate(doc); date != "" {
		rec["date"] = date
	}
	if author := firstText(doc, "span[class*='author']", "div[class*='author']", "[rel='author']"); author != "" {
		rec["author"] = author
	}
	if tags := articleTags(doc); len(tags) > 0 {
		rec["tags"] = tags
	}
	return []ramendex.RawRecord{rec}, nil
}

// extract runs the extractor and converter. Failures yield empty content so
// the caller falls back to paragraphs.
func (p *ArticleParser) extract(html string) (content string, title string) {
	if p.Extractor == nil || p.Converter == nil {
		return "", ""
	}
	result, err := p.Extractor.Extract(html)
	if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
		return "", ""
	}
	markdown, err := p.Converter.Convert(result.ContentHTML)
	if err != nil {
		return "", result.Title
	}
	return strings.TrimSpace(markdown), result.Title
}

func articleDate(doc *goquery.Document) string {
	return firstText(doc,
		"time",
		"span[class*='date'], span[class*='time']",
		"div[class*='date'], div[class*='time'], div[class*='published']",
	)
}

func articleTags(doc *goquery.Document) []string {
	sel := doc.Find("a[class*='tag']")
	if sel.Length() == 0 {
		sel = doc.Find("span[class*='tag']")
	}
	var tags []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := selectionText(s); text != "" {
			tags = append(tags, text)
		}
	})
	return tags
}

// paragraphs returns the long paragraphs of the first content container
// that has any, then of the whole page.
func paragraphs(doc *goquery.Document) []string {
	containers := []string{
		"article",
		"div[class*='content'], div[class*='entry']",
		"main",
		"div[class*='blog-post'], div[class*='post-body']",
	}
	for _, selector := range containers {
		if texts := longParagraphs(doc.Find(selector).First()); len(texts) > 0 {
			return texts
		}
	}
	return longParagraphs(doc.Selection)
}

func longParagraphs(sel *goquery.Selection) []string {
	var texts []string
	sel.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minParagraphRunes {
			texts = append(texts, text)
		}
	})
	return texts
}
