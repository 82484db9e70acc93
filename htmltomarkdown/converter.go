package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.Converter = (*Converter)(nil)

// mediaTags carry no text worth indexing.
var mediaTags = []string{"img", "picture", "video", "audio", "iframe", "svg", "form", "button"}

var blankLines = regexp.MustCompile(`\n{3,}`)

// Converter renders extracted brand content as Markdown, keeping headings,
// lists and tables and dropping media.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a Converter with the commonmark and table plugins.
func NewConverter() *Converter {
	md := converter.NewConverter(converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	))
	for _, tag := range mediaTags {
		md.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}
	return &Converter{md: md}
}

// Convert returns fragment as Markdown with runs of blank lines collapsed.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", ramendex.Errorf(ramendex.EINVALID, "empty HTML input")
	}
	out, err := c.md.ConvertString(fragment)
	if err != nil {
		return "", ramendex.Errorf(ramendex.EINVALID, "convert brand content: %v", err)
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(out, "\n\n")), nil
}
