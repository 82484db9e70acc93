package ramendex

// Converter turns extracted HTML into text that keeps headings, lists and
// paragraph breaks, which is what brand records carry as content.
type Converter interface {
	Convert(html string) (string, error)
}
