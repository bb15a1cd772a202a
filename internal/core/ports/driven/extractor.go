package driven

// TextExtractor converts rich text (HTML) into plain text for indexing.
// It must not execute scripts or load resources.
type TextExtractor interface {
	// PlainText returns the visible text of markup with whitespace collapsed.
	PlainText(markup string) string
}
