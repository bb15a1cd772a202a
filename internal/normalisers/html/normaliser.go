package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor converts HTML fragments to plain text.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// PlainText returns the visible text of markup.
func (e *Extractor) PlainText(markup string) string {
	return PlainText(markup)
}

// Elements whose content is never visible text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Head:     true,
	atom.Svg:      true,
	atom.Template: true,
	atom.Title:    true,
}

// Elements that start and end on their own line.
var blocks = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Hr:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Li:         true,
	atom.Tr:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Table:      true,
	atom.Section:    true,
	atom.Article:    true,
}

// Table cells are separated by a space.
var cells = map[atom.Atom]bool{
	atom.Td: true,
	atom.Th: true,
}

// PlainText strips tags from markup, decodes entities, collapses runs of
// whitespace within a line and drops empty lines. Text without markup only
// has its whitespace collapsed.
func PlainText(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return collapse(markup)
	}

	var b strings.Builder
	depth := 0
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapse(b.String())
		case html.TextToken:
			if depth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			tag := atom.Lookup(name)
			switch {
			case skipped[tag]:
				if tt == html.StartTagToken {
					depth++
				} else if tt == html.EndTagToken && depth > 0 {
					depth--
				}
			case depth > 0:
			case blocks[tag]:
				b.WriteByte('\n')
			case cells[tag]:
				b.WriteByte(' ')
			}
		}
	}
}

// collapse normalises whitespace line by line.
func collapse(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
