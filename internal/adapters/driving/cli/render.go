package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	coreservices "github.com/custodia-labs/menusearch/internal/core/services"
)

// marker wraps matched text for display.
type marker func(string) string

var matchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))

// markerFor picks ANSI styling on a terminal and brackets everywhere else,
// so piped output still shows where the match is.
func markerFor(w io.Writer) marker {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func(s string) string { return matchStyle.Render(s) }
	}
	return bracket
}

func bracket(s string) string {
	return "[" + s + "]"
}

// flatten puts multi-line text on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// snippetLine renders a result snippet with the match marked.
func snippetLine(r *domain.SearchResult, query string, mark marker) string {
	h := coreservices.Highlight(r.Snippet, query)
	var b strings.Builder
	if r.MatchIndex > r.SnippetIndex {
		b.WriteString("...")
	}
	if !h.Found {
		b.WriteString(flatten(r.Snippet))
		return b.String()
	}
	// Keep the spaces around the match when flattening each part.
	b.WriteString(strings.ReplaceAll(h.Before, "\n", " "))
	b.WriteString(mark(strings.ReplaceAll(h.Match, "\n", " ")))
	b.WriteString(strings.ReplaceAll(h.After, "\n", " "))
	return b.String()
}

// markAll marks every occurrence of query in text.
func markAll(text, query string, mark marker) string {
	var b strings.Builder
	for _, seg := range coreservices.HighlightAll(text, query) {
		if seg.Match {
			b.WriteString(mark(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// badges returns the trailing labels of a result title.
func badges(r *domain.SearchResult) string {
	var parts []string
	if r.IsEnglish {
		parts = append(parts, "EN")
	}
	if r.IsArchived {
		parts = append(parts, "ARCHIVED")
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// kindLabel is a short text stand-in for the result icon.
func kindLabel(r *domain.SearchResult) string {
	if r.Type == domain.RecordMenu {
		return "menu"
	}
	if r.ItemKind == "" {
		return string(domain.KindDish)
	}
	return string(r.ItemKind)
}

// printResults writes numbered result rows.
func printResults(w io.Writer, results []domain.SearchResult, query string, mark marker) {
	for i := range results {
		r := &results[i]
		fmt.Fprintf(w, "  [%d] %-4s %s%s\n", i+1, kindLabel(r), r.Title, badges(r))
		fmt.Fprintf(w, "       %s • %s\n", r.Location, r.Field.Label())
		fmt.Fprintf(w, "       %s\n", snippetLine(r, query, mark))
		fmt.Fprintf(w, "       %s\n\n", r.Path)
	}
}

// printDetail writes an item page with the restored query marked.
func printDetail(w io.Writer, page *domain.DetailPage, mark marker) {
	title := page.Item.Title
	if len(page.Anchors) > 0 && page.Anchors[0].Key == domain.AnchorTitle {
		title = page.Anchors[0].Text
	}
	fmt.Fprintf(w, "%s  (%s #%s)\n", markAll(title, page.Query, mark), page.Kind, page.Item.ID)
	if page.Item.IsArchived() {
		fmt.Fprintln(w, "ARCHIVED")
	}
	if len(page.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(page.Tags, ", "))
	}
	if page.Query != "" {
		fmt.Fprintf(w, "Query: %s\n", page.Query)
	}

	for i, a := range page.Anchors {
		if a.Key == domain.AnchorTitle {
			continue
		}
		pointer := "  "
		if i == page.Focus {
			pointer = "> "
		}
		fmt.Fprintf(w, "\n%s%s\n", pointer, a.Label)
		for _, line := range strings.Split(markAll(a.Text, page.Query, mark), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

// printMenu writes a menu listing grouped by section.
func printMenu(w io.Writer, page *domain.MenuPage) {
	fmt.Fprintf(w, "%s (%d items)\n", page.Name, page.Count())
	for _, section := range page.Sections {
		name := section.Name
		if name == "" {
			name = domain.NoSectionLabel
		}
		fmt.Fprintf(w, "\n  %s\n", name)
		for i := range section.Items {
			it := &section.Items[i]
			title := it.Title
			if strings.TrimSpace(title) == "" {
				title = domain.UntitledLabel
			}
			fmt.Fprintf(w, "    - %s  %s\n", title, domain.ItemPath(coreservices.ClassifyItem(it), it.ID))
		}
	}
}
