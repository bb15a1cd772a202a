// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/services"
)

// rowHeight is the number of lines one result takes, including the gap.
const rowHeight = 4

// snippetLead is the most context kept before a match on a result row.
const snippetLead = 12

const ellipsis = "..."

// ResultList displays search results in a navigable list.
// Only arrow keys move the selection; letters belong to the query.
type ResultList struct {
	results  []domain.SearchResult
	query    string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		case tea.KeyPgUp:
			r.SetSelected(max(r.selected-r.visibleCount(), 0))
		case tea.KeyPgDown:
			r.SetSelected(min(r.selected+r.visibleCount(), len(r.results)-1))
		default:
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return ""
	}

	lines := make([]string, 0, len(r.results)*rowHeight+2)
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "")

	visible := r.visibleCount()
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]), "")
	}

	return strings.Join(lines, "\n")
}

func (r *ResultList) visibleCount() int {
	return max((r.height-2)/rowHeight, 1)
}

// renderResult formats one result: title line, location line and snippet.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	text := r.styles.Normal
	if result.IsArchived {
		text = r.styles.Muted
	}

	title := ansi.Truncate(result.Title, max(r.width-24, 10), ellipsis)
	head := indicator + styles.Glyph(result.Icon()) + " " + title
	if index == r.selected {
		head = r.styles.Selected.Render(head)
	} else {
		head = text.Render(head)
	}
	if result.IsEnglish {
		head += r.styles.Badge.Render("EN")
	}
	if result.IsArchived {
		head += r.styles.Archived.Render("ARCHIVED")
	}

	where := ansi.Truncate(result.Location+" • "+result.Field.Label(), max(r.width-6, 20), ellipsis)
	whereLine := r.styles.Muted.Render("    " + where)

	return head + "\n" + whereLine + "\n" + "    " + r.renderSnippet(result, text)
}

// renderSnippet draws the snippet on one line with the first match marked.
func (r *ResultList) renderSnippet(result *domain.SearchResult, text lipgloss.Style) string {
	snippet := snippetLine(result, r.query, max(r.width-6, 20))

	h := services.Highlight(snippet, r.query)
	if !h.Found {
		return r.styles.Muted.Render(snippet)
	}
	return text.Render(h.Before) + r.styles.Match.Render(h.Match) + text.Render(h.After)
}

// snippetLine fits the snippet into width cells. Leading context beyond
// snippetLead runes is dropped first so the match stays on screen.
func snippetLine(result *domain.SearchResult, query string, width int) string {
	runes := []rune(result.Snippet)
	at := min(max(result.SnippetIndex, 0), len(runes))
	clipped := result.MatchIndex > result.SnippetIndex

	lead := min(snippetLead, max(width-2*len(ellipsis)-len([]rune(query)), 0))
	if at > lead {
		runes = runes[at-lead:]
		clipped = true
	}

	line := strings.Join(strings.Fields(string(runes)), " ")
	if clipped {
		line = ellipsis + line
	}
	return ansi.Truncate(line, width, ellipsis)
}

// SetResults updates the result list and the query used to mark matches.
func (r *ResultList) SetResults(query string, results []domain.SearchResult) {
	r.query = strings.TrimSpace(query)
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Query returns the query the results were computed for.
func (r *ResultList) Query() string {
	return r.query
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
