// Package detail provides the item page of the TUI.
//
// A page opened from a search result restores the query, scrolls the first
// block containing it to the middle of the screen and highlights that block
// for domain.FlashDuration.
package detail

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/core/services"
)

// View renders one item page in a scrollable viewport.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	viewport  viewport.Model
	statusbar *status.Bar

	detailService driving.DetailService
	ctx           context.Context

	path    string
	page    *domain.DetailPage
	err     error
	english bool

	// offsets holds the first content line of each anchor.
	offsets []int
	// heights holds the line count of each anchor block.
	heights []int

	flashing bool
	flashSeq int

	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap, detailService driving.DetailService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		viewport:      viewport.New(80, 20),
		statusbar:     status.NewBar(s, km),
		detailService: detailService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
	v.statusbar.SetState(status.StateDetail)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load opens the page at path. A pending handoff for the item is consumed.
func (v *View) Load(path string) tea.Cmd {
	v.path = path
	v.english = false
	return v.load(driving.DetailOptions{})
}

func (v *View) load(opts driving.DetailOptions) tea.Cmd {
	svc := v.detailService
	ctx := v.ctx
	path := v.path
	return func() tea.Msg {
		if svc == nil {
			return messages.DetailLoaded{Err: ErrNoDetailService}
		}
		page, err := svc.Load(ctx, path, opts)
		return messages.DetailLoaded{Page: page, Err: err}
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DetailLoaded:
		return v, v.handleLoaded(msg)

	case messages.FlashExpired:
		if msg.Seq == v.flashSeq && v.flashing {
			v.flashing = false
			v.render()
		}
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Language) && v.page != nil {
			// The handoff is already consumed, so the query is carried over.
			v.english = !v.english
			return v, v.load(driving.DetailOptions{English: v.english, Query: v.page.Query})
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// handleLoaded shows a page and starts the flash on its focused block.
func (v *View) handleLoaded(msg messages.DetailLoaded) tea.Cmd {
	if msg.Err != nil {
		v.err = msg.Err
		v.page = nil
		v.viewport.SetContent(v.styles.Error.Render("Error: " + msg.Err.Error()))
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return nil
	}

	v.err = nil
	v.page = msg.Page
	v.english = msg.Page.Language == domain.LanguageEnglish
	v.statusbar.SetState(status.StateDetail)
	v.statusbar.SetMessage("")

	_, focused := msg.Page.Focused()
	v.flashing = focused
	v.render()
	if !focused {
		v.viewport.GotoTop()
		return nil
	}

	v.centre(msg.Page.Focus)
	v.flashSeq++
	seq := v.flashSeq
	return tea.Tick(domain.FlashDuration, func(time.Time) tea.Msg {
		return messages.FlashExpired{Seq: seq}
	})
}

// centre scrolls so the middle of anchor i sits in the middle of the viewport.
func (v *View) centre(i int) {
	if i < 0 || i >= len(v.offsets) {
		return
	}
	mid := v.offsets[i] + v.heights[i]/2
	v.viewport.SetYOffset(max(mid-v.viewport.Height/2, 0))
}

// render lays out the page into the viewport, keeping the scroll position.
func (v *View) render() {
	if v.page == nil {
		return
	}
	page := v.page
	query := page.Query
	wrap := max(v.width-6, 20)

	var lines []string
	v.offsets = make([]int, len(page.Anchors))
	v.heights = make([]int, len(page.Anchors))

	for i, a := range page.Anchors {
		var block []string
		if a.Key == domain.AnchorTitle {
			block = append(block, v.styles.Title.Render(v.mark(a.Text, query, v.styles.Title))+v.badges())
			if len(page.Tags) > 0 {
				block = append(block, v.styles.Muted.Render(strings.Join(page.Tags, " · ")))
			}
		} else {
			pointer := "  "
			if i == page.Focus {
				pointer = "> "
			}
			block = append(block, "", v.styles.Subtitle.Render(pointer+a.Label))
			wrapped := ansi.Wordwrap(a.Text, wrap, "")
			for _, line := range strings.Split(wrapped, "\n") {
				block = append(block, "    "+v.mark(line, query, v.styles.Normal))
			}
		}

		if v.flashing && i == page.Focus {
			for j := range block {
				block[j] = v.styles.Flash.Width(v.width).Render(block[j])
			}
		}

		v.offsets[i] = len(lines)
		v.heights[i] = len(block)
		lines = append(lines, block...)
	}

	offset := v.viewport.YOffset
	v.viewport.SetContent(strings.Join(lines, "\n"))
	v.viewport.SetYOffset(offset)
}

// mark highlights every occurrence of query in text.
func (v *View) mark(text, query string, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range services.HighlightAll(text, query) {
		if seg.Match {
			b.WriteString(v.styles.Match.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

func (v *View) badges() string {
	page := v.page
	b := v.styles.Badge.Render(string(page.Kind))
	if page.Language == domain.LanguageEnglish {
		b += v.styles.Badge.Render("EN")
	}
	if page.Item.IsArchived() {
		b += v.styles.Archived.Render("ARCHIVED")
	}
	return b
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Muted.Render(v.path)
	if v.page != nil && v.page.Query != "" {
		header += v.styles.Muted.Render("  search: ") + v.styles.Match.Render(v.page.Query)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", v.viewport.View(), v.statusbar.View())
}

// Page returns the loaded page, or nil.
func (v *View) Page() *domain.DetailPage {
	return v.page
}

// Path returns the path of the page.
func (v *View) Path() string {
	return v.path
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// Flashing reports whether the focused block is highlighted.
func (v *View) Flashing() bool {
	return v.flashing
}

// YOffset returns the scroll position.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}

// AnchorOffset returns the first line of anchor i, or -1.
func (v *View) AnchorOffset(i int) int {
	if i < 0 || i >= len(v.offsets) {
		return -1
	}
	return v.offsets[i]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	// header, gap and status bar
	v.viewport.Width = width
	v.viewport.Height = max(height-3, 1)
	v.statusbar.SetWidth(width)
	v.render()
}
