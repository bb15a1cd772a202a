// Package menupage provides the menu listing view of the TUI.
package menupage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/core/services"
)

// ErrNoDetailService indicates that no detail service was provided.
var ErrNoDetailService = errors.New("detail service is required")

// View lists the active items of one menu grouped by section.
type View struct {
	styles        *styles.Styles
	detailService driving.DetailService
	ctx           context.Context

	path  string
	page  *domain.MenuPage
	items []domain.SourceItem
	err   error

	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, detailService driving.DetailService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		detailService: detailService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
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

// Load opens the menu at path.
func (v *View) Load(path string) tea.Cmd {
	v.path = path
	svc := v.detailService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.MenuLoaded{Err: ErrNoDetailService}
		}
		page, err := svc.LoadMenu(ctx, path)
		return messages.MenuLoaded{Page: page, Err: err}
	}
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.MenuLoaded:
		v.err = msg.Err
		v.page = msg.Page
		v.items = v.items[:0]
		v.selected = 0
		if msg.Page != nil {
			for _, s := range msg.Page.Sections {
				v.items = append(v.items, s.Items...)
			}
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "enter":
			if item := v.SelectedItem(); item != nil {
				path := domain.ItemPath(services.ClassifyItem(item), item.ID)
				return v, func() tea.Msg { return messages.Navigate{Path: path} }
			}
		}
	}
	return v, nil
}

// View renders the menu listing.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.err != nil {
		return v.styles.Error.Render("Error: " + v.err.Error())
	}
	if v.page == nil {
		return v.styles.Muted.Render("Loading data...")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.page.Name))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d items", v.page.Count())))
	b.WriteString("\n")

	// keep the selected row on screen
	budget := max(v.height-4, 3)
	row, start := 0, 0
	lines := make([]string, 0, len(v.items)+len(v.page.Sections)*2)
	for _, section := range v.page.Sections {
		name := section.Name
		if strings.TrimSpace(name) == "" {
			name = domain.NoSectionLabel
		}
		lines = append(lines, "", v.styles.Subtitle.Render(name))
		for i := range section.Items {
			title := section.Items[i].Title
			if strings.TrimSpace(title) == "" {
				title = domain.UntitledLabel
			}
			if row == v.selected {
				lines = append(lines, v.styles.Selected.Render("> "+title))
				start = max(len(lines)-budget, 0)
			} else {
				lines = append(lines, v.styles.Normal.Render("  "+title))
			}
			row++
		}
	}
	if len(v.items) == 0 {
		lines = append(lines, "", v.styles.Muted.Render("No items."))
	}

	end := min(start+budget, len(lines))
	b.WriteString(strings.Join(lines[start:end], "\n"))
	return b.String()
}

// Page returns the loaded menu, or nil.
func (v *View) Page() *domain.MenuPage {
	return v.page
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// SelectedItem returns the highlighted item, or nil.
func (v *View) SelectedItem() *domain.SourceItem {
	if v.selected < 0 || v.selected >= len(v.items) {
		return nil
	}
	return &v.items[v.selected]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
