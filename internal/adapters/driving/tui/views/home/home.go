// Package home provides the start view of the TUI: search entry and menus.
package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// Item represents a single home entry.
type Item struct {
	Label string
	View  messages.ViewType
	// Path is set for menu entries and opened on selection.
	Path string
	Quit bool // If true, selecting this item quits the app
}

// View lists the search entry, the catalog menus and the app actions.
type View struct {
	styles   *styles.Styles
	menus    []Item
	err      error
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new home view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the home view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Items returns the entries in display order.
func (v *View) Items() []Item {
	items := make([]Item, 0, len(v.menus)+3)
	items = append(items, Item{Label: "Search", View: messages.ViewSearch})
	items = append(items, v.menus...)
	items = append(items,
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)
	return items
}

// SetMenus replaces the menu entries. An error is shown instead of menus.
func (v *View) SetMenus(links []domain.MenuLink, err error) {
	v.err = err
	v.menus = v.menus[:0]
	for _, l := range links {
		v.menus = append(v.menus, Item{Label: l.Name, View: messages.ViewMenu, Path: l.Path})
	}
	if v.selected >= len(v.Items()) {
		v.selected = 0
	}
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.MenusLoaded:
		v.SetMenus(msg.Menus, msg.Err)
		return v, nil

	case tea.KeyMsg:
		items := v.Items()
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := items[v.selected]
			switch {
			case item.Quit:
				return v, tea.Quit
			case item.Path != "":
				return v, func() tea.Msg {
					return messages.Navigate{Path: item.Path}
				}
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the home view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("menusearch"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Restaurant menu search"))
	b.WriteString("\n\n")

	items := v.Items()
	for i, item := range items {
		if item.Path != "" && (i == 0 || items[i-1].Path == "") {
			b.WriteString("\n")
			b.WriteString(v.styles.Subtitle.Render("Menus"))
			b.WriteString("\n")
		}
		if item.Label == "Help" {
			if v.err != nil {
				b.WriteString("\n")
				b.WriteString(v.styles.Error.Render("Menus unavailable: " + v.err.Error()))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [/] Search  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
