package home

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
)

func sampleLinks() []domain.MenuLink {
	return []domain.MenuLink{
		{Name: "Бар", Path: "/menu/%D0%91%D0%B0%D1%80"},
		{Name: "Основное", Path: "/menu/%D0%9E%D1%81%D0%BD%D0%BE%D0%B2%D0%BD%D0%BE%D0%B5"},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 3)
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_MenusLoaded(t *testing.T) {
	view := NewView(nil)

	view.Update(messages.MenusLoaded{Menus: sampleLinks()})

	items := view.Items()
	require.Len(t, items, 5)
	assert.Equal(t, "Search", items[0].Label)
	assert.Equal(t, "Бар", items[1].Label)
	assert.Equal(t, messages.ViewMenu, items[1].View)
	assert.Equal(t, sampleLinks()[1].Path, items[2].Path)
	assert.Equal(t, "Help", items[3].Label)
	assert.True(t, items[4].Quit)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Selected(), "stops at the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected(), "stops at the first item")
}

func TestView_Enter_Search(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, changed.View)
}

func TestView_Enter_Menu(t *testing.T) {
	view := NewView(nil)
	view.SetMenus(sampleLinks(), nil)
	view.selected = 2

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	nav, ok := cmd().(messages.Navigate)
	require.True(t, ok)
	assert.Equal(t, sampleLinks()[1].Path, nav.Path)
}

func TestView_Enter_Help(t *testing.T) {
	view := NewView(nil)
	view.selected = 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHelp, changed.View)
}

func TestView_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 2

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Q(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_SetMenus_ClampsSelection(t *testing.T) {
	view := NewView(nil)
	view.SetMenus(sampleLinks(), nil)
	view.selected = 4

	view.SetMenus(nil, nil)

	assert.Equal(t, 0, view.Selected())
}

func TestView_View_NotReady(t *testing.T) {
	assert.Contains(t, NewView(nil).View(), "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetMenus(sampleLinks(), nil)

	output := view.View()

	assert.Contains(t, output, "menusearch")
	assert.Contains(t, output, "Search")
	assert.Contains(t, output, "Menus")
	assert.Contains(t, output, "Бар")
	assert.Contains(t, output, "Основное")
	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, ">")
}

func TestView_View_MenusError(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view.Update(messages.MenusLoaded{Err: errors.New("catalog unavailable")})

	assert.Contains(t, view.View(), "Menus unavailable: catalog unavailable")
	assert.Len(t, view.Items(), 3)
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil)

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}
