// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewHome lists the menus and the entry to search.
	ViewHome ViewType = iota
	// ViewSearch is the search surface.
	ViewSearch
	// ViewDetail is an item page.
	ViewDetail
	// ViewMenu lists the items of one menu.
	ViewMenu
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewSearch:
		return "search"
	case ViewDetail:
		return "detail"
	case ViewMenu:
		return "menu"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IndexLoaded reports the end of an index build. Generation ties the reply
// to the surface activation that asked for it.
type IndexLoaded struct {
	Generation int
	Err        error
}

// CatalogChanged is sent by the catalog watcher when the data changed.
type CatalogChanged struct{}

// IndexChanged is sent after the catalog changed and the index was rebuilt.
type IndexChanged struct {
	Err error
}

// SearchClosed is sent when the search surface is dismissed without a selection.
type SearchClosed struct{}

// Navigate asks the app to open a deep-link path.
type Navigate struct {
	Path string
}

// DetailLoaded carries an item page.
type DetailLoaded struct {
	Page *domain.DetailPage
	Err  error
}

// MenuLoaded carries a menu listing.
type MenuLoaded struct {
	Page *domain.MenuPage
	Err  error
}

// MenusLoaded carries the menu names for the home view.
type MenusLoaded struct {
	Menus []domain.MenuLink
	Err   error
}

// FlashExpired ends the highlight of a focused block. Seq identifies the
// flash it belongs to, so a stale tick does not end a newer flash.
type FlashExpired struct {
	Seq int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
