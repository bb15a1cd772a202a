// Package tui provides an interactive terminal user interface for menusearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search owns the index of the search surface.
	Search driving.SearchService

	// Navigation carries the query from a selected result to its page.
	Navigation driving.NavigationService

	// Detail loads item and menu pages.
	Detail driving.DetailService

	// Watcher reports catalog changes. Optional.
	Watcher driven.CatalogWatcher
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Navigation == nil {
		return ErrMissingNavigationService
	}
	if p.Detail == nil {
		return ErrMissingDetailService
	}
	return nil
}
