package mcp

import (
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search owns the index queried by the search and open tools.
	Search driving.SearchService

	// Navigation records the handoff when a result is opened.
	Navigation driving.NavigationService

	// Detail serves item pages and the menu resources.
	Detail driving.DetailService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
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
