package driving

import (
	"context"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// NavigationService hands the active query from the search surface to the
// page a result deep-links to.
type NavigationService interface {
	// Select records the handoff for result and returns the path to navigate to.
	Select(ctx context.Context, query string, result domain.SearchResult) (string, error)

	// Consume returns the handoff when it targets itemID.
	// A missing, expired or mismatched handoff returns nil and no error;
	// a mismatched one is left in place.
	Consume(ctx context.Context, itemID string) (*domain.NavigationHandoff, error)

	// Pending returns the stored handoff and its state.
	Pending(ctx context.Context) (*domain.NavigationHandoff, domain.HandoffState, error)

	// Clear drops any pending handoff.
	Clear(ctx context.Context) error
}
