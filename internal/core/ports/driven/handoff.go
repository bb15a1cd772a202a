package driven

import (
	"context"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// HandoffStore persists at most one pending navigation handoff per session.
type HandoffStore interface {
	// Put replaces the session's handoff.
	Put(ctx context.Context, session string, h domain.NavigationHandoff) error

	// Get returns the session's handoff, expired or not.
	// Returns nil and no error when the slot is empty.
	Get(ctx context.Context, session string) (*domain.NavigationHandoff, error)

	// Delete empties the session's slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, session string) error
}
