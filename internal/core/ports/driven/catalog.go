package driven

import (
	"context"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// Catalog reads the menu and item collections the search index is built from.
// The core never writes to it.
type Catalog interface {
	// Menus returns the distinct menu names.
	Menus(ctx context.Context) ([]string, error)

	// Dishes returns every catalog item, archived ones included.
	Dishes(ctx context.Context) ([]domain.SourceItem, error)

	// Dish returns one item by id.
	// Returns domain.ErrNotFound if no item has that id.
	Dish(ctx context.Context, id string) (*domain.SourceItem, error)
}

// CatalogWatcher is implemented by catalogs that can report changes.
type CatalogWatcher interface {
	// Watch calls onChange after the underlying data changes.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
