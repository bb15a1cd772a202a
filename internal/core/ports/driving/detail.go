package driving

import (
	"context"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// DetailService loads the pages search results deep-link to.
type DetailService interface {
	// Load opens an item page from an item path, consuming a matching handoff.
	Load(ctx context.Context, path string, opts DetailOptions) (*domain.DetailPage, error)

	// LoadMenu opens a menu listing from a menu path.
	LoadMenu(ctx context.Context, path string) (*domain.MenuPage, error)

	// Menus lists the menu names with their paths, in catalog order.
	Menus(ctx context.Context) ([]domain.MenuLink, error)
}

// DetailOptions adjusts how a detail page is built.
type DetailOptions struct {
	// English forces the English translation regardless of the handoff.
	English bool

	// Query highlights a query without a handoff.
	Query string
}
