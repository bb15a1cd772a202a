package driving

import (
	"context"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// SearchService provides the global search to external actors.
// One service value owns the index of one search session.
type SearchService interface {
	// Open loads the catalog and builds the index.
	// On failure the index stays empty and the error wraps domain.ErrCatalogUnavailable.
	Open(ctx context.Context) error

	// Search runs a query against the current index.
	// While the index is loading or failed it returns no results and no error.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Status reports the index state.
	Status() domain.IndexStatus

	// Index returns a copy of the current index.
	Index() []domain.SearchRecord

	// Reload rebuilds the index from the catalog.
	Reload(ctx context.Context) error

	// Close discards the index.
	Close()
}
