package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

var searchLog = logger.For("search")

// SearchService owns the in-memory index of one search session.
// The index is built when the session opens and discarded when it closes.
type SearchService struct {
	catalog driven.Catalog
	builder *IndexBuilder

	mu     sync.RWMutex
	status domain.IndexStatus
	index  []domain.SearchRecord
	// generation increments on every Open and Close so a load that
	// finishes after its session ended is dropped.
	generation uint64
}

// NewSearchService creates a new search service.
func NewSearchService(catalog driven.Catalog, extractor driven.TextExtractor) *SearchService {
	return &SearchService{
		catalog: catalog,
		builder: NewIndexBuilder(extractor),
		status:  domain.IndexIdle,
	}
}

// Open loads the catalog and builds the index. There is no automatic retry:
// a failed load leaves the index empty until Open or Reload is called again.
func (s *SearchService) Open(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.status = domain.IndexLoading
	s.index = nil
	s.mu.Unlock()

	logger.Section("Search Index")

	index, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		searchLog.Debug("discarding index from a closed session")
		return nil
	}
	if err != nil {
		s.status = domain.IndexFailed
		searchLog.Warn("index unavailable: %v", err)
		return err
	}
	s.index = index
	s.status = domain.IndexReady
	searchLog.Info("index ready: %d records", len(index))
	return nil
}

// Reload rebuilds the index while the current one keeps serving queries.
// On failure the current index is kept.
func (s *SearchService) Reload(ctx context.Context) error {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	index, err := s.load(ctx)
	if err != nil {
		searchLog.Warn("reload failed, keeping current index: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}
	s.index = index
	s.status = domain.IndexReady
	searchLog.Info("index reloaded: %d records", len(index))
	return nil
}

// load fetches menus and items concurrently and builds the index.
func (s *SearchService) load(ctx context.Context) ([]domain.SearchRecord, error) {
	var (
		menus []string
		items []domain.SourceItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menus, err = s.catalog.Menus(gctx)
		if err != nil {
			return fmt.Errorf("fetch menus: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.catalog.Dishes(gctx)
		if err != nil {
			return fmt.Errorf("fetch dishes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	searchLog.Debug("fetched %d menus and %d items", len(menus), len(items))
	return s.builder.Build(menus, items), nil
}

// Search runs query against the current index.
func (s *SearchService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != domain.IndexReady {
		searchLog.Debug("query %q while index is %s", query, s.status)
		return []domain.SearchResult{}, nil
	}

	results := Search(s.index, query)
	searchLog.Debug("query %q: %d results", query, len(results))
	return results, nil
}

// Status reports the index state.
func (s *SearchService) Status() domain.IndexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Index returns a copy of the current index.
func (s *SearchService) Index() []domain.SearchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.index)
}

// Close discards the index and ends the session.
func (s *SearchService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.index = nil
	s.status = domain.IndexIdle
}
