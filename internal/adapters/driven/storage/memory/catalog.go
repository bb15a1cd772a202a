package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is an in-memory implementation of driven.Catalog for tests and demos.
type Catalog struct {
	mu    sync.RWMutex
	menus []string
	items []domain.SourceItem
}

// NewCatalog creates a catalog holding items.
// When menus is nil the menu list is derived from the items.
func NewCatalog(menus []string, items []domain.SourceItem) *Catalog {
	c := &Catalog{}
	c.Replace(menus, items)
	return c
}

// Replace swaps the catalog contents.
func (c *Catalog) Replace(menus []string, items []domain.SourceItem) {
	if menus == nil {
		menus = domain.MenusOf(items)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menus = slices.Clone(menus)
	c.items = slices.Clone(items)
}

// Menus returns the menu names.
func (c *Catalog) Menus(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.menus), nil
}

// Dishes returns every item.
func (c *Catalog) Dishes(_ context.Context) ([]domain.SourceItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items), nil
}

// Dish returns one item by id.
func (c *Catalog) Dish(_ context.Context, id string) (*domain.SourceItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}
