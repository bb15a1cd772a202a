package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/services"
	"github.com/custodia-labs/menusearch/internal/normalisers/html"
)

// failingCatalog implements driven.Catalog and always fails.
type failingCatalog struct{}

func (failingCatalog) Menus(context.Context) ([]string, error) {
	return nil, errors.New("connection refused")
}

func (failingCatalog) Dishes(context.Context) ([]domain.SourceItem, error) {
	return nil, errors.New("connection refused")
}

func (failingCatalog) Dish(context.Context, string) (*domain.SourceItem, error) {
	return nil, errors.New("connection refused")
}

func testItems() []domain.SourceItem {
	return []domain.SourceItem{
		{
			ID:          "1",
			Title:       "Борщ",
			Description: "Свекольный суп со сметаной",
			Section:     "Супы",
			Menu:        "Основное меню",
			Ingredients: []string{"свёкла", "капуста"},
		},
		{ID: "2", Title: "Пельмени", Description: "С бульоном", Section: "Горячее", Menu: "Основное меню"},
		{ID: "3", Title: "Шардоне", Section: "Вино белое", Menu: "Вино"},
		{ID: "4", Title: "Окрошка", Section: "Супы", Menu: "Основное меню", Status: domain.StatusArchived},
	}
}

type fixture struct {
	server  *Server
	catalog *memory.Catalog
	search  *services.SearchService
	nav     *services.NavigationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := memory.NewCatalog(nil, testItems())
	extractor := html.New()
	search := services.NewSearchService(catalog, extractor)
	nav := services.NewNavigationService(memory.NewHandoffStore(), "mcp", time.Hour)
	detail := services.NewDetailService(catalog, nav, extractor)

	server, err := NewServer(&Ports{Search: search, Navigation: nav, Detail: detail})
	require.NoError(t, err)
	return &fixture{server: server, catalog: catalog, search: search, nav: nav}
}

// makeReadResourceRequest creates a ReadResourceRequest for testing.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}
