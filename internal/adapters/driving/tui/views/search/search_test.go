package search

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
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
		{ID: "1", Title: "Борщ", Description: "Свекольный суп со сметаной", Section: "Супы", Menu: "Основное"},
		{ID: "2", Title: "Пельмени", Description: "С бульоном", Section: "Горячее", Menu: "Основное"},
		{ID: "3", Title: "Шардоне", Section: "Вино белое", Menu: "Вино"},
	}
}

type fixture struct {
	view    *View
	catalog *memory.Catalog
	search  *services.SearchService
	nav     *services.NavigationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := memory.NewCatalog(nil, testItems())
	search := services.NewSearchService(catalog, html.New())
	nav := services.NewNavigationService(memory.NewHandoffStore(), "tui", time.Hour)

	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), search, nav)
	v.SetDimensions(100, 40)
	v.SetReady()
	return &fixture{view: v, catalog: catalog, search: search, nav: nav}
}

// open activates the surface and delivers the load result synchronously.
func (f *fixture) open(t *testing.T, query string) {
	t.Helper()
	require.NotNil(t, f.view.Open(query))
	err := f.search.Open(context.Background())
	f.view.Update(messages.IndexLoaded{Generation: f.view.generation, Err: err})
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.False(t, v.Surface().Open)
	assert.Equal(t, domain.IndexIdle, v.Surface().Status)
}

func TestView_NotReady(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	assert.Equal(t, "Initialising...", v.View())
}

func TestView_OpenWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	assert.Nil(t, v.Open(""))
	assert.ErrorIs(t, v.Err(), ErrNoSearchService)
}

func TestView_OpenShowsLoading(t *testing.T) {
	f := newFixture(t)

	f.view.Open("")

	assert.True(t, f.view.Surface().Open)
	assert.Equal(t, domain.IndexLoading, f.view.Surface().Status)
	assert.Equal(t, "Loading data...", f.view.Hint())
	assert.Contains(t, f.view.View(), "Loading data...")
}

func TestView_ReadyHints(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")

	assert.Equal(t, domain.IndexReady, f.view.Surface().Status)
	assert.Equal(t, "Start typing to search", f.view.Hint())

	typeText(f.view, "б")
	assert.Equal(t, "Type at least 2 characters", f.view.Hint())
	assert.Empty(t, f.view.Results())

	typeText(f.view, "ыыы")
	assert.Equal(t, "Nothing found", f.view.Hint())
}

func TestView_RequeriesOnEveryKeystroke(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")

	typeText(f.view, "бо")
	require.NotEmpty(t, f.view.Results())
	assert.Equal(t, "Борщ", f.view.Results()[0].Title)

	typeText(f.view, "рщ")
	assert.Equal(t, "борщ", f.view.Surface().Query)
	assert.Len(t, f.view.Results(), 1)
	assert.Empty(t, f.view.Hint())
	assert.Contains(t, f.view.View(), "Results (1)")
}

func TestView_OpenKeepsCarriedQuery(t *testing.T) {
	f := newFixture(t)
	f.open(t, "шардоне")

	assert.Equal(t, "шардоне", f.view.Query())
	require.Len(t, f.view.Results(), 1)
	assert.Equal(t, domain.KindWine, f.view.Results()[0].ItemKind)
}

func TestView_LettersGoToQuery(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")

	typeText(f.view, "jk")

	assert.Equal(t, "jk", f.view.Query())
	assert.Equal(t, 0, f.view.Selected())
}

func TestView_ArrowsMoveSelection(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")
	typeText(f.view, "основное")
	require.Greater(t, len(f.view.Results()), 1)

	f.view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, f.view.Selected())

	f.view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, f.view.Selected())
}

func TestView_CatalogFailure(t *testing.T) {
	search := services.NewSearchService(failingCatalog{}, nil)
	v := NewView(nil, nil, search, nil)
	v.SetReady()

	v.Open("")
	err := search.Open(context.Background())
	v.Update(messages.IndexLoaded{Generation: v.generation, Err: err})

	assert.Equal(t, domain.IndexFailed, v.Surface().Status)
	assert.ErrorIs(t, v.Err(), domain.ErrCatalogUnavailable)
	assert.Contains(t, v.Hint(), "unavailable")

	typeText(v, "борщ")
	assert.Empty(t, v.Results())
	assert.Contains(t, v.Hint(), "unavailable")
}

func TestView_StaleLoadIgnored(t *testing.T) {
	f := newFixture(t)

	f.view.Open("")
	stale := f.view.generation
	f.view.Close()
	f.view.Open("")

	f.view.Update(messages.IndexLoaded{Generation: stale})

	assert.Equal(t, domain.IndexLoading, f.view.Surface().Status)
}

func TestView_LoadAfterCloseIgnored(t *testing.T) {
	f := newFixture(t)

	f.view.Open("")
	gen := f.view.generation
	f.view.Close()
	f.view.Update(messages.IndexLoaded{Generation: gen})

	assert.False(t, f.view.Surface().Open)
	assert.Equal(t, domain.IndexIdle, f.view.Surface().Status)
}

func TestView_EnterSelectsAndNavigates(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")
	typeText(f.view, "сметан")
	require.NotEmpty(t, f.view.Results())

	_, cmd := f.view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	nav, ok := msg.(messages.Navigate)
	require.True(t, ok, "expected Navigate, got %T", msg)
	assert.Equal(t, "/dish/1", nav.Path)

	h, state, err := f.nav.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffArmed, state)
	assert.Equal(t, "сметан", h.Query)
	assert.Equal(t, domain.FieldDescription, h.Field)
	assert.Equal(t, "1", h.DishID)

	assert.False(t, f.view.Surface().Open)
	assert.Equal(t, domain.IndexIdle, f.search.Status())
}

func TestView_EnterWithoutResults(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")

	_, cmd := f.view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, f.view.Surface().Open)
}

func TestView_EscCloses(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")
	typeText(f.view, "борщ")

	_, cmd := f.view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.SearchClosed{}, cmd())

	assert.False(t, f.view.Surface().Open)
	assert.Empty(t, f.view.Query())
	assert.Empty(t, f.view.Results())
	assert.Equal(t, domain.IndexIdle, f.search.Status())

	_, state, err := f.nav.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffIdle, state)
}

func TestView_IndexChangedRequeries(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")
	typeText(f.view, "солянка")
	require.Empty(t, f.view.Results())

	f.catalog.Replace(nil, append(testItems(), domain.SourceItem{ID: "4", Title: "Солянка", Menu: "Основное"}))
	require.NoError(t, f.search.Reload(context.Background()))
	f.view.Update(messages.IndexChanged{})

	require.Len(t, f.view.Results(), 1)
	assert.Equal(t, "Солянка", f.view.Results()[0].Title)
}

func TestView_IndexChangedErrorKeepsResults(t *testing.T) {
	f := newFixture(t)
	f.open(t, "")
	typeText(f.view, "борщ")

	f.view.Update(messages.IndexChanged{Err: errors.New("parse catalog")})

	assert.Len(t, f.view.Results(), 1)
}

func TestView_ErrorOccurred(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")

	f.view.Update(messages.ErrorOccurred{Err: boom})

	assert.ErrorIs(t, f.view.Err(), boom)
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Equal(t, 120, v.width)
	assert.Equal(t, 30, v.height)
	assert.NotEqual(t, "Initialising...", v.View())
}
