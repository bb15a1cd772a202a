package detail

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/services"
	"github.com/custodia-labs/menusearch/internal/normalisers/html"
)

func longDescription() string {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("Строка описания номер %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func testItems() []domain.SourceItem {
	return []domain.SourceItem{
		{
			ID:          "1",
			Title:       "Борщ",
			Description: longDescription(),
			Section:     "Супы",
			Menu:        "Основное",
			Tags:        []string{"хит"},
			Comments:    []string{"Подавать горячим", "Со сметаной", "Секретный ингредиент: чеснок"},
			English:     domain.Translation{"title-en": "Borscht"},
		},
		{ID: "2", Title: "Пельмени", Menu: "Основное", Status: domain.StatusArchived},
	}
}

type fixture struct {
	view *View
	nav  *services.NavigationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := memory.NewCatalog(nil, testItems())
	nav := services.NewNavigationService(memory.NewHandoffStore(), "tui", time.Hour)
	detail := services.NewDetailService(catalog, nav, html.New())

	v := NewView(nil, nil, detail)
	v.SetDimensions(80, 13)
	return &fixture{view: v, nav: nav}
}

// load runs the load command synchronously and applies its result.
func (f *fixture) load(t *testing.T, path string) tea.Cmd {
	t.Helper()
	msg := f.view.Load(path)()
	_, cmd := f.view.Update(msg)
	return cmd
}

func (f *fixture) selectComment(t *testing.T, query string) {
	t.Helper()
	result := domain.SearchResult{SearchRecord: domain.SearchRecord{
		Type:   domain.RecordDish,
		Field:  domain.FieldComments,
		ID:     "1",
		DishID: "1",
		Path:   "/dish/1",
	}}
	_, err := f.nav.Select(context.Background(), query, result)
	require.NoError(t, err)
}

func TestView_NotReady(t *testing.T) {
	v := NewView(nil, nil, nil)

	assert.Equal(t, "Initialising...", v.View())
}

func TestView_LoadWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil)

	msg := v.Load("/dish/1")()

	loaded, ok := msg.(messages.DetailLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoDetailService)
}

func TestView_LoadWithoutHandoff(t *testing.T) {
	f := newFixture(t)

	cmd := f.load(t, "/dish/1")

	assert.Nil(t, cmd, "no flash without a query")
	require.NotNil(t, f.view.Page())
	assert.Equal(t, -1, f.view.Page().Focus)
	assert.False(t, f.view.Flashing())
	assert.Equal(t, 0, f.view.YOffset())

	out := f.view.View()
	assert.Contains(t, out, "Борщ")
	assert.Contains(t, out, "/dish/1")
	assert.Contains(t, out, "хит")
}

func TestView_HandoffScrollsAndFlashes(t *testing.T) {
	f := newFixture(t)
	f.selectComment(t, "чеснок")

	cmd := f.load(t, "/dish/1")

	require.NotNil(t, cmd, "flash timer expected")
	page := f.view.Page()
	require.NotNil(t, page)
	assert.Equal(t, "чеснок", page.Query)
	focused, ok := page.Focused()
	require.True(t, ok)
	assert.Equal(t, domain.AnchorComments, focused.Key)

	assert.True(t, f.view.Flashing())
	offset := f.view.AnchorOffset(page.Focus)
	assert.Greater(t, f.view.YOffset(), 0)
	assert.GreaterOrEqual(t, offset, f.view.YOffset())
	assert.Less(t, offset, f.view.YOffset()+f.view.viewport.Height)
	assert.Contains(t, f.view.View(), "чеснок")
}

func TestView_FlashExpires(t *testing.T) {
	f := newFixture(t)
	f.selectComment(t, "чеснок")
	f.load(t, "/dish/1")
	require.True(t, f.view.Flashing())
	scrolled := f.view.YOffset()

	f.view.Update(messages.FlashExpired{Seq: f.view.flashSeq - 1})
	assert.True(t, f.view.Flashing(), "stale tick ignored")

	f.view.Update(messages.FlashExpired{Seq: f.view.flashSeq})
	assert.False(t, f.view.Flashing())
	assert.Equal(t, scrolled, f.view.YOffset(), "scroll position kept")
}

func TestView_HandoffReadOnce(t *testing.T) {
	f := newFixture(t)
	f.selectComment(t, "чеснок")
	f.load(t, "/dish/1")

	cmd := f.load(t, "/dish/1")

	assert.Nil(t, cmd)
	assert.Empty(t, f.view.Page().Query)
}

func TestView_MismatchedHandoffLeftInPlace(t *testing.T) {
	f := newFixture(t)
	f.selectComment(t, "чеснок")

	f.load(t, "/dish/2")
	assert.Empty(t, f.view.Page().Query)
	assert.Contains(t, f.view.View(), "ARCHIVED")

	_, state, err := f.nav.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffArmed, state)
}

func TestView_LanguageToggleKeepsQuery(t *testing.T) {
	f := newFixture(t)
	f.selectComment(t, "чеснок")
	f.load(t, "/dish/1")

	_, cmd := f.view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.NotNil(t, cmd)
	f.view.Update(cmd())

	page := f.view.Page()
	require.NotNil(t, page)
	assert.Equal(t, domain.LanguageEnglish, page.Language)
	assert.Equal(t, "Borscht", page.Anchors[0].Text)
	assert.Equal(t, "чеснок", page.Query)
	assert.Contains(t, f.view.View(), "EN")
}

func TestView_LoadNotFound(t *testing.T) {
	f := newFixture(t)

	f.load(t, "/dish/404")

	assert.ErrorIs(t, f.view.Err(), domain.ErrNotFound)
	assert.Nil(t, f.view.Page())
	assert.Contains(t, f.view.View(), "Error")
}

func TestView_ScrollKeys(t *testing.T) {
	f := newFixture(t)
	f.load(t, "/dish/1")

	f.view.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 2, f.view.YOffset())
}
