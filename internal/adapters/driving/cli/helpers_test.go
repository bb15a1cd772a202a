package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	coreservices "github.com/custodia-labs/menusearch/internal/core/services"
	"github.com/custodia-labs/menusearch/internal/normalisers/html"
)

func testItems() []domain.SourceItem {
	return []domain.SourceItem{
		{
			ID:          "1",
			Title:       "Борщ",
			Description: "Свекольный суп со сметаной",
			Section:     "Супы",
			Menu:        "Основное меню",
			Ingredients: []string{"свёкла", "капуста"},
			English:     domain.Translation{"title-en": "Borscht", "description-en": "Beet soup with sour cream"},
		},
		{ID: "2", Title: "Пельмени", Description: "С бульоном", Section: "Горячее", Menu: "Основное меню"},
		{ID: "3", Title: "Шардоне", Section: "Вино белое", Menu: "Вино"},
		{ID: "4", Title: "Окрошка", Section: "Супы", Menu: "Основное меню", Status: domain.StatusArchived},
	}
}

// testEnv holds memory-backed services installed as the package services.
type testEnv struct {
	catalog  *memory.Catalog
	handoffs *memory.HandoffStore
	settings *coreservices.SettingsService
	nav      *coreservices.NavigationService
}

// setupTestServices installs memory-backed services and restores the package
// state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	catalog := memory.NewCatalog(nil, testItems())
	handoffs := memory.NewHandoffStore()
	extractor := html.New()
	settings := coreservices.NewSettingsService(memory.NewConfigStore())
	nav := coreservices.NewNavigationService(handoffs, "test", time.Hour)

	prev := services
	services = &Services{
		Search:      coreservices.NewSearchService(catalog, extractor),
		Navigation:  nav,
		Detail:      coreservices.NewDetailService(catalog, nav, extractor),
		Settings:    settings,
		Catalog:     catalog,
		Extractor:   extractor,
		AppSettings: domain.DefaultAppSettings(),
	}
	t.Cleanup(func() { services = prev })

	return &testEnv{catalog: catalog, handoffs: handoffs, settings: settings, nav: nav}
}

// resetFlags restores command flags that tests change.
func resetFlags() {
	searchLimit = domain.MaxResults
	searchJSON = false
	showEnglish = false
	showQuery = ""
	opts = Options{}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// settingsOnly installs a settings factory backed by store.
func settingsOnly(t *testing.T) driving.SettingsService {
	t.Helper()
	svc := coreservices.NewSettingsService(memory.NewConfigStore())
	prevFactory, prevServices := settingsFactory, services
	settingsFactory = func(string) (driving.SettingsService, error) { return svc, nil }
	services = nil
	t.Cleanup(func() {
		settingsFactory = prevFactory
		services = prevServices
	})
	require.NotNil(t, svc)
	return svc
}
