// Command menusearch searches a restaurant menu catalog from the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/catalog/httpapi"
	"github.com/custodia-labs/menusearch/internal/adapters/driven/catalog/jsonfile"
	"github.com/custodia-labs/menusearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/core/services"
	"github.com/custodia-labs/menusearch/internal/logger"
	"github.com/custodia-labs/menusearch/internal/normalisers/html"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetSettingsFactory(buildSettings)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return services.NewSettingsService(store), nil
}

// effectiveSettings reads the config file and applies flag overrides.
func effectiveSettings(opts cli.Options) (driving.SettingsService, *domain.AppSettings, error) {
	settingsSvc, err := buildSettings(opts.ConfigDir)
	if err != nil {
		return nil, nil, err
	}
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	if opts.CatalogURL != "" {
		settings.Catalog.URL = opts.CatalogURL
		settings.Catalog.File = ""
	}
	if opts.CatalogFile != "" {
		settings.Catalog.File = opts.CatalogFile
	}
	if opts.Session != "" {
		settings.Session.ID = opts.Session
	}
	if settings.Storage.Dir == "" && opts.ConfigDir != "" {
		settings.Storage.Dir = filepath.Join(opts.ConfigDir, "data")
	}

	if err := services.ValidateSettings(settings); err != nil {
		return nil, nil, err
	}
	return settingsSvc, settings, nil
}

func buildServices(opts cli.Options) (*cli.Services, error) {
	log := logger.For("main")

	settingsSvc, settings, err := effectiveSettings(opts)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(settings.Storage.Dir)
	if err != nil {
		return nil, err
	}

	var (
		catalog driven.Catalog
		watcher driven.CatalogWatcher
	)
	switch settings.Catalog.Kind() {
	case domain.CatalogHTTP:
		client, err := httpapi.NewClient(httpapi.Config{
			BaseURL: settings.Catalog.URL,
			Timeout: settings.Catalog.Timeout,
			Rate:    settings.Catalog.Rate,
		})
		if err != nil {
			store.Close() //nolint:errcheck
			return nil, err
		}
		catalog = client
	case domain.CatalogFile:
		fileCatalog := jsonfile.New(settings.Catalog.File)
		catalog, watcher = fileCatalog, fileCatalog
	default:
		catalog = store.Catalog()
	}
	log.Debug("catalog %s, session %s", settings.Catalog.Kind(), settings.Session.ID)

	extractor := html.New()
	navigation := services.NewNavigationService(store.HandoffStore(), settings.Session.ID, settings.Handoff.TTL)

	return &cli.Services{
		Search:      services.NewSearchService(catalog, extractor),
		Navigation:  navigation,
		Detail:      services.NewDetailService(catalog, navigation, extractor),
		Settings:    settingsSvc,
		Catalog:     catalog,
		Extractor:   extractor,
		Watcher:     watcher,
		Importer:    store.Catalog(),
		AppSettings: *settings,
		Close:       store.Close,
	}, nil
}
