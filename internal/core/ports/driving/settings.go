package driving

import "github.com/custodia-labs/menusearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetCatalogURL points the catalog at an HTTP API and clears any file.
	SetCatalogURL(url string) error

	// SetCatalogFile points the catalog at a JSON file.
	SetCatalogFile(path string) error

	// SetSession changes the session handoffs belong to.
	SetSession(id string) error

	// Validate checks that current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
