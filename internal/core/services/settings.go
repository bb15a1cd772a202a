package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCatalogURL     = "catalog.url"
	KeyCatalogFile    = "catalog.file"
	KeyCatalogRate    = "catalog.rate"
	KeyCatalogTimeout = "catalog.timeout"
	KeyStorageDir     = "storage.dir"
	KeyHandoffTTL     = "handoff.ttl"
	KeySessionID      = "session.id"
)

// SettingKeys lists every key the settings service reads.
var SettingKeys = []string{
	KeyCatalogURL,
	KeyCatalogFile,
	KeyCatalogRate,
	KeyCatalogTimeout,
	KeyStorageDir,
	KeyHandoffTTL,
	KeySessionID,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			URL:     s.configStore.GetString(KeyCatalogURL),
			File:    s.configStore.GetString(KeyCatalogFile),
			Rate:    s.getFloat(KeyCatalogRate, defaults.Catalog.Rate),
			Timeout: s.getDuration(KeyCatalogTimeout, defaults.Catalog.Timeout),
		},
		Storage: domain.StorageSettings{
			Dir: s.configStore.GetString(KeyStorageDir),
		},
		Handoff: domain.HandoffSettings{
			TTL: s.getDuration(KeyHandoffTTL, defaults.Handoff.TTL),
		},
		Session: domain.SessionSettings{
			ID: s.getString(KeySessionID, defaults.Session.ID),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyCatalogURL, settings.Catalog.URL},
		{KeyCatalogFile, settings.Catalog.File},
		{KeyCatalogRate, settings.Catalog.Rate},
		{KeyCatalogTimeout, settings.Catalog.Timeout.String()},
		{KeyStorageDir, settings.Storage.Dir},
		{KeyHandoffTTL, settings.Handoff.TTL.String()},
		{KeySessionID, settings.Session.ID},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetCatalogURL points the catalog at an HTTP API and clears any file.
func (s *SettingsService) SetCatalogURL(raw string) error {
	if err := validateURL(raw); err != nil {
		return err
	}
	if err := s.configStore.Unset(KeyCatalogFile); err != nil {
		return fmt.Errorf("clear %s: %w", KeyCatalogFile, err)
	}
	return s.configStore.Set(KeyCatalogURL, strings.TrimRight(raw, "/"))
}

// SetCatalogFile points the catalog at a JSON file.
func (s *SettingsService) SetCatalogFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: catalog file path is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(KeyCatalogFile, path)
}

// SetSession changes the session handoffs belong to.
func (s *SettingsService) SetSession(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: session id is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(KeySessionID, id)
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return ValidateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateSettings checks settings regardless of where they came from.
func ValidateSettings(settings *domain.AppSettings) error {
	if settings.Catalog.URL != "" {
		if err := validateURL(settings.Catalog.URL); err != nil {
			return err
		}
	}
	if settings.Catalog.Rate <= 0 {
		return fmt.Errorf("%w: catalog.rate must be positive", domain.ErrInvalidInput)
	}
	if settings.Catalog.Timeout <= 0 {
		return fmt.Errorf("%w: catalog.timeout must be positive", domain.ErrInvalidInput)
	}
	if settings.Handoff.TTL < domain.ConsumeWindow {
		return fmt.Errorf("%w: handoff.ttl must be at least %s", domain.ErrInvalidInput, domain.ConsumeWindow)
	}
	if strings.TrimSpace(settings.Session.ID) == "" {
		return fmt.Errorf("%w: session.id is empty", domain.ErrInvalidInput)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: catalog url %q must be http(s)://host", domain.ErrInvalidInput, raw)
	}
	return nil
}

// getString returns a string value or the default if not set.
func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

// getFloat returns a positive numeric value or the default.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return defaultVal
}

// getDuration parses a duration string ("30m") or the default.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s.configStore.GetString(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
