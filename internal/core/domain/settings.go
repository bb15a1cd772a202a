package domain

import "time"

// Catalog source kinds, chosen from whichever setting is present.
const (
	CatalogHTTP   = "http"
	CatalogFile   = "file"
	CatalogSQLite = "sqlite"
)

// Defaults.
const (
	DefaultCatalogRate    = 5.0
	DefaultCatalogTimeout = 10 * time.Second
)

// CatalogSettings selects and tunes the catalog the index is built from.
type CatalogSettings struct {
	// URL is the base URL of the catalog HTTP API.
	URL string

	// File is a local JSON catalog. It wins over URL when set.
	File string

	// Rate is the maximum number of HTTP requests per second.
	Rate float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Kind returns which catalog adapter the settings select.
// With neither a file nor a URL the local SQLite catalog is used.
func (c CatalogSettings) Kind() string {
	switch {
	case c.File != "":
		return CatalogFile
	case c.URL != "":
		return CatalogHTTP
	default:
		return CatalogSQLite
	}
}

// StorageSettings locates local state.
type StorageSettings struct {
	// Dir holds the SQLite database. Empty means the config directory.
	Dir string
}

// HandoffSettings tunes the navigation handoff.
type HandoffSettings struct {
	// TTL is the lifetime of a handoff nobody consumes.
	TTL time.Duration
}

// SessionSettings identifies the browsing session handoffs belong to.
type SessionSettings struct {
	ID string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Catalog CatalogSettings
	Storage StorageSettings
	Handoff HandoffSettings
	Session SessionSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// No catalog is configured, so the local SQLite catalog is used.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			Rate:    DefaultCatalogRate,
			Timeout: DefaultCatalogTimeout,
		},
		Handoff: HandoffSettings{
			TTL: DefaultHandoffTTL,
		},
		Session: SessionSettings{
			ID: "default",
		},
	}
}
