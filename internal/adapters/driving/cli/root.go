// Package cli provides the cobra command tree for menusearch.
// It is a driving adapter: commands parse flags, call driving ports and
// print results.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// version is set by the main package at build time.
var version = "dev"

var log = logger.For("cli")

// Options holds the global flags. They override the config file for one run.
type Options struct {
	Verbose     bool
	ConfigDir   string
	CatalogURL  string
	CatalogFile string
	Session     string
}

// Services bundles what commands need. It is built once per invocation.
type Services struct {
	Search     driving.SearchService
	Navigation driving.NavigationService
	Detail     driving.DetailService
	Settings   driving.SettingsService

	// Catalog and Extractor let the TUI build its own per-run session.
	Catalog   driven.Catalog
	Extractor driven.TextExtractor

	// Watcher is set when the catalog can report changes.
	Watcher driven.CatalogWatcher

	// Importer seeds the local catalog. Nil when none is available.
	Importer Importer

	// AppSettings are the effective settings after flag overrides.
	AppSettings domain.AppSettings

	// Close releases storage. May be nil.
	Close func() error
}

// Importer stores catalog items locally.
type Importer interface {
	Import(ctx context.Context, items []domain.SourceItem) (int, error)
}

// ServiceFactory builds services from the global options.
type ServiceFactory func(opts Options) (*Services, error)

var (
	opts     Options
	factory  ServiceFactory
	services *Services
)

// errNotConfigured is returned when no factory was registered.
var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "menusearch",
	Short: "Search a restaurant menu catalog from the terminal",
	Long: `menusearch builds an in-memory index over the dishes, bar items and
wines of a menu catalog and searches every field of every item at once.

Selecting a result hands the query over to the item page, which opens
scrolled to the first block containing it.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging to stderr")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.menusearch)")
	flags.StringVar(&opts.CatalogURL, "catalog-url", "", "catalog API base URL")
	flags.StringVar(&opts.CatalogFile, "catalog-file", "", "local JSON catalog file")
	flags.StringVar(&opts.Session, "session", "", "session id handoffs are stored under")
}

// SetServiceFactory registers the function that wires adapters into services.
func SetServiceFactory(f ServiceFactory) {
	factory = f
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

// setup enables logging and builds services for commands that need them.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if services != nil {
		return nil
	}
	if factory == nil {
		return errNotConfigured
	}

	svc, err := factory(opts)
	if err != nil {
		return fmt.Errorf("starting: %w", err)
	}
	services = svc
	return nil
}

// teardown releases what setup built.
func teardown() error {
	if services == nil || services.Close == nil {
		services = nil
		return nil
	}
	err := services.Close()
	services = nil
	return err
}

// annotationNoServices marks commands that run without a catalog.
const annotationNoServices = "menusearch/no-services"

// friendly turns core errors into messages for people.
func friendly(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return fmt.Errorf("the catalog could not be loaded, check catalog.url or catalog.file: %w", err)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("nothing found: %w", err)
	case errors.Is(err, domain.ErrInvalidPath):
		return fmt.Errorf("expected /dish/<id>, /bar/<id>, /wine/<id> or /menu/<name>: %w", err)
	default:
		return err
	}
}
