package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	coreservices "github.com/custodia-labs/menusearch/internal/core/services"
)

// SettingsFactory builds the settings service alone, so configuration can be
// repaired even when the configured catalog is unusable.
type SettingsFactory func(configDir string) (driving.SettingsService, error)

var settingsFactory SettingsFactory

// SetSettingsFactory registers the settings-only factory used by config commands.
func SetSettingsFactory(f SettingsFactory) {
	settingsFactory = f
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long: `Settings live in config.toml inside the configuration directory.

Keys:
  catalog.url      catalog API base URL (clears catalog.file)
  catalog.file     local JSON catalog, used instead of the API
  catalog.rate     maximum API requests per second
  catalog.timeout  API request timeout, e.g. 10s
  storage.dir      directory of the local SQLite database
  handoff.ttl      lifetime of an unused search handoff, e.g. 30m
  session.id       session the handoffs are stored under`,
	Annotations: map[string]string{annotationNoServices: "true"},
}

var configGetCmd = &cobra.Command{
	Use:         "get <key>",
	Short:       "Print one setting",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Change one setting",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:         "list",
	Short:       "Print every setting",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// settingsService returns the wired settings service or builds one.
func settingsService() (driving.SettingsService, error) {
	if services != nil && services.Settings != nil {
		return services.Settings, nil
	}
	if settingsFactory == nil {
		return nil, errNotConfigured
	}
	return settingsFactory(opts.ConfigDir)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	value, err := settingValue(settings, args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	for _, key := range coreservices.SettingKeys {
		value, _ := settingValue(settings, key) //nolint:errcheck // keys come from SettingKeys
		cmd.Printf("%-16s %s\n", key, value)
	}
	if err := svc.Validate(); err != nil {
		cmd.Printf("\nWarning: %v\n", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	key, value := args[0], args[1]

	switch key {
	case coreservices.KeyCatalogURL:
		err = svc.SetCatalogURL(value)
	case coreservices.KeyCatalogFile:
		err = svc.SetCatalogFile(value)
	case coreservices.KeySessionID:
		err = svc.SetSession(value)
	default:
		err = setGeneric(svc, key, value)
	}
	if err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

// setGeneric updates a key that has no dedicated setter.
func setGeneric(svc driving.SettingsService, key, value string) error {
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch key {
	case coreservices.KeyCatalogRate:
		rate, perr := strconv.ParseFloat(value, 64)
		if perr != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Catalog.Rate = rate
	case coreservices.KeyCatalogTimeout:
		d, perr := time.ParseDuration(value)
		if perr != nil {
			return fmt.Errorf("%w: %s must be a duration like 10s", domain.ErrInvalidInput, key)
		}
		settings.Catalog.Timeout = d
	case coreservices.KeyHandoffTTL:
		d, perr := time.ParseDuration(value)
		if perr != nil {
			return fmt.Errorf("%w: %s must be a duration like 30m", domain.ErrInvalidInput, key)
		}
		settings.Handoff.TTL = d
	case coreservices.KeyStorageDir:
		settings.Storage.Dir = value
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}

	if err := coreservices.ValidateSettings(settings); err != nil {
		return err
	}
	return svc.Save(settings)
}

// settingValue renders one effective setting.
func settingValue(s *domain.AppSettings, key string) (string, error) {
	switch key {
	case coreservices.KeyCatalogURL:
		return s.Catalog.URL, nil
	case coreservices.KeyCatalogFile:
		return s.Catalog.File, nil
	case coreservices.KeyCatalogRate:
		return strconv.FormatFloat(s.Catalog.Rate, 'g', -1, 64), nil
	case coreservices.KeyCatalogTimeout:
		return s.Catalog.Timeout.String(), nil
	case coreservices.KeyStorageDir:
		return s.Storage.Dir, nil
	case coreservices.KeyHandoffTTL:
		return s.Handoff.TTL.String(), nil
	case coreservices.KeySessionID:
		return s.Session.ID, nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
}
