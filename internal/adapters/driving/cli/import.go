package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/catalog/jsonfile"
)

// errNoImporter is returned when no local catalog is wired.
var errNoImporter = errors.New("no local catalog to import into")

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Copy a JSON catalog into the local database",
	Long: `Reads a JSON catalog, either {"menus": [...], "dishes": [...]} or a bare
array of dishes, and stores every item in the local SQLite catalog.
Existing items with the same id are replaced.

The local catalog is used when neither catalog.url nor catalog.file is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if services.Importer == nil {
		return errNoImporter
	}

	items, err := jsonfile.New(args[0]).Dishes(cmd.Context())
	if err != nil {
		return friendly(err)
	}

	n, err := services.Importer.Import(cmd.Context(), items)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	cmd.Printf("Imported %d items.\n", n)
	return nil
}
