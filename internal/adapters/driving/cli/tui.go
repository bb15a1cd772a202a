package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui"
	coreservices "github.com/custodia-labs/menusearch/internal/core/services"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for menusearch.

The home screen lists the menus. Press / or ctrl+k anywhere to open the
search overlay; results update as you type and Enter opens the item page
scrolled to the first block containing the query.

Controls:
  /, ctrl+k - Open search
  ↑/k, ↓/j  - Navigate results
  Enter     - Open
  e         - Toggle English on item pages
  Esc       - Close search / Back
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the ports for one TUI run. The TUI keeps its handoffs in
// memory under a fresh session so it never consumes one left by "open".
func tuiPorts(svc *Services) *tui.Ports {
	if svc.Catalog == nil {
		return &tui.Ports{
			Search:     svc.Search,
			Navigation: svc.Navigation,
			Detail:     svc.Detail,
			Watcher:    svc.Watcher,
		}
	}

	ttl := svc.AppSettings.Handoff.TTL
	nav := coreservices.NewNavigationService(memory.NewHandoffStore(), "tui-"+uuid.NewString(), ttl)
	return &tui.Ports{
		Search:     coreservices.NewSearchService(svc.Catalog, svc.Extractor),
		Navigation: nav,
		Detail:     coreservices.NewDetailService(svc.Catalog, nav, svc.Extractor),
		Watcher:    svc.Watcher,
	}
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tuiPorts(services))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
