package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

var menusCmd = &cobra.Command{
	Use:   "menus",
	Short: "List the catalog's menus",
	Args:  cobra.NoArgs,
	RunE:  runMenus,
}

var menuCmd = &cobra.Command{
	Use:   "menu <name>",
	Short: "List the active items of a menu by section",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menusCmd)
	rootCmd.AddCommand(menuCmd)
}

func runMenus(cmd *cobra.Command, _ []string) error {
	links, err := services.Detail.Menus(cmd.Context())
	if err != nil {
		return friendly(err)
	}
	if len(links) == 0 {
		cmd.Println("No menus.")
		return nil
	}
	for _, l := range links {
		cmd.Printf("  %s  %s\n", l.Name, l.Path)
	}
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	page, err := services.Detail.LoadMenu(cmd.Context(), domain.MenuPath(name))
	if err != nil {
		return friendly(err)
	}
	printMenu(cmd.OutOrStdout(), page)
	return nil
}
