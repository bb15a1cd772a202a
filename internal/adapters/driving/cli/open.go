package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

var openCmd = &cobra.Command{
	Use:   "open <query> <n>",
	Short: "Select the n-th search result and print its path",
	Long: `Runs a search, selects result n (counting from 1) and stores the query
for the item page. Run "menusearch show <path>" next, within the handoff
lifetime and with the same --session, to see the page scrolled to the match.`,
	Example: `  menusearch open борщ 1
  menusearch show "$(menusearch open борщ 1)"`,
	Args: cobra.ExactArgs(2),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: result number must be a positive integer, got %q", domain.ErrInvalidInput, args[1])
	}

	results, err := query(cmd, args[0])
	if err != nil {
		return err
	}
	if n > len(results) {
		return fmt.Errorf("%w: result %d of %d", domain.ErrNotFound, n, len(results))
	}

	path, err := services.Navigation.Select(cmd.Context(), args[0], results[n-1])
	if err != nil {
		return fmt.Errorf("select failed: %w", err)
	}
	cmd.Println(path)
	return nil
}
