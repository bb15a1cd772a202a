package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search every field of every menu item",
	Long: `Loads the catalog, builds the search index and prints the matches.

Matching is a case-insensitive substring test over titles, descriptions,
sections, menus, compositions, ingredients, comments, tags and allergens,
including English translations. Title matches rank first, then
description, then section. At most 50 results are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.MaxResults, "maximum number of results (1-50)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchLimit < 1 || searchLimit > domain.MaxResults {
		return fmt.Errorf("%w: --limit must be between 1 and %d", domain.ErrInvalidInput, domain.MaxResults)
	}

	results, err := query(cmd, args[0])
	if err != nil {
		return err
	}
	if len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	surface := domain.Surface{Open: true, Query: args[0], Results: results, Status: domain.IndexReady}
	if hint := surface.Hint(utf8.RuneCountInString(strings.TrimSpace(args[0]))); hint != "" {
		cmd.Println(hint)
		return nil
	}

	cmd.Printf("Results (%d):\n\n", len(results))
	printResults(cmd.OutOrStdout(), results, args[0], markerFor(cmd.OutOrStdout()))
	return nil
}

// query opens the index and runs one search.
func query(cmd *cobra.Command, q string) ([]domain.SearchResult, error) {
	ctx := cmd.Context()
	if err := services.Search.Open(ctx); err != nil {
		return nil, friendly(err)
	}
	defer services.Search.Close()

	results, err := services.Search.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return results, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
