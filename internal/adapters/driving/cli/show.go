package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

var (
	showEnglish bool
	showQuery   string
)

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show an item or menu page",
	Long: `Shows the page a search result links to: /dish/<id>, /bar/<id>,
/wine/<id> or /menu/<name>. A bare id is read as /dish/<id>.

If "menusearch open" stored a query for this item, the query is marked in
the text and the first block containing it is flagged with ">". The stored
query is used once.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showEnglish, "en", false, "show the English translation")
	showCmd.Flags().StringVarP(&showQuery, "query", "q", "", "mark a query without a stored handoff")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	route, err := domain.ParsePath(args[0])
	if err != nil {
		return friendly(err)
	}

	if route.IsMenu() {
		page, err := services.Detail.LoadMenu(cmd.Context(), args[0])
		if err != nil {
			return friendly(err)
		}
		printMenu(cmd.OutOrStdout(), page)
		return nil
	}

	page, err := services.Detail.Load(cmd.Context(), args[0], driving.DetailOptions{
		English: showEnglish,
		Query:   showQuery,
	})
	if err != nil {
		return friendly(err)
	}
	printDetail(cmd.OutOrStdout(), page, markerFor(cmd.OutOrStdout()))
	return nil
}
