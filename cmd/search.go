package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"league-assets/core/search"

	"github.com/spf13/cobra"
)

var (
	searchOrdering string
	searchJSON     bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <kind> <query...>",
	Short: "Search a cache",
	Long: `Ranks the cached assets of one kind against a query. Matching ignores case
and punctuation and also considers each asset's search terms.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		hits, err := rt.service.Search(args[0], strings.Join(args[1:], " "), searchOrdering)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if searchJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(hits)
		}
		if len(hits) == 0 {
			fmt.Fprintln(out, "No matches")
			return nil
		}
		for _, h := range hits {
			fmt.Fprintf(out, "%-22s %-12s %s\n", h.Quality, h.ID, h.Name)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchOrdering, "ordering", "recommended",
		"tie-break ordering ("+strings.Join(search.OrderingNames(), ", ")+")")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print matches as JSON")
	RootCmd.AddCommand(searchCmd)
}
