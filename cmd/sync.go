package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncForce bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [kind...]",
	Short: "Bring caches up to date",
	Long: `Fetches the data of each kind whose cache is behind the target version.
Without arguments every kind is synced. --force refetches current caches too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		if len(args) == 0 {
			args = rt.service.Kinds()
		}

		var failed int
		for _, kind := range args {
			res, err := rt.service.Sync(ctx, kind, syncForce)
			switch {
			case err != nil:
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s FAILED  %v\n", kind, err)
			case res.Updated:
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s updated %s -> %s\n", kind, res.Previous, res.Version)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s current %s\n", kind, res.Version)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d kinds failed to sync", failed, len(args))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "refetch even when the cache holds the target version")
	RootCmd.AddCommand(syncCmd)
}
