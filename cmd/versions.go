package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var versionsLimit int

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List published data versions and cache versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		info, err := rt.service.Versions(ctx, true)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		available := info.Available
		if versionsLimit > 0 && len(available) > versionsLimit {
			available = available[:versionsLimit]
		}
		fmt.Fprintf(out, "Available: %s\n", strings.Join(available, ", "))
		if info.Desired != "" {
			fmt.Fprintf(out, "Pinned:    %s\n", info.Desired)
		}
		for _, c := range info.Caches {
			fmt.Fprintf(out, "%-15s %-10s %d entries\n", c.Kind, c.Version, c.Count)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().IntVar(&versionsLimit, "limit", 10, "number of versions to show, 0 for all")
	RootCmd.AddCommand(versionsCmd)
}
