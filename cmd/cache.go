package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear persisted caches",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List caches with their version and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		out := cmd.OutOrStdout()
		for _, c := range rt.service.Caches() {
			fmt.Fprintf(out, "%-15s %-10s %d entries\n", c.Kind, c.Version, c.Count)
		}

		keys, err := rt.store.Keys(ctx, rt.registry.Namespace()+".")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPersisted keys (%s backend):\n", rt.cfg.Store.Backend)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s\n", k)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [kind...]",
	Short: "Delete persisted caches",
	Long:  `Deletes the persisted copy of each kind, or of every kind without arguments. The next sync refetches them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		// Closing would flush the loaded caches straight back.
		defer func() { _ = rt.store.Close() }()

		if len(args) == 0 {
			args = rt.service.Kinds()
		}
		for _, kind := range args {
			if _, err := rt.service.Catalog(kind); err != nil {
				return err
			}
			if err := rt.registry.Forget(ctx, kind); err != nil {
				return fmt.Errorf("clear %s: %w", kind, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", kind)
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd, cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}
