package cmd

import (
	"fmt"
	"os"

	"league-assets/core/decode"

	"github.com/spf13/cobra"
)

var (
	importFormat  string
	importVersion string
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <kind> <file>",
	Short: "Replace a cache from a local payload",
	Long: `Decodes a payload file and replaces the kind's cache with it. The version is
read from the payload's "version" member unless --version is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, err := decode.ParseShape(importFormat)
		if err != nil {
			return err
		}
		payload, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		info, err := rt.service.Import(ctx, args[0], payload, shape, importVersion)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s entries at version %s\n", info.Count, info.Kind, info.Version)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "simple", "payload format (api, simple)")
	importCmd.Flags().StringVar(&importVersion, "version", "", "version to record, defaults to the payload's own")
	RootCmd.AddCommand(importCmd)
}
