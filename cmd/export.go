package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <kind>",
	Short: "Write a cache in the simple payload format",
	Long:  `Writes one kind's cache as {"type", "version", "data"}, which import reads back with --format simple.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		body, err := rt.service.Export(args[0])
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		}
		return os.WriteFile(exportOutput, body, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "file to write, - for stdout")
	RootCmd.AddCommand(exportCmd)
}
