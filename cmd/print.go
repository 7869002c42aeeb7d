package cmd

import (
	"github.com/spf13/cobra"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
)

// printCmd represents the print command.
var printCmd = newPrintCmd()

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print computed snapshots to stdout",
		Long:  "Compute every group snapshot and print the canonical JSON documents without touching the baselines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, args, err := prepareRun(cmd)
			if err != nil {
				return err
			}

			return wf.Print(cmd.Context(), domain.PrintArgs{RunArgs: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(printCmd)
}
