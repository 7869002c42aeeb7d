package cmd

import (
	"github.com/spf13/cobra"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
)

var snapshotPruneFlag bool

// snapshotCmd represents the snapshot command.
var snapshotCmd = newSnapshotCmd()

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write baseline snapshots for every group",
		Long: `Sample files from every workspace, resolve their effective ESLint rules and
write one canonical JSON baseline per group into the snapshot directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, args, err := prepareRun(cmd)
			if err != nil {
				return err
			}

			return wf.Snapshot(cmd.Context(), domain.SnapshotArgs{
				RunArgs: args,
				Prune:   snapshotPruneFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&snapshotPruneFlag, "prune", false, "remove baselines of groups that no longer exist")

	return cmd
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
