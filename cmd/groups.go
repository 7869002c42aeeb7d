package cmd

import (
	"github.com/spf13/cobra"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
)

// groupsCmd represents the groups command.
var groupsCmd = newGroupsCmd()

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Show which workspaces belong to which group",
		Long: `Discover workspaces and print the resolved group assignments without
running the linter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, args, err := prepareRun(cmd)
			if err != nil {
				return err
			}

			return wf.Groups(cmd.Context(), domain.GroupsArgs{RunArgs: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
