package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rulesnap.dev/pkg/rulesnap/internal/controller"
	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

var checkFormatFlag string
var checkShowDiffFlag bool
var checkMetricsFileFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare computed snapshots with the stored baselines",
		Long: `Compute a snapshot for every group and compare it with the committed
baseline. Exits with status 1 when any group is new, removed or changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseOutputFormat(checkFormatFlag)
			if err != nil {
				return err
			}

			wf, args, err := prepareRun(cmd)
			if err != nil {
				return err
			}

			return wf.Check(cmd.Context(), domain.CheckArgs{
				RunArgs:     args,
				Format:      format,
				ShowDiff:    checkShowDiffFlag,
				MetricsFile: m.Path(viper.GetString(checkMetricsFileKey)),
			})
		},
	}

	cmd.Flags().StringVarP(&checkFormatFlag, "format", "f", string(controller.FormatText), "report format (text or json)")
	cmd.Flags().BoolVar(&checkShowDiffFlag, "show-diff", false, "print a unified diff of each drifted snapshot")
	cmd.Flags().StringVar(&checkMetricsFileFlag, metricsFileFlagName, "", "write the report as Prometheus text format to this file")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), checkMetricsFileKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
