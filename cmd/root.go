// Package cmd provides the root command and CLI setup for rulesnap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rulesnap.dev/pkg/rulesnap/internal/adapter"
	"rulesnap.dev/pkg/rulesnap/internal/controller"
	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// workflow and ui are built on first use because the adapters depend on
// flags and config. Tests replace workflow with a mock.
var workflow domain.Workflow
var ui controller.UI

var rootDirFlag string
var snapshotDirFlag string
var standaloneFlag bool
var tolerantFlag bool
var parallelFlag int
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)
}

const rootLongDescription = `Rulesnap records the effective ESLint rules of every workspace group in
a monorepo as deterministic JSON snapshots, and reports drift between the
committed baselines and the current configuration.

Workspaces come from workspaces.paths, pnpm-workspace.yaml or the
package.json "workspaces" field. Groups are assigned with ordered glob
rules from rulesnap.yaml, or one group per workspace with --standalone.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "rulesnap",
		Short:        "ESLint effective-rule snapshots and drift checks",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a configured root command without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&rootDirFlag, rootFlagName, viper.GetString(rootConfigKey), "repository root")
	bindFlagToConfig(flags.Lookup(rootFlagName), rootConfigKey)

	flags.StringVar(&snapshotDirFlag, snapshotDirFlagName, viper.GetString(snapshotDirConfigKey), "baseline directory, relative to the repository root")
	bindFlagToConfig(flags.Lookup(snapshotDirFlagName), snapshotDirConfigKey)

	flags.BoolVar(&standaloneFlag, standaloneFlagName, false, "make every workspace its own group")

	flags.BoolVar(&tolerantFlag, tolerantFlagName, viper.GetBool(lintTolerantKey), "skip workspaces whose rule queries fail instead of aborting")
	bindFlagToConfig(flags.Lookup(tolerantFlagName), lintTolerantKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(lintParallelKey), "maximum concurrent rule queries")
	bindFlagToConfig(flags.Lookup(parallelFlagName), lintParallelKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// resolveWorkflow returns the shared workflow, building it from config on
// first use.
func resolveWorkflow(cmd *cobra.Command, root m.Path) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	lintOptions, err := loadESLintOptions(root)
	if err != nil {
		return nil, err
	}

	ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	pipeline := domain.NewPipeline(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalWorkspaceAdapter(),
		adapter.NewESLintAdapter(lintOptions),
	)
	workflow = domain.NewWorkflow(pipeline, adapter.NewLocalSnapshotStore(snapshotDir(root)), ui)

	return workflow, nil
}

// prepareRun loads the run arguments and the workflow that consumes them.
func prepareRun(cmd *cobra.Command) (domain.Workflow, domain.RunArgs, error) {
	args, err := loadRunArgs()
	if err != nil {
		return nil, domain.RunArgs{}, err
	}

	wf, err := resolveWorkflow(cmd, args.Root)
	if err != nil {
		return nil, domain.RunArgs{}, err
	}

	return wf, args, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
