package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"rulesnap.dev/pkg/rulesnap/internal/adapter"
	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "rulesnap"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName        = "root"
	snapshotDirFlagName = "snapshot-dir"
	standaloneFlagName  = "standalone"
	tolerantFlagName    = "tolerant"
	parallelFlagName    = "parallel"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	metricsFileFlagName = "metrics-file"

	rootConfigKey             = "root"
	workspacesConfigKey       = "workspaces.paths"
	groupingModeKey           = "grouping.mode"
	groupingGroupsKey         = "grouping.groups"
	groupingAllowEmptyKey     = "grouping.allow_empty_groups"
	samplingMaxFilesKey       = "sampling.max_files_per_workspace"
	samplingIncludeKey        = "sampling.include_globs"
	samplingExcludeKey        = "sampling.exclude_globs"
	samplingTokenHintsKey     = "sampling.token_hints"
	aggregationPolicyKey      = "aggregation.policy"
	snapshotDirConfigKey      = "snapshot.dir"
	lintCommandKey            = "lint.command"
	lintTimeoutKey            = "lint.timeout"
	lintParallelKey           = "lint.parallel"
	lintTolerantKey           = "lint.tolerant"
	checkMetricsFileKey       = "check.metrics_file"
	defaultRoot               = "."
	defaultSnapshotDir        = ".rulesnap"
	defaultMaxFiles           = 8
	defaultLintParallel       = 4
	defaultLintTimeout        = 60 * time.Second
	defaultAllowEmptyGroups   = false
	defaultLintTolerant       = false
	defaultAggregationPolicy  = string(domain.PolicySurfaceAll)
	defaultGroupingModeConfig = string(domain.GroupingMatch)

	envPrefix = "RULESNAP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".rulesnap.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultIncludeGlobs = []string{"**/*.{js,jsx,mjs,cjs,ts,tsx,mts,cts,vue,svelte}"}

var defaultExcludeGlobs = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/.git/**",
}

// defaultGroups is written as plain maps so init renders readable YAML.
var defaultGroups = []map[string]any{
	{"name": "default", "match": []string{"**/*", "."}},
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	configReadErr = readConfig()
}

// configReadErr holds a config file that exists but could not be read. Run
// commands return it; init and help still work.
var configReadErr error

// readConfig loads the config file. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(workspacesConfigKey, []string{})
	viper.SetDefault(groupingModeKey, defaultGroupingModeConfig)
	viper.SetDefault(groupingGroupsKey, defaultGroups)
	viper.SetDefault(groupingAllowEmptyKey, defaultAllowEmptyGroups)
	viper.SetDefault(samplingMaxFilesKey, defaultMaxFiles)
	viper.SetDefault(samplingIncludeKey, defaultIncludeGlobs)
	viper.SetDefault(samplingExcludeKey, defaultExcludeGlobs)
	viper.SetDefault(samplingTokenHintsKey, domain.DefaultTokenPriorityGroups)
	viper.SetDefault(aggregationPolicyKey, defaultAggregationPolicy)
	viper.SetDefault(snapshotDirConfigKey, defaultSnapshotDir)
	viper.SetDefault(lintCommandKey, "")
	viper.SetDefault(lintTimeoutKey, int64(defaultLintTimeout.Seconds()))
	viper.SetDefault(lintParallelKey, defaultLintParallel)
	viper.SetDefault(lintTolerantKey, defaultLintTolerant)
	viper.SetDefault(checkMetricsFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// configError names the configuration key a value was read from.
func configError(key string, format string, args ...any) error {
	return fmt.Errorf("config %s: %s", key, fmt.Sprintf(format, args...))
}

// loadRunArgs reads and validates every setting the pipeline needs.
func loadRunArgs() (domain.RunArgs, error) {
	if configReadErr != nil {
		slog.Error("Failed to read config", "error", configReadErr)
		return domain.RunArgs{}, configReadErr
	}

	grouping, err := loadGroupingOptions()
	if err != nil {
		return domain.RunArgs{}, err
	}

	sampling, err := loadSamplingOptions()
	if err != nil {
		return domain.RunArgs{}, err
	}

	policy, err := domain.ParseConflictPolicy(viper.GetString(aggregationPolicyKey))
	if err != nil {
		return domain.RunArgs{}, configError(aggregationPolicyKey, "%v", err)
	}

	parallel := viper.GetInt(lintParallelKey)
	if parallel < 1 {
		return domain.RunArgs{}, configError(lintParallelKey, "must be at least 1, got %d", parallel)
	}

	root := strings.TrimSpace(viper.GetString(rootConfigKey))
	if root == "" {
		root = defaultRoot
	}

	return domain.RunArgs{
		Root:       m.Path(root),
		Workspaces: parseWorkspaces(viper.GetStringSlice(workspacesConfigKey)),
		Grouping:   grouping,
		Sampling:   sampling,
		Policy:     policy,
		Parallel:   parallel,
		Tolerant:   viper.GetBool(lintTolerantKey),
	}, nil
}

func loadGroupingOptions() (domain.GroupingOptions, error) {
	mode := domain.GroupingMode(strings.TrimSpace(viper.GetString(groupingModeKey)))
	if standaloneFlag {
		mode = domain.GroupingStandalone
	}

	switch mode {
	case domain.GroupingMatch, domain.GroupingStandalone:
	case "":
		mode = domain.GroupingMatch
	default:
		return domain.GroupingOptions{}, configError(groupingModeKey, "unknown mode %q (want %q or %q)", mode, domain.GroupingMatch, domain.GroupingStandalone)
	}

	var groups []m.GroupDefinition
	if err := viper.UnmarshalKey(groupingGroupsKey, &groups); err != nil {
		return domain.GroupingOptions{}, configError(groupingGroupsKey, "%v", err)
	}

	for i, group := range groups {
		if strings.TrimSpace(group.Name) == "" {
			return domain.GroupingOptions{}, configError(groupingGroupsKey, "entry %d has no name", i)
		}
	}

	return domain.GroupingOptions{
		Mode:             mode,
		Groups:           groups,
		AllowEmptyGroups: viper.GetBool(groupingAllowEmptyKey),
	}, nil
}

func loadSamplingOptions() (domain.SamplingOptions, error) {
	maxFiles := viper.GetInt(samplingMaxFilesKey)
	if maxFiles < 1 {
		return domain.SamplingOptions{}, configError(samplingMaxFilesKey, "must be at least 1, got %d", maxFiles)
	}

	include := viper.GetStringSlice(samplingIncludeKey)
	exclude := viper.GetStringSlice(samplingExcludeKey)
	if err := domain.ValidateSamplingGlobs(include, exclude); err != nil {
		return domain.SamplingOptions{}, configError("sampling", "%v", err)
	}

	var hints [][]string
	if err := viper.UnmarshalKey(samplingTokenHintsKey, &hints); err != nil {
		return domain.SamplingOptions{}, configError(samplingTokenHintsKey, "%v", err)
	}

	return domain.SamplingOptions{
		MaxFilesPerWorkspace: maxFiles,
		IncludeGlobs:         include,
		ExcludeGlobs:         exclude,
		TokenPriorityGroups:  hints,
	}, nil
}

// loadESLintOptions reads the linter settings for the rule query adapter.
func loadESLintOptions(root m.Path) (adapter.ESLintOptions, error) {
	seconds := viper.GetInt64(lintTimeoutKey)
	if seconds <= 0 {
		return adapter.ESLintOptions{}, configError(lintTimeoutKey, "must be a positive number of seconds, got %d", seconds)
	}

	return adapter.ESLintOptions{
		Command:  viper.GetString(lintCommandKey),
		RepoRoot: root,
		Timeout:  time.Duration(seconds) * time.Second,
	}, nil
}

// snapshotDir resolves the baseline directory against the repository root.
func snapshotDir(root m.Path) m.Path {
	dir := strings.TrimSpace(viper.GetString(snapshotDirConfigKey))
	if dir == "" {
		dir = defaultSnapshotDir
	}

	if filepath.IsAbs(dir) {
		return m.Path(dir)
	}

	return m.Path(filepath.Join(string(root), dir))
}

func parseWorkspaces(values []string) []m.Workspace {
	workspaces := make([]m.Workspace, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}

		workspaces = append(workspaces, m.NormalizeWorkspace(value))
	}

	return workspaces
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
