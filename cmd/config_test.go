package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// setConfig overrides a viper key for the duration of the test.
func setConfig(t *testing.T, key string, value any) {
	t.Helper()

	previous := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, previous) })
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "rulesnap", configBaseName)
	assert.Equal(t, "rulesnap.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "RULESNAP", envPrefix)
	assert.Equal(t, ".rulesnap", defaultSnapshotDir)
	assert.Equal(t, ".rulesnap.log", defaultLogFilename)
	assert.Equal(t, 8, defaultMaxFiles)
	assert.Equal(t, 4, defaultLintParallel)
	assert.Equal(t, 60*time.Second, defaultLintTimeout)
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestLoadRunArgs_Defaults(t *testing.T) {
	args, err := loadRunArgs()
	require.NoError(t, err)

	assert.Equal(t, m.Path("."), args.Root)
	assert.Empty(t, args.Workspaces)
	assert.Equal(t, domain.GroupingMatch, args.Grouping.Mode)
	assert.Equal(t, []m.GroupDefinition{{Name: "default", Match: []string{"**/*", "."}}}, args.Grouping.Groups)
	assert.False(t, args.Grouping.AllowEmptyGroups)
	assert.Equal(t, 8, args.Sampling.MaxFilesPerWorkspace)
	assert.Equal(t, defaultIncludeGlobs, args.Sampling.IncludeGlobs)
	assert.Equal(t, defaultExcludeGlobs, args.Sampling.ExcludeGlobs)
	assert.Equal(t, domain.DefaultTokenPriorityGroups, args.Sampling.TokenPriorityGroups)
	assert.Equal(t, domain.PolicySurfaceAll, args.Policy)
	assert.Equal(t, 4, args.Parallel)
	assert.False(t, args.Tolerant)
}

func TestLoadRunArgs_ConfiguredValues(t *testing.T) {
	setConfig(t, workspacesConfigKey, []string{"./apps/web/", "packages\\ui"})
	setConfig(t, groupingGroupsKey, []map[string]any{
		{"name": "apps", "match": []any{"apps/*"}},
		{"name": "libs", "match": []any{"packages/*", "!packages/legacy"}},
	})
	setConfig(t, samplingTokenHintsKey, []any{[]any{"route", "page"}, []any{"test"}})
	setConfig(t, aggregationPolicyKey, "highest-severity")

	args, err := loadRunArgs()
	require.NoError(t, err)

	assert.Equal(t, []m.Workspace{"apps/web", "packages/ui"}, args.Workspaces)
	assert.Equal(t, []m.GroupDefinition{
		{Name: "apps", Match: []string{"apps/*"}},
		{Name: "libs", Match: []string{"packages/*", "!packages/legacy"}},
	}, args.Grouping.Groups)
	assert.Equal(t, [][]string{{"route", "page"}, {"test"}}, args.Sampling.TokenPriorityGroups)
	assert.Equal(t, domain.PolicyHighestSeverity, args.Policy)
}

func TestLoadRunArgs_StandaloneFlagOverridesMode(t *testing.T) {
	standaloneFlag = true
	t.Cleanup(func() { standaloneFlag = false })

	args, err := loadRunArgs()
	require.NoError(t, err)
	assert.Equal(t, domain.GroupingStandalone, args.Grouping.Mode)
}

func TestLoadRunArgs_InvalidValuesNameTheKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"grouping mode", groupingModeKey, "by-folder"},
		{"max files", samplingMaxFilesKey, 0},
		{"policy", aggregationPolicyKey, "lowest"},
		{"parallel", lintParallelKey, 0},
		{"unnamed group", groupingGroupsKey, []map[string]any{{"match": []any{"*"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setConfig(t, tt.key, tt.value)

			_, err := loadRunArgs()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadESLintOptions(t *testing.T) {
	opts, err := loadESLintOptions(m.Path("/repo"))
	require.NoError(t, err)
	assert.Equal(t, m.Path("/repo"), opts.RepoRoot)
	assert.Equal(t, 60*time.Second, opts.Timeout)
	assert.Empty(t, opts.Command)

	setConfig(t, lintTimeoutKey, -1)
	_, err = loadESLintOptions(m.Path("/repo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), lintTimeoutKey)
}

func TestSnapshotDir(t *testing.T) {
	assert.Equal(t, m.Path(filepath.Join("repo", ".rulesnap")), snapshotDir(m.Path("repo")))

	absolute := filepath.Join(t.TempDir(), "baselines")
	setConfig(t, snapshotDirConfigKey, absolute)
	assert.Equal(t, m.Path(absolute), snapshotDir(m.Path("repo")))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestReadConfig_MissingFileIsNotAnError(t *testing.T) {
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	assert.NoError(t, readConfig())
}

func TestReadConfig_MalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("grouping:\n  groups: [\n"), 0o644))

	err = readConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), configFileName)
}

func TestLoadRunArgs_SurfacesConfigReadError(t *testing.T) {
	previous := configReadErr
	configReadErr = errors.New("read rulesnap.yaml: yaml: line 2: did not find expected node content")
	t.Cleanup(func() { configReadErr = previous })

	_, err := loadRunArgs()
	require.Error(t, err)
	assert.ErrorIs(t, err, configReadErr)
}
