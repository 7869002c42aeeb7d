package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

func TestLocalSourceFSAdapter_ListFiles(t *testing.T) {
	t.Run("returns relative forward slash paths", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "index.ts"), "export {}\n")
		writeTestFile(t, filepath.Join(root, "src", "routes", "user.ts"), "export {}\n")

		files, err := adapter.ListFiles(context.Background(), m.Path(root), nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"index.ts", "src/routes/user.ts"}, files)
	})

	t.Run("skip prunes directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.js"), "1\n")
		writeTestFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "1\n")
		writeTestFile(t, filepath.Join(root, "packages", "nested", "b.js"), "1\n")

		var visited []string
		files, err := adapter.ListFiles(context.Background(), m.Path(root), func(rel string) bool {
			visited = append(visited, rel)
			return strings.HasSuffix(rel, "node_modules") || rel == "packages/nested"
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.js"}, files)
		assert.Contains(t, visited, "packages/nested")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.js"), "1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.ListFiles(ctx, m.Path(root), nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing root returns error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ListFiles(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), nil)
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := adapter.JoinPath(ctx, root, "package.json")
	writeTestFile(t, string(path), `{"name":"x"}`)

	info, err := adapter.FileInfo(ctx, path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = adapter.FileInfo(ctx, adapter.JoinPath(ctx, root, "nope"))
	require.True(t, os.IsNotExist(err))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
