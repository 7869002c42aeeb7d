package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

func TestLocalSnapshotStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalSnapshotStore(m.Path(dir))

	require.NoError(t, store.Save(ctx, "packages/api", []byte("{}\n")))
	require.NoError(t, store.Save(ctx, ".", []byte("[]\n")))

	assert.FileExists(t, filepath.Join(dir, "packages", "api.json"))

	data, err := store.Load(ctx, "packages/api")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	data, err = store.Load(ctx, ".")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{".", "packages/api"}, ids)
}

func TestLocalSnapshotStore_LoadMissing(t *testing.T) {
	store := NewLocalSnapshotStore(m.Path(t.TempDir()))

	_, err := store.Load(context.Background(), "web")
	require.ErrorIs(t, err, ErrBaselineNotFound)
}

func TestLocalSnapshotStore_ListMissingDir(t *testing.T) {
	store := NewLocalSnapshotStore(m.Path(filepath.Join(t.TempDir(), "absent")))

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLocalSnapshotStore_Remove(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalSnapshotStore(m.Path(dir))

	require.NoError(t, store.Save(ctx, "apps/web/admin", []byte("{}\n")))
	require.NoError(t, store.Remove(ctx, "apps/web/admin"))

	_, err := os.Stat(filepath.Join(dir, "apps"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(dir)
	require.NoError(t, err)

	require.ErrorIs(t, store.Remove(ctx, "apps/web/admin"), ErrBaselineNotFound)
}

func TestValidateGroupID(t *testing.T) {
	for _, id := range []string{".", "web", "packages/api", "@scope/pkg"} {
		assert.NoError(t, ValidateGroupID(id), id)
	}

	for _, id := range []string{"", "..", "../x", "a/../b", "/abs", `a\b`, "a//b", "./a", "a/"} {
		assert.ErrorIs(t, ValidateGroupID(id), ErrInvalidGroupID, id)
	}
}
