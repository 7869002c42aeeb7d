package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const snapshotFileExt = ".json"

// ErrBaselineNotFound is returned when no baseline exists for a group.
var ErrBaselineNotFound = errors.New("baseline not found")

// ErrInvalidGroupID is returned for group ids that cannot name a file below
// the baseline directory.
var ErrInvalidGroupID = errors.New("invalid group id")

// SnapshotStore persists encoded snapshots, one file per group.
type SnapshotStore interface {
	Save(ctx context.Context, groupID string, data []byte) error
	Load(ctx context.Context, groupID string) ([]byte, error)
	// List returns the group ids of all stored baselines, sorted.
	List(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, groupID string) error
	// Location returns the file a group's baseline is stored in.
	Location(groupID string) m.Path
}

// LocalSnapshotStore stores baselines as <dir>/<groupId>.json.
type LocalSnapshotStore struct {
	dir m.Path
}

// NewLocalSnapshotStore constructs a store rooted at dir.
func NewLocalSnapshotStore(dir m.Path) *LocalSnapshotStore {
	return &LocalSnapshotStore{dir: dir}
}

// Save writes data for groupID, creating parent directories.
func (s *LocalSnapshotStore) Save(ctx context.Context, groupID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := ValidateGroupID(groupID); err != nil {
		return err
	}

	target := string(s.Location(groupID))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create baseline directory: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write baseline %s: %w", target, err)
	}

	slog.Debug("Saved baseline", "group", groupID, "path", target, "bytes", len(data))

	return nil
}

// Load reads the baseline bytes for groupID.
func (s *LocalSnapshotStore) Load(ctx context.Context, groupID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ValidateGroupID(groupID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(s.Location(groupID)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBaselineNotFound, groupID)
		}

		return nil, fmt.Errorf("read baseline %s: %w", groupID, err)
	}

	return data, nil
}

// List walks the baseline directory recursively. A missing directory holds
// no baselines.
func (s *LocalSnapshotStore) List(ctx context.Context) ([]string, error) {
	root := string(s.dir)

	var ids []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}

			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), snapshotFileExt) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		ids = append(ids, strings.TrimSuffix(filepath.ToSlash(rel), snapshotFileExt))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list baselines in %s: %w", root, err)
	}

	slices.Sort(ids)

	return ids, nil
}

// Remove deletes the baseline for groupID and any directories it leaves empty.
func (s *LocalSnapshotStore) Remove(ctx context.Context, groupID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := ValidateGroupID(groupID); err != nil {
		return err
	}

	target := string(s.Location(groupID))
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBaselineNotFound, groupID)
		}

		return fmt.Errorf("remove baseline %s: %w", groupID, err)
	}

	root := filepath.Clean(string(s.dir))
	for dir := filepath.Dir(target); dir != root && strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
		if os.Remove(dir) != nil {
			break
		}
	}

	slog.Info("Removed baseline", "group", groupID, "path", target)

	return nil
}

// Location maps groupID to its file below the baseline directory.
func (s *LocalSnapshotStore) Location(groupID string) m.Path {
	return m.Path(filepath.Join(string(s.dir), filepath.FromSlash(groupID)+snapshotFileExt))
}

// ValidateGroupID rejects ids that would escape the baseline directory.
func ValidateGroupID(groupID string) error {
	if groupID == string(m.RootWorkspace) {
		return nil
	}

	if groupID == "" || strings.ContainsAny(groupID, "\\\x00") || strings.HasPrefix(groupID, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidGroupID, groupID)
	}

	for _, segment := range strings.Split(groupID, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidGroupID, groupID)
		}
	}

	return nil
}
