// Package adapter contains the infrastructure collaborators of the snapshot
// pipeline: filesystem access, workspace discovery, the linter rule query and
// the baseline store.
package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// SkipFunc decides whether a directory, given by its forward-slash path
// relative to the walk root, is pruned from a walk.
type SkipFunc func(relDir string) bool

// SourceFSAdapter abstracts filesystem access so the pipeline can be tested
// against temporary trees.
type SourceFSAdapter interface {
	// ListFiles returns every regular file below root as a forward-slash
	// path relative to root. Directories for which skip returns true are
	// not entered.
	ListFiles(ctx context.Context, root m.Path, skip SkipFunc) ([]string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListFiles walks root and collects regular files.
func (a *LocalSourceFSAdapter) ListFiles(ctx context.Context, root m.Path, skip SkipFunc) ([]string, error) {
	rootStr := string(root)

	var files []string

	err := filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && skip != nil && skip(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
