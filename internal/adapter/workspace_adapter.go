package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const (
	pnpmWorkspaceFile = "pnpm-workspace.yaml"
	packageJSONFile   = "package.json"
)

// WorkspaceAdapter enumerates the workspaces of a repository.
type WorkspaceAdapter interface {
	// Discover returns the sorted, unique workspace paths below root.
	Discover(ctx context.Context, root m.Path) ([]m.Workspace, error)
}

// LocalWorkspaceAdapter reads pnpm-workspace.yaml or the package.json
// "workspaces" field. A repository without either is a single workspace.
type LocalWorkspaceAdapter struct{}

// NewLocalWorkspaceAdapter constructs a LocalWorkspaceAdapter.
func NewLocalWorkspaceAdapter() *LocalWorkspaceAdapter {
	return &LocalWorkspaceAdapter{}
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

type packageManifest struct {
	Workspaces json.RawMessage `json:"workspaces"`
}

// Discover resolves workspace patterns against the repository tree.
func (a *LocalWorkspaceAdapter) Discover(ctx context.Context, root m.Path) ([]m.Workspace, error) {
	fsys := os.DirFS(string(root))

	patterns, source, err := readWorkspacePatterns(fsys)
	if err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		slog.Debug("No workspace manifest found, using repository root", "root", root)
		return []m.Workspace{m.RootWorkspace}, nil
	}

	var positive, negative []string

	for _, pattern := range patterns {
		if neg, ok := strings.CutPrefix(pattern, "!"); ok {
			negative = append(negative, m.NormalizeRelPath(neg))
			continue
		}

		positive = append(positive, m.NormalizeRelPath(pattern))
	}

	var workspaces []m.Workspace

	for _, pattern := range positive {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("expand workspace pattern %q from %s: %w", pattern, source, err)
		}

		for _, match := range matches {
			if isWorkspaceDir(fsys, match, negative) {
				workspaces = append(workspaces, m.NormalizeWorkspace(match))
			}
		}
	}

	slices.Sort(workspaces)
	workspaces = slices.Compact(workspaces)

	slog.Info("Discovered workspaces", "root", root, "source", source, "count", len(workspaces))

	return workspaces, nil
}

func isWorkspaceDir(fsys fs.FS, dir string, negative []string) bool {
	if slices.Contains(strings.Split(dir, "/"), "node_modules") {
		return false
	}

	for _, pattern := range negative {
		if ok, _ := doublestar.Match(pattern, dir); ok {
			return false
		}
	}

	info, err := fs.Stat(fsys, path.Join(dir, packageJSONFile))

	return err == nil && !info.IsDir()
}

func readWorkspacePatterns(fsys fs.FS) ([]string, string, error) {
	data, err := fs.ReadFile(fsys, pnpmWorkspaceFile)
	switch {
	case err == nil:
		var manifest pnpmWorkspace
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", pnpmWorkspaceFile, err)
		}

		return manifest.Packages, pnpmWorkspaceFile, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, "", fmt.Errorf("read %s: %w", pnpmWorkspaceFile, err)
	}

	data, err = fs.ReadFile(fsys, packageJSONFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, "", nil
	case err != nil:
		return nil, "", fmt.Errorf("read %s: %w", packageJSONFile, err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", packageJSONFile, err)
	}

	patterns, err := parseWorkspacesField(manifest.Workspaces)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s workspaces: %w", packageJSONFile, err)
	}

	return patterns, packageJSONFile, nil
}

// parseWorkspacesField accepts ["a/*"] and {"packages": ["a/*"]}.
func parseWorkspacesField(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, err
	}

	return object.Packages, nil
}
