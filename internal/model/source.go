// Package model defines the value types shared by the snapshot pipeline.
package model

import (
	"path"
	"strings"
)

// Path represents a file system path.
type Path string

// Workspace is a normalized, forward-slash, root-relative workspace path.
// RootWorkspace denotes the repository root itself.
type Workspace string

// RootWorkspace is the workspace path of the repository root.
const RootWorkspace Workspace = "."

// NormalizeWorkspace converts a user or manifest supplied path into its
// canonical workspace form.
func NormalizeWorkspace(p string) Workspace {
	return Workspace(NormalizeRelPath(p))
}

// NormalizeRelPath cleans a relative path, converts separators to forward
// slashes and strips leading "./" and trailing "/".
func NormalizeRelPath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return "."
	}

	p = path.Clean(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")

	if p == "" {
		return "."
	}

	return p
}

// GroupDefinition is one ordered grouping rule from configuration.
// Patterns prefixed with "!" are negative.
type GroupDefinition struct {
	Name  string   `mapstructure:"name" yaml:"name" json:"name"`
	Match []string `mapstructure:"match" yaml:"match" json:"match"`
}

// GroupAssignment is the resolved membership of one group.
type GroupAssignment struct {
	Name       string
	Workspaces []Workspace
}

// SkippedWorkspace records a workspace excluded in tolerant mode.
type SkippedWorkspace struct {
	Group     string    `json:"group"`
	Workspace Workspace `json:"workspace"`
	Reason    string    `json:"reason"`
}
