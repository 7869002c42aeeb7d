package domain

import (
	"errors"
	"fmt"
	"strings"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// ErrMalformedSnapshot is wrapped by every snapshot decoding failure.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// ErrDriftDetected is returned by Check when at least one group drifted.
var ErrDriftDetected = errors.New("configuration drift detected")

// UnmatchedWorkspacesError lists every workspace that matched no group.
type UnmatchedWorkspacesError struct {
	Workspaces []m.Workspace
}

func (e *UnmatchedWorkspacesError) Error() string {
	return fmt.Sprintf("%d workspace(s) matched no group: %s", len(e.Workspaces), joinWorkspaces(e.Workspaces))
}

// EmptyGroupsError lists every group that received no workspace.
type EmptyGroupsError struct {
	Groups []string
}

func (e *EmptyGroupsError) Error() string {
	return fmt.Sprintf("%d group(s) matched no workspace: %s (set grouping.allow_empty_groups to permit)",
		len(e.Groups), strings.Join(e.Groups, ", "))
}

// InvalidPatternError reports a group pattern that is not a valid glob.
type InvalidPatternError struct {
	Group   string
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("group %q has invalid match pattern %q", e.Group, e.Pattern)
}

// MalformedSnapshotError describes why a stored snapshot was rejected.
type MalformedSnapshotError struct {
	Path   string
	Reason string
}

func (e *MalformedSnapshotError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedSnapshot, e.Reason)
	}

	return fmt.Sprintf("%s %s: %s", ErrMalformedSnapshot, e.Path, e.Reason)
}

func (e *MalformedSnapshotError) Unwrap() error {
	return ErrMalformedSnapshot
}

func joinWorkspaces(workspaces []m.Workspace) string {
	parts := make([]string, 0, len(workspaces))
	for _, ws := range workspaces {
		parts = append(parts, string(ws))
	}

	return strings.Join(parts, ", ")
}
