// Package controller provides output adapters for displaying group
// assignments, snapshots and drift reports.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// OutputFormat selects how reports are rendered.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat accepts "text" and "json"; empty means text.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("unknown output format %q (want text or json)", value)
}

// UI defines how workflow results reach the user.
type UI interface {
	DisplayGroups(ctx context.Context, assignments []m.GroupAssignment) error
	DisplaySkipped(ctx context.Context, skipped []m.SkippedWorkspace) error
	DisplaySnapshotWritten(ctx context.Context, snapshot m.Snapshot, location m.Path) error
	DisplaySnapshotPruned(ctx context.Context, groupID string, location m.Path) error
	// DisplaySnapshotDocument writes an encoded snapshot verbatim.
	DisplaySnapshotDocument(ctx context.Context, document []byte) error
	DisplayCheckReport(ctx context.Context, report m.CheckReport, format OutputFormat) error
	// DisplayUnifiedDiff renders before/after documents; nil means absent.
	DisplayUnifiedDiff(ctx context.Context, groupID string, before, after []byte) error
}

// NewUI creates the UI for cmd. Colors are only used on terminals.
func NewUI(cmd *cobra.Command, useColor bool) UI {
	return NewSimpleUI(cmd, useColor)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
