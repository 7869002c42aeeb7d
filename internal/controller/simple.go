package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
	"rulesnap.dev/pkg/rulesnap/pkg/canonjson"
)

const diffContextLines = 3

// SimpleUI implements UI by writing to the command's output.
type SimpleUI struct {
	cmd      *cobra.Command
	useColor bool

	added   lipgloss.Style
	removed lipgloss.Style
	changed lipgloss.Style
	muted   lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, useColor bool) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:      cmd,
		useColor: useColor,
		added:    renderer.NewStyle().Foreground(lipgloss.Color("42")),
		removed:  renderer.NewStyle().Foreground(lipgloss.Color("196")),
		changed:  renderer.NewStyle().Foreground(lipgloss.Color("214")),
		muted:    renderer.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// DisplayGroups prints one row per group with its workspaces.
func (s *SimpleUI) DisplayGroups(ctx context.Context, assignments []m.GroupAssignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(assignments))
	total := 0

	for _, assignment := range assignments {
		names := make([]string, 0, len(assignment.Workspaces))
		for _, ws := range assignment.Workspaces {
			names = append(names, string(ws))
		}

		workspaces := strings.Join(names, ", ")
		if workspaces == "" {
			workspaces = s.paint(s.muted, "(none)")
		}

		rows = append(rows, []string{assignment.Name, fmt.Sprintf("%d", len(names)), workspaces})
		total += len(names)
	}

	s.printf("\n%s", renderTable(
		[]string{"Group", "Count", "Workspaces"},
		rows,
		[]string{fmt.Sprintf("Total Groups %d", len(assignments)), fmt.Sprintf("%d", total), ""},
	))

	return nil
}

// DisplaySkipped prints workspaces excluded in tolerant mode.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, skipped []m.SkippedWorkspace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(skipped))
	for _, skip := range skipped {
		rows = append(rows, []string{skip.Group, string(skip.Workspace), skip.Reason})
	}

	s.printf("\n%s\n", s.paint(s.changed, fmt.Sprintf("Skipped %d workspace(s):", len(skipped))))
	s.printf("%s", renderTable([]string{"Group", "Workspace", "Reason"}, rows, nil))

	return nil
}

// DisplaySnapshotWritten reports a saved baseline.
func (s *SimpleUI) DisplaySnapshotWritten(ctx context.Context, snapshot m.Snapshot, location m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Wrote %s (%d workspace(s), %d rule(s))\n", location, len(snapshot.Workspaces), len(snapshot.Rules))

	return nil
}

// DisplaySnapshotPruned reports a removed baseline.
func (s *SimpleUI) DisplaySnapshotPruned(ctx context.Context, groupID string, location m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", s.paint(s.removed, fmt.Sprintf("Pruned %s (group %s)", location, groupID)))

	return nil
}

// DisplaySnapshotDocument writes document as is.
func (s *SimpleUI) DisplaySnapshotDocument(ctx context.Context, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.cmd.OutOrStdout().Write(document)

	return err
}

// DisplayCheckReport prints the drift report in the requested format.
func (s *SimpleUI) DisplayCheckReport(ctx context.Context, report m.CheckReport, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatJSON {
		data, err := canonjson.MarshalIndent(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		_, err = s.cmd.OutOrStdout().Write(data)

		return err
	}

	rows := make([][]string, 0, len(report.Groups))
	drifted := 0

	for _, group := range report.Groups {
		if group.Status != m.GroupUnchanged {
			drifted++
		}

		rows = append(rows, []string{group.GroupID, s.statusLabel(group.Status), summarizeDiff(group.Diff)})
	}

	s.printf("\n%s", renderTable([]string{"Group", "Status", "Changes"}, rows, nil))

	for _, group := range report.Groups {
		if group.Status == m.GroupUnchanged {
			continue
		}

		s.writeDiffDetails(s.cmd.OutOrStdout(), group)
	}

	if len(report.Skipped) > 0 {
		if err := s.DisplaySkipped(ctx, report.Skipped); err != nil {
			return err
		}
	}

	if drifted == 0 {
		s.printf("\n%s\n", s.paint(s.added, "No drift detected."))
	} else {
		s.printf("\n%s\n", s.paint(s.removed, fmt.Sprintf("Drift detected in %d group(s).", drifted)))
	}

	return nil
}

// DisplayUnifiedDiff prints a unified diff between two snapshot documents.
func (s *SimpleUI) DisplayUnifiedDiff(ctx context.Context, groupID string, before, after []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "baseline/" + groupID + ".json",
		ToFile:   "computed/" + groupID + ".json",
		Context:  diffContextLines,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", groupID, err)
	}

	for _, line := range difflib.SplitLines(text) {
		line = strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			s.printf("%s\n", line)
		case strings.HasPrefix(line, "+"):
			s.printf("%s\n", s.paint(s.added, line))
		case strings.HasPrefix(line, "-"):
			s.printf("%s\n", s.paint(s.removed, line))
		case strings.HasPrefix(line, "@@"):
			s.printf("%s\n", s.paint(s.muted, line))
		default:
			s.printf("%s\n", line)
		}
	}

	return nil
}

func (s *SimpleUI) writeDiffDetails(w io.Writer, group m.GroupDrift) {
	d := group.Diff

	_, _ = fmt.Fprintf(w, "\n%s (%s)\n", group.GroupID, group.Status)

	for _, name := range d.IntroducedRules {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.added, "+ "+name))
	}

	for _, name := range d.RemovedRules {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.removed, "- "+name))
	}

	for _, change := range d.SeverityChanges {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.changed, fmt.Sprintf("~ %s: %s -> %s", change.Rule, change.Before, change.After)))
	}

	for _, change := range d.OptionChanges {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.changed, fmt.Sprintf("~ %s: options %s -> %s",
			change.Rule, formatVariants(change.Before), formatVariants(change.After))))
	}

	for _, ws := range d.WorkspaceMembershipChanges.Added {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.added, "+ workspace "+string(ws)))
	}

	for _, ws := range d.WorkspaceMembershipChanges.Removed {
		_, _ = fmt.Fprintf(w, "  %s\n", s.paint(s.removed, "- workspace "+string(ws)))
	}
}

func (s *SimpleUI) statusLabel(status m.GroupStatus) string {
	switch status {
	case m.GroupUnchanged:
		return s.paint(s.added, string(status))
	case m.GroupChanged:
		return s.paint(s.changed, string(status))
	default:
		return s.paint(s.removed, string(status))
	}
}

func (s *SimpleUI) paint(style lipgloss.Style, text string) string {
	if !s.useColor {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func summarizeDiff(d m.Diff) string {
	if !d.HasDiff() {
		return "-"
	}

	var parts []string

	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}

	add(len(d.IntroducedRules), "introduced")
	add(len(d.RemovedRules), "removed")
	add(len(d.SeverityChanges), "severity")
	add(len(d.OptionChanges), "options")
	add(len(d.WorkspaceMembershipChanges.Added)+len(d.WorkspaceMembershipChanges.Removed), "membership")

	return strings.Join(parts, ", ")
}

func formatVariants(variants []m.RuleVariant) string {
	data, err := canonjson.Marshal(variants)
	if err != nil {
		return fmt.Sprintf("%v", variants)
	}

	return string(data)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}
