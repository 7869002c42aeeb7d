package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"rulesnap.dev/pkg/rulesnap/internal/adapter"
	"rulesnap.dev/pkg/rulesnap/internal/controller"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// GroupsArgs contains the arguments for listing group assignments.
type GroupsArgs struct {
	RunArgs
}

// SnapshotArgs contains the arguments for writing baselines.
type SnapshotArgs struct {
	RunArgs
	// Prune removes baselines of groups that are no longer produced.
	Prune bool
}

// CheckArgs contains the arguments for comparing against baselines.
type CheckArgs struct {
	RunArgs
	Format controller.OutputFormat
	// ShowDiff renders a unified diff of each drifted snapshot document.
	ShowDiff bool
	// MetricsFile, when set, receives the report as Prometheus text format.
	MetricsFile m.Path
}

// PrintArgs contains the arguments for printing computed snapshots.
type PrintArgs struct {
	RunArgs
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	Groups(ctx context.Context, args GroupsArgs) error
	Snapshot(ctx context.Context, args SnapshotArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Print(ctx context.Context, args PrintArgs) error
}

type workflow struct {
	Pipeline
	adapter.SnapshotStore
	controller.UI
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(pipeline Pipeline, store adapter.SnapshotStore, ui controller.UI) Workflow {
	return &workflow{
		Pipeline:      pipeline,
		SnapshotStore: store,
		UI:            ui,
	}
}

func (w *workflow) Groups(ctx context.Context, args GroupsArgs) error {
	assignments, err := w.Assign(ctx, args.RunArgs)
	if err != nil {
		slog.Error("Failed to assign groups", "error", err)
		return fmt.Errorf("assign groups: %w", err)
	}

	return w.DisplayGroups(ctx, assignments)
}

func (w *workflow) Snapshot(ctx context.Context, args SnapshotArgs) error {
	result, err := w.Run(ctx, args.RunArgs)
	if err != nil {
		slog.Error("Failed to compute snapshots", "error", err)
		return fmt.Errorf("compute snapshots: %w", err)
	}

	for _, snapshot := range result.Snapshots {
		data, err := EncodeSnapshot(snapshot)
		if err != nil {
			return err
		}

		if err := w.Save(ctx, snapshot.GroupID, data); err != nil {
			slog.Error("Failed to save baseline", "group", snapshot.GroupID, "error", err)
			return fmt.Errorf("save baseline: %w", err)
		}

		if err := w.DisplaySnapshotWritten(ctx, snapshot, w.Location(snapshot.GroupID)); err != nil {
			return err
		}
	}

	if args.Prune {
		pruned, err := PruneBaselines(ctx, w.SnapshotStore, producedGroups(result))
		if err != nil {
			return err
		}

		for _, groupID := range pruned {
			if err := w.DisplaySnapshotPruned(ctx, groupID, w.Location(groupID)); err != nil {
				return err
			}
		}
	}

	return w.displaySkipped(ctx, result.Skipped)
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	result, err := w.Run(ctx, args.RunArgs)
	if err != nil {
		slog.Error("Failed to compute snapshots", "error", err)
		return fmt.Errorf("compute snapshots: %w", err)
	}

	baselines, err := LoadBaselines(ctx, w.SnapshotStore)
	if err != nil {
		return err
	}

	report := CompareBaselines(baselines, result.Snapshots, skippedGroups(result))
	report.Skipped = result.Skipped

	if err := w.DisplayCheckReport(ctx, report, args.Format); err != nil {
		return err
	}

	if args.MetricsFile != "" {
		metrics := adapter.NewCheckMetrics()
		metrics.Observe(report)

		if err := metrics.WriteTextfile(args.MetricsFile); err != nil {
			return err
		}
	}

	if args.ShowDiff && args.Format != controller.FormatJSON {
		if err := w.displayDocumentDiffs(ctx, report, baselines, result.Snapshots); err != nil {
			return err
		}
	}

	if report.HasDrift() {
		drifted := 0
		for _, group := range report.Groups {
			if group.Status != m.GroupUnchanged {
				drifted++
			}
		}

		slog.Info("Drift detected", "groups", drifted)

		return fmt.Errorf("%w in %d group(s)", ErrDriftDetected, drifted)
	}

	return nil
}

func (w *workflow) Print(ctx context.Context, args PrintArgs) error {
	result, err := w.Run(ctx, args.RunArgs)
	if err != nil {
		slog.Error("Failed to compute snapshots", "error", err)
		return fmt.Errorf("compute snapshots: %w", err)
	}

	for _, snapshot := range result.Snapshots {
		data, err := EncodeSnapshot(snapshot)
		if err != nil {
			return err
		}

		if err := w.DisplaySnapshotDocument(ctx, data); err != nil {
			return err
		}
	}

	return w.displaySkipped(ctx, result.Skipped)
}

func (w *workflow) displaySkipped(ctx context.Context, skipped []m.SkippedWorkspace) error {
	if len(skipped) == 0 {
		return nil
	}

	return w.DisplaySkipped(ctx, skipped)
}

func (w *workflow) displayDocumentDiffs(
	ctx context.Context,
	report m.CheckReport,
	baselines map[string]m.Snapshot,
	computed []m.Snapshot,
) error {
	byID := make(map[string]m.Snapshot, len(computed))
	for _, snapshot := range computed {
		byID[snapshot.GroupID] = snapshot
	}

	for _, group := range report.Groups {
		if group.Status == m.GroupUnchanged {
			continue
		}

		before, err := encodeOptional(baselines, group.GroupID)
		if err != nil {
			return err
		}

		after, err := encodeOptional(byID, group.GroupID)
		if err != nil {
			return err
		}

		if err := w.DisplayUnifiedDiff(ctx, group.GroupID, before, after); err != nil {
			return err
		}
	}

	return nil
}

func encodeOptional(snapshots map[string]m.Snapshot, groupID string) ([]byte, error) {
	snapshot, ok := snapshots[groupID]
	if !ok {
		return nil, nil
	}

	return EncodeSnapshot(snapshot)
}

// LoadBaselines decodes every stored baseline keyed by group id. A file
// whose groupId disagrees with its location is malformed.
func LoadBaselines(ctx context.Context, store adapter.SnapshotStore) (map[string]m.Snapshot, error) {
	ids, err := store.List(ctx)
	if err != nil {
		slog.Error("Failed to list baselines", "error", err)
		return nil, fmt.Errorf("list baselines: %w", err)
	}

	baselines := make(map[string]m.Snapshot, len(ids))

	for _, groupID := range ids {
		location := string(store.Location(groupID))

		if err := adapter.ValidateGroupID(groupID); err != nil {
			return nil, &MalformedSnapshotError{Path: location, Reason: err.Error()}
		}

		data, err := store.Load(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("load baseline: %w", err)
		}

		snapshot, err := DecodeSnapshot(data)
		if err != nil {
			var malformed *MalformedSnapshotError
			if errors.As(err, &malformed) && malformed.Path == "" {
				malformed.Path = location
			}

			slog.Error("Rejected baseline", "path", location, "error", err)

			return nil, err
		}

		if snapshot.GroupID != groupID {
			return nil, &MalformedSnapshotError{
				Path:   location,
				Reason: fmt.Sprintf("groupId %q does not match file location %q", snapshot.GroupID, groupID),
			}
		}

		baselines[groupID] = snapshot
	}

	return baselines, nil
}

// PruneBaselines removes stored baselines whose group is not in keep and
// returns the removed group ids.
func PruneBaselines(ctx context.Context, store adapter.SnapshotStore, keep map[string]bool) ([]string, error) {
	ids, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list baselines: %w", err)
	}

	var pruned []string

	for _, groupID := range ids {
		if keep[groupID] {
			continue
		}

		if err := store.Remove(ctx, groupID); err != nil {
			slog.Error("Failed to prune baseline", "group", groupID, "error", err)
			return pruned, fmt.Errorf("prune baseline: %w", err)
		}

		pruned = append(pruned, groupID)
	}

	return pruned, nil
}

// CompareBaselines builds the per-group drift report. Groups in ignore are
// neither new nor removed. The result is sorted by group id.
func CompareBaselines(baselines map[string]m.Snapshot, computed []m.Snapshot, ignore map[string]bool) m.CheckReport {
	report := m.CheckReport{Groups: []m.GroupDrift{}, Skipped: []m.SkippedWorkspace{}}
	seen := make(map[string]bool, len(computed))

	for _, snapshot := range computed {
		seen[snapshot.GroupID] = true

		baseline, ok := baselines[snapshot.GroupID]
		if !ok {
			report.Groups = append(report.Groups, m.GroupDrift{
				GroupID: snapshot.GroupID,
				Status:  m.GroupNew,
				Diff:    DiffSnapshots(emptySnapshot(snapshot.GroupID), snapshot),
			})

			continue
		}

		diff := DiffSnapshots(baseline, snapshot)

		status := m.GroupUnchanged
		if diff.HasDiff() {
			status = m.GroupChanged
		}

		report.Groups = append(report.Groups, m.GroupDrift{GroupID: snapshot.GroupID, Status: status, Diff: diff})
	}

	for groupID, baseline := range baselines {
		if seen[groupID] || ignore[groupID] {
			continue
		}

		report.Groups = append(report.Groups, m.GroupDrift{
			GroupID: groupID,
			Status:  m.GroupRemoved,
			Diff:    DiffSnapshots(baseline, emptySnapshot(groupID)),
		})
	}

	slices.SortFunc(report.Groups, func(a, b m.GroupDrift) int {
		return strings.Compare(a.GroupID, b.GroupID)
	})

	return report
}

func emptySnapshot(groupID string) m.Snapshot {
	return BuildSnapshot(groupID, nil, nil)
}

// producedGroups lists groups whose baselines must survive pruning: every
// computed group plus groups whose workspaces were all skipped.
func producedGroups(result PipelineResult) map[string]bool {
	keep := skippedGroups(result)
	for _, snapshot := range result.Snapshots {
		keep[snapshot.GroupID] = true
	}

	return keep
}

func skippedGroups(result PipelineResult) map[string]bool {
	groups := make(map[string]bool, len(result.Skipped))
	for _, skipped := range result.Skipped {
		groups[skipped.Group] = true
	}

	return groups
}
