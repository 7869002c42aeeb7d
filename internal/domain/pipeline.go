package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"rulesnap.dev/pkg/rulesnap/internal/adapter"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const defaultParallel = 4

// directories never entered while enumerating candidates.
var skippedDirNames = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// RunArgs configures one pipeline run.
type RunArgs struct {
	Root m.Path
	// Workspaces overrides discovery when non-empty.
	Workspaces []m.Workspace
	Grouping   GroupingOptions
	Sampling   SamplingOptions
	Policy     ConflictPolicy
	// Parallel bounds concurrent rule queries per workspace.
	Parallel int
	// Tolerant demotes fatal rule query failures to workspace skips.
	Tolerant bool
}

// PipelineResult holds one snapshot per non-empty group, sorted by group id.
// Assignments keep the order of the grouping configuration.
type PipelineResult struct {
	Assignments []m.GroupAssignment
	Snapshots   []m.Snapshot
	Skipped     []m.SkippedWorkspace
}

// Pipeline turns a repository into per-group rule snapshots.
type Pipeline interface {
	// Assign resolves workspaces and assigns them to groups.
	Assign(ctx context.Context, args RunArgs) ([]m.GroupAssignment, error)
	// Run assigns groups, samples files, queries rules and aggregates.
	Run(ctx context.Context, args RunArgs) (PipelineResult, error)
}

type pipeline struct {
	adapter.SourceFSAdapter
	adapter.WorkspaceAdapter
	adapter.RuleQueryAdapter
}

// NewPipeline creates a Pipeline over the given collaborators.
func NewPipeline(
	fsAdapter adapter.SourceFSAdapter,
	workspaceAdapter adapter.WorkspaceAdapter,
	ruleQuery adapter.RuleQueryAdapter,
) Pipeline {
	return &pipeline{
		SourceFSAdapter:  fsAdapter,
		WorkspaceAdapter: workspaceAdapter,
		RuleQueryAdapter: ruleQuery,
	}
}

func (p *pipeline) Assign(ctx context.Context, args RunArgs) ([]m.GroupAssignment, error) {
	workspaces, err := p.resolveWorkspaces(ctx, args)
	if err != nil {
		return nil, err
	}

	return ResolveGroups(workspaces, args.Grouping)
}

func (p *pipeline) Run(ctx context.Context, args RunArgs) (PipelineResult, error) {
	if err := ValidateSamplingGlobs(args.Sampling.IncludeGlobs, args.Sampling.ExcludeGlobs); err != nil {
		return PipelineResult{}, err
	}

	assignments, err := p.Assign(ctx, args)
	if err != nil {
		return PipelineResult{}, err
	}

	var workspaces []m.Workspace
	for _, assignment := range assignments {
		workspaces = append(workspaces, assignment.Workspaces...)
	}

	result := PipelineResult{
		Assignments: assignments,
		Snapshots:   []m.Snapshot{},
		Skipped:     []m.SkippedWorkspace{},
	}

	for _, assignment := range assignments {
		snapshot, skipped, ok, err := p.runGroup(ctx, args, assignment, workspaces)
		if err != nil {
			return PipelineResult{}, err
		}

		result.Skipped = append(result.Skipped, skipped...)

		if ok {
			result.Snapshots = append(result.Snapshots, snapshot)
		}
	}

	slices.SortFunc(result.Snapshots, func(a, b m.Snapshot) int {
		return strings.Compare(a.GroupID, b.GroupID)
	})

	return result, nil
}

func (p *pipeline) resolveWorkspaces(ctx context.Context, args RunArgs) ([]m.Workspace, error) {
	if len(args.Workspaces) > 0 {
		return SortedUniqueWorkspaces(args.Workspaces), nil
	}

	workspaces, err := p.Discover(ctx, args.Root)
	if err != nil {
		slog.Error("Failed to discover workspaces", "root", args.Root, "error", err)
		return nil, fmt.Errorf("discover workspaces: %w", err)
	}

	return SortedUniqueWorkspaces(workspaces), nil
}

// runGroup returns ok=false for an empty group and when every workspace of
// the group was skipped.
func (p *pipeline) runGroup(
	ctx context.Context,
	args RunArgs,
	assignment m.GroupAssignment,
	allWorkspaces []m.Workspace,
) (m.Snapshot, []m.SkippedWorkspace, bool, error) {
	if len(assignment.Workspaces) == 0 {
		slog.Info("No snapshot for empty group", "group", assignment.Name)
		return m.Snapshot{}, nil, false, nil
	}

	var (
		observations []m.RuleObservation
		kept         []m.Workspace
		skipped      []m.SkippedWorkspace
	)

	for _, workspace := range assignment.Workspaces {
		workspaceObservations, err := p.collectWorkspace(ctx, args, workspace, allWorkspaces)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return m.Snapshot{}, nil, false, ctxErr
			}

			if !adapter.IsFatal(err) && !adapter.IsRecoverable(err) {
				err = adapter.NewFatalRuleQueryError(m.Path(workspace), "", err)
			}

			if !args.Tolerant {
				slog.Error("Rule query failed", "group", assignment.Name, "workspace", workspace, "error", err)
				return m.Snapshot{}, nil, false, err
			}

			slog.Warn("Skipping workspace", "group", assignment.Name, "workspace", workspace, "error", err)
			skipped = append(skipped, m.SkippedWorkspace{
				Group:     assignment.Name,
				Workspace: workspace,
				Reason:    err.Error(),
			})

			continue
		}

		kept = append(kept, workspace)
		observations = append(observations, workspaceObservations...)
	}

	if len(kept) == 0 {
		slog.Warn("No snapshot for group, all workspaces skipped", "group", assignment.Name)
		return m.Snapshot{}, skipped, false, nil
	}

	rules := AggregateRules(observations, args.Policy)
	slog.Info("Aggregated group", "group", assignment.Name,
		"workspaces", len(kept), "observations", len(observations), "rules", len(rules))

	return BuildSnapshot(assignment.Name, kept, rules), skipped, true, nil
}

func (p *pipeline) collectWorkspace(
	ctx context.Context,
	args RunArgs,
	workspace m.Workspace,
	allWorkspaces []m.Workspace,
) ([]m.RuleObservation, error) {
	workspaceDir := p.JoinPath(ctx, string(args.Root), string(workspace))

	files, err := p.ListFiles(ctx, workspaceDir, nestedWorkspaceSkip(workspace, allWorkspaces))
	if err != nil {
		return nil, adapter.NewFatalRuleQueryError(workspaceDir, "", fmt.Errorf("list files: %w", err))
	}

	candidates, err := FilterCandidates(files, args.Sampling.IncludeGlobs, args.Sampling.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	sampled := p.existingFiles(ctx, workspaceDir,
		SampleWorkspaceFiles(candidates, args.Sampling.MaxFilesPerWorkspace, args.Sampling.TokenPriorityGroups))
	if len(sampled) == 0 {
		slog.Warn("No candidate files in workspace", "workspace", workspace)
		return nil, nil
	}

	rawSets, err := p.queryFiles(ctx, args.Parallel, workspaceDir, sampled)
	if err != nil {
		return nil, err
	}

	observations := make([]m.RuleObservation, 0, len(rawSets))
	var lastErr error

	for i, raw := range rawSets {
		if raw.err != nil {
			lastErr = raw.err
			slog.Debug("Dropped observation", "workspace", workspace, "file", sampled[i], "error", raw.err)

			continue
		}

		observation, err := NormalizeRuleSet(raw.rules)
		if err != nil {
			lastErr = err
			slog.Warn("Dropped unparsable rule set", "workspace", workspace, "file", sampled[i], "error", err)

			continue
		}

		observations = append(observations, observation)
	}

	if len(observations) == 0 {
		return nil, adapter.NewFatalRuleQueryError(workspaceDir, "",
			fmt.Errorf("all %d sampled files failed, last error: %v", len(sampled), lastErr))
	}

	slog.Debug("Collected observations", "workspace", workspace,
		"candidates", len(candidates), "sampled", len(sampled), "observations", len(observations))

	return observations, nil
}

// existingFiles drops sampled files that are no longer regular files, e.g.
// removed by a concurrent build step after the walk.
func (p *pipeline) existingFiles(ctx context.Context, workspaceDir m.Path, files []string) []string {
	existing := make([]string, 0, len(files))

	for _, file := range files {
		info, err := p.FileInfo(ctx, p.JoinPath(ctx, string(workspaceDir), file))
		if err != nil || !info.Mode().IsRegular() {
			slog.Debug("Dropped vanished sample", "workspace", workspaceDir, "file", file, "error", err)
			continue
		}

		existing = append(existing, file)
	}

	return existing
}

type queryResult struct {
	rules m.RawRuleSet
	err   error
}

// queryFiles fans rule queries out with a bounded errgroup. Results keep the
// order of files; recoverable failures are kept per slot, anything else
// cancels the remaining queries.
func (p *pipeline) queryFiles(ctx context.Context, parallel int, workspaceDir m.Path, files []string) ([]queryResult, error) {
	if parallel <= 0 {
		parallel = defaultParallel
	}

	results := make([]queryResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, file := range files {
		group.Go(func() error {
			filePath := p.JoinPath(groupCtx, string(workspaceDir), file)

			rules, err := p.ResolveEffectiveRules(groupCtx, workspaceDir, filePath)
			if err != nil {
				if adapter.IsRecoverable(err) {
					results[i] = queryResult{err: err}
					return nil
				}

				return err
			}

			results[i] = queryResult{rules: rules}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// nestedWorkspaceSkip prunes other workspaces and tool directories from the
// walk of workspace.
func nestedWorkspaceSkip(workspace m.Workspace, allWorkspaces []m.Workspace) adapter.SkipFunc {
	others := make(map[string]bool, len(allWorkspaces))
	for _, other := range allWorkspaces {
		if other != workspace {
			others[string(other)] = true
		}
	}

	return func(relDir string) bool {
		if skippedDirNames[path.Base(relDir)] {
			return true
		}

		full := relDir
		if workspace != m.RootWorkspace {
			full = path.Join(string(workspace), relDir)
		}

		return others[full]
	}
}
