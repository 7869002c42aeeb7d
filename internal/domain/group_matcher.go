package domain

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// GroupingMode selects how workspaces are bucketed into groups.
type GroupingMode string

const (
	// GroupingMatch assigns workspaces with ordered glob rules.
	GroupingMatch GroupingMode = "match"
	// GroupingStandalone makes every workspace its own group.
	GroupingStandalone GroupingMode = "standalone"
)

// GroupingOptions is the resolved grouping configuration.
type GroupingOptions struct {
	Mode             GroupingMode
	Groups           []m.GroupDefinition
	AllowEmptyGroups bool
}

// ResolveGroups applies the configured grouping mode to workspaces.
func ResolveGroups(workspaces []m.Workspace, opts GroupingOptions) ([]m.GroupAssignment, error) {
	switch opts.Mode {
	case GroupingStandalone:
		return AssignStandalone(workspaces), nil
	case GroupingMatch, "":
		return AssignGroupsByMatch(workspaces, opts.Groups, opts.AllowEmptyGroups)
	}

	return nil, fmt.Errorf("unknown grouping mode %q", opts.Mode)
}

// AssignStandalone turns every workspace into a singleton group named after
// its own path.
func AssignStandalone(workspaces []m.Workspace) []m.GroupAssignment {
	sorted := SortedUniqueWorkspaces(workspaces)
	assignments := make([]m.GroupAssignment, 0, len(sorted))

	for _, ws := range sorted {
		assignments = append(assignments, m.GroupAssignment{
			Name:       string(ws),
			Workspaces: []m.Workspace{ws},
		})
	}

	return assignments
}

// AssignGroupsByMatch assigns each workspace to the first group whose
// patterns accept it. The result keeps the order of groups.
func AssignGroupsByMatch(workspaces []m.Workspace, groups []m.GroupDefinition, allowEmptyGroups bool) ([]m.GroupAssignment, error) {
	compiled, err := compileGroups(groups)
	if err != nil {
		return nil, err
	}

	assignments := make([]m.GroupAssignment, len(groups))
	for i, group := range groups {
		assignments[i] = m.GroupAssignment{Name: group.Name, Workspaces: []m.Workspace{}}
	}

	var unmatched []m.Workspace

	for _, ws := range SortedUniqueWorkspaces(workspaces) {
		index := firstMatchingGroup(compiled, ws)
		if index < 0 {
			unmatched = append(unmatched, ws)
			continue
		}

		assignments[index].Workspaces = append(assignments[index].Workspaces, ws)
	}

	if len(unmatched) > 0 {
		slog.Error("Workspaces matched no group", "workspaces", unmatched)
		return nil, &UnmatchedWorkspacesError{Workspaces: unmatched}
	}

	if !allowEmptyGroups {
		var empty []string

		for _, assignment := range assignments {
			if len(assignment.Workspaces) == 0 {
				empty = append(empty, assignment.Name)
			}
		}

		if len(empty) > 0 {
			slog.Error("Groups matched no workspace", "groups", empty)
			return nil, &EmptyGroupsError{Groups: empty}
		}
	}

	return assignments, nil
}

type compiledGroup struct {
	positive []string
	negative []string
}

func compileGroups(groups []m.GroupDefinition) ([]compiledGroup, error) {
	compiled := make([]compiledGroup, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))

	for _, group := range groups {
		if strings.TrimSpace(group.Name) == "" {
			return nil, fmt.Errorf("group definition without a name")
		}

		if _, dup := seen[group.Name]; dup {
			return nil, fmt.Errorf("duplicate group name %q", group.Name)
		}

		seen[group.Name] = struct{}{}

		var cg compiledGroup

		for _, pattern := range group.Match {
			negative := strings.HasPrefix(pattern, "!")
			glob := strings.TrimPrefix(pattern, "!")

			if glob == "" || !doublestar.ValidatePattern(glob) {
				return nil, &InvalidPatternError{Group: group.Name, Pattern: pattern}
			}

			if negative {
				cg.negative = append(cg.negative, glob)
			} else {
				cg.positive = append(cg.positive, glob)
			}
		}

		compiled = append(compiled, cg)
	}

	return compiled, nil
}

func firstMatchingGroup(groups []compiledGroup, ws m.Workspace) int {
	for i, group := range groups {
		if matchesAny(group.positive, string(ws)) && !matchesAny(group.negative, string(ws)) {
			return i
		}
	}

	return -1
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}

	return false
}

// SortedUniqueWorkspaces returns a sorted copy of workspaces without
// duplicates.
func SortedUniqueWorkspaces(workspaces []m.Workspace) []m.Workspace {
	out := slices.Clone(workspaces)
	slices.Sort(out)

	return slices.Compact(out)
}
