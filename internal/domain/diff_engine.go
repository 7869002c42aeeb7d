package domain

import (
	"slices"
	"strings"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// DiffSnapshots classifies every difference between a stored baseline and a
// freshly computed snapshot of the same group. Every list in the result is
// sorted and non-nil.
func DiffSnapshots(before, after m.Snapshot) m.Diff {
	diff := m.Diff{
		IntroducedRules: []string{},
		RemovedRules:    []string{},
		SeverityChanges: []m.SeverityChange{},
		OptionChanges:   []m.OptionChange{},
	}

	for _, name := range unionRuleNames(before.Rules, after.Rules) {
		beforeEntry, inBefore := before.Rules[name]
		afterEntry, inAfter := after.Rules[name]

		switch {
		case !inBefore:
			diff.IntroducedRules = append(diff.IntroducedRules, name)
		case !inAfter:
			diff.RemovedRules = append(diff.RemovedRules, name)
		default:
			classifyRuleChange(&diff, name, beforeEntry.Variants, afterEntry.Variants)
		}
	}

	diff.WorkspaceMembershipChanges = diffWorkspaces(before.Workspaces, after.Workspaces)

	return diff
}

// HasDiff reports whether d holds any change.
func HasDiff(d m.Diff) bool {
	return d.HasDiff()
}

type changeKind int

const (
	changeNone changeKind = iota
	changeSeverity
	changeOptions
	changeIntroduced
	changeRemoved
)

func classifyRuleChange(diff *m.Diff, name string, before, after []m.RuleVariant) {
	beforeSummary := SeveritySummary(before)
	afterSummary := SeveritySummary(after)

	switch classifyVariants(before, after, beforeSummary, afterSummary) {
	case changeNone:
	case changeSeverity:
		diff.SeverityChanges = append(diff.SeverityChanges, m.SeverityChange{
			Rule:   name,
			Before: beforeSummary,
			After:  afterSummary,
		})
	case changeOptions:
		diff.OptionChanges = append(diff.OptionChanges, m.OptionChange{
			Rule:   name,
			Before: slices.Clone(before),
			After:  slices.Clone(after),
		})
	case changeIntroduced:
		diff.IntroducedRules = append(diff.IntroducedRules, name)
	case changeRemoved:
		diff.RemovedRules = append(diff.RemovedRules, name)
	}
}

func classifyVariants(before, after []m.RuleVariant, beforeSummary, afterSummary string) changeKind {
	if beforeSummary != afterSummary {
		return changeSeverity
	}

	if sameVariants(before, after) {
		return changeNone
	}

	if !allOff(before) || !allOff(after) {
		return changeOptions
	}

	// A disabled rule whose options appear or disappear reads as the rule
	// being introduced or removed.
	beforeOptions := anyOptions(before)
	afterOptions := anyOptions(after)

	switch {
	case beforeOptions && !afterOptions:
		return changeRemoved
	case !beforeOptions && afterOptions:
		return changeIntroduced
	case len(before) > len(after):
		return changeRemoved
	case len(before) < len(after):
		return changeIntroduced
	}

	return changeOptions
}

// SeveritySummary joins the distinct severities of variants in
// error|warn|off order.
func SeveritySummary(variants []m.RuleVariant) string {
	present := map[m.Severity]bool{}
	for _, variant := range variants {
		present[variant.Severity] = true
	}

	parts := make([]string, 0, len(present))

	for _, severity := range m.Severities {
		if present[severity] {
			parts = append(parts, string(severity))
		}
	}

	return strings.Join(parts, "|")
}

func sameVariants(a, b []m.RuleVariant) bool {
	sortedA := slices.Clone(a)
	sortedB := slices.Clone(b)

	SortVariants(sortedA)
	SortVariants(sortedB)

	return slices.EqualFunc(sortedA, sortedB, m.RuleVariant.Equal)
}

func allOff(variants []m.RuleVariant) bool {
	for _, variant := range variants {
		if variant.Severity != m.SeverityOff {
			return false
		}
	}

	return len(variants) > 0
}

func anyOptions(variants []m.RuleVariant) bool {
	return slices.ContainsFunc(variants, m.RuleVariant.HasOptions)
}

func unionRuleNames(a, b m.RuleTable) []string {
	names := make([]string, 0, len(a)+len(b))

	for name := range a {
		names = append(names, name)
	}

	for name := range b {
		names = append(names, name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

func diffWorkspaces(before, after []m.Workspace) m.MembershipChange {
	change := m.MembershipChange{Added: []m.Workspace{}, Removed: []m.Workspace{}}

	beforeSet := make(map[m.Workspace]struct{}, len(before))
	for _, ws := range before {
		beforeSet[ws] = struct{}{}
	}

	afterSet := make(map[m.Workspace]struct{}, len(after))
	for _, ws := range after {
		afterSet[ws] = struct{}{}

		if _, ok := beforeSet[ws]; !ok {
			change.Added = append(change.Added, ws)
		}
	}

	for _, ws := range before {
		if _, ok := afterSet[ws]; !ok {
			change.Removed = append(change.Removed, ws)
		}
	}

	slices.Sort(change.Added)
	slices.Sort(change.Removed)
	change.Added = slices.Compact(change.Added)
	change.Removed = slices.Compact(change.Removed)

	return change
}
