package domain

import (
	"fmt"
	"slices"
	"strings"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// ConflictPolicy decides how several distinct variants of one rule are
// stored.
type ConflictPolicy string

const (
	// PolicySurfaceAll keeps every distinct variant. A rule configured
	// differently across sampled contexts is stored in array form.
	PolicySurfaceAll ConflictPolicy = "surface-all"
	// PolicyHighestSeverity keeps one variant: the highest severity, then
	// the smallest canonical JSON among those.
	PolicyHighestSeverity ConflictPolicy = "highest-severity"
)

// ParseConflictPolicy validates a configured policy name.
func ParseConflictPolicy(name string) (ConflictPolicy, error) {
	switch policy := ConflictPolicy(strings.TrimSpace(name)); policy {
	case PolicySurfaceAll, PolicyHighestSeverity:
		return policy, nil
	case "":
		return PolicySurfaceAll, nil
	}

	return "", fmt.Errorf("unknown aggregation policy %q (want %q or %q)", name, PolicySurfaceAll, PolicyHighestSeverity)
}

// AggregateRules merges observations into one rule table. It never fails;
// no observations yield an empty table.
func AggregateRules(observations []m.RuleObservation, policy ConflictPolicy) m.RuleTable {
	distinct := map[string]map[string]m.RuleVariant{}

	for _, observation := range observations {
		for name, variant := range observation {
			variants, ok := distinct[name]
			if !ok {
				variants = map[string]m.RuleVariant{}
				distinct[name] = variants
			}

			variants[variant.Key()] = variant
		}
	}

	table := make(m.RuleTable, len(distinct))

	for name, variants := range distinct {
		sorted := make([]m.RuleVariant, 0, len(variants))
		for _, variant := range variants {
			sorted = append(sorted, variant)
		}

		SortVariants(sorted)

		if policy == PolicyHighestSeverity {
			sorted = sorted[:1]
		}

		table[name] = m.AggregatedRuleEntry{Variants: sorted}
	}

	return table
}

// SortVariants orders variants severity descending, then by canonical JSON.
func SortVariants(variants []m.RuleVariant) {
	slices.SortFunc(variants, CompareVariants)
}

// CompareVariants is the ordering used by SortVariants.
func CompareVariants(a, b m.RuleVariant) int {
	if a.Severity != b.Severity {
		return b.Severity.Rank() - a.Severity.Rank()
	}

	return strings.Compare(a.Key(), b.Key())
}
