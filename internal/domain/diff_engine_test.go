package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

func entry(variants ...m.RuleVariant) m.AggregatedRuleEntry {
	return m.AggregatedRuleEntry{Variants: variants}
}

func snapshotOf(workspaces []m.Workspace, rules m.RuleTable) m.Snapshot {
	return domain.BuildSnapshot("g", workspaces, rules)
}

func TestDiffSnapshots_Identical(t *testing.T) {
	s := webSnapshot()

	diff := domain.DiffSnapshots(s, s)
	assert.False(t, domain.HasDiff(diff))
	assert.NotNil(t, diff.IntroducedRules)
	assert.NotNil(t, diff.WorkspaceMembershipChanges.Added)
}

func TestDiffSnapshots_Classification(t *testing.T) {
	before := snapshotOf([]m.Workspace{"a", "b"}, m.RuleTable{
		"removed-rule": entry(variant(m.SeverityError, "")),
		"severity":     entry(variant(m.SeverityWarn, "")),
		"options":      entry(variant(m.SeverityError, `"single"`)),
		"split":        entry(variant(m.SeverityError, "")),
		"same":         entry(variant(m.SeverityOff, "")),
	})
	after := snapshotOf([]m.Workspace{"b", "c"}, m.RuleTable{
		"new-rule": entry(variant(m.SeverityWarn, "")),
		"severity": entry(variant(m.SeverityError, "")),
		"options":  entry(variant(m.SeverityError, `"double"`)),
		"split":    entry(variant(m.SeverityError, ""), variant(m.SeverityWarn, "")),
		"same":     entry(variant(m.SeverityOff, "")),
	})

	diff := domain.DiffSnapshots(before, after)

	assert.Equal(t, []string{"new-rule"}, diff.IntroducedRules)
	assert.Equal(t, []string{"removed-rule"}, diff.RemovedRules)
	assert.Equal(t, []m.SeverityChange{
		{Rule: "severity", Before: "warn", After: "error"},
		{Rule: "split", Before: "error", After: "error|warn"},
	}, diff.SeverityChanges)
	assert.Equal(t, []m.OptionChange{{
		Rule:   "options",
		Before: []m.RuleVariant{variant(m.SeverityError, `"single"`)},
		After:  []m.RuleVariant{variant(m.SeverityError, `"double"`)},
	}}, diff.OptionChanges)
	assert.Equal(t, m.MembershipChange{Added: []m.Workspace{"c"}, Removed: []m.Workspace{"a"}}, diff.WorkspaceMembershipChanges)
	assert.True(t, domain.HasDiff(diff))
}

func TestDiffSnapshots_OffRuleOptions(t *testing.T) {
	tests := []struct {
		name           string
		before, after  m.AggregatedRuleEntry
		wantIntroduced []string
		wantRemoved    []string
		wantOptions    int
	}{
		{
			name:        "options dropped from disabled rule",
			before:      entry(variant(m.SeverityOff, `"always"`)),
			after:       entry(variant(m.SeverityOff, "")),
			wantRemoved: []string{"semi"},
		},
		{
			name:           "options added to disabled rule",
			before:         entry(variant(m.SeverityOff, "")),
			after:          entry(variant(m.SeverityOff, `"always"`)),
			wantIntroduced: []string{"semi"},
		},
		{
			name:        "disabled variants shrink",
			before:      entry(variant(m.SeverityOff, `"a"`), variant(m.SeverityOff, `"b"`)),
			after:       entry(variant(m.SeverityOff, `"a"`)),
			wantRemoved: []string{"semi"},
		},
		{
			name:        "disabled options replaced",
			before:      entry(variant(m.SeverityOff, `"a"`)),
			after:       entry(variant(m.SeverityOff, `"b"`)),
			wantOptions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := domain.DiffSnapshots(
				snapshotOf(nil, m.RuleTable{"semi": tt.before}),
				snapshotOf(nil, m.RuleTable{"semi": tt.after}),
			)

			if tt.wantIntroduced == nil {
				tt.wantIntroduced = []string{}
			}

			if tt.wantRemoved == nil {
				tt.wantRemoved = []string{}
			}

			assert.Equal(t, tt.wantIntroduced, diff.IntroducedRules)
			assert.Equal(t, tt.wantRemoved, diff.RemovedRules)
			assert.Len(t, diff.OptionChanges, tt.wantOptions)
			assert.Empty(t, diff.SeverityChanges)
		})
	}
}

func TestDiffSnapshots_Idempotent(t *testing.T) {
	before := webSnapshot()
	after := snapshotOf([]m.Workspace{"apps/web"}, m.RuleTable{"semi": entry(variant(m.SeverityError, ""))})

	assert.Equal(t, domain.DiffSnapshots(before, after), domain.DiffSnapshots(before, after))
}

func TestSeveritySummary(t *testing.T) {
	assert.Equal(t, "error|warn|off", domain.SeveritySummary([]m.RuleVariant{
		variant(m.SeverityOff, ""), variant(m.SeverityError, ""), variant(m.SeverityWarn, `"x"`), variant(m.SeverityWarn, ""),
	}))
	assert.Equal(t, "", domain.SeveritySummary(nil))
}
