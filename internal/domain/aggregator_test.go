package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

func variant(severity m.Severity, options string) m.RuleVariant {
	if options == "" {
		return m.RuleVariant{Severity: severity}
	}

	return m.RuleVariant{Severity: severity, Options: json.RawMessage(options)}
}

func TestNormalizeRuleConfig(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    m.RuleVariant
		wantErr bool
	}{
		{name: "numeric off", raw: `0`, want: variant(m.SeverityOff, "")},
		{name: "numeric warn", raw: `1`, want: variant(m.SeverityWarn, "")},
		{name: "numeric error", raw: `2`, want: variant(m.SeverityError, "")},
		{name: "string case-insensitive", raw: `"Error"`, want: variant(m.SeverityError, "")},
		{name: "array without options", raw: `["warn"]`, want: variant(m.SeverityWarn, "")},
		{name: "single option", raw: `[2, "always"]`, want: variant(m.SeverityError, `"always"`)},
		{name: "object option canonicalized", raw: `["error", {"b": 1, "a": 2.50}]`, want: variant(m.SeverityError, `{"a":2.50,"b":1}`)},
		{name: "several options", raw: `["error", "always", {"null": "ignore"}]`, want: variant(m.SeverityError, `["always",{"null":"ignore"}]`)},
		{name: "html kept", raw: `["warn", "<a>&"]`, want: variant(m.SeverityWarn, `"<a>&"`)},
		{name: "unknown numeric", raw: `3`, wantErr: true},
		{name: "unknown string", raw: `"fatal"`, wantErr: true},
		{name: "empty array", raw: `[]`, wantErr: true},
		{name: "object", raw: `{"level": 2}`, wantErr: true},
		{name: "not json", raw: `warn`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeRuleConfig(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Severity, got.Severity)
			assert.Equal(t, string(tt.want.Options), string(got.Options))
		})
	}
}

func TestNormalizeRuleSet_NamesOffendingRule(t *testing.T) {
	_, err := domain.NormalizeRuleSet(m.RawRuleSet{
		"semi":     json.RawMessage(`"error"`),
		"no-debug": json.RawMessage(`"loud"`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-debug")
}

func TestAggregateRules_CollapsesIdenticalVariants(t *testing.T) {
	observations := []m.RuleObservation{
		{"semi": variant(m.SeverityError, `"always"`), "eqeqeq": variant(m.SeverityWarn, "")},
		{"semi": variant(m.SeverityError, `"always"`)},
		{"semi": variant(m.SeverityError, `"always"`), "eqeqeq": variant(m.SeverityWarn, "")},
	}

	table := domain.AggregateRules(observations, domain.PolicySurfaceAll)

	require.Len(t, table, 2)
	assert.True(t, table["semi"].IsScalar())
	assert.True(t, table["eqeqeq"].IsScalar())
}

func TestAggregateRules_SurfacesConflicts(t *testing.T) {
	observations := []m.RuleObservation{
		{"quotes": variant(m.SeverityWarn, `"single"`)},
		{"quotes": variant(m.SeverityOff, "")},
		{"quotes": variant(m.SeverityError, `"double"`)},
		{"quotes": variant(m.SeverityWarn, `"double"`)},
	}

	table := domain.AggregateRules(observations, domain.PolicySurfaceAll)

	assert.Equal(t, []m.RuleVariant{
		variant(m.SeverityError, `"double"`),
		variant(m.SeverityWarn, `"double"`),
		variant(m.SeverityWarn, `"single"`),
		variant(m.SeverityOff, ""),
	}, table["quotes"].Variants)

	highest := domain.AggregateRules(observations, domain.PolicyHighestSeverity)
	assert.Equal(t, []m.RuleVariant{variant(m.SeverityError, `"double"`)}, highest["quotes"].Variants)
}

func TestAggregateRules_OrderIndependent(t *testing.T) {
	a := m.RuleObservation{"semi": variant(m.SeverityError, "")}
	b := m.RuleObservation{"semi": variant(m.SeverityWarn, ""), "curly": variant(m.SeverityOff, "")}

	assert.Equal(t,
		domain.AggregateRules([]m.RuleObservation{a, b}, domain.PolicySurfaceAll),
		domain.AggregateRules([]m.RuleObservation{b, a}, domain.PolicySurfaceAll),
	)
}

func TestAggregateRules_Empty(t *testing.T) {
	table := domain.AggregateRules(nil, domain.PolicySurfaceAll)
	assert.NotNil(t, table)
	assert.Empty(t, table)
}

func TestParseConflictPolicy(t *testing.T) {
	policy, err := domain.ParseConflictPolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicySurfaceAll, policy)

	policy, err = domain.ParseConflictPolicy("highest-severity")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyHighestSeverity, policy)

	_, err = domain.ParseConflictPolicy("merge")
	require.Error(t, err)
}
