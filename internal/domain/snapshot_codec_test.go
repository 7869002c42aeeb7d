package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const webSnapshotDocument = `{
  "formatVersion": 1,
  "groupId": "web",
  "workspaces": [
    "apps/admin",
    "apps/web"
  ],
  "rules": {
    "eqeqeq": [
      "error",
      "always"
    ],
    "no-console": [
      [
        "warn"
      ],
      [
        "off"
      ]
    ]
  }
}
`

func webSnapshot() m.Snapshot {
	return domain.BuildSnapshot("web", []m.Workspace{"apps/web", "apps/admin", "apps/web"}, m.RuleTable{
		"no-console": {Variants: []m.RuleVariant{variant(m.SeverityWarn, ""), variant(m.SeverityOff, "")}},
		"eqeqeq":     {Variants: []m.RuleVariant{variant(m.SeverityError, `"always"`)}},
	})
}

func TestEncodeSnapshot_CanonicalBytes(t *testing.T) {
	data, err := domain.EncodeSnapshot(webSnapshot())
	require.NoError(t, err)
	assert.Equal(t, webSnapshotDocument, string(data))
}

func TestEncodeSnapshot_Empty(t *testing.T) {
	data, err := domain.EncodeSnapshot(domain.BuildSnapshot("empty", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"formatVersion\": 1,\n  \"groupId\": \"empty\",\n  \"workspaces\": [],\n  \"rules\": {}\n}\n", string(data))
}

func TestDecodeSnapshot_RoundTrip(t *testing.T) {
	snapshot, err := domain.DecodeSnapshot([]byte(webSnapshotDocument))
	require.NoError(t, err)
	assert.Equal(t, webSnapshot(), snapshot)

	again, err := domain.EncodeSnapshot(snapshot)
	require.NoError(t, err)
	assert.Equal(t, webSnapshotDocument, string(again))
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `nope`},
		{name: "unknown field", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{},"hash":"x"}`},
		{name: "missing rules", doc: `{"formatVersion":1,"groupId":"a","workspaces":[]}`},
		{name: "missing workspaces", doc: `{"formatVersion":1,"groupId":"a","rules":{}}`},
		{name: "wrong version", doc: `{"formatVersion":2,"groupId":"a","workspaces":[],"rules":{}}`},
		{name: "empty group", doc: `{"formatVersion":1,"groupId":"","workspaces":[],"rules":{}}`},
		{name: "unsorted workspaces", doc: `{"formatVersion":1,"groupId":"a","workspaces":["b","a"],"rules":{}}`},
		{name: "duplicate workspaces", doc: `{"formatVersion":1,"groupId":"a","workspaces":["a","a"],"rules":{}}`},
		{name: "bad severity", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{"semi":["loud"]}}`},
		{name: "unsorted variants", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{"semi":[["off"],["error"]]}}`},
		{name: "duplicate variants", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{"semi":[["error"],["error"]]}}`},
		{name: "single variant array form", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{"semi":[["error"]]}}`},
		{name: "trailing data", doc: `{"formatVersion":1,"groupId":"a","workspaces":[],"rules":{}} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.DecodeSnapshot([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
		})
	}
}
