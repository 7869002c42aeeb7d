package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
	"rulesnap.dev/pkg/rulesnap/pkg/canonjson"
)

// BuildSnapshot assembles a snapshot, normalizing workspace order.
func BuildSnapshot(groupID string, workspaces []m.Workspace, rules m.RuleTable) m.Snapshot {
	sorted := SortedUniqueWorkspaces(workspaces)
	if sorted == nil {
		sorted = []m.Workspace{}
	}

	if rules == nil {
		rules = m.RuleTable{}
	}

	return m.Snapshot{
		FormatVersion: m.SnapshotFormatVersion,
		GroupID:       groupID,
		Workspaces:    sorted,
		Rules:         rules,
	}
}

// EncodeSnapshot writes the canonical on-disk form: two-space indentation,
// keys in formatVersion, groupId, workspaces, rules order, one trailing
// newline.
func EncodeSnapshot(snapshot m.Snapshot) ([]byte, error) {
	if err := ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}

	if snapshot.Workspaces == nil {
		snapshot.Workspaces = []m.Workspace{}
	}

	if snapshot.Rules == nil {
		snapshot.Rules = m.RuleTable{}
	}

	data, err := canonjson.MarshalIndent(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot %q: %w", snapshot.GroupID, err)
	}

	return data, nil
}

type snapshotDocument struct {
	FormatVersion *int                              `json:"formatVersion"`
	GroupID       *string                           `json:"groupId"`
	Workspaces    *[]m.Workspace                    `json:"workspaces"`
	Rules         *map[string]m.AggregatedRuleEntry `json:"rules"`
}

// DecodeSnapshot parses a stored snapshot. Unknown fields, missing fields
// and broken ordering invariants are rejected rather than repaired.
func DecodeSnapshot(data []byte) (m.Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc snapshotDocument
	if err := dec.Decode(&doc); err != nil {
		return m.Snapshot{}, &MalformedSnapshotError{Reason: err.Error()}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return m.Snapshot{}, &MalformedSnapshotError{Reason: "unexpected data after snapshot object"}
	}

	switch {
	case doc.FormatVersion == nil:
		return m.Snapshot{}, &MalformedSnapshotError{Reason: "missing formatVersion"}
	case doc.GroupID == nil:
		return m.Snapshot{}, &MalformedSnapshotError{Reason: "missing groupId"}
	case doc.Workspaces == nil:
		return m.Snapshot{}, &MalformedSnapshotError{Reason: "missing workspaces"}
	case doc.Rules == nil:
		return m.Snapshot{}, &MalformedSnapshotError{Reason: "missing rules"}
	}

	snapshot := m.Snapshot{
		FormatVersion: *doc.FormatVersion,
		GroupID:       *doc.GroupID,
		Workspaces:    *doc.Workspaces,
		Rules:         m.RuleTable(*doc.Rules),
	}

	if snapshot.Workspaces == nil {
		snapshot.Workspaces = []m.Workspace{}
	}

	if snapshot.Rules == nil {
		snapshot.Rules = m.RuleTable{}
	}

	if err := ValidateSnapshot(snapshot); err != nil {
		return m.Snapshot{}, err
	}

	return snapshot, nil
}

// ValidateSnapshot checks the structural invariants of a snapshot.
func ValidateSnapshot(snapshot m.Snapshot) error {
	if snapshot.FormatVersion != m.SnapshotFormatVersion {
		return &MalformedSnapshotError{Reason: fmt.Sprintf("unsupported formatVersion %d", snapshot.FormatVersion)}
	}

	if snapshot.GroupID == "" {
		return &MalformedSnapshotError{Reason: "empty groupId"}
	}

	for i := 1; i < len(snapshot.Workspaces); i++ {
		if snapshot.Workspaces[i-1] >= snapshot.Workspaces[i] {
			return &MalformedSnapshotError{Reason: fmt.Sprintf("workspaces not strictly ascending at %q", snapshot.Workspaces[i])}
		}
	}

	for name, entry := range snapshot.Rules {
		if len(entry.Variants) == 0 {
			return &MalformedSnapshotError{Reason: fmt.Sprintf("rule %q has no variants", name)}
		}

		for _, variant := range entry.Variants {
			if !variant.Severity.Valid() {
				return &MalformedSnapshotError{Reason: fmt.Sprintf("rule %q has unknown severity %q", name, variant.Severity)}
			}
		}

		sorted := slices.IsSortedFunc(entry.Variants, CompareVariants)
		unique := len(slices.CompactFunc(slices.Clone(entry.Variants), m.RuleVariant.Equal)) == len(entry.Variants)

		if !sorted || !unique {
			return &MalformedSnapshotError{Reason: fmt.Sprintf("rule %q variants are not sorted and distinct", name)}
		}
	}

	return nil
}
