package model

// SnapshotFormatVersion is the only supported on-disk format.
const SnapshotFormatVersion = 1

// Snapshot is the canonical record of one group's aggregated rule state.
// Field order is the on-disk key order.
type Snapshot struct {
	FormatVersion int         `json:"formatVersion"`
	GroupID       string      `json:"groupId"`
	Workspaces    []Workspace `json:"workspaces"`
	Rules         RuleTable   `json:"rules"`
}
