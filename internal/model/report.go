package model

// GroupStatus classifies a group when comparing against the baseline store.
type GroupStatus string

const (
	// GroupUnchanged means the computed snapshot matches its baseline.
	GroupUnchanged GroupStatus = "unchanged"
	// GroupChanged means the computed snapshot drifted from its baseline.
	GroupChanged GroupStatus = "changed"
	// GroupNew means a group was computed but has no baseline.
	GroupNew GroupStatus = "new"
	// GroupRemoved means a baseline exists for a group that was not computed.
	GroupRemoved GroupStatus = "removed"
)

// GroupDrift is the comparison result for one group.
type GroupDrift struct {
	GroupID string      `json:"groupId"`
	Status  GroupStatus `json:"status"`
	Diff    Diff        `json:"diff"`
}

// CheckReport is the full comparison of computed snapshots against the
// baseline store.
type CheckReport struct {
	Groups  []GroupDrift       `json:"groups"`
	Skipped []SkippedWorkspace `json:"skipped"`
}

// HasDrift reports whether any group is not unchanged.
func (r CheckReport) HasDrift() bool {
	for _, group := range r.Groups {
		if group.Status != GroupUnchanged {
			return true
		}
	}

	return false
}
