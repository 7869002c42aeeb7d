package model

// SeverityChange records a change of a rule's severity summary.
type SeverityChange struct {
	Rule   string `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// OptionChange records a change of a rule's variant set at unchanged severity.
type OptionChange struct {
	Rule   string        `json:"rule"`
	Before []RuleVariant `json:"before"`
	After  []RuleVariant `json:"after"`
}

// MembershipChange lists workspaces that joined or left a group.
type MembershipChange struct {
	Added   []Workspace `json:"added"`
	Removed []Workspace `json:"removed"`
}

// Diff classifies every change between two snapshots of one group.
type Diff struct {
	IntroducedRules            []string         `json:"introducedRules"`
	RemovedRules               []string         `json:"removedRules"`
	SeverityChanges            []SeverityChange `json:"severityChanges"`
	OptionChanges              []OptionChange   `json:"optionChanges"`
	WorkspaceMembershipChanges MembershipChange `json:"workspaceMembershipChanges"`
}

// HasDiff reports whether any part of the diff is non-empty.
func (d Diff) HasDiff() bool {
	return len(d.IntroducedRules) > 0 ||
		len(d.RemovedRules) > 0 ||
		len(d.SeverityChanges) > 0 ||
		len(d.OptionChanges) > 0 ||
		len(d.WorkspaceMembershipChanges.Added) > 0 ||
		len(d.WorkspaceMembershipChanges.Removed) > 0
}
