package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"rulesnap.dev/pkg/rulesnap/pkg/canonjson"
)

// Severity is the canonical rule severity.
type Severity string

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = "off"
	// SeverityWarn reports without failing.
	SeverityWarn Severity = "warn"
	// SeverityError reports and fails.
	SeverityError Severity = "error"
)

// Severities lists every canonical severity from highest to lowest.
var Severities = []Severity{SeverityError, SeverityWarn, SeverityOff}

// Valid reports whether s is one of the canonical severities.
func (s Severity) Valid() bool {
	return s == SeverityOff || s == SeverityWarn || s == SeverityError
}

// Rank orders severities: error > warn > off.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarn:
		return 1
	case SeverityOff:
		return 0
	}

	return -1
}

// RuleVariant is one concrete (severity, options) configuration of a rule.
// Options holds canonical JSON and is nil for a bare severity.
type RuleVariant struct {
	Severity Severity
	Options  json.RawMessage
}

// HasOptions reports whether the variant carries an options payload.
func (v RuleVariant) HasOptions() bool {
	return v.Options != nil
}

// Key returns the canonical JSON of the variant, used for equality and
// ordering.
func (v RuleVariant) Key() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return string(v.Severity)
	}

	return string(b)
}

// Equal reports value equality after canonicalization.
func (v RuleVariant) Equal(other RuleVariant) bool {
	return v.Severity == other.Severity && bytes.Equal(v.Options, other.Options)
}

// MarshalJSON encodes the variant as [severity] or [severity, options].
func (v RuleVariant) MarshalJSON() ([]byte, error) {
	if !v.HasOptions() {
		return canonjson.Marshal([]any{string(v.Severity)})
	}

	return canonjson.Marshal([]any{string(v.Severity), v.Options})
}

// UnmarshalJSON decodes [severity] or [severity, options].
func (v *RuleVariant) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("rule variant must be an array: %w", err)
	}

	if len(parts) == 0 || len(parts) > 2 {
		return fmt.Errorf("rule variant must have 1 or 2 elements, got %d", len(parts))
	}

	var severity string
	if err := json.Unmarshal(parts[0], &severity); err != nil {
		return fmt.Errorf("rule variant severity must be a string: %w", err)
	}

	if !Severity(severity).Valid() {
		return fmt.Errorf("unknown severity %q", severity)
	}

	variant := RuleVariant{Severity: Severity(severity)}

	if len(parts) == 2 {
		options, err := canonjson.Canonicalize(parts[1])
		if err != nil {
			return fmt.Errorf("rule variant options: %w", err)
		}

		variant.Options = options
	}

	*v = variant

	return nil
}

// RuleObservation maps rule names to the variant one RuleQuery call saw.
type RuleObservation map[string]RuleVariant

// RawRuleSet is the unnormalized rule map returned by a linter.
type RawRuleSet map[string]json.RawMessage

// AggregatedRuleEntry holds one or more distinct variants of a rule, sorted
// severity descending then by canonical JSON.
type AggregatedRuleEntry struct {
	Variants []RuleVariant
}

// IsScalar reports whether exactly one variant was observed.
func (e AggregatedRuleEntry) IsScalar() bool {
	return len(e.Variants) == 1
}

// MarshalJSON writes the scalar form for a single variant and an array of
// variants otherwise.
func (e AggregatedRuleEntry) MarshalJSON() ([]byte, error) {
	if len(e.Variants) == 0 {
		return nil, errors.New("aggregated rule entry has no variants")
	}

	if e.IsScalar() {
		return e.Variants[0].MarshalJSON()
	}

	return canonjson.Marshal(e.Variants)
}

// UnmarshalJSON accepts either the scalar or the array form.
func (e *AggregatedRuleEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("rule entry must be an array: %w", err)
	}

	if len(parts) == 0 {
		return errors.New("rule entry has no variants")
	}

	first := bytes.TrimSpace(parts[0])
	if len(first) > 0 && first[0] == '"' {
		var variant RuleVariant
		if err := variant.UnmarshalJSON(data); err != nil {
			return err
		}

		e.Variants = []RuleVariant{variant}

		return nil
	}

	variants := make([]RuleVariant, 0, len(parts))

	for i, part := range parts {
		var variant RuleVariant
		if err := variant.UnmarshalJSON(part); err != nil {
			return fmt.Errorf("variant %d: %w", i, err)
		}

		variants = append(variants, variant)
	}

	if len(variants) < 2 {
		return errors.New("array form rule entry must hold at least two variants")
	}

	e.Variants = variants

	return nil
}

// RuleTable maps rule names to aggregated entries. encoding/json writes map
// keys sorted, which keeps the table ordered on disk.
type RuleTable map[string]AggregatedRuleEntry
