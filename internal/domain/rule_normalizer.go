package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
	"rulesnap.dev/pkg/rulesnap/pkg/canonjson"
)

// NormalizeRuleSet converts a raw linter rule map into an observation.
func NormalizeRuleSet(raw m.RawRuleSet) (m.RuleObservation, error) {
	observation := make(m.RuleObservation, len(raw))

	for name, config := range raw {
		variant, err := NormalizeRuleConfig(config)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}

		observation[name] = variant
	}

	return observation, nil
}

// NormalizeRuleConfig converts one raw rule configuration into a canonical
// variant. Raw configs are a severity (0/1/2 or off/warn/error) or an array
// whose first element is a severity followed by option values. A single
// option is stored as is; several are stored as one array.
func NormalizeRuleConfig(raw json.RawMessage) (m.RuleVariant, error) {
	value, err := canonjson.Decode(raw)
	if err != nil {
		return m.RuleVariant{}, err
	}

	parts, isArray := value.([]any)
	if !isArray {
		severity, err := normalizeSeverity(value)
		if err != nil {
			return m.RuleVariant{}, err
		}

		return m.RuleVariant{Severity: severity}, nil
	}

	if len(parts) == 0 {
		return m.RuleVariant{}, fmt.Errorf("empty rule configuration")
	}

	severity, err := normalizeSeverity(parts[0])
	if err != nil {
		return m.RuleVariant{}, err
	}

	variant := m.RuleVariant{Severity: severity}

	var options any

	switch rest := parts[1:]; len(rest) {
	case 0:
		return variant, nil
	case 1:
		options = rest[0]
	default:
		options = rest
	}

	encoded, err := canonjson.Marshal(options)
	if err != nil {
		return m.RuleVariant{}, fmt.Errorf("encode options: %w", err)
	}

	variant.Options = encoded

	return variant, nil
}

func normalizeSeverity(value any) (m.Severity, error) {
	switch v := value.(type) {
	case json.Number:
		switch v.String() {
		case "0":
			return m.SeverityOff, nil
		case "1":
			return m.SeverityWarn, nil
		case "2":
			return m.SeverityError, nil
		}
	case string:
		severity := m.Severity(strings.ToLower(strings.TrimSpace(v)))
		if severity.Valid() {
			return severity, nil
		}
	}

	return "", fmt.Errorf("unknown severity %v", value)
}
