// Package canonjson produces canonical JSON: object keys sorted recursively,
// number literals kept as written, and no HTML escaping.
package canonjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a document holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// Canonicalize re-encodes a single JSON document in canonical form.
func Canonicalize(raw []byte) (json.RawMessage, error) {
	value, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	return Marshal(value)
}

// Decode parses a single JSON document, keeping numbers as json.Number so
// that re-encoding does not alter their text.
func Decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return value, nil
}

// Marshal encodes v compactly without HTML escaping.
//
// Maps are written with sorted keys by encoding/json, which is what makes
// decoded documents canonical.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent encodes v with two-space indentation and exactly one
// trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
