// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Identifier is an opaque identifier that keeps its raw JSON encoding.
//
// Content IDs supplied by the caller and media IDs assigned by Yodeck are both
// passed through without interpretation: a numeric id stays numeric, a string
// id stays a string, byte for byte. The zero value marshals as JSON null.
type Identifier []byte

// NewIdentifier returns an Identifier holding s encoded as a JSON string.
func NewIdentifier(s string) Identifier {
	return Identifier(strconv.Quote(s))
}

// MarshalJSON implements [json.Marshaler].
func (id Identifier) MarshalJSON() ([]byte, error) {
	if len(id) == 0 {
		return []byte("null"), nil
	}
	return id, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. Only scalars (strings and
// numbers) and null are accepted.
func (id *Identifier) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return fmt.Errorf("identifier must be a string or a number, got %s", trimmed)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		*id = nil
		return nil
	}

	*id = append((*id)[:0], trimmed...)
	return nil
}

// IsZero reports whether the identifier is absent or JSON null.
func (id Identifier) IsZero() bool {
	return len(id) == 0 || bytes.Equal(id, []byte("null"))
}

// String returns a human-readable form: string identifiers are unquoted,
// numeric identifiers are returned as written.
func (id Identifier) String() string {
	if id.IsZero() {
		return ""
	}

	if id[0] == '"' {
		var s string
		if err := json.Unmarshal(id, &s); err == nil {
			return s
		}
	}

	return string(id)
}
