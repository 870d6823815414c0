// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Entry is a single credential record stored in the vault.
//
// Password, Notes and every CustomField with IsEncrypted set are the
// sensitive fields: they travel to the server as vault envelopes and are
// additionally wrapped by the server transport cipher at rest.
type Entry struct {
	ID           string       `json:"id"`
	UserID       int64        `json:"user_id"`
	CategoryID   string       `json:"category_id"`
	Title        string       `json:"title"`
	Username     string       `json:"username"`
	Password     string       `json:"password"`
	Notes        *string      `json:"notes,omitempty"`
	CustomFields CustomFields `json:"custom_fields"`
	Tags         Tags         `json:"tags"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NotesValue returns the notes text or an empty string when absent.
func (e Entry) NotesValue() string {
	if e.Notes == nil {
		return ""
	}
	return *e.Notes
}

// Clone returns a deep copy of e so that field rewrites never alias the
// caller's slices or notes pointer.
func (e Entry) Clone() Entry {
	out := e
	if e.Notes != nil {
		n := *e.Notes
		out.Notes = &n
	}
	if e.CustomFields != nil {
		out.CustomFields = make(CustomFields, len(e.CustomFields))
		copy(out.CustomFields, e.CustomFields)
	}
	if e.Tags != nil {
		out.Tags = make(Tags, len(e.Tags))
		copy(out.Tags, e.Tags)
	}
	return out
}

// CustomField is a user-defined name/value pair attached to an entry.
type CustomField struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	IsEncrypted bool   `json:"is_encrypted"`
}

// CustomFields is stored as a JSONB column.
type CustomFields []CustomField

// Value implements [driver.Valuer].
func (c CustomFields) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements [sql.Scanner].
func (c *CustomFields) Scan(src any) error {
	return scanJSON(src, c)
}

// Tags is stored as a JSONB column.
type Tags []string

// Value implements [driver.Valuer].
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan implements [sql.Scanner].
func (t *Tags) Scan(src any) error {
	return scanJSON(src, t)
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

// ErrUnsupportedScanType is returned when a JSON column holds a value the
// scanner can not decode.
var ErrUnsupportedScanType = errors.New("unsupported scan source type")
