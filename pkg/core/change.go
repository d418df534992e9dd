package core

import (
	"fmt"
	"strings"
)

// ChangeKind classifies a detected schema-altering statement.
type ChangeKind int

// Change kinds. The zero value is deliberately not a valid kind.
const (
	ChangeUnknown ChangeKind = iota
	// ChangeCreated marks a CREATE TABLE statement.
	ChangeCreated
	// ChangeAltered marks an ALTER TABLE statement.
	ChangeAltered
)

// String returns the lower-case name of the kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeCreated:
		return "created"
	case ChangeAltered:
		return "altered"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *ChangeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "created":
		*k = ChangeCreated
	case "altered":
		*k = ChangeAltered
	default:
		return fmt.Errorf("unknown change kind %q", text)
	}
	return nil
}

// ChangeRecord is one classified schema change. Records are values and are
// never mutated after the analyzer produces them.
type ChangeRecord struct {
	Kind  ChangeKind `json:"kind" yaml:"kind"`
	Table string     `json:"table" yaml:"table"`
}

// String renders the record as "Table created: <name>" or "Table altered: <name>".
//
// This is the only place a change is formatted. The rendered text is both the
// notification payload and the literal key the impact scanner searches for,
// so the two uses always change together.
func (c ChangeRecord) String() string {
	switch c.Kind {
	case ChangeCreated:
		return "Table created: " + c.Table
	case ChangeAltered:
		return "Table altered: " + c.Table
	default:
		return ""
	}
}

// ChangeSet is the ordered list of changes found in one schema text.
// An empty set is valid and means "nothing to report".
type ChangeSet []ChangeRecord

// Strings returns the rendered form of every record, in order.
func (s ChangeSet) Strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.String()
	}
	return out
}

// Join renders the set as a single separator-delimited string.
func (s ChangeSet) Join(sep string) string {
	return strings.Join(s.Strings(), sep)
}
