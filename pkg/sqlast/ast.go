// Package sqlast defines the dialect-neutral statement list that every SQL
// parser adapter produces.
//
// Only the shape the change analyzer needs is modelled: a kind tag per
// top-level statement and, for table statements, the affected relation.
package sqlast

// StmtKind is the discriminating tag of a top-level statement.
type StmtKind int

// Statement kinds recognized by the analyzer. Everything else is KindOther.
const (
	KindOther StmtKind = iota
	KindCreateTable
	KindAlterTable
)

func (k StmtKind) String() string {
	switch k {
	case KindCreateTable:
		return "CreateTable"
	case KindAlterTable:
		return "AlterTable"
	default:
		return "Other"
	}
}

// RangeVar names a relation, optionally schema-qualified.
type RangeVar struct {
	Schema string
	Name   string
}

// Statement is one top-level statement of a schema file.
type Statement struct {
	Kind StmtKind
	// Tag is the parser's own name for the statement (e.g. "DropStmt"),
	// kept for logging unclassified statements.
	Tag string
	// Relation is set for table statements; a table statement without a
	// relation is structurally invalid.
	Relation *RangeVar
	// Location and Length are byte offsets into the source text.
	Location int
	Length   int
}

// Schema is the parsed form of one schema text, statements in source order.
type Schema struct {
	Dialect    string
	Statements []*Statement
}
