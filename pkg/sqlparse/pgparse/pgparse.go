// Package pgparse registers the "postgres" dialect, backed by libpg_query.
package pgparse

import (
	"fmt"
	"strings"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// Dialect is the registry name of this parser.
const Dialect = "postgres"

// Parser implements sqlparse.Parser using the PostgreSQL server's own grammar.
type Parser struct{}

// Parse parses text into a statement list.
func (Parser) Parse(text string) (*sqlast.Schema, error) {
	tree, err := pgquery.Parse(text)
	if err != nil {
		return nil, &sqlparse.SyntaxError{Dialect: Dialect, Message: err.Error(), Err: err}
	}
	s := &sqlast.Schema{
		Dialect:    Dialect,
		Statements: make([]*sqlast.Statement, 0, len(tree.GetStmts())),
	}
	for _, raw := range tree.GetStmts() {
		s.Statements = append(s.Statements, convert(raw))
	}
	return s, nil
}

// convert maps a raw statement to its neutral form. A raw statement without a
// body yields nil so the analyzer rejects the tree as a whole.
func convert(raw *pgquery.RawStmt) *sqlast.Statement {
	if raw.GetStmt() == nil {
		return nil
	}
	stmt := &sqlast.Statement{
		Tag:      tag(raw.GetStmt()),
		Location: int(raw.GetStmtLocation()),
		Length:   int(raw.GetStmtLen()),
	}
	switch n := raw.GetStmt().GetNode().(type) {
	case *pgquery.Node_AlterTableStmt:
		stmt.Kind = sqlast.KindAlterTable
		stmt.Relation = rangeVar(n.AlterTableStmt.GetRelation())
	case *pgquery.Node_CreateStmt:
		stmt.Kind = sqlast.KindCreateTable
		stmt.Relation = rangeVar(n.CreateStmt.GetRelation())
	}
	return stmt
}

func rangeVar(rv *pgquery.RangeVar) *sqlast.RangeVar {
	if rv == nil {
		return nil
	}
	return &sqlast.RangeVar{Schema: rv.GetSchemaname(), Name: rv.GetRelname()}
}

// tag returns the protobuf oneof name of the node, e.g. "DropStmt".
func tag(n *pgquery.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n.GetNode()), "*pg_query.Node_")
}

func init() {
	sqlparse.Register(Dialect, Parser{})
}
