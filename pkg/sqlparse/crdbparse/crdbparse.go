// Package crdbparse registers the "cockroach" dialect: a pure-Go PostgreSQL
// grammar (CockroachDB's), for builds where cgo and libpg_query are unavailable.
package crdbparse

import (
	"github.com/auxten/postgresql-parser/pkg/sql/parser"
	"github.com/auxten/postgresql-parser/pkg/sql/sem/tree"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// Dialect is the registry name of this parser.
const Dialect = "cockroach"

// Parser implements sqlparse.Parser.
type Parser struct{}

// Parse parses text into a statement list. The grammar does not report
// statement offsets, so Location and Length are left zero.
func (Parser) Parse(text string) (*sqlast.Schema, error) {
	stmts, err := parser.Parse(text)
	if err != nil {
		return nil, &sqlparse.SyntaxError{Dialect: Dialect, Message: err.Error(), Err: err}
	}
	s := &sqlast.Schema{
		Dialect:    Dialect,
		Statements: make([]*sqlast.Statement, 0, len(stmts)),
	}
	for _, stmt := range stmts {
		s.Statements = append(s.Statements, convert(stmt.AST))
	}
	return s, nil
}

func convert(n tree.Statement) *sqlast.Statement {
	if n == nil {
		return nil
	}
	stmt := &sqlast.Statement{Tag: n.StatementTag()}
	switch n := n.(type) {
	case *tree.AlterTable:
		stmt.Kind = sqlast.KindAlterTable
		stmt.Relation = objectName(n.Table)
	case *tree.CreateTable:
		stmt.Kind = sqlast.KindCreateTable
		stmt.Relation = &sqlast.RangeVar{Schema: n.Table.Schema(), Name: n.Table.Table()}
	}
	return stmt
}

// objectName reads an unresolved name; its parts are stored in reverse order.
func objectName(u *tree.UnresolvedObjectName) *sqlast.RangeVar {
	if u == nil || u.NumParts == 0 {
		return nil
	}
	rv := &sqlast.RangeVar{Name: u.Parts[0]}
	if u.NumParts > 1 {
		rv.Schema = u.Parts[1]
	}
	return rv
}

func init() {
	sqlparse.Register(Dialect, Parser{})
}
