// Package myparse registers the "mysql" dialect, backed by the TiDB parser.
package myparse

import (
	"fmt"
	"strings"

	"github.com/pingcap/tidb/parser"
	"github.com/pingcap/tidb/parser/ast"
	_ "github.com/pingcap/tidb/parser/test_driver"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// Dialect is the registry name of this parser.
const Dialect = "mysql"

// Parser implements sqlparse.Parser for MySQL-flavoured schema files.
type Parser struct{}

// Parse parses text into a statement list. The TiDB parser is not safe for
// concurrent use, so every call gets its own instance.
func (Parser) Parse(text string) (*sqlast.Schema, error) {
	stmts, _, err := parser.New().Parse(text, "", "")
	if err != nil {
		return nil, &sqlparse.SyntaxError{Dialect: Dialect, Message: err.Error(), Err: err}
	}
	s := &sqlast.Schema{
		Dialect:    Dialect,
		Statements: make([]*sqlast.Statement, 0, len(stmts)),
	}
	for _, n := range stmts {
		s.Statements = append(s.Statements, convert(n))
	}
	return s, nil
}

func convert(n ast.StmtNode) *sqlast.Statement {
	if n == nil {
		return nil
	}
	stmt := &sqlast.Statement{
		Tag:      strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."),
		Location: n.OriginTextPosition(),
		Length:   len(n.Text()),
	}
	switch n := n.(type) {
	case *ast.AlterTableStmt:
		stmt.Kind = sqlast.KindAlterTable
		stmt.Relation = tableName(n.Table)
	case *ast.CreateTableStmt:
		stmt.Kind = sqlast.KindCreateTable
		stmt.Relation = tableName(n.Table)
	}
	return stmt
}

func tableName(t *ast.TableName) *sqlast.RangeVar {
	if t == nil {
		return nil
	}
	return &sqlast.RangeVar{Schema: t.Schema.O, Name: t.Name.O}
}

func init() {
	sqlparse.Register(Dialect, Parser{})
}
