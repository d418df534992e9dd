// Package analyzer classifies parsed schema statements into change records.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
)

// ErrMalformedAST is wrapped by every error Analyze returns.
var ErrMalformedAST = errors.New("malformed schema AST")

// Analyze walks the statements of s in order and returns one record per
// CREATE TABLE or ALTER TABLE statement. Other statement kinds produce nothing.
//
// Duplicate statements yield duplicate records. If any statement is
// structurally invalid the whole call fails and no records are returned.
func Analyze(s *sqlast.Schema) (core.ChangeSet, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrMalformedAST)
	}
	changes := make(core.ChangeSet, 0, len(s.Statements))
	for i, stmt := range s.Statements {
		if stmt == nil {
			return nil, fmt.Errorf("%w: statement %d is empty", ErrMalformedAST, i)
		}
		var kind core.ChangeKind
		switch stmt.Kind {
		case sqlast.KindAlterTable:
			kind = core.ChangeAltered
		case sqlast.KindCreateTable:
			kind = core.ChangeCreated
		default:
			continue
		}
		if stmt.Relation == nil || stmt.Relation.Name == "" {
			return nil, fmt.Errorf("%w: %s statement %d has no relation name", ErrMalformedAST, stmt.Kind, i)
		}
		changes = append(changes, core.ChangeRecord{Kind: kind, Table: stmt.Relation.Name})
	}
	return changes, nil
}
