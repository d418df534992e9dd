// Package sqlparse holds the registry of SQL parsers, keyed by dialect.
//
// Parser implementations live in subpackages and register themselves from
// init, so callers blank-import the dialects they want:
//
//	import _ "github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse/pgparse"
package sqlparse

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
)

// ErrUnknownDialect is returned by For when no parser is registered for a dialect.
var ErrUnknownDialect = errors.New("unknown SQL dialect")

// A Parser turns raw schema text into a statement list.
type Parser interface {
	// Parse parses text. Malformed input fails with a *SyntaxError.
	Parse(text string) (*sqlast.Schema, error)
}

// ParserFunc allows using ordinary functions as parsers.
type ParserFunc func(text string) (*sqlast.Schema, error)

// Parse calls f.
func (f ParserFunc) Parse(text string) (*sqlast.Schema, error) {
	return f(text)
}

// SyntaxError reports malformed SQL.
type SyntaxError struct {
	Dialect string
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s parser: %s", e.Dialect, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// dialect specific parsers.
var parsers sync.Map

// Register a parser with the given dialect name.
func Register(dialect string, p Parser) {
	parsers.Store(dialect, p)
}

// For returns the parser registered for dialect.
func For(dialect string) (Parser, error) {
	p, ok := parsers.Load(dialect)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownDialect, dialect, Dialects())
	}
	return p.(Parser), nil
}

// Dialects returns the names of all registered dialects, sorted.
func Dialects() []string {
	var names []string
	parsers.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}
