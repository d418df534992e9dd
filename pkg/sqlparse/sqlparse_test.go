package sqlparse_test

import (
	"errors"
	"testing"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	want := &sqlast.Schema{Dialect: "test"}
	sqlparse.Register("test", sqlparse.ParserFunc(func(string) (*sqlast.Schema, error) {
		return want, nil
	}))

	p, err := sqlparse.For("test")
	require.NoError(t, err)
	got, err := p.Parse("SELECT 1")
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Contains(t, sqlparse.Dialects(), "test")
}

func TestFor_UnknownDialect(t *testing.T) {
	_, err := sqlparse.For("oracle")
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlparse.ErrUnknownDialect)
	assert.Contains(t, err.Error(), `"oracle"`)
}

func TestSyntaxError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&sqlparse.SyntaxError{Dialect: "postgres", Message: "boom", Err: cause})

	var se *sqlparse.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "postgres parser: boom", err.Error())
}
