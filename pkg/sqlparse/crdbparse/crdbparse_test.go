package crdbparse_test

import (
	"testing"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlast"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse/crdbparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := crdbparse.Parser{}.Parse(
		"CREATE TABLE orders (id INT8); ALTER TABLE app.users ADD COLUMN age INT8; DROP TABLE users;",
	)
	require.NoError(t, err)
	require.Len(t, s.Statements, 3)

	assert.Equal(t, sqlast.KindCreateTable, s.Statements[0].Kind)
	require.NotNil(t, s.Statements[0].Relation)
	assert.Equal(t, "orders", s.Statements[0].Relation.Name)

	assert.Equal(t, sqlast.KindAlterTable, s.Statements[1].Kind)
	require.NotNil(t, s.Statements[1].Relation)
	assert.Equal(t, sqlast.RangeVar{Schema: "app", Name: "users"}, *s.Statements[1].Relation)

	assert.Equal(t, sqlast.KindOther, s.Statements[2].Kind)
	assert.Equal(t, "DROP TABLE", s.Statements[2].Tag)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := crdbparse.Parser{}.Parse("ALTER TABLE ;;;")
	var se *sqlparse.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, crdbparse.Dialect, se.Dialect)
}
