package workspace

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/testutil"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"src/users.ts":          "a",
		"src/nested/orders.ts":  "b",
		"src/readme.md":         "c",
		"db/schema.sql":         "d",
		"db/generated/types.ts": "e",
		".git/hooks/x.ts":       "f",
		"node_modules/m/i.ts":   "g",
		"top.ts":                "h",
	})

	p, err := New(Config{Root: root, Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	paths, err := p.ListFiles(context.Background(), DefaultInclude)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "db/generated/types.ts"),
		filepath.Join(root, "node_modules/m/i.ts"),
		filepath.Join(root, "src/nested/orders.ts"),
		filepath.Join(root, "src/users.ts"),
		filepath.Join(root, "top.ts"),
	}, paths)
}

func TestListFiles_CustomPatterns(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"app/models.go":      "a",
		"app/models_test.go": "b",
		"web/index.ts":       "c",
	})

	p, err := New(Config{Root: root, Include: "**/*.go", Exclude: []string{"**/*_test.go"}})
	require.NoError(t, err)

	paths, err := p.ListFiles(context.Background(), "**/*.go")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "app/models.go")}, paths)
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(Config{Root: t.TempDir(), Include: "src/[unclosed"})

	var cfgErr *core.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Msg, "src/[unclosed")
}

func TestListFiles_MissingRoot(t *testing.T) {
	p, err := New(Config{Root: filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)

	_, err = p.ListFiles(context.Background(), DefaultInclude)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCandidateFiles(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"b.ts": "Table altered: users",
		"a.ts": "export {}",
	})

	p, err := New(Config{Root: root, ReadConcurrency: 1})
	require.NoError(t, err)

	files, readErrs, err := p.CandidateFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, readErrs)
	assert.Equal(t, []core.CandidateFile{
		{Path: filepath.Join(root, "a.ts"), Text: "export {}"},
		{Path: filepath.Join(root, "b.ts"), Text: "Table altered: users"},
	}, files)
}

func TestCandidateFiles_UnreadableFileDoesNotAbort(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.ts": "one",
		"c.ts": "three",
	})
	broken := filepath.Join(root, "b.ts")
	require.NoError(t, os.Symlink(filepath.Join(root, "does-not-exist.ts"), broken))

	p, err := New(Config{Root: root})
	require.NoError(t, err)

	files, readErrs, err := p.CandidateFiles(context.Background())
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "a.ts"), files[0].Path)
	assert.Equal(t, filepath.Join(root, "c.ts"), files[1].Path)

	require.Len(t, readErrs, 1)
	assert.Equal(t, broken, readErrs[0].Path)
	assert.Equal(t, "read", readErrs[0].Op)
	assert.True(t, errors.Is(readErrs[0], fs.ErrNotExist))
}

func TestCandidateFiles_SymlinkedDirectoryIsSkipped(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"real/a.ts": "x"})
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linked.ts")))

	p, err := New(Config{Root: root})
	require.NoError(t, err)

	files, readErrs, err := p.CandidateFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, readErrs)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "real/a.ts"), files[0].Path)
}

func TestCandidateFiles_Cancelled(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"a.ts": "x"})
	p, err := New(Config{Root: root})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = p.CandidateFiles(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
