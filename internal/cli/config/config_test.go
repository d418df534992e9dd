package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/workspace"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schemawatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("schema", "", "schema file")
	flags.String("workspace", "", "workspace root")
	flags.String("dialect", "", "dialect")
	flags.StringP("output", "o", "", "output format")
	flags.String("feed", "", "feed address")
	return flags
}

// TestLoadConfig_Defaults tests values applied when nothing is configured.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "# defaults only\nlog_level: info\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	root := filepath.Dir(cfgPath)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, root, cfg.Workspace, "workspace defaults to the project root")
	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, workspace.DefaultInclude, cfg.Include)
	assert.Equal(t, workspace.DefaultExclude, cfg.Exclude)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, workspace.DefaultReadConcurrency, cfg.ReadConcurrency)
	assert.Empty(t, cfg.Feed.Addr)
	assert.Empty(t, cfg.SchemaPath)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

// TestLoadConfig_File tests that file values are read and relative paths
// resolved against the config directory.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `schema_path: db/schema.sql
dialect: mysql
workspace: web
include: "src/**/*.ts"
exclude:
  - "**/node_modules/**"
output: json
read_concurrency: 2
feed:
  addr: "127.0.0.1:7777"
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	root := filepath.Dir(cfgPath)
	assert.Equal(t, filepath.Join(root, "db", "schema.sql"), cfg.SchemaPath)
	assert.Equal(t, filepath.Join(root, "web"), cfg.Workspace)
	assert.Equal(t, "mysql", cfg.Dialect)
	assert.Equal(t, "src/**/*.ts", cfg.Include)
	assert.Equal(t, []string{"**/node_modules/**"}, cfg.Exclude)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.ReadConcurrency)
	assert.Equal(t, "127.0.0.1:7777", cfg.Feed.Addr)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "dialect: mysql\nschema_path: from_file.sql\n")

	t.Setenv("SCHEMAWATCH_DIALECT", "cockroach")
	t.Setenv("SCHEMAWATCH_FEED_ADDR", ":9999")
	t.Setenv("SCHEMAWATCH_EXCLUDE", "**/dist/**, **/node_modules/**")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "cockroach", cfg.Dialect, "env var should override config file")
	assert.Equal(t, ":9999", cfg.Feed.Addr)
	assert.Equal(t, []string{"**/dist/**", "**/node_modules/**"}, cfg.Exclude)
	assert.Equal(t, filepath.Join(filepath.Dir(cfgPath), "from_file.sql"), cfg.SchemaPath)
}

// TestLoadConfig_FlagPrecedence tests that explicitly set flags win.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "dialect: mysql\noutput: text\n")
	t.Setenv("SCHEMAWATCH_DIALECT", "cockroach")

	flags := testFlags()
	require.NoError(t, flags.Set("dialect", "postgres"))
	require.NoError(t, flags.Set("schema", "from_flag.sql"))
	require.NoError(t, flags.Set("feed", ":8080"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect, "flag value should override config file and env var")
	assert.Equal(t, filepath.Join(cwd, "from_flag.sql"), cfg.SchemaPath, "flag paths resolve against the working directory")
	assert.Equal(t, ":8080", cfg.Feed.Addr)
	assert.Equal(t, "text", cfg.OutputFormat, "unset flag should not override the file")
}

// TestLoadConfig_InvalidValues tests that bad values are configuration errors.
func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"output", "output: markdown\n", "output"},
		{"log level", "log_level: loud\n", "log_level"},
		{"concurrency", "read_concurrency: -1\n", "read_concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)

			var cfgErr *core.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

// TestLoadConfig_MissingExplicitFile tests that a named but absent file fails.
func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_RequireSchema(t *testing.T) {
	err := (&Config{}).RequireSchema()
	var cfgErr *core.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "schema_path", cfgErr.Key)

	assert.NoError(t, (&Config{SchemaPath: "/db/schema.sql"}).RequireSchema())
}

func TestFindProjectRootUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "schemawatch.yml"), nil, 0600))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, findProjectRootUpward(nested))
	assert.Empty(t, findProjectRootUpward(t.TempDir()))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "schema_path", envKey("SCHEMAWATCH_SCHEMA_PATH"))
	assert.Equal(t, "feed.addr", envKey("SCHEMAWATCH_FEED_ADDR"))
	assert.Equal(t, "read_concurrency", envKey("SCHEMAWATCH_READ_CONCURRENCY"))
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLogLevel("")
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "missing logger falls back to a discard logger")

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestGetConfig(t *testing.T) {
	assert.Nil(t, GetConfig(context.Background()))

	cfg := &Config{Dialect: "mysql"}
	assert.Same(t, cfg, GetConfig(WithConfig(context.Background(), cfg)))
}
