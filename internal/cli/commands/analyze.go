package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/analyzer"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/output"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "List the table changes in a schema file",
		Long: `Parse a schema file and print the CREATE TABLE and ALTER TABLE
statements it contains, without scanning the workspace.

With no argument the configured schema file is used. "-" reads standard input.`,
		Example: `  # Analyze the configured schema
  schemawatch analyze

  # Analyze a migration from stdin with the MySQL grammar
  cat 0042_add_age.sql | schemawatch analyze - --dialect mysql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return runAnalyze(cmd, source)
		},
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, source string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if source == "" {
		if err := cfg.RequireSchema(); err != nil {
			return err
		}
		source = cfg.SchemaPath
	}

	text, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	parser, err := cmdCtx.Parser()
	if err != nil {
		return err
	}
	schema, err := parser.Parse(text)
	if err != nil {
		return &core.ParseError{Err: err}
	}
	changes, err := analyzer.Analyze(schema)
	if err != nil {
		return &core.ParseError{Err: err}
	}
	cmdCtx.Logger.Debug("schema analyzed", "source", source, "statements", len(schema.Statements), "changes", len(changes))

	out := output.AnalyzeOutput{
		Dialect: cfg.Dialect,
		Source:  source,
		Changes: changes,
	}
	structured, err := r.Structured(out)
	if err != nil || structured {
		return err
	}

	if len(changes) == 0 {
		r.Muted("No table changes")
		return nil
	}
	for _, c := range changes {
		r.Println(c.String())
	}
	return nil
}

func readSource(stdin io.Reader, source string) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", &core.IOError{Path: source, Op: "read", Err: err}
	}
	return string(data), nil
}
