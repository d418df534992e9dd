package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/output"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/pipeline"
)

// ErrFilesAffected is returned by check --fail-on-match when files reference
// a changed table.
var ErrFilesAffected = errors.New("files may need updating")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	FailOnMatch bool // Exit non-zero when any file matches
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Analyze the schema once and list affected files",
		Long: `Run the detection pipeline once against the current contents of the
schema file and report which workspace files mention a detected change.

The command fails when the schema cannot be parsed or read. With
--fail-on-match it also fails when any file matches.

Output adapts to environment:
  - Terminal: Styled output with a table of matches
  - Piped/Scripted: JSON
  - --output yaml: YAML document`,
		Example: `  # Check the configured schema
  schemawatch check

  # Use in CI
  schemawatch check --schema db/schema.sql --fail-on-match -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.FailOnMatch, "fail-on-match", false, "Exit with an error when any file may need updating")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if err := cfg.RequireSchema(); err != nil {
		return err
	}
	driver, err := cmdCtx.Driver()
	if err != nil {
		return err
	}

	res := driver.RunFile(cmd.Context(), cfg.SchemaPath)
	out := checkOutput(cfg.SchemaPath, res)

	structured, err := r.Structured(out)
	if err != nil {
		return err
	}
	if !structured {
		checkText(r, out)
	}

	if res.Failed() {
		return res.Err
	}
	if opts.FailOnMatch && len(res.Matches) > 0 {
		return fmt.Errorf("%d %w", out.Summary.Files, ErrFilesAffected)
	}
	return nil
}

func checkOutput(schema string, res *pipeline.Result) output.CheckOutput {
	out := output.CheckOutput{
		RunID:   res.RunID,
		Status:  res.Status.String(),
		Schema:  schema,
		Changes: res.Changes.Strings(),
		Matches: output.MatchInfos(res.Matches),
	}
	for _, fe := range res.FileErrors {
		out.FileErrors = append(out.FileErrors, output.FileError{Path: fe.Path, Error: fe.Err.Error()})
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}

	files := make(map[string]struct{}, len(res.Matches))
	for _, m := range res.Matches {
		files[m.File.Path] = struct{}{}
	}
	out.Summary = output.CheckSummary{
		Changes: len(res.Changes),
		Matches: len(res.Matches),
		Files:   len(files),
	}
	return out
}

func checkText(r *output.Renderer, out output.CheckOutput) {
	styles := r.Styles()

	if out.Error != "" {
		r.Println(styles.Error.Render("Error processing schema changes: " + out.Error))
		return
	}
	if len(out.Changes) == 0 {
		r.Success("No table changes in " + out.Schema)
		return
	}

	r.Header("Schema changes")
	for _, c := range out.Changes {
		r.Println("  " + c)
	}
	r.Println()

	for _, fe := range out.FileErrors {
		r.Warning(fmt.Sprintf("Could not read %s: %s", fe.Path, fe.Error))
	}

	if len(out.Matches) == 0 {
		r.Success("No files reference the changed tables")
		return
	}
	output.RenderMatchTable(r.Writer(), out.Matches)
	r.Muted(fmt.Sprintf("%d matches in %d files", out.Summary.Matches, out.Summary.Files))
}
