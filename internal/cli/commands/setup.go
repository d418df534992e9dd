package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/config"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/output"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/pipeline"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/sink"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/workspace"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// CommandContext holds common resources for command execution.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger the root command stored in
// the command context and creates a renderer for the configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.GetConfig(cmd.Context())
	if cfg == nil {
		var err error
		if cfg, err = config.LoadConfig("", cmd.Flags()); err != nil {
			return nil, err
		}
	}
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// Parser returns the parser for the configured dialect.
func (c *CommandContext) Parser() (sqlparse.Parser, error) {
	p, err := sqlparse.For(c.Cfg.Dialect)
	if err != nil {
		return nil, &core.ConfigurationError{Key: "dialect", Msg: err.Error()}
	}
	return p, nil
}

// Driver builds a pipeline driver over the configured workspace.
func (c *CommandContext) Driver() (*pipeline.Driver, error) {
	parser, err := c.Parser()
	if err != nil {
		return nil, err
	}

	files, err := workspace.New(workspace.Config{
		Root:            c.Cfg.Workspace,
		Include:         c.Cfg.Include,
		Exclude:         c.Cfg.Exclude,
		ReadConcurrency: c.Cfg.ReadConcurrency,
		Logger:          c.Logger,
	})
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("pipeline configured",
		"dialect", c.Cfg.Dialect,
		"workspace", files.Root(),
		"include", c.Cfg.Include)

	return pipeline.New(pipeline.Config{
		Parser: parser,
		Files:  files,
		Logger: c.Logger,
	}), nil
}

// Sink returns the message sink for the output mode: JSON lines in json
// mode, styled console lines otherwise.
func (c *CommandContext) Sink() core.Sink {
	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return sink.NewJSON(r.Writer())
	}
	return sink.NewConsole(r.Writer(), r.IsTTY())
}
