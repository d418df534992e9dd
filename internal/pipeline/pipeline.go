// Package pipeline wires schema text and a workspace file set through the
// analyzer and the impact scanner.
//
// Each Run is self-contained: nothing is shared between runs except the
// immutable parser and file provider, so overlapping runs are allowed and
// never coordinated.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/analyzer"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/impact"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// Status summarizes the outcome of one run.
type Status int

// Run outcomes.
const (
	// StatusNoChanges means the schema parsed but contained no classified statements.
	StatusNoChanges Status = iota
	// StatusChanges means changes were found and the workspace was scanned.
	StatusChanges
	// StatusParseError means the schema text could not be parsed or analyzed.
	StatusParseError
	// StatusIOError means the schema file or the workspace could not be read.
	StatusIOError
)

func (s Status) String() string {
	switch s {
	case StatusNoChanges:
		return "no_changes"
	case StatusChanges:
		return "changes"
	case StatusParseError:
		return "parse_error"
	case StatusIOError:
		return "io_error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one run.
type Result struct {
	RunID   string             `json:"run_id" yaml:"run_id"`
	Status  Status             `json:"status" yaml:"status"`
	Changes core.ChangeSet     `json:"changes,omitempty" yaml:"changes,omitempty"`
	Matches []core.ImpactMatch `json:"matches,omitempty" yaml:"matches,omitempty"`
	// FileErrors lists candidate files that could not be read. They do not
	// change Status.
	FileErrors []*core.IOError `json:"-" yaml:"-"`
	// Err is set for StatusParseError (a *core.ParseError) and
	// StatusIOError (a *core.IOError).
	Err error `json:"-" yaml:"-"`
}

// Failed reports whether the run was aborted.
func (r *Result) Failed() bool {
	return r.Status == StatusParseError || r.Status == StatusIOError
}

// Config holds configuration for a Driver.
type Config struct {
	Parser sqlparse.Parser
	Files  core.FileProvider
	Logger *slog.Logger
}

// Driver runs the detection pipeline.
type Driver struct {
	parser sqlparse.Parser
	files  core.FileProvider
	logger *slog.Logger
}

// New creates a Driver.
func New(cfg Config) *Driver {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{
		parser: cfg.Parser,
		files:  cfg.Files,
		logger: logger,
	}
}

// RunFile reads the schema file at path and runs the pipeline on its contents.
func (d *Driver) RunFile(ctx context.Context, path string) *Result {
	data, err := os.ReadFile(path)
	if err != nil {
		r := &Result{RunID: uuid.NewString(), Status: StatusIOError, Err: &core.IOError{Path: path, Op: "read", Err: err}}
		d.logger.Error("schema file unreadable", "run", r.RunID, "path", path, "error", err)
		return r
	}
	return d.Run(ctx, string(data))
}

// Run parses text, classifies its statements and, when there are changes,
// scans the candidate files for them.
//
// A parse failure stops the run before analysis. An empty change set stops
// it before the file provider is consulted.
func (d *Driver) Run(ctx context.Context, text string) *Result {
	r := &Result{RunID: uuid.NewString()}
	logger := d.logger.With("run", r.RunID)

	schema, err := d.parser.Parse(text)
	if err != nil {
		r.Status, r.Err = StatusParseError, &core.ParseError{Err: err}
		logger.Warn("schema parse failed", "error", err)
		return r
	}

	changes, err := analyzer.Analyze(schema)
	if err != nil {
		r.Status, r.Err = StatusParseError, &core.ParseError{Err: err}
		logger.Error("schema analysis failed", "error", err)
		return r
	}
	logger.Debug("schema analyzed", "statements", len(schema.Statements), "changes", len(changes))

	if len(changes) == 0 {
		r.Status = StatusNoChanges
		return r
	}
	r.Changes = changes

	files, fileErrs, err := d.files.CandidateFiles(ctx)
	if err != nil {
		r.Status = StatusIOError
		r.Err = asIOError(err)
		logger.Error("candidate files unavailable", "error", err)
		return r
	}
	for _, fe := range fileErrs {
		logger.Warn("candidate file unreadable", "path", fe.Path, "error", fe.Err)
	}

	r.Status = StatusChanges
	r.FileErrors = fileErrs
	r.Matches = impact.Scan(changes, files)
	logger.Info("schema changes scanned",
		"changes", len(changes),
		"files", len(files),
		"matches", len(r.Matches))
	return r
}

func asIOError(err error) error {
	var ioErr *core.IOError
	if errors.As(err, &ioErr) {
		return ioErr
	}
	return &core.IOError{Path: "workspace", Op: "list", Err: err}
}
