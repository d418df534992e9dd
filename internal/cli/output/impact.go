package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// CheckOutput is the structured result of the check command.
type CheckOutput struct {
	RunID      string       `json:"run_id" yaml:"run_id"`
	Status     string       `json:"status" yaml:"status"`
	Schema     string       `json:"schema" yaml:"schema"`
	Changes    []string     `json:"changes" yaml:"changes"`
	Matches    []MatchInfo  `json:"matches" yaml:"matches"`
	FileErrors []FileError  `json:"file_errors,omitempty" yaml:"file_errors,omitempty"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
	Summary    CheckSummary `json:"summary" yaml:"summary"`
}

// MatchInfo is one file that may need updating.
type MatchInfo struct {
	Path   string `json:"path" yaml:"path"`
	Change string `json:"change" yaml:"change"`
}

// FileError is a candidate file that could not be read.
type FileError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// CheckSummary counts the check result.
type CheckSummary struct {
	Changes int `json:"changes" yaml:"changes"`
	Matches int `json:"matches" yaml:"matches"`
	Files   int `json:"files_affected" yaml:"files_affected"`
}

// AnalyzeOutput is the structured result of the analyze command.
type AnalyzeOutput struct {
	Dialect string              `json:"dialect" yaml:"dialect"`
	Source  string              `json:"source" yaml:"source"`
	Changes []core.ChangeRecord `json:"changes" yaml:"changes"`
}

// MatchInfos converts matches for output.
func MatchInfos(matches []core.ImpactMatch) []MatchInfo {
	out := make([]MatchInfo, len(matches))
	for i, m := range matches {
		out[i] = MatchInfo{Path: m.File.Path, Change: m.Change.String()}
	}
	return out
}

// RenderMatchTable writes matches as a table.
func RenderMatchTable(w io.Writer, matches []MatchInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"File", "Change"})
	for _, m := range matches {
		t.AppendRow(table.Row{m.Path, m.Change})
	}
	t.Render()
}
