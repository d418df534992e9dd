package core

import "context"

// CandidateFile is a workspace file that may be affected by a schema change.
type CandidateFile struct {
	Path string `json:"path" yaml:"path"`
	Text string `json:"-" yaml:"-"`
}

// ImpactMatch pairs a file with a change whose rendered text it contains.
type ImpactMatch struct {
	File   CandidateFile `json:"file" yaml:"file"`
	Change ChangeRecord  `json:"change" yaml:"change"`
}

// FileProvider supplies the candidate files for impact scanning.
//
// Files that cannot be read are reported individually in the second return
// value and are left out of the first; a non-nil error means the file set
// itself could not be produced.
type FileProvider interface {
	CandidateFiles(ctx context.Context) ([]CandidateFile, []*IOError, error)
}

