// Package impact flags workspace files that mention a detected schema change.
//
// Matching is literal, case-sensitive substring containment of the change's
// rendered text. It is a coarse heuristic for human review: it will hit
// comments and unrelated strings, and it will miss files that refer to the
// table any other way.
package impact

import (
	"strings"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// Scan returns one match for every (file, change) pair where the file's text
// contains the change's rendered text. Matches are ordered by file, then by
// change, following the order of the arguments.
func Scan(changes core.ChangeSet, files []core.CandidateFile) []core.ImpactMatch {
	var matches []core.ImpactMatch
	for _, f := range files {
		if f.Text == "" {
			continue
		}
		for _, c := range changes {
			key := c.String()
			if key == "" {
				continue
			}
			if strings.Contains(f.Text, key) {
				matches = append(matches, core.ImpactMatch{File: f, Change: c})
			}
		}
	}
	return matches
}
