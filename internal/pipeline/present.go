package pipeline

import (
	"fmt"
	"time"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// Message prefixes shown to the user.
const (
	detectedPrefix = "Detected changes in database schema: "
	errorPrefix    = "Error processing schema changes: "
)

// Messages maps a result to the notifications it produces:
// one info message listing the changes, one warning per match, and one error
// per unreadable candidate file. A failed run produces a single error.
// A run without changes produces nothing.
func Messages(r *Result, now time.Time) []core.Message {
	msg := func(sev core.Severity, text string) core.Message {
		return core.Message{Severity: sev, Text: text, Time: now}
	}

	switch r.Status {
	case StatusParseError, StatusIOError:
		return []core.Message{msg(core.SeverityError, errorPrefix+r.Err.Error())}
	case StatusChanges:
	default:
		return nil
	}

	out := make([]core.Message, 0, 1+len(r.Matches)+len(r.FileErrors))
	out = append(out, msg(core.SeverityInfo, detectedPrefix+r.Changes.Join(", ")))
	for _, m := range r.Matches {
		out = append(out, msg(core.SeverityWarning, fmt.Sprintf("Consider updating: %s for %s", m.File.Path, m.Change)))
	}
	for _, fe := range r.FileErrors {
		out = append(out, msg(core.SeverityError, fmt.Sprintf("Could not read %s: %v", fe.Path, fe.Err)))
	}
	return out
}

// Present sends the messages for r to sink, in order.
func Present(r *Result, sink core.Sink) {
	for _, m := range Messages(r, time.Now()) {
		sink.Notify(m)
	}
}
