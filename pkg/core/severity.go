package core

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates how a message is presented to the user.
type Severity int

// Severity levels understood by every sink.
const (
	// SeverityInfo reports detected changes.
	SeverityInfo Severity = iota
	// SeverityWarning flags a file that may need updating.
	SeverityWarning
	// SeverityError reports a failed run or an unreadable file.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = sev
	return nil
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityInfo and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityInfo, false
	}
}

// =============================================================================
// Message
// =============================================================================

// Message is one user-visible notification.
type Message struct {
	Severity Severity  `json:"severity"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}

// Sink receives messages for presentation. Implementations must be safe for
// concurrent use: overlapping pipeline runs notify the same sink.
type Sink interface {
	Notify(msg Message)
}

// SinkFunc allows using ordinary functions as sinks.
type SinkFunc func(msg Message)

// Notify calls f.
func (f SinkFunc) Notify(msg Message) { f(msg) }
