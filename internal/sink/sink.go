// Package sink provides core.Sink implementations for terminals, log
// pipelines and fan-out.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// Console writes one line per message with a styled severity label.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	labels map[core.Severity]string
}

// NewConsole creates a console sink writing to w. Colour is emitted only when
// color is true.
func NewConsole(w io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	label := lipgloss.NewStyle().Renderer(r).Bold(true).Width(5)
	return &Console{
		w: w,
		labels: map[core.Severity]string{
			core.SeverityInfo:    label.Foreground(lipgloss.Color("12")).Render("INFO"),
			core.SeverityWarning: label.Foreground(lipgloss.Color("11")).Render("WARN"),
			core.SeverityError:   label.Foreground(lipgloss.Color("9")).Render("ERROR"),
		},
	}
}

// Notify writes msg.
func (c *Console) Notify(msg core.Message) {
	label, ok := c.labels[msg.Severity]
	if !ok {
		label = msg.Severity.String()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "%s %s\n", label, msg.Text)
}

// JSON writes one JSON object per message, newline-delimited.
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSON creates a JSON lines sink writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Notify writes msg.
func (j *JSON) Notify(msg core.Message) {
	j.mu.Lock()
	defer j.mu.Unlock()
	_ = j.enc.Encode(msg)
}

// Broadcast forwards every message to each of its sinks, in order.
type Broadcast []core.Sink

// Notify forwards msg.
func (b Broadcast) Notify(msg core.Message) {
	for _, s := range b {
		s.Notify(msg)
	}
}

// MinSeverity drops messages below min before forwarding to next.
func MinSeverity(min core.Severity, next core.Sink) core.Sink {
	return core.SinkFunc(func(msg core.Message) {
		if msg.Severity >= min {
			next.Notify(msg)
		}
	})
}
