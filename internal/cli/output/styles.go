package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Bold    lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles creates styles bound to w. Without a terminal every style renders
// plain text.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !isTTY {
		r.SetColorProfile(termenv.Ascii)
	}
	base := lipgloss.NewStyle().Renderer(r)

	return &Styles{
		Bold:    base.Bold(true),
		Header:  base.Bold(true).Underline(true),
		Muted:   base.Foreground(lipgloss.Color("8")),
		Success: base.Foreground(lipgloss.Color("10")),
		Warning: base.Foreground(lipgloss.Color("11")),
		Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
		Path:    base.Foreground(lipgloss.Color("14")),
	}
}
