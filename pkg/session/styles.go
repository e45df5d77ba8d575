package session

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders console output. Writers that are not terminals get
// plain text.
type styles struct {
	title     lipgloss.Style
	hint      lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	tool      lipgloss.Style
	err       lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		hint:      r.NewStyle().Faint(true),
		user:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant: r.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		tool:      r.NewStyle().Faint(true).Italic(true),
		err:       r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
