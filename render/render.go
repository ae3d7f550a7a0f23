package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	// Brace palette cycled by nesting depth. Depth 0 is bold with no color
	// so the outermost braces stay readable on any background.
	braceStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")), // red
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")), // green
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")), // blue
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")), // cyan
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")), // magenta
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")), // yellow
	}
)

// Styles renders the highlighted parts of layout output. The zero value is
// the plain (identity) renderer.
type Styles struct {
	enabled bool
}

// Color returns a renderer with highlighting on.
func Color() Styles {
	return Styles{enabled: true}
}

// Plain returns the identity renderer.
func Plain() Styles {
	return Styles{}
}

// Auto returns a colored renderer when f is a terminal and a plain one
// otherwise.
func Auto(f *os.File) Styles {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		return Color()
	}
	return Plain()
}

// Enabled reports whether highlighting is on.
func (s Styles) Enabled() bool {
	return s.enabled
}

// Warn highlights hole/padding markers and the waste summary lines.
func (s Styles) Warn(text string) string {
	if !s.enabled {
		return text
	}
	return warnStyle.Render(text)
}

// Total highlights the total-size summary line.
func (s Styles) Total(text string) string {
	if !s.enabled {
		return text
	}
	return totalStyle.Render(text)
}

// Brace highlights a nesting brace marker for the given depth.
func (s Styles) Brace(depth int, text string) string {
	if !s.enabled {
		return text
	}
	if depth < 0 {
		depth = 0
	}
	return braceStyles[depth%len(braceStyles)].Render(text)
}
