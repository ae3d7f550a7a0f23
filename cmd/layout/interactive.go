package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VorpalBlade/layout-of/dwarfres"
	"github.com/VorpalBlade/layout-of/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxScrollback bounds how many past command outputs the view keeps.
const maxScrollback = 20

type interactiveModel struct {
	resolver *dwarfres.Resolver
	filename string
	input    textinput.Model
	history  []string
}

func newInteractiveModel(resolver *dwarfres.Resolver, filename string) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("(layout) ")
	ti.Placeholder = "layout-of -r <type>"
	ti.Width = 60
	ti.ShowSuggestions = true
	ti.SetSuggestions(resolver.TypeNames())
	ti.Focus()

	return &interactiveModel{
		resolver: resolver,
		filename: filename,
		input:    ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+l":
			m.history = nil
			return m, nil

		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			if out, quit := m.dispatch(line); quit {
				return m, tea.Quit
			} else if out != "" {
				m.history = append(m.history, out)
				if len(m.history) > maxScrollback {
					m.history = m.history[len(m.history)-maxScrollback:]
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs one prompt line and returns its rendered output.
func (m *interactiveModel) dispatch(line string) (out string, quit bool) {
	argv, err := splitArgs(line)
	if err != nil {
		return errorStyle.Render(err.Error()), false
	}
	if len(argv) == 0 {
		return "", false
	}

	var buf bytes.Buffer
	cmds := &commands{resolver: m.resolver, out: &buf, styles: render.Color()}

	switch argv[0] {
	case "quit", "exit":
		return "", true
	case "help":
		return helpText(), false
	case "offsets-of":
		err = cmds.offsetsOf(argv[1:])
	case "layout-of":
		err = cmds.layoutOf(argv[1:])
	default:
		// Bare type name is shorthand for layout-of.
		err = cmds.layoutOf(argv)
	}

	if err != nil {
		return errorStyle.Render(err.Error()), false
	}
	return strings.TrimRight(buf.String(), "\n"), false
}

func helpText() string {
	return strings.TrimSpace(`
offsets-of <type-or-symbol>     member byte offsets, flat
layout-of [-r] <type-or-symbol> layout with holes and padding
<type-or-symbol>                shorthand for layout-of
help                            this text
quit                            leave`)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("layout"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(entry)
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab complete type names • enter run • ctrl+l clear • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(resolver *dwarfres.Resolver, filename string) error {
	p := tea.NewProgram(newInteractiveModel(resolver, filename))
	_, err := p.Run()
	return err
}
