package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xab-mack/moveguard/internal/model"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	severityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	snippetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type modelT struct {
	findings []model.Finding
	cursor   int
}

func initialModel(findings []model.Finding) modelT { return modelT{findings: findings} }

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Findings (%d)\n\n", len(m.findings))
	for i, f := range m.findings {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s %s:%d %s\n",
			prefix, f.RuleID,
			severityStyle.Render("["+string(f.Severity)+"]"),
			f.Location.File, f.Location.Line, f.Title)
	}
	if len(m.findings) > 0 && m.cursor < len(m.findings) {
		f := m.findings[m.cursor]
		b.WriteString("\n" + snippetStyle.Render(f.Snippet) + "\n")
		b.WriteString("\n" + f.Recommendation + "\n")
	}
	b.WriteString("\nq to quit, j/k to move\n")
	return b.String()
}

// Run launches the findings browser
func Run(findings []model.Finding) error {
	p := tea.NewProgram(initialModel(findings))
	_, err := p.Run()
	return err
}
