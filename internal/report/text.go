package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xab-mack/moveguard/internal/model"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 12).
			Foreground(lipgloss.Color("9")).
			Bold(true)

	severityStyles = map[model.Severity]lipgloss.Style{
		model.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		model.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		model.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		model.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		model.SeverityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}

	ruler = strings.Repeat("-", 80)
)

const impactLine = "This vulnerability could result in significant financial loss or unauthorized access to critical functions."

// Text renders the grouped human-readable report: one block per distinct
// finding title with every affected location, the shared description,
// impact and recommendation, then a summary line. Groups appear in
// first-seen finding order so identical scans render identically.
func Text(findings []model.Finding) string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("moveguard"))
	b.WriteString("\n\n")

	var order []string
	groups := map[string][]model.Finding{}
	for _, f := range findings {
		if _, ok := groups[f.Title]; !ok {
			order = append(order, f.Title)
		}
		groups[f.Title] = append(groups[f.Title], f)
	}

	for _, title := range order {
		group := groups[title]
		style, ok := severityStyles[group[0].Severity]
		if !ok {
			style = lipgloss.NewStyle()
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s", group[0].Severity, title)))
		b.WriteString("\n\nAffected Lines:\n")
		for _, f := range group {
			fmt.Fprintf(&b, "  • file://%s:%d\n", f.Location.File, f.Location.Line)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Description: %s\n", group[0].Description)
		fmt.Fprintf(&b, "Impact: %s\n", impactLine)
		fmt.Fprintf(&b, "Recommendation: %s\n", group[0].Recommendation)
		b.WriteString("\n" + ruler + "\n\n")
	}

	fmt.Fprintf(&b, "Summary: %d vulnerabilities found\n", len(findings))
	return b.String()
}
