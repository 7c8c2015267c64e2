package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/ui/theme"
)

// Bar renders a labeled horizontal score bar, e.g.
//
//	Budgeting  ████████░░░░░░░░░░░░  42
func Bar(label string, value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}

	filled := int(value / max * float64(width))
	empty := width - filled

	bar := theme.BarFilled.Render(strings.Repeat("█", filled)) +
		theme.BarEmpty.Render(strings.Repeat("░", empty))

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	return labelStyle.Render(label) + " " + bar + " " + valueStyle.Render(fmt.Sprintf("%.0f", value))
}
