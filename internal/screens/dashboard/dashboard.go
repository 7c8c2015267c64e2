// Package dashboard renders the Autonomy Index: the four sub-scores,
// the weighted index, insights, and next milestones.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/ui/components"
	"github.com/abhisek/indiepilot/internal/ui/layout"
	"github.com/abhisek/indiepilot/internal/ui/theme"
)

// DashboardScreen is a read-only view of the user's autonomy progress.
type DashboardScreen struct {
	scores     autonomy.Scores
	index      float64
	insights   []string
	milestones []autonomy.Milestone
	loadErr    error
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen with a snapshot of the engine state.
func New(userID string, engine *autonomy.Engine) *DashboardScreen {
	d := &DashboardScreen{}

	scores, err := engine.IndividualScores(userID)
	if err != nil {
		d.loadErr = err
		return d
	}
	index, err := engine.Index(userID)
	if err != nil {
		d.loadErr = err
		return d
	}
	milestones, err := engine.Milestones(userID)
	if err != nil {
		d.loadErr = err
		return d
	}

	d.scores = scores
	d.index = index
	d.insights = autonomy.Insights(scores)
	d.milestones = milestones
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if d.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load dashboard: "+d.loadErr.Error()))
	}

	contentWidth := min(width-8, 70)
	barWidth := min(contentWidth-20, 30)

	var b strings.Builder

	// Headline index
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("◉ AUTONOMY INDEX  %.1f / 100", d.index)))
	b.WriteString("\n\n")

	// Sub-score bars
	b.WriteString("  " + components.Bar("Skills", d.scores.Skills, 100, barWidth) + "\n")
	b.WriteString("  " + components.Bar("Budgeting", d.scores.Budgeting, 100, barWidth) + "\n")
	b.WriteString("  " + components.Bar("Community", d.scores.Community, 100, barWidth) + "\n")
	b.WriteString("  " + components.Bar("Judgment", d.scores.Judgment, 100, barWidth) + "\n")

	// Insights
	if len(d.insights) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			PaddingLeft(2).
			Render("INSIGHTS"))
		b.WriteString("\n")
		for _, line := range d.insights {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(contentWidth).
				PaddingLeft(2).
				Render(line))
			b.WriteString("\n")
		}
	}

	// Next milestones
	if len(d.milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			PaddingLeft(2).
			Render("NEXT MILESTONES"))
		b.WriteString("\n")
		dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		for _, m := range d.milestones {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-32s", m.Label)),
				dimStyle.Render(fmt.Sprintf("%d/%d", m.Current, m.Target)),
				lipgloss.NewStyle().Foreground(theme.Accent).Render(m.Reward),
			))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}
