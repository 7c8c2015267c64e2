package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/ui/theme"
)

// Block-letter title shown on large terminals.
const bannerFull = ` ██╗███╗   ██╗██████╗ ██╗███████╗██████╗ ██╗██╗      ██████╗ ████████╗
 ██║████╗  ██║██╔══██╗██║██╔════╝██╔══██╗██║██║     ██╔═══██╗╚══██╔══╝
 ██║██╔██╗ ██║██║  ██║██║█████╗  ██████╔╝██║██║     ██║   ██║   ██║
 ██║██║╚██╗██║██║  ██║██║██╔══╝  ██╔═══╝ ██║██║     ██║   ██║   ██║
 ██║██║ ╚████║██████╔╝██║███████╗██║     ██║███████╗╚██████╔╝   ██║
 ╚═╝╚═╝  ╚═══╝╚═════╝ ╚═╝╚══════╝╚═╝     ╚═╝╚══════╝ ╚═════╝    ╚═╝`

const bannerCompact = "I N D I E P I L O T"

const tagline = "your launchpad to independent living"

// contentWidth returns the uniform inner width used for all home sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 74 {
		w = 74
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := bannerFull
	if compact || cw < 72 {
		title = bannerCompact
	}

	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders quest, streak, and autonomy stats in a bordered box.
func renderStatsBar(completed, streak int, index float64, cw int, compact bool) string {
	questStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	indexStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			questStyle.Render(fmt.Sprintf("✅%d", completed)),
			streakStyle.Render(fmt.Sprintf("🔥%d", streak)),
			indexStyle.Render(fmt.Sprintf("◉%.1f", index)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			questStyle.Render(fmt.Sprintf("✅ %d QUESTS DONE", completed)),
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", streak)),
			indexStyle.Render(fmt.Sprintf("◉ AUTONOMY %.1f", index)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(joinLines(buttons))
}

// renderMenuCompact renders menu items as plain lines for small terminals.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(joinLines(lines))
}

func joinLines(lines []string) string {
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderOuterFrame wraps content in a double-border frame, centered
// within the given dimensions.
func renderOuterFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
