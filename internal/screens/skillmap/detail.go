package skillmap

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/skillgraph"
	"github.com/abhisek/indiepilot/internal/ui/layout"
	"github.com/abhisek/indiepilot/internal/ui/theme"
)

// SkillDetailScreen shows details for a single skill and lets the user
// start or complete it as a quest.
type SkillDetailScreen struct {
	userID    string
	skill     skillgraph.Skill
	quests    *quests.Service
	completed map[string]bool
	started   map[string]bool
	status    string
	statusErr bool
}

var _ screen.Screen = (*SkillDetailScreen)(nil)
var _ screen.KeyHintProvider = (*SkillDetailScreen)(nil)

func newSkillDetail(userID string, skill skillgraph.Skill, questSvc *quests.Service, completed, started map[string]bool) *SkillDetailScreen {
	return &SkillDetailScreen{
		userID:    userID,
		skill:     skill,
		quests:    questSvc,
		completed: completed,
		started:   started,
	}
}

func (d *SkillDetailScreen) Init() tea.Cmd { return nil }
func (d *SkillDetailScreen) Title() string { return d.skill.Title }

func (d *SkillDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "s":
		d.startQuest()
	case "c":
		d.completeQuest()
	}
	return d, nil
}

func (d *SkillDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "s", Description: "Start"},
		{Key: "c", Description: "Complete"},
		{Key: "Esc", Description: "Back"},
	}
}

// startQuest begins the quest for this skill and records the outcome
// in the status line.
func (d *SkillDetailScreen) startQuest() {
	if !skillgraph.IsAvailable(d.skill.ID, d.completed) {
		d.setStatus("Locked: finish the prerequisites first", true)
		return
	}
	if err := d.quests.Start(d.userID, d.skill.ID); err != nil {
		d.setStatus(statusText(err), true)
		return
	}
	d.started[d.skill.ID] = true
	d.setStatus("Quest started. Go do the thing!", false)
}

// completeQuest marks the quest done and updates the shared completed set.
func (d *SkillDetailScreen) completeQuest() {
	if err := d.quests.Complete(d.userID, d.skill.ID); err != nil {
		d.setStatus(statusText(err), true)
		return
	}
	d.completed[d.skill.ID] = true
	d.setStatus(fmt.Sprintf("Completed! +%d XP", d.skill.XP), false)
}

func (d *SkillDetailScreen) setStatus(text string, isErr bool) {
	d.status = text
	d.statusErr = isErr
}

// statusText maps service errors to short human messages.
func statusText(err error) string {
	switch {
	case errors.Is(err, quests.ErrAlreadyStarted):
		return "Already started"
	case errors.Is(err, quests.ErrNotStarted):
		return "Start the quest first"
	case errors.Is(err, quests.ErrAlreadyCompleted):
		return "Already completed"
	}
	return err.Error()
}

func (d *SkillDetailScreen) View(width, height int) string {
	sk := d.skill
	state := skillgraph.StateFor(sk.ID, d.completed)
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Skill name + state.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", state.Icon(), sk.Title)))
	b.WriteString("\n")
	stateLabel := state.Label()
	if state == skillgraph.StateAvailable && d.started[sk.ID] {
		stateLabel = "Started"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", stateLabel)))
	b.WriteString("\n\n")

	// Description.
	if sk.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(sk.Description))
		b.WriteString("\n\n")
	}

	// Metadata.
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Category:    ") + valStyle.Render(string(sk.Category)) + "\n")
	b.WriteString(dimStyle.Render("  Difficulty:  ") + valStyle.Render(skillgraph.DifficultyName(sk.Difficulty)) + "\n")
	b.WriteString(dimStyle.Render("  Reward:      ") + valStyle.Render(fmt.Sprintf("%d XP", sk.XP)) + "\n")
	if sk.EstMinutes > 0 {
		b.WriteString(dimStyle.Render("  Time:        ") + valStyle.Render(fmt.Sprintf("~%d min", sk.EstMinutes)) + "\n")
	}
	if sk.Materials != "" {
		b.WriteString(dimStyle.Render("  Materials:   ") + valStyle.Render(sk.Materials) + "\n")
	}
	b.WriteString("\n")

	// Prerequisites.
	prereqs := skillgraph.Prerequisites(sk.ID)
	if len(prereqs) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Prerequisites"))
		b.WriteString("\n")
		for _, pid := range prereqs {
			p, err := skillgraph.GetSkill(pid)
			if err != nil {
				continue
			}
			icon := "○"
			style := dimStyle
			if d.completed[pid] {
				icon = "●"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", icon, p.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Dependents (what this skill unlocks).
	deps := skillgraph.Dependents(sk.ID)
	if len(deps) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Unlocks"))
		b.WriteString("\n")
		for _, did := range deps {
			dep, err := skillgraph.GetSkill(did)
			if err != nil {
				continue
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", dep.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Status line from the last start/complete attempt.
	if d.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if d.statusErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(style.Render("  " + d.status))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
