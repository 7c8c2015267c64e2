// Package simulator implements the decision simulator screens: pick a
// scenario, answer its steps, then review the score and debrief.
package simulator

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/sim"
	"github.com/abhisek/indiepilot/internal/store"
	"github.com/abhisek/indiepilot/internal/ui/components"
	"github.com/abhisek/indiepilot/internal/ui/layout"
	"github.com/abhisek/indiepilot/internal/ui/theme"
)

type phase int

const (
	phasePick phase = iota
	phaseQuestion
	phaseResult
)

// SimulatorScreen walks the user through a decision scenario.
type SimulatorScreen struct {
	userID string
	runs   *store.SimRepo

	scenarios []sim.Scenario
	phase     phase
	cursor    int

	// Question state
	scenario sim.Scenario
	step     int
	choices  []int

	// Result state
	result  sim.Result
	debrief string
	saveErr error
}

var _ screen.Screen = (*SimulatorScreen)(nil)
var _ screen.KeyHintProvider = (*SimulatorScreen)(nil)
var _ screen.EscapeConsumer = (*SimulatorScreen)(nil)

// ConsumesEscape keeps escape inside a run: it returns to the scenario
// list instead of leaving the simulator.
func (s *SimulatorScreen) ConsumesEscape() bool {
	return s.phase != phasePick
}

// New creates a new SimulatorScreen showing the scenario list.
func New(userID string, runs *store.SimRepo) *SimulatorScreen {
	return &SimulatorScreen{
		userID:    userID,
		runs:      runs,
		scenarios: sim.Scenarios(),
	}
}

func (s *SimulatorScreen) Init() tea.Cmd {
	return nil
}

func (s *SimulatorScreen) Title() string {
	switch s.phase {
	case phaseQuestion:
		return s.scenario.Title
	case phaseResult:
		return "Debrief"
	}
	return "Simulator"
}

func (s *SimulatorScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseResult:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SimulatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phasePick:
		return s.updatePick(kmsg)
	case phaseQuestion:
		return s.updateQuestion(kmsg)
	case phaseResult:
		return s.updateResult(kmsg)
	}
	return s, nil
}

func (s *SimulatorScreen) updatePick(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.scenarios)-1 {
			s.cursor++
		}
	case "enter":
		s.beginScenario(s.scenarios[s.cursor])
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SimulatorScreen) updateQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	step := s.scenario.Steps[s.step]
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(step.Choices)-1 {
			s.cursor++
		}
	case "enter":
		s.choices = append(s.choices, s.cursor)
		s.cursor = 0
		s.step++
		if s.step >= len(s.scenario.Steps) {
			s.finishRun()
		}
	case "q", "esc":
		// Abandon the run, back to the list
		s.phase = phasePick
		s.cursor = 0
	}
	return s, nil
}

func (s *SimulatorScreen) updateResult(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		s.beginScenario(s.scenario)
	case "enter", "q", "esc":
		s.phase = phasePick
		s.cursor = 0
	}
	return s, nil
}

// beginScenario resets question state and enters the first step.
func (s *SimulatorScreen) beginScenario(sc sim.Scenario) {
	s.scenario = sc
	s.step = 0
	s.choices = nil
	s.cursor = 0
	s.phase = phaseQuestion
}

// finishRun scores the completed run, saves it, and shows the debrief.
func (s *SimulatorScreen) finishRun() {
	picked := make([]sim.Choice, len(s.choices))
	for i, idx := range s.choices {
		picked[i] = s.scenario.Steps[i].Choices[idx]
	}
	s.result = sim.Score(s.scenario, picked)
	s.debrief = sim.Debrief(s.scenario.ID, s.result.Overall)
	s.saveErr = nil
	if s.runs != nil {
		s.saveErr = s.runs.SaveRun(s.userID, s.scenario.ID, s.result)
	}
	s.phase = phaseResult
}

func (s *SimulatorScreen) View(width, height int) string {
	switch s.phase {
	case phaseQuestion:
		return s.viewQuestion(width, height)
	case phaseResult:
		return s.viewResult(width, height)
	}
	return s.viewPick(width, height)
}

func (s *SimulatorScreen) viewPick(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(1, 0, 1, 2).
		Render("CHOOSE A SCENARIO"))
	b.WriteString("\n")

	for i, sc := range s.scenarios {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		meta := fmt.Sprintf("%d steps · ~%d min", len(sc.Steps), sc.EstMinutes)
		b.WriteString(fmt.Sprintf("  %s%s  %s\n",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-28s", sc.Title)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta),
		))
	}

	// Description of the highlighted scenario
	if s.cursor < len(s.scenarios) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			PaddingLeft(4).
			Render(s.scenarios[s.cursor].Description))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func (s *SimulatorScreen) viewQuestion(width, height int) string {
	step := s.scenario.Steps[s.step]
	contentWidth := min(width-8, 70)

	var b strings.Builder

	progress := fmt.Sprintf("Step %d of %d", s.step+1, len(s.scenario.Steps))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(1, 0, 0, 2).
		Render(progress))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(contentWidth).
		PaddingLeft(2).
		Render(step.Question))
	b.WriteString("\n\n")

	for i, c := range step.Choices {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			PaddingLeft(2).
			Render(cursor + style.Render(c.Text)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func (s *SimulatorScreen) viewResult(width, height int) string {
	contentWidth := min(width-8, 70)
	barWidth := min(contentWidth-20, 30)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("SCORE: %d / 100", s.result.Overall)))
	b.WriteString("\n\n")

	for _, cat := range sim.AllCategories() {
		b.WriteString("  " + components.Bar(categoryLabel(cat), float64(s.result.Breakdown[cat]), 100, barWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(contentWidth).
		PaddingLeft(2).
		Render(s.debrief))
	b.WriteString("\n")

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(2).
			Render("Could not save this run: " + s.saveErr.Error()))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

// categoryLabel returns the display name for a scoring category.
func categoryLabel(c sim.Category) string {
	switch c {
	case sim.CategoryFrugality:
		return "Frugality"
	case sim.CategorySafety:
		return "Safety"
	case sim.CategoryTime:
		return "Time"
	case sim.CategoryInitiative:
		return "Initiative"
	}
	return string(c)
}
