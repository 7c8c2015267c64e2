// Package jars implements the budget screen: jar balances, money
// health, recent transactions, and income/expense entry forms.
package jars

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/budget"
	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/ui/components"
	"github.com/abhisek/indiepilot/internal/ui/layout"
	"github.com/abhisek/indiepilot/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeIncome
	modeExpense
)

// JarsScreen shows the three budget jars and lets the user log money.
type JarsScreen struct {
	userID string
	budget *budget.Service

	mode      mode
	amount    components.TextInput
	note      components.TextInput
	noteFocus bool
	jarIndex  int

	overview budget.Overview
	streak   int
	health   float64
	badges   []budget.Badge
	recent   []budget.LogEntry
	loadErr  error

	status    string
	statusErr bool
}

var _ screen.Screen = (*JarsScreen)(nil)
var _ screen.KeyHintProvider = (*JarsScreen)(nil)
var _ screen.EscapeConsumer = (*JarsScreen)(nil)

// ConsumesEscape keeps the escape key inside the entry forms.
func (s *JarsScreen) ConsumesEscape() bool {
	return s.mode != modeView
}

// New creates a new JarsScreen.
func New(userID string, budgetSvc *budget.Service) *JarsScreen {
	s := &JarsScreen{
		userID: userID,
		budget: budgetSvc,
	}
	s.refresh()
	return s
}

// refresh reloads all displayed budget data.
func (s *JarsScreen) refresh() {
	s.loadErr = nil
	var err error
	if s.overview, err = s.budget.Overview(s.userID); err != nil {
		s.loadErr = err
		return
	}
	if s.streak, err = s.budget.CurrentStreak(s.userID); err != nil {
		s.loadErr = err
		return
	}
	if s.health, err = s.budget.HealthScore(s.userID); err != nil {
		s.loadErr = err
		return
	}
	if s.badges, err = s.budget.Badges(s.userID); err != nil {
		s.loadErr = err
		return
	}
	if s.recent, err = s.budget.RecentTransactions(s.userID, 8); err != nil {
		s.loadErr = err
	}
}

func (s *JarsScreen) Init() tea.Cmd {
	return nil
}

func (s *JarsScreen) Title() string {
	switch s.mode {
	case modeIncome:
		return "Log Income"
	case modeExpense:
		return "Log Expense"
	}
	return "Budget Jars"
}

func (s *JarsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeIncome:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Note"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeExpense:
		return []layout.KeyHint{
			{Key: "←→", Description: "Jar"},
			{Key: "Tab", Description: "Note"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "i", Description: "Income"},
		{Key: "e", Description: "Expense"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JarsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mode == modeView {
		return s.updateView(msg)
	}
	return s.updateForm(msg)
}

func (s *JarsScreen) updateView(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "i":
		s.enterForm(modeIncome)
	case "e":
		s.enterForm(modeExpense)
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// enterForm switches to an entry form with fresh inputs.
func (s *JarsScreen) enterForm(m mode) {
	s.mode = m
	s.amount = components.NewTextInput("0.00", true, 10)
	s.note = components.NewTextInput("what was it for?", false, 40)
	s.note.Model.Blur()
	s.noteFocus = false
	s.jarIndex = 0
	s.status = ""
}

func (s *JarsScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			// Consumed here so the app doesn't pop the screen.
			s.mode = modeView
			return s, nil
		case "tab":
			s.noteFocus = !s.noteFocus
			if s.noteFocus {
				s.amount.Model.Blur()
				return s, s.note.Model.Focus()
			}
			s.note.Model.Blur()
			return s, s.amount.Model.Focus()
		case "left", "right":
			if s.mode == modeExpense && !s.noteFocus {
				jars := budget.AllJars()
				if kmsg.String() == "left" {
					s.jarIndex = (s.jarIndex + len(jars) - 1) % len(jars)
				} else {
					s.jarIndex = (s.jarIndex + 1) % len(jars)
				}
				return s, nil
			}
		case "enter":
			s.submit()
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.noteFocus {
		s.note, cmd = s.note.Update(msg)
	} else {
		s.amount, cmd = s.amount.Update(msg)
	}
	return s, cmd
}

// submit validates the form and logs the transaction.
func (s *JarsScreen) submit() {
	amount, err := s.amount.AmountValue()
	if err != nil || amount <= 0 {
		s.amount.Submit(false)
		s.setStatus("Enter an amount above zero", true)
		return
	}

	note := strings.TrimSpace(s.note.Value())
	if s.mode == modeIncome {
		err = s.budget.AddIncome(s.userID, amount, note)
	} else {
		err = s.budget.AddExpense(s.userID, amount, budget.AllJars()[s.jarIndex], note)
	}
	if err != nil {
		s.amount.Submit(false)
		s.setStatus(formError(err), true)
		return
	}

	s.refresh()
	s.mode = modeView
	s.setStatus(fmt.Sprintf("Logged $%.2f", amount), false)
}

func (s *JarsScreen) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

// formError maps service errors to short human messages.
func formError(err error) string {
	switch {
	case errors.Is(err, budget.ErrInsufficientFunds):
		return "Not enough in that jar"
	case errors.Is(err, budget.ErrInvalidAmount):
		return "Enter an amount above zero"
	}
	return err.Error()
}

func (s *JarsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load budget: "+s.loadErr.Error()))
	}

	switch s.mode {
	case modeIncome, modeExpense:
		return s.viewForm(width, height)
	}
	return s.viewOverview(width, height)
}

func (s *JarsScreen) viewOverview(width, height int) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	// Jar balances
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(1, 0, 1, 2).
		Render("JARS"))
	b.WriteString("\n")
	b.WriteString(s.renderJarBoxes(width))
	b.WriteString("\n\n")

	// Health + streak line
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		dimStyle.Render("Money health:"),
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("%.0f/100", s.health)),
		dimStyle.Render("Streak:"),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d days", s.streak)),
	))

	// Badges
	if len(s.badges) > 0 {
		var names []string
		for _, badge := range s.badges {
			names = append(names, "🏅 "+badge.Name)
		}
		b.WriteString("  " + dimStyle.Render("Badges: ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(names, "  ")))
		b.WriteString("\n")
	}

	// Recent transactions
	if len(s.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			PaddingLeft(2).
			Render("RECENT"))
		b.WriteString("\n")
		for _, e := range s.recent {
			amountStyle := lipgloss.NewStyle().Foreground(theme.Success)
			if e.Amount < 0 {
				amountStyle = lipgloss.NewStyle().Foreground(theme.Error)
			}
			note := e.Note
			if note == "" {
				note = "(no note)"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				amountStyle.Render(fmt.Sprintf("%+9.2f", e.Amount)),
				dimStyle.Render(fmt.Sprintf("%-5s", e.Jar)),
				dimStyle.Render(e.TS.Format("Jan 02")),
				lipgloss.NewStyle().Foreground(theme.Text).Render(note),
			))
		}
	}

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(style.Render("  " + s.status))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

// renderJarBoxes renders the three jar balances side by side.
func (s *JarsScreen) renderJarBoxes(width int) string {
	boxWidth := (width - 12) / 3
	if boxWidth > 22 {
		boxWidth = 22
	}
	if boxWidth < 12 {
		boxWidth = 12
	}

	balances := map[budget.Jar]float64{
		budget.JarSpend: s.overview.Spend,
		budget.JarSave:  s.overview.Save,
		budget.JarShare: s.overview.Share,
	}
	icons := map[budget.Jar]string{
		budget.JarSpend: "💸",
		budget.JarSave:  "🏦",
		budget.JarShare: "💝",
	}

	var boxes []string
	for _, jar := range budget.AllJars() {
		content := fmt.Sprintf("%s %s\n$%.2f",
			icons[jar],
			strings.ToUpper(string(jar)),
			balances[jar],
		)
		boxes = append(boxes, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(boxWidth).
			Align(lipgloss.Center).
			Padding(0, 1).
			Render(content))
	}

	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

func (s *JarsScreen) viewForm(width, height int) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	heading := "LOG INCOME"
	if s.mode == modeExpense {
		heading = "LOG EXPENSE"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(1, 0, 1, 2).
		Render(heading))
	b.WriteString("\n")

	if s.mode == modeIncome {
		ratios, err := s.budget.Ratios(s.userID)
		if err == nil {
			b.WriteString(dimStyle.PaddingLeft(2).Render(fmt.Sprintf(
				"Split: %.0f%% spend / %.0f%% save / %.0f%% share",
				ratios.Spend, ratios.Save, ratios.Share)))
			b.WriteString("\n\n")
		}
	} else {
		jars := budget.AllJars()
		var parts []string
		for i, jar := range jars {
			name := string(jar)
			if i == s.jarIndex {
				parts = append(parts, lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.Primary).
					Bold(true).
					Render(" "+name+" "))
			} else {
				parts = append(parts, dimStyle.Render(" "+name+" "))
			}
		}
		b.WriteString(dimStyle.PaddingLeft(2).Render("From jar:  ") + strings.Join(parts, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.PaddingLeft(2).Render("Amount ($)"))
	b.WriteString("\n")
	b.WriteString("  " + s.amount.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.PaddingLeft(2).Render("Note"))
	b.WriteString("\n")
	b.WriteString("  " + s.note.View())
	b.WriteString("\n")

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(style.Render("  " + s.status))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}
