// Package app owns the root Bubble Tea model: it wires the services
// into the screen stack and renders the shared header and footer.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/abhisek/indiepilot/internal/budget"
	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/screens/home"
	"github.com/abhisek/indiepilot/internal/store"
	"github.com/abhisek/indiepilot/internal/ui/layout"
)

// Services bundles everything the TUI needs.
type Services struct {
	UserID string
	Quests *quests.Service
	Budget *budget.Service
	Engine *autonomy.Engine
	Runs   *store.SimRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	services Services
	router   *router.Router
	width    int
	height   int

	// Header stats, refreshed on navigation.
	totalXP       int
	autonomyIndex float64
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(svc Services) AppModel {
	homeScreen := home.New(svc.UserID, svc.Quests, svc.Budget, svc.Engine, svc.Runs)
	m := AppModel{
		services: svc,
		router:   router.New(homeScreen),
	}
	m.refreshStats()
	return m
}

// refreshStats recomputes the header XP and autonomy index.
func (m *AppModel) refreshStats() {
	if summary, err := m.services.Quests.Summary(m.services.UserID); err == nil {
		m.totalXP = summary.TotalXP
	}
	if index, err := m.services.Engine.Index(m.services.UserID); err == nil {
		m.autonomyIndex = index
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PushScreenMsg, router.PopScreenMsg:
		// Screen changes are when scores can have moved.
		m.refreshStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ec, ok := m.router.Active().(screen.EscapeConsumer); ok && ec.ConsumesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				m.refreshStats()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.totalXP, m.autonomyIndex, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(svc Services) error {
	p := tea.NewProgram(newAppModel(svc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
