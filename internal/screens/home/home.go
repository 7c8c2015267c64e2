package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/abhisek/indiepilot/internal/budget"
	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/screens/dashboard"
	"github.com/abhisek/indiepilot/internal/screens/jars"
	"github.com/abhisek/indiepilot/internal/screens/simulator"
	"github.com/abhisek/indiepilot/internal/screens/skillmap"
	"github.com/abhisek/indiepilot/internal/store"
	"github.com/abhisek/indiepilot/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string

	completedQuests int
	streak          int
	autonomyIndex   float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen backed by the given services.
func New(userID string, questSvc *quests.Service, budgetSvc *budget.Service, engine *autonomy.Engine, runs *store.SimRepo) *HomeScreen {
	completed, _ := questSvc.CompletedQuestCount(userID)
	streak, _ := budgetSvc.CurrentStreak(userID)
	index, _ := engine.Index(userID)

	menuLabels := []string{"SKILL MAP", "SIMULATOR", "BUDGET JARS", "DASHBOARD", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skillmap.New(userID, questSvc)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: simulator.New(userID, runs)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: jars.New(userID, budgetSvc)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(userID, engine)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:            components.NewMenu(items),
		menuLabels:      menuLabels,
		completedQuests: completed,
		streak:          streak,
		autonomyIndex:   index,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 32 || width < 90

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.completedQuests, h.streak, h.autonomyIndex, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderOuterFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
