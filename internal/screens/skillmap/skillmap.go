package skillmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/router"
	"github.com/abhisek/indiepilot/internal/screen"
	"github.com/abhisek/indiepilot/internal/skillgraph"
	"github.com/abhisek/indiepilot/internal/ui/layout"
	"github.com/abhisek/indiepilot/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowSkill
)

type row struct {
	kind     rowKind
	category skillgraph.Category
	skill    *skillgraph.Skill
}

// SkillMapScreen displays the skill graph organized by category.
type SkillMapScreen struct {
	userID       string
	quests       *quests.Service
	rows         []row
	cursor       int
	scrollOffset int
	completed    map[string]bool
	started      map[string]bool
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen.
func New(userID string, questSvc *quests.Service) *SkillMapScreen {
	completed, err := questSvc.CompletedIDs(userID)
	if err != nil {
		completed = make(map[string]bool)
	}

	started := make(map[string]bool)
	if progress, err := questSvc.InProgress(userID); err == nil {
		for _, p := range progress {
			started[p.QuestID] = true
		}
	}

	var rows []row
	for _, cat := range skillgraph.AllCategories() {
		rows = append(rows, row{kind: rowCategoryHeader, category: cat})
		skills := skillgraph.ByCategory(cat)
		for i := range skills {
			rows = append(rows, row{kind: rowSkill, category: cat, skill: &skills[i]})
		}
	}

	s := &SkillMapScreen{
		userID:    userID,
		quests:    questSvc,
		rows:      rows,
		completed: completed,
		started:   started,
	}

	// Set cursor to first skill row
	for i, r := range s.rows {
		if r.kind == rowSkill {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "shift+tab":
			s.prevCategory()
		case "enter":
			return s, s.selectSkill()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SkillMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	// Ensure cursor is visible within the scroll window
	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowSkill:
			lines = append(lines, s.renderSkillRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *SkillMapScreen) Title() string {
	return "Skill Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *SkillMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowSkill {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first skill in the next category.
func (s *SkillMapScreen) nextCategory() {
	currentCat := s.rows[s.cursor].category
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowSkill && s.rows[i].category != currentCat {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first skill in the previous category.
func (s *SkillMapScreen) prevCategory() {
	currentCat := s.rows[s.cursor].category

	// Find the start of the previous category
	prevStart := -1
	var prevCat skillgraph.Category
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowSkill && s.rows[i].category != currentCat {
			prevCat = s.rows[i].category
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	// Go to the first skill of that category
	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowSkill || s.rows[i].category != prevCat {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowSkill {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *SkillMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the category header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectSkill handles enter on the current skill.
func (s *SkillMapScreen) selectSkill() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowSkill || r.skill == nil {
		return nil
	}

	detail := newSkillDetail(s.userID, *r.skill, s.quests, s.completed, s.started)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// renderCategoryHeader renders a category section header.
func (s *SkillMapScreen) renderCategoryHeader(cat skillgraph.Category, width int) string {
	name := strings.ToUpper(string(cat))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

// renderSkillRow renders a single skill row.
func (s *SkillMapScreen) renderSkillRow(r row, selected bool, width int) string {
	if r.skill == nil {
		return ""
	}

	state := skillgraph.StateFor(r.skill.ID, s.completed)
	icon := state.Icon()
	label := state.Label()
	if state == skillgraph.StateAvailable && s.started[r.skill.ID] {
		label = "Started"
	}
	difficulty := skillgraph.DifficultyName(r.skill.Difficulty)
	xp := fmt.Sprintf("%d XP", r.skill.XP)

	// Calculate column widths
	padding := 4 // left indent
	iconWidth := 3
	diffWidth := 13
	xpWidth := 7
	labelWidth := 10
	spacing := 6
	nameWidth := width - padding - iconWidth - diffWidth - xpWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	// Truncate name if needed
	name := r.skill.Title
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, metaStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		metaStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch state {
		case skillgraph.StateCompleted:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			metaStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case skillgraph.StateAvailable:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			metaStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			metaStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		metaStyle.Render(fmt.Sprintf("%-12s", difficulty)),
		metaStyle.Render(fmt.Sprintf("%6s", xp)),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)
}
