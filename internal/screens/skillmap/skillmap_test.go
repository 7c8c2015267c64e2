package skillmap

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/skillgraph"
)

// fakeQuestRepo is an in-memory quests.Repo.
type fakeQuestRepo struct {
	progress map[string]quests.Progress
}

func newFakeQuestRepo() *fakeQuestRepo {
	return &fakeQuestRepo{progress: make(map[string]quests.Progress)}
}

func (f *fakeQuestRepo) Progress(userID, questID string) (quests.Progress, bool, error) {
	p, ok := f.progress[questID]
	return p, ok, nil
}

func (f *fakeQuestRepo) InsertProgress(p quests.Progress) error {
	f.progress[p.QuestID] = p
	return nil
}

func (f *fakeQuestRepo) MarkCompleted(userID, questID string, at time.Time) error {
	p := f.progress[questID]
	p.CompletedAt = at
	f.progress[questID] = p
	return nil
}

func (f *fakeQuestRepo) ListProgress(userID string) ([]quests.Progress, error) {
	var list []quests.Progress
	for _, p := range f.progress {
		list = append(list, p)
	}
	return list, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestCursorStartsOnFirstSkillRow(t *testing.T) {
	s := New("u1", quests.NewService(newFakeQuestRepo()))

	if s.rows[s.cursor].kind != rowSkill {
		t.Fatalf("cursor on row kind %v, want rowSkill", s.rows[s.cursor].kind)
	}
	if s.cursor == 0 {
		t.Error("cursor = 0, want a row after the first category header")
	}
}

func TestMoveCursorSkipsHeaders(t *testing.T) {
	s := New("u1", quests.NewService(newFakeQuestRepo()))

	start := s.cursor
	for range s.rows {
		s.moveCursor(1)
	}
	end := s.cursor
	if end == start {
		t.Fatal("cursor never moved")
	}
	if s.rows[end].kind != rowSkill {
		t.Errorf("cursor landed on row kind %v, want rowSkill", s.rows[end].kind)
	}
}

func TestViewShowsAllCategories(t *testing.T) {
	s := New("u1", quests.NewService(newFakeQuestRepo()))

	view := s.View(120, len(s.rows)+5)
	for _, cat := range skillgraph.AllCategories() {
		if !strings.Contains(view, strings.ToUpper(string(cat))) {
			t.Errorf("view missing category header %q", cat)
		}
	}
}

func TestDetailStartAndComplete(t *testing.T) {
	svc := quests.NewService(newFakeQuestRepo())
	s := New("u1", svc)

	// Find a root skill the user can start right away.
	roots := skillgraph.RootSkills()
	if len(roots) == 0 {
		t.Fatal("no root skills in catalog")
	}
	sk := roots[0]

	d := newSkillDetail("u1", sk, svc, s.completed, s.started)

	d.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if !s.started[sk.ID] {
		t.Fatalf("skill %q not marked started", sk.ID)
	}
	if d.statusErr {
		t.Fatalf("start reported error: %s", d.status)
	}

	d.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if !s.completed[sk.ID] {
		t.Fatalf("skill %q not marked completed", sk.ID)
	}

	// The list sees the shared completed set.
	if got := skillgraph.StateFor(sk.ID, s.completed); got != skillgraph.StateCompleted {
		t.Errorf("StateFor = %v, want StateCompleted", got)
	}
}

func TestDetailRefusesLockedSkill(t *testing.T) {
	svc := quests.NewService(newFakeQuestRepo())
	s := New("u1", svc)

	// Find a skill with prerequisites.
	var locked skillgraph.Skill
	found := false
	for _, sk := range skillgraph.AllSkills() {
		if len(sk.Prerequisites) > 0 {
			locked = sk
			found = true
			break
		}
	}
	if !found {
		t.Fatal("catalog has no skill with prerequisites")
	}

	d := newSkillDetail("u1", locked, svc, s.completed, s.started)
	d.Update(tea.KeyPressMsg{Code: 's', Text: "s"})

	if !d.statusErr {
		t.Fatal("starting a locked skill did not report an error")
	}
	if s.started[locked.ID] {
		t.Errorf("locked skill %q was marked started", locked.ID)
	}
}

func TestEnterPushesDetail(t *testing.T) {
	s := New("u1", quests.NewService(newFakeQuestRepo()))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on a skill row returned no command")
	}
}
