package simulator

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/indiepilot/internal/sim"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestStartsOnScenarioList(t *testing.T) {
	s := New("u1", nil)

	if s.phase != phasePick {
		t.Fatalf("phase = %v, want phasePick", s.phase)
	}
	if got := s.Title(); got != "Simulator" {
		t.Errorf("Title() = %q, want %q", got, "Simulator")
	}
	if len(s.scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	view := s.View(100, 30)
	if !strings.Contains(view, s.scenarios[0].Title) {
		t.Errorf("list view missing first scenario title %q", s.scenarios[0].Title)
	}
}

func TestFullRun(t *testing.T) {
	s := New("u1", nil)

	// Enter starts the highlighted scenario.
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v, want phaseQuestion", s.phase)
	}
	scenario := s.scenario

	// Answer every step with the first choice.
	for range scenario.Steps {
		s.Update(specialKey(tea.KeyEnter))
	}

	if s.phase != phaseResult {
		t.Fatalf("phase = %v, want phaseResult", s.phase)
	}

	picked := make([]sim.Choice, len(scenario.Steps))
	for i, step := range scenario.Steps {
		picked[i] = step.Choices[0]
	}
	want := sim.Score(scenario, picked)
	if s.result.Overall != want.Overall {
		t.Errorf("Overall = %d, want %d", s.result.Overall, want.Overall)
	}
	if s.debrief == "" {
		t.Error("debrief is empty")
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "SCORE") {
		t.Errorf("result view missing score heading:\n%s", view)
	}
}

func TestCursorSelectsChoice(t *testing.T) {
	s := New("u1", nil)
	s.Update(specialKey(tea.KeyEnter))

	// Move to the second choice of the first step, then confirm.
	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	if len(s.choices) != 1 || s.choices[0] != 1 {
		t.Errorf("choices = %v, want [1]", s.choices)
	}
}

func TestScoresPickedChoices(t *testing.T) {
	s := New("u1", nil)
	s.Update(specialKey(tea.KeyEnter))
	scenario := s.scenario

	// Answer every step with its second choice.
	for range scenario.Steps {
		s.Update(keyPress('j'))
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.phase != phaseResult {
		t.Fatalf("phase = %v, want phaseResult", s.phase)
	}

	picked := make([]sim.Choice, len(scenario.Steps))
	for i, step := range scenario.Steps {
		picked[i] = step.Choices[1]
	}
	want := sim.Score(scenario, picked)
	if s.result.Overall != want.Overall {
		t.Errorf("Overall = %d, want %d", s.result.Overall, want.Overall)
	}
	for cat, v := range want.Breakdown {
		if s.result.Breakdown[cat] != v {
			t.Errorf("Breakdown[%s] = %d, want %d", cat, s.result.Breakdown[cat], v)
		}
	}
}

func TestEscapeAbandonsRun(t *testing.T) {
	s := New("u1", nil)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter)) // answer one step

	if !s.ConsumesEscape() {
		t.Fatal("ConsumesEscape() = false mid-run, want true")
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.phase != phasePick {
		t.Fatalf("phase = %v after escape, want phasePick", s.phase)
	}
	if s.ConsumesEscape() {
		t.Error("ConsumesEscape() = true on the list, want false")
	}
}

func TestRetryRestartsSameScenario(t *testing.T) {
	s := New("u1", nil)
	s.Update(specialKey(tea.KeyEnter))
	scenario := s.scenario
	for range scenario.Steps {
		s.Update(specialKey(tea.KeyEnter))
	}

	s.Update(keyPress('r'))
	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v after retry, want phaseQuestion", s.phase)
	}
	if s.scenario.ID != scenario.ID {
		t.Errorf("scenario = %q after retry, want %q", s.scenario.ID, scenario.ID)
	}
	if len(s.choices) != 0 {
		t.Errorf("choices not reset: %v", s.choices)
	}
}
