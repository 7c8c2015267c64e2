package sim

import (
	"strings"
	"testing"
)

func TestScenariosCatalog(t *testing.T) {
	scenarios := Scenarios()
	if got, want := len(scenarios), 5; got != want {
		t.Fatalf("len(Scenarios()) = %d, want %d", got, want)
	}

	wantIDs := []string{
		"scenario_budget_shopping",
		"scenario_transportation",
		"scenario_emergency",
		"scenario_social_conflict",
		"scenario_time_management",
	}
	for i, id := range wantIDs {
		if scenarios[i].ID != id {
			t.Errorf("Scenarios()[%d].ID = %q, want %q", i, scenarios[i].ID, id)
		}
	}

	for _, sc := range scenarios {
		if len(sc.Steps) != 3 {
			t.Errorf("scenario %s has %d steps, want 3", sc.ID, len(sc.Steps))
		}
		for i, step := range sc.Steps {
			if len(step.Choices) != 3 {
				t.Errorf("scenario %s step %d has %d choices, want 3", sc.ID, i, len(step.Choices))
			}
			for j, ch := range step.Choices {
				for _, cat := range AllCategories() {
					v, ok := ch.Scores[cat]
					if !ok {
						t.Errorf("scenario %s step %d choice %d missing category %s", sc.ID, i, j, cat)
					}
					if v < 0 || v > 100 {
						t.Errorf("scenario %s step %d choice %d score %s = %d, want 0..100", sc.ID, i, j, cat, v)
					}
				}
			}
		}
	}
}

func TestGetScenario(t *testing.T) {
	sc, ok := GetScenario("scenario_emergency")
	if !ok {
		t.Fatal("GetScenario(scenario_emergency) not found")
	}
	if sc.Title != "Emergency Situation" {
		t.Errorf("Title = %q, want %q", sc.Title, "Emergency Situation")
	}

	if _, ok := GetScenario("scenario_nope"); ok {
		t.Error("GetScenario(scenario_nope) found, want missing")
	}
}

func TestScoreBestRun(t *testing.T) {
	sc, _ := GetScenario("scenario_budget_shopping")
	choices := []Choice{
		sc.Steps[0].Choices[1], // make a list and check prices
		sc.Steps[1].Choices[1], // look for cheaper alternatives
		sc.Steps[2].Choices[0], // put back expensive items
	}

	res := Score(sc, choices)
	if got, want := res.Overall, 85; got != want {
		t.Errorf("Overall = %d, want %d", got, want)
	}
	wantBreakdown := map[Category]int{
		CategoryFrugality:  92,
		CategorySafety:     90,
		CategoryTime:       77,
		CategoryInitiative: 78,
	}
	for cat, want := range wantBreakdown {
		if got := res.Breakdown[cat]; got != want {
			t.Errorf("Breakdown[%s] = %d, want %d", cat, got, want)
		}
	}
}

func TestScoreWorstRun(t *testing.T) {
	sc, _ := GetScenario("scenario_budget_shopping")
	choices := []Choice{
		sc.Steps[0].Choices[0],
		sc.Steps[1].Choices[0],
		sc.Steps[2].Choices[2],
	}

	res := Score(sc, choices)
	if got, want := res.Overall, 40; got != want {
		t.Errorf("Overall = %d, want %d", got, want)
	}
}

func TestScoreUniformChoices(t *testing.T) {
	// A category scored identically at every step averages to itself
	// and contributes exactly its weighted share to the overall.
	sc := Scenario{
		ID: "test_uniform",
		Steps: []Step{
			{Choices: []Choice{choice("a", 80, 80, 80, 80)}},
			{Choices: []Choice{choice("b", 80, 80, 80, 80)}},
			{Choices: []Choice{choice("c", 80, 80, 80, 80)}},
		},
	}
	picked := []Choice{
		sc.Steps[0].Choices[0],
		sc.Steps[1].Choices[0],
		sc.Steps[2].Choices[0],
	}

	res := Score(sc, picked)
	for _, cat := range AllCategories() {
		if got := res.Breakdown[cat]; got != 80 {
			t.Errorf("Breakdown[%s] = %d, want 80", cat, got)
		}
	}
	if got, want := res.Overall, 80; got != want {
		t.Errorf("Overall = %d, want %d", got, want)
	}
}

func TestScoreMismatchedChoices(t *testing.T) {
	sc, _ := GetScenario("scenario_transportation")

	cases := []struct {
		name    string
		choices []Choice
	}{
		{"nil", nil},
		{"empty", []Choice{}},
		{"too few", []Choice{sc.Steps[0].Choices[0]}},
		{"too many", []Choice{
			sc.Steps[0].Choices[0],
			sc.Steps[1].Choices[0],
			sc.Steps[2].Choices[0],
			sc.Steps[2].Choices[1],
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(sc, tc.choices)
			if res.Overall != 0 {
				t.Errorf("Overall = %d, want 0", res.Overall)
			}
			if len(res.Breakdown) != 0 {
				t.Errorf("Breakdown has %d entries, want 0", len(res.Breakdown))
			}
		})
	}
}

func TestDebriefTiers(t *testing.T) {
	cases := []struct {
		scenarioID string
		score      int
		wantSubstr string
	}{
		{"scenario_budget_shopping", 95, "Excellent job"},
		{"scenario_budget_shopping", 80, "Excellent job"},
		{"scenario_budget_shopping", 79, "Good effort"},
		{"scenario_budget_shopping", 60, "Good effort"},
		{"scenario_budget_shopping", 59, "learning opportunity"},
		{"scenario_emergency", 90, "prioritized safety"},
		{"scenario_emergency", 30, "Call for help immediately"},
		{"scenario_custom_xyz", 90, "excellent judgment"},
		{"scenario_custom_xyz", 65, "room for improvement"},
		{"scenario_custom_xyz", 10, "learning experience"},
	}
	for _, tc := range cases {
		got := Debrief(tc.scenarioID, tc.score)
		if !strings.Contains(got, tc.wantSubstr) {
			t.Errorf("Debrief(%s, %d) = %q, want substring %q", tc.scenarioID, tc.score, got, tc.wantSubstr)
		}
	}
}
