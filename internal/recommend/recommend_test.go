package recommend

import (
	"testing"
)

func TestNextSkills_NewLearner(t *testing.T) {
	got := NextSkills(map[string]bool{}, 3)
	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(got))
	}

	// All four roots are available; scores rank time_management (4+2)
	// over budget_tracking (3+0) over meal_planning (1+1).
	want := []string{"time_management", "budget_tracking", "meal_planning"}
	for i, id := range want {
		if got[i].Skill.ID != id {
			t.Errorf("recommendation[%d] = %q, want %q", i, got[i].Skill.ID, id)
		}
	}

	// Every recommendation for a new learner has no prerequisites.
	for _, r := range got {
		if len(r.Skill.Prerequisites) != 0 {
			t.Errorf("recommended %q has prerequisites %v for a new learner", r.Skill.ID, r.Skill.Prerequisites)
		}
	}
}

func TestNextSkills_CombinedScore(t *testing.T) {
	got := NextSkills(map[string]bool{}, 1)
	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got))
	}
	r := got[0]
	if r.Combined != r.Centrality+r.Coverage {
		t.Errorf("combined = %d, want centrality %d + coverage %d", r.Combined, r.Centrality, r.Coverage)
	}
	if r.Skill.ID != "time_management" || r.Combined != 6 {
		t.Errorf("top recommendation = %q (score %d), want time_management (6)", r.Skill.ID, r.Combined)
	}
}

func TestNextSkills_FallbackWhenNothingAvailable(t *testing.T) {
	// Complete everything: no skill is available, so the engine falls
	// back to root skills in catalog order.
	completed := map[string]bool{}
	for _, id := range []string{
		"basic_laundry", "meal_planning", "grocery_shopping", "budget_tracking",
		"time_management", "public_transport", "appointment_booking",
		"emergency_preparedness", "cooking_basics", "financial_planning",
		"conflict_resolution", "job_interview", "community_service",
		"public_speaking", "first_aid",
	} {
		completed[id] = true
	}

	got := NextSkills(completed, 3)
	if len(got) != 3 {
		t.Fatalf("got %d fallback recommendations, want 3", len(got))
	}
	want := []string{"basic_laundry", "meal_planning", "budget_tracking"}
	for i, id := range want {
		if got[i].Skill.ID != id {
			t.Errorf("fallback[%d] = %q, want %q (catalog order)", i, got[i].Skill.ID, id)
		}
	}
}

func TestNextSkills_LimitAndEmpty(t *testing.T) {
	if got := NextSkills(map[string]bool{}, 0); got != nil {
		t.Errorf("limit 0: got %v, want nil", got)
	}
	if got := NextSkills(map[string]bool{}, 100); len(got) != 4 {
		t.Errorf("limit 100: got %d, want all 4 available", len(got))
	}
}

func TestSkillStats(t *testing.T) {
	completed := map[string]bool{
		"basic_laundry":   true, // difficulty 1
		"budget_tracking": true, // difficulty 2
		"time_management": true, // difficulty 2
	}
	stats := SkillStats(completed)

	if stats.TotalSkills != 15 {
		t.Errorf("total = %d, want 15", stats.TotalSkills)
	}
	if stats.CompletedCount != 3 {
		t.Errorf("completed = %d, want 3", stats.CompletedCount)
	}
	if stats.CompletionRate != 20.0 {
		t.Errorf("completion rate = %.1f, want 20.0", stats.CompletionRate)
	}
	if stats.DifficultyBreakdown[1] != 1 || stats.DifficultyBreakdown[2] != 2 || stats.DifficultyBreakdown[3] != 0 {
		t.Errorf("difficulty breakdown = %v, want {1:1 2:2 3:0}", stats.DifficultyBreakdown)
	}
	// meal_planning is still a root; emergency_preparedness,
	// financial_planning, community_service, public_transport, and
	// appointment_booking unlock from the completed set.
	if stats.AvailableCount != 6 {
		t.Errorf("available = %d, want 6", stats.AvailableCount)
	}
	if len(stats.NextRecommendations) != 3 {
		t.Errorf("got %d recommendations, want 3", len(stats.NextRecommendations))
	}
}

func TestSkillStats_Empty(t *testing.T) {
	stats := SkillStats(map[string]bool{})
	if stats.CompletedCount != 0 {
		t.Errorf("completed = %d, want 0", stats.CompletedCount)
	}
	if stats.CompletionRate != 0.0 {
		t.Errorf("completion rate = %.1f, want 0.0", stats.CompletionRate)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"laundry", []string{"basic_laundry"}},
		{"BUDGET", []string{"grocery_shopping", "budget_tracking"}}, // title + description matches
		{"finance", []string{"budget_tracking", "financial_planning"}},
		{"zzzz", nil},
	}

	for _, tt := range tests {
		got := Search(tt.query)
		ids := make([]string, len(got))
		for i, s := range got {
			ids[i] = s.ID
		}
		if len(ids) != len(tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, ids, tt.want)
			continue
		}
		for i := range tt.want {
			if ids[i] != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tt.query, i, ids[i], tt.want[i])
			}
		}
	}
}
