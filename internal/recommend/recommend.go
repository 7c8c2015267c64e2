// Package recommend ranks the skills a learner should tackle next.
//
// Ranking layers two heuristics from the skill graph: centrality (how
// foundational a skill is) and coverage (how many skills it would unlock
// right now). The combined score is their unweighted sum.
package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/abhisek/indiepilot/internal/skillgraph"
)

// Ranked is a recommendation candidate with its heuristic scores.
type Ranked struct {
	Skill      skillgraph.Skill
	Centrality int
	Coverage   int
	Combined   int
}

// NextSkills returns up to limit recommended skills for the given
// completed set, best first. When nothing is unlockable it falls back to
// the no-prerequisite skills in catalog order, which bootstraps a brand
// new learner.
func NextSkills(completed map[string]bool, limit int) []Ranked {
	if limit <= 0 {
		return nil
	}

	available := skillgraph.AvailableSkills(completed)
	if len(available) == 0 {
		roots := skillgraph.RootSkills()
		if len(roots) > limit {
			roots = roots[:limit]
		}
		ranked := make([]Ranked, 0, len(roots))
		for _, s := range roots {
			ranked = append(ranked, Ranked{
				Skill:      s,
				Centrality: skillgraph.Centrality(s.ID),
			})
		}
		return ranked
	}

	ranked := make([]Ranked, 0, len(available))
	for _, s := range available {
		centrality := skillgraph.Centrality(s.ID)
		coverage := skillgraph.Coverage(s.ID, completed)
		ranked = append(ranked, Ranked{
			Skill:      s,
			Centrality: centrality,
			Coverage:   coverage,
			Combined:   centrality + coverage,
		})
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Combined > ranked[j].Combined
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Stats is a read-only aggregate view of a learner's skill progress.
type Stats struct {
	TotalSkills         int
	CompletedCount      int
	AvailableCount      int
	CompletionRate      float64 // percent, one decimal
	DifficultyBreakdown map[int]int
	NextRecommendations []Ranked
}

// SkillStats summarizes progress over the catalog for the completed set.
func SkillStats(completed map[string]bool) Stats {
	all := skillgraph.AllSkills()

	breakdown := map[int]int{1: 0, 2: 0, 3: 0}
	completedCount := 0
	for _, s := range all {
		if completed[s.ID] {
			completedCount++
			breakdown[s.Difficulty]++
		}
	}

	rate := 0.0
	if len(all) > 0 {
		rate = math.Round(float64(completedCount)/float64(len(all))*1000) / 10
	}

	return Stats{
		TotalSkills:         len(all),
		CompletedCount:      completedCount,
		AvailableCount:      len(skillgraph.AvailableSkills(completed)),
		CompletionRate:      rate,
		DifficultyBreakdown: breakdown,
		NextRecommendations: NextSkills(completed, 3),
	}
}

// Search returns catalog skills whose title, description, or category
// contains the query, case-insensitively. Catalog order.
func Search(query string) []skillgraph.Skill {
	q := strings.ToLower(query)

	var results []skillgraph.Skill
	for _, s := range skillgraph.AllSkills() {
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Description), q) ||
			strings.Contains(strings.ToLower(string(s.Category)), q) {
			results = append(results, s)
		}
	}
	return results
}
