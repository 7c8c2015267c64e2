package skillgraph

import (
	"fmt"
	"slices"
)

// graph holds the skill DAG with precomputed indices.
type graph struct {
	skills     []Skill
	byID       map[string]*Skill
	dependents map[string][]string
	roots      []Skill
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of skills.
// The slice order is the canonical catalog order; every query that
// returns multiple skills preserves it.
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		dependents: make(map[string][]string),
	}

	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}

	// Build reverse edges (dependents) in catalog order.
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
	}

	for i := range gr.skills {
		if len(gr.skills[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.skills[i])
		}
	}

	return gr
}

// GetSkill returns a skill by ID, or error if not found.
func GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// AllSkills returns all skills in catalog order.
func AllSkills() []Skill {
	return slices.Clone(g.skills)
}

// AllCategories returns the distinct categories in catalog order.
func AllCategories() []Category {
	var cats []Category
	seen := make(map[Category]bool)
	for _, s := range g.skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	return cats
}

// ByCategory returns all skills in the given category, in catalog order.
func ByCategory(c Category) []Skill {
	var result []Skill
	for _, s := range g.skills {
		if s.Category == c {
			result = append(result, s)
		}
	}
	return result
}

// RootSkills returns all skills with no prerequisites, in catalog order.
func RootSkills() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite IDs for a skill.
// Unknown IDs yield an empty list.
func Prerequisites(id string) []string {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(s.Prerequisites)
}

// Dependents returns the IDs of skills that list id as a prerequisite.
func Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// IsAvailable reports whether every prerequisite of id is in the
// completed set. A skill with no prerequisites is always available.
// Unknown IDs are unavailable.
func IsAvailable(id string, completed map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// AvailableSkills returns all skills that are unlocked but not yet
// completed, in catalog order.
func AvailableSkills(completed map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.skills {
		if !completed[s.ID] && IsAvailable(s.ID, completed) {
			result = append(result, s)
		}
	}
	return result
}

// Centrality scores how foundational a skill is: the number of skills it
// unlocks minus the number of skills it requires. May be negative.
func Centrality(id string) int {
	return len(g.dependents[id]) - len(Prerequisites(id))
}

// Coverage counts the skills, other than id and not already completed,
// that would become available if id were completed. A skill already in
// the completed set has zero coverage.
func Coverage(id string, completed map[string]bool) int {
	if completed[id] {
		return 0
	}

	with := make(map[string]bool, len(completed)+1)
	for k, v := range completed {
		with[k] = v
	}
	with[id] = true

	count := 0
	for _, s := range g.skills {
		if s.ID == id || completed[s.ID] {
			continue
		}
		if !IsAvailable(s.ID, completed) && IsAvailable(s.ID, with) {
			count++
		}
	}
	return count
}

// pathEntry pairs a frontier skill with the chain explored to reach it.
type pathEntry struct {
	id   string
	path []string
}

// PathTo searches breadth-first over unmet prerequisites, starting from
// target, and returns the first chain ending in a skill that is already
// available: target first, the available skill last. Returns nil when
// target is already completed or unknown.
func PathTo(target string, completed map[string]bool) []Skill {
	if completed[target] {
		return nil
	}
	if _, ok := g.byID[target]; !ok {
		return nil
	}

	queue := []pathEntry{{id: target}}
	visited := make(map[string]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		if IsAvailable(cur.id, completed) {
			ids := append(slices.Clone(cur.path), cur.id)
			path := make([]Skill, 0, len(ids))
			for _, id := range ids {
				path = append(path, *g.byID[id])
			}
			return path
		}

		next := append(slices.Clone(cur.path), cur.id)
		for _, prereqID := range Prerequisites(cur.id) {
			if !completed[prereqID] && !visited[prereqID] {
				queue = append(queue, pathEntry{id: prereqID, path: next})
			}
		}
	}

	return nil
}

// Validate checks the graph for structural issues.
// It delegates to validateSkills with the graph's skill set.
func Validate() error {
	return validateSkills(g.skills)
}
