// Package sim implements IndieSim: branching decision scenarios with
// category-weighted scoring and canned debriefs.
package sim

// Category is one of the four judgment dimensions every choice is
// scored on.
type Category string

const (
	CategoryFrugality  Category = "frugality"
	CategorySafety     Category = "safety"
	CategoryTime       Category = "time"
	CategoryInitiative Category = "initiative"
)

// AllCategories returns the four scoring categories in display order.
func AllCategories() []Category {
	return []Category{CategoryFrugality, CategorySafety, CategoryTime, CategoryInitiative}
}

// scoringWeights is the fixed per-category weighting for the overall
// score. The weights sum to exactly 1.0.
var scoringWeights = map[Category]float64{
	CategoryFrugality:  0.25,
	CategorySafety:     0.30,
	CategoryTime:       0.20,
	CategoryInitiative: 0.25,
}

// Choice is one selectable option within a scenario step. Scores maps
// each of the four categories to a 0-100 value.
type Choice struct {
	Text   string           `json:"text"`
	Scores map[Category]int `json:"scores"`
}

// Step is a single question with its ordered choices.
type Step struct {
	Question string   `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Scenario is a complete branching exercise. Static content: never
// mutated after load.
type Scenario struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EstMinutes  int    `json:"est_minutes"`
	Steps       []Step `json:"steps"`
}

// Result is the outcome of scoring a completed run. Breakdown maps each
// category to its averaged 0-100 value.
type Result struct {
	Overall   int
	Breakdown map[Category]int
}
