package sim

import "math"

// Score computes the overall score and per-category breakdown for a
// finished run. choices holds the picked choice for each step, in step
// order. A run with a missing or extra answer scores zero with an empty
// breakdown.
func Score(sc Scenario, choices []Choice) Result {
	if len(choices) == 0 || len(choices) != len(sc.Steps) {
		return Result{Breakdown: map[Category]int{}}
	}

	totals := map[Category]int{}
	for _, c := range AllCategories() {
		totals[c] = 0
	}
	for _, ch := range choices {
		for cat, v := range ch.Scores {
			totals[cat] += v
		}
	}

	steps := float64(len(choices))
	breakdown := make(map[Category]int, len(totals))
	for cat, sum := range totals {
		breakdown[cat] = int(math.Round(float64(sum) / steps))
	}

	var overall float64
	for cat, v := range breakdown {
		overall += float64(v) * scoringWeights[cat]
	}

	return Result{
		Overall:   int(math.Round(overall)),
		Breakdown: breakdown,
	}
}

type debriefSet struct {
	high, medium, low string
}

var debriefs = map[string]debriefSet{
	"scenario_budget_shopping": {
		high:   "Excellent job! You demonstrated strong planning skills and financial awareness. Your approach of making a list and checking prices shows mature decision-making.",
		medium: "Good effort! You showed some planning but could improve by being more systematic about budgeting and preparation.",
		low:    "This was a learning opportunity! Consider planning ahead, making lists, and being more mindful of spending in future situations.",
	},
	"scenario_transportation": {
		high:   "Outstanding! You showed excellent planning skills and safety awareness. Researching options and having backup plans demonstrates real independence.",
		medium: "Good start! You're thinking about safety and planning, but could improve by being more thorough in your preparation.",
		low:    "Remember that transportation planning is about safety first. Always research options, have backup plans, and prioritize getting to your destination safely.",
	},
	"scenario_emergency": {
		high:   "Perfect response! You prioritized safety and knew when to seek help. This is exactly how to handle emergency situations.",
		medium: "You showed some good instincts, but remember that in emergencies, safety should always come first. Don't hesitate to call for help.",
		low:    "In emergency situations, your first priority should always be safety. Call for help immediately rather than trying to handle everything yourself.",
	},
	"scenario_social_conflict": {
		high:   "Excellent conflict resolution skills! You showed maturity by staying calm, mediating, and finding solutions that work for everyone.",
		medium: "You handled the situation reasonably well. Consider being more proactive in finding compromises and preventing escalation.",
		low:    "Social conflicts require patience and communication. Focus on listening, staying calm, and finding solutions that work for everyone involved.",
	},
	"scenario_time_management": {
		high:   "Outstanding time management! You showed excellent planning, prioritization, and communication skills. This approach will serve you well.",
		medium: "Good effort on time management. Consider being more systematic about planning and communicating with others about your commitments.",
		low:    "Time management is a crucial life skill. Focus on planning ahead, setting priorities, and communicating with others about your schedule.",
	},
}

var genericDebrief = debriefSet{
	high:   "Great job! You showed excellent judgment and decision-making skills.",
	medium: "Good effort! You demonstrated some good instincts but there's room for improvement.",
	low:    "This was a learning experience. Focus on planning, safety, and making thoughtful decisions.",
}

// Debrief returns the coaching text for a run of the given scenario
// with the given overall score.
func Debrief(scenarioID string, score int) string {
	set, ok := debriefs[scenarioID]
	if !ok {
		set = genericDebrief
	}
	switch {
	case score >= 80:
		return set.high
	case score >= 60:
		return set.medium
	default:
		return set.low
	}
}
