package sim

import "slices"

// catalog holds the embedded scenarios, set by init().
var catalog []Scenario

func init() {
	catalog = seedScenarios()
}

// Scenarios returns all embedded scenarios in catalog order.
func Scenarios() []Scenario {
	return slices.Clone(catalog)
}

// GetScenario returns a scenario by ID.
func GetScenario(id string) (Scenario, bool) {
	for _, sc := range catalog {
		if sc.ID == id {
			return sc, true
		}
	}
	return Scenario{}, false
}

func choice(text string, frugality, safety, time, initiative int) Choice {
	return Choice{
		Text: text,
		Scores: map[Category]int{
			CategoryFrugality:  frugality,
			CategorySafety:     safety,
			CategoryTime:       time,
			CategoryInitiative: initiative,
		},
	}
}

// seedScenarios returns the embedded scenario catalog.
func seedScenarios() []Scenario {
	return []Scenario{
		{
			ID:          "scenario_budget_shopping",
			Title:       "Budget Shopping Challenge",
			Description: "You have $50 to buy groceries for the week. How do you approach this?",
			EstMinutes:  5,
			Steps: []Step{
				{
					Question: "You arrive at the grocery store with $50. What's your first step?",
					Choices: []Choice{
						choice("Grab a cart and start shopping", 20, 80, 60, 40),
						choice("Make a list and check prices first", 90, 90, 80, 70),
						choice("Buy whatever looks good", 30, 70, 40, 30),
					},
				},
				{
					Question: "You find some items are more expensive than expected. What do you do?",
					Choices: []Choice{
						choice("Buy them anyway and hope for the best", 20, 60, 50, 40),
						choice("Look for cheaper alternatives or sales", 95, 85, 70, 80),
						choice("Skip those items entirely", 80, 90, 60, 60),
					},
				},
				{
					Question: "You're at the checkout and realize you're over budget. What's your approach?",
					Choices: []Choice{
						choice("Put back the most expensive items", 90, 95, 80, 85),
						choice("Ask to borrow money from a friend", 40, 70, 60, 50),
						choice("Use a credit card (even though you don't have one)", 10, 30, 40, 20),
					},
				},
			},
		},
		{
			ID:          "scenario_transportation",
			Title:       "First Solo Transportation",
			Description: "You need to get to a new location across town. How do you plan your journey?",
			EstMinutes:  4,
			Steps: []Step{
				{
					Question: "How do you start planning your route?",
					Choices: []Choice{
						choice("Ask a friend to drive you", 60, 85, 70, 40),
						choice("Research public transit options online", 90, 80, 85, 85),
						choice("Just start walking and figure it out", 95, 40, 30, 60),
					},
				},
				{
					Question: "You discover the bus route has changed. What's your next move?",
					Choices: []Choice{
						choice("Call a rideshare service", 30, 90, 80, 70),
						choice("Check for alternative routes or ask for help", 85, 85, 70, 90),
						choice("Give up and go home", 80, 95, 50, 20),
					},
				},
				{
					Question: "You arrive at your destination 15 minutes early. What do you do?",
					Choices: []Choice{
						choice("Find a nearby cafe to wait", 40, 90, 85, 70),
						choice("Walk around and explore the area", 90, 70, 80, 85),
						choice("Stand outside and wait", 95, 80, 60, 50),
					},
				},
			},
		},
		{
			ID:          "scenario_emergency",
			Title:       "Emergency Situation",
			Description: "You're home alone and encounter an unexpected situation. How do you respond?",
			EstMinutes:  3,
			Steps: []Step{
				{
					Question: "You hear a strange noise in the house. What's your first reaction?",
					Choices: []Choice{
						choice("Investigate the noise immediately", 80, 30, 60, 70),
						choice("Call a parent or trusted adult", 90, 95, 80, 80),
						choice("Ignore it and continue what you're doing", 70, 40, 90, 30),
					},
				},
				{
					Question: "You discover a small kitchen fire. What do you do?",
					Choices: []Choice{
						choice("Try to put it out yourself", 80, 20, 50, 60),
						choice("Call 911 immediately", 90, 95, 70, 90),
						choice("Run outside and call for help", 90, 90, 60, 80),
					},
				},
				{
					Question: "The emergency is resolved. What's your next step?",
					Choices: []Choice{
						choice("Document what happened for future reference", 90, 95, 80, 90),
						choice("Forget about it and move on", 70, 60, 90, 40),
						choice("Tell everyone you know about it", 80, 70, 60, 60),
					},
				},
			},
		},
		{
			ID:          "scenario_social_conflict",
			Title:       "Social Conflict Resolution",
			Description: "You're in a group situation where there's disagreement. How do you handle it?",
			EstMinutes:  4,
			Steps: []Step{
				{
					Question: "Two friends are arguing about where to eat. What do you do?",
					Choices: []Choice{
						choice("Stay quiet and let them figure it out", 80, 90, 40, 30),
						choice("Suggest a compromise or alternative", 85, 95, 70, 90),
						choice("Pick a side and join the argument", 70, 40, 30, 50),
					},
				},
				{
					Question: "The argument escalates. How do you respond?",
					Choices: []Choice{
						choice("Try to mediate and calm everyone down", 90, 85, 60, 85),
						choice("Leave the situation entirely", 85, 95, 80, 60),
						choice("Get involved and take sides", 60, 30, 40, 40),
					},
				},
				{
					Question: "The conflict is resolved. What's your approach going forward?",
					Choices: []Choice{
						choice("Suggest establishing ground rules for future decisions", 90, 95, 80, 90),
						choice("Avoid similar situations in the future", 80, 85, 70, 50),
						choice("Act like nothing happened", 70, 60, 90, 40),
					},
				},
			},
		},
		{
			ID:          "scenario_time_management",
			Title:       "Time Management Challenge",
			Description: "You have multiple commitments and deadlines approaching. How do you prioritize?",
			EstMinutes:  4,
			Steps: []Step{
				{
					Question: "You have homework, a part-time job, and a social event all due today. What's your first step?",
					Choices: []Choice{
						choice("Start with whatever feels easiest", 60, 70, 40, 50),
						choice("Make a priority list and timeline", 90, 95, 90, 85),
						choice("Try to do everything at once", 40, 30, 20, 60),
					},
				},
				{
					Question: "You realize you can't complete everything on time. What do you do?",
					Choices: []Choice{
						choice("Communicate with relevant people and ask for extensions", 90, 95, 80, 90),
						choice("Work through the night to finish everything", 70, 40, 60, 70),
						choice("Give up on some commitments", 60, 70, 80, 40),
					},
				},
				{
					Question: "You successfully manage your time. What's your reflection?",
					Choices: []Choice{
						choice("Analyze what worked and plan better for next time", 95, 95, 90, 95),
						choice("Feel relieved it's over", 70, 80, 60, 50),
						choice("Take on even more commitments", 40, 30, 20, 60),
					},
				},
			},
		},
	}
}
