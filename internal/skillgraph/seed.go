package skillgraph

import "fmt"

// init builds the package-level graph from the embedded catalog.
// A structurally invalid catalog is a programming error, not a runtime
// condition, so construction failure panics at process start.
func init() {
	skills := seedSkills()
	if err := validateSkills(skills); err != nil {
		panic(fmt.Sprintf("embedded skill catalog is invalid: %v", err))
	}
	g = buildGraph(skills)
}

// seedSkills returns the life-skill catalog in canonical (catalog) order.
// Prerequisite lists induce the edge set; validateSkills checks that the
// result is a DAG with no dangling references.
func seedSkills() []Skill {
	return []Skill{
		{
			ID:            "basic_laundry",
			Title:         "Basic Laundry",
			Description:   "Sort, wash, dry, and fold clothes",
			Difficulty:    1,
			Category:      "household",
			XP:            50,
			EstMinutes:    45,
			Materials:     "Dirty clothes, laundry detergent, washing machine",
			Prerequisites: nil,
		},
		{
			ID:            "meal_planning",
			Title:         "Meal Planning",
			Description:   "Plan meals and create shopping lists",
			Difficulty:    2,
			Category:      "cooking",
			XP:            60,
			EstMinutes:    30,
			Materials:     "Paper or notes app, weekly calendar",
			Prerequisites: nil,
		},
		{
			ID:            "grocery_shopping",
			Title:         "Grocery Shopping",
			Description:   "Navigate stores and stick to budget",
			Difficulty:    2,
			Category:      "shopping",
			XP:            70,
			EstMinutes:    45,
			Materials:     "Shopping list, budget, grocery store",
			Prerequisites: []string{"meal_planning"},
		},
		{
			ID:            "budget_tracking",
			Title:         "Budget Tracking",
			Description:   "Track income and expenses",
			Difficulty:    2,
			Category:      "finance",
			XP:            65,
			EstMinutes:    30,
			Materials:     "Notebook or budgeting app",
			Prerequisites: nil,
		},
		{
			ID:            "time_management",
			Title:         "Time Management",
			Description:   "Plan and prioritize daily activities",
			Difficulty:    2,
			Category:      "planning",
			XP:            60,
			EstMinutes:    30,
			Materials:     "Calendar, planner, or digital tool",
			Prerequisites: nil,
		},
		{
			ID:            "public_transport",
			Title:         "Public Transportation",
			Description:   "Navigate buses, trains, and schedules",
			Difficulty:    2,
			Category:      "transportation",
			XP:            75,
			EstMinutes:    90,
			Materials:     "Transit card, route planning app",
			Prerequisites: []string{"time_management"},
		},
		{
			ID:            "appointment_booking",
			Title:         "Appointment Booking",
			Description:   "Schedule and manage appointments",
			Difficulty:    1,
			Category:      "communication",
			XP:            30,
			EstMinutes:    20,
			Materials:     "Phone, appointment details",
			Prerequisites: []string{"time_management"},
		},
		{
			ID:            "emergency_preparedness",
			Title:         "Emergency Preparedness",
			Description:   "Handle emergency situations safely",
			Difficulty:    3,
			Category:      "safety",
			XP:            90,
			EstMinutes:    60,
			Materials:     "Emergency contact list, first aid basics",
			Prerequisites: []string{"basic_laundry", "budget_tracking"},
		},
		{
			ID:            "cooking_basics",
			Title:         "Cooking Basics",
			Description:   "Prepare simple meals safely",
			Difficulty:    2,
			Category:      "cooking",
			XP:            75,
			EstMinutes:    60,
			Materials:     "Ingredients, cooking utensils, recipe",
			Prerequisites: []string{"grocery_shopping"},
		},
		{
			ID:            "financial_planning",
			Title:         "Financial Planning",
			Description:   "Set financial goals and save money",
			Difficulty:    3,
			Category:      "finance",
			XP:            95,
			EstMinutes:    60,
			Materials:     "Budget records, savings goal",
			Prerequisites: []string{"budget_tracking", "time_management"},
		},
		{
			ID:            "conflict_resolution",
			Title:         "Conflict Resolution",
			Description:   "Handle disagreements constructively",
			Difficulty:    3,
			Category:      "social",
			XP:            85,
			EstMinutes:    45,
			Materials:     "A willing practice partner",
			Prerequisites: []string{"appointment_booking"},
		},
		{
			ID:            "job_interview",
			Title:         "Job Interview Skills",
			Description:   "Prepare for and conduct interviews",
			Difficulty:    3,
			Category:      "career",
			XP:            85,
			EstMinutes:    45,
			Materials:     "Resume, interview questions, practice partner",
			Prerequisites: []string{"conflict_resolution", "financial_planning"},
		},
		{
			ID:            "community_service",
			Title:         "Community Service",
			Description:   "Volunteer and give back to community",
			Difficulty:    2,
			Category:      "social",
			XP:            75,
			EstMinutes:    180,
			Materials:     "Transportation, appropriate clothing",
			Prerequisites: []string{"time_management", "budget_tracking"},
		},
		{
			ID:            "public_speaking",
			Title:         "Public Speaking",
			Description:   "Present confidently to groups",
			Difficulty:    3,
			Category:      "communication",
			XP:            90,
			EstMinutes:    60,
			Materials:     "Presentation materials, audience",
			Prerequisites: []string{"conflict_resolution"},
		},
		{
			ID:            "first_aid",
			Title:         "Basic First Aid",
			Description:   "Provide basic medical assistance",
			Difficulty:    2,
			Category:      "safety",
			XP:            80,
			EstMinutes:    120,
			Materials:     "First aid kit, online course or instructor",
			Prerequisites: []string{"emergency_preparedness"},
		},
	}
}
