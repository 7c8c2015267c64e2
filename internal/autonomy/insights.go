package autonomy

import "fmt"

// Insights returns one coaching line per autonomy area based on the
// sub-scores.
func Insights(s Scores) []string {
	insights := make([]string, 0, 4)

	switch {
	case s.Skills < 30:
		insights = append(insights, "💡 Try completing some beginner quests to build your life skills foundation!")
	case s.Skills < 70:
		insights = append(insights, "🎯 Great progress on skills! Consider tackling some intermediate quests.")
	default:
		insights = append(insights, "🏆 Excellent skills development! You're ready for advanced challenges.")
	}

	switch {
	case s.Budgeting < 40:
		insights = append(insights, "💰 Start logging your expenses regularly to improve your financial awareness.")
	case s.Budgeting < 80:
		insights = append(insights, "📊 Good budgeting habits! Try to increase your savings ratio.")
	default:
		insights = append(insights, "💎 Outstanding financial management! You're building great money habits.")
	}

	switch {
	case s.Community < 20:
		insights = append(insights, "🤝 Connect with others on the Youth Board to build your community score.")
	case s.Community < 60:
		insights = append(insights, "👥 Nice community engagement! Try both creating and responding to posts.")
	default:
		insights = append(insights, "🌟 Excellent community participation! You're a great team player.")
	}

	switch {
	case s.Judgment < 50:
		insights = append(insights, "🎯 Practice decision-making with IndieSim scenarios to improve your judgment.")
	case s.Judgment < 80:
		insights = append(insights, "🧠 Good judgment skills! Keep practicing different scenarios.")
	default:
		insights = append(insights, "🧠 Outstanding decision-making! You show excellent judgment in complex situations.")
	}

	return insights
}

// Milestone is the next achievable target in an autonomy area.
type Milestone struct {
	Area    string
	Label   string
	Current int
	Target  int
	Reward  string
}

// Milestones returns the next milestone per area. Areas whose next
// target would exceed the area cap are omitted.
func (e *Engine) Milestones(userID string) ([]Milestone, error) {
	questCount, err := e.quests.CompletedQuestCount(userID)
	if err != nil {
		return nil, fmt.Errorf("count completed quests: %w", err)
	}
	stats, err := e.budget.BudgetStats(userID)
	if err != nil {
		return nil, fmt.Errorf("read budget stats: %w", err)
	}
	posts, err := e.board.PostCount(userID)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	runs, err := e.sims.RunCount(userID)
	if err != nil {
		return nil, fmt.Errorf("count sim runs: %w", err)
	}
	return nextMilestones(questCount, stats.Streak, posts, runs), nil
}

func nextMilestones(questCount, streak, posts, runs int) []Milestone {
	var milestones []Milestone

	if next := (questCount/5 + 1) * 5; next <= 20 {
		milestones = append(milestones, Milestone{
			Area:    "Skills",
			Label:   fmt.Sprintf("Complete %d quests", next),
			Current: questCount,
			Target:  next,
			Reward:  fmt.Sprintf("+%d XP", next*2),
		})
	}

	if next := (streak/7 + 1) * 7; next <= 30 {
		milestones = append(milestones, Milestone{
			Area:    "Budgeting",
			Label:   fmt.Sprintf("%d-day logging streak", next),
			Current: streak,
			Target:  next,
			Reward:  "+15 Autonomy Points",
		})
	}

	if next := (posts/3 + 1) * 3; next <= 15 {
		milestones = append(milestones, Milestone{
			Area:    "Community",
			Label:   fmt.Sprintf("Create %d board posts", next),
			Current: posts,
			Target:  next,
			Reward:  "+10 Community Points",
		})
	}

	if next := (runs/2 + 1) * 2; next <= 10 {
		milestones = append(milestones, Milestone{
			Area:    "Judgment",
			Label:   fmt.Sprintf("Complete %d IndieSim scenarios", next),
			Current: runs,
			Target:  next,
			Reward:  "+20 Judgment Points",
		})
	}

	return milestones
}
