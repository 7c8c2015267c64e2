package budget

import (
	"fmt"
	"math"
)

// Badge is an earned budgeting achievement.
type Badge struct {
	ID          string
	Name        string
	Description string
}

var allBadges = map[string]Badge{
	"first_log":       {ID: "first_log", Name: "First Steps", Description: "Logged your first transaction"},
	"week_streak":     {ID: "week_streak", Name: "Week Warrior", Description: "7-day logging streak"},
	"month_streak":    {ID: "month_streak", Name: "Monthly Master", Description: "30-day logging streak"},
	"save_milestone":  {ID: "save_milestone", Name: "Saver", Description: "Saved $100 total"},
	"share_milestone": {ID: "share_milestone", Name: "Giver", Description: "Shared $50 total"},
}

// Badges returns the badges the user has earned so far.
func (s *Service) Badges(userID string) ([]Badge, error) {
	logs, err := s.repo.RecentLogs(userID, 1)
	if err != nil {
		return nil, fmt.Errorf("read logs: %w", err)
	}
	streak, err := s.CurrentStreak(userID)
	if err != nil {
		return nil, err
	}
	overview, err := s.Overview(userID)
	if err != nil {
		return nil, err
	}
	return earnedBadges(len(logs) > 0, streak, overview), nil
}

func earnedBadges(hasLogs bool, streak int, o Overview) []Badge {
	var earned []Badge
	if hasLogs {
		earned = append(earned, allBadges["first_log"])
	}
	if streak >= 7 {
		earned = append(earned, allBadges["week_streak"])
	}
	if streak >= 30 {
		earned = append(earned, allBadges["month_streak"])
	}
	if o.Save >= 100 {
		earned = append(earned, allBadges["save_milestone"])
	}
	if o.Share >= 50 {
		earned = append(earned, allBadges["share_milestone"])
	}
	return earned
}

// HealthScore computes the 0..100 financial health score from jar
// balances and the logging streak. Savings carry the most weight, a
// 50% savings ratio alone scores 100.
func (s *Service) HealthScore(userID string) (float64, error) {
	overview, err := s.Overview(userID)
	if err != nil {
		return 0, err
	}
	streak, err := s.CurrentStreak(userID)
	if err != nil {
		return 0, err
	}
	return healthScore(overview, streak), nil
}

func healthScore(o Overview, streak int) float64 {
	if o.Total == 0 {
		return 0
	}

	savingsScore := math.Min(100, o.Save/o.Total*200)
	streakBonus := math.Min(20, float64(streak)*2)
	spendingScore := math.Max(0, 30-o.Spend/o.Total*30)

	return math.Min(100, savingsScore+streakBonus+spendingScore)
}
