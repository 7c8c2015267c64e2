package autonomy

import "math"

// Scores holds the four autonomy sub-scores, each 0..100.
type Scores struct {
	Skills    float64
	Budgeting float64
	Community float64
	Judgment  float64
}

// WeightedIndex folds the sub-scores into a single 0..100 index,
// rounded to one decimal place.
func (s Scores) WeightedIndex(w Weights) float64 {
	sum := s.Skills*w.Skills +
		s.Budgeting*w.Budgeting +
		s.Community*w.Community +
		s.Judgment*w.Judgment
	return math.Round(sum*10) / 10
}

// SkillsScore scores quest completion. 10 points per completed quest,
// capped at 100.
func SkillsScore(completedQuests int) float64 {
	return math.Min(100, float64(completedQuests)*10)
}

// BudgetingScore scores financial habits. The health score is boosted
// by a logging-streak bonus and reduced by an overspending penalty
// when more than 70% of logged money went to spending. Clamped to
// 0..100.
func BudgetingScore(health float64, streak int, total, spend float64) float64 {
	streakBonus := math.Min(20, float64(streak)*2)

	var overspendPenalty float64
	if total > 0 {
		spendRatio := spend / total
		overspendPenalty = math.Max(0, (spendRatio-0.7)*100)
	}

	score := health + streakBonus - overspendPenalty
	return math.Max(0, math.Min(100, score))
}

// CommunityScore scores board activity. 5 points per post created
// (max 50) plus 10 points per post claimed (max 50).
func CommunityScore(posts, claims int) float64 {
	postScore := math.Min(50, float64(posts)*5)
	claimScore := math.Min(50, float64(claims)*10)
	return math.Min(100, postScore+claimScore)
}

// JudgmentScore averages the most recent simulation scores. A user
// with no runs starts at a neutral 50.
func JudgmentScore(recentScores []int) float64 {
	if len(recentScores) == 0 {
		return 50.0
	}
	var sum int
	for _, s := range recentScores {
		sum += s
	}
	return float64(sum) / float64(len(recentScores))
}
