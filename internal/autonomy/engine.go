// Package autonomy computes the Autonomy Index, a weighted 0..100
// measure of independence built from quest progress, budgeting habits,
// community activity, and simulated decision-making.
package autonomy

import "fmt"

// judgmentWindow is how many recent simulation runs feed the judgment
// sub-score.
const judgmentWindow = 5

// BudgetStats is the budgeting snapshot the engine reads.
type BudgetStats struct {
	Total  float64
	Spend  float64
	Streak int
	Health float64
}

// QuestReader reports quest completion.
type QuestReader interface {
	CompletedQuestCount(userID string) (int, error)
}

// BudgetReader reports budgeting state.
type BudgetReader interface {
	BudgetStats(userID string) (BudgetStats, error)
}

// BoardReader reports youth-board activity.
type BoardReader interface {
	PostCount(userID string) (int, error)
	ClaimCount(userID string) (int, error)
}

// SimReader reports simulation history.
type SimReader interface {
	RecentScores(userID string, limit int) ([]int, error)
	RunCount(userID string) (int, error)
}

// SettingsStore reads and writes per-user weights.
type SettingsStore interface {
	Weights(userID string) (Weights, error)
	SetWeights(userID string, w Weights) error
}

// Engine computes autonomy scores from the app's data sources.
type Engine struct {
	quests   QuestReader
	budget   BudgetReader
	board    BoardReader
	sims     SimReader
	settings SettingsStore
}

// NewEngine wires an engine to its data sources.
func NewEngine(quests QuestReader, budget BudgetReader, board BoardReader, sims SimReader, settings SettingsStore) *Engine {
	return &Engine{
		quests:   quests,
		budget:   budget,
		board:    board,
		sims:     sims,
		settings: settings,
	}
}

// IndividualScores computes all four sub-scores for a user.
func (e *Engine) IndividualScores(userID string) (Scores, error) {
	questCount, err := e.quests.CompletedQuestCount(userID)
	if err != nil {
		return Scores{}, fmt.Errorf("count completed quests: %w", err)
	}

	stats, err := e.budget.BudgetStats(userID)
	if err != nil {
		return Scores{}, fmt.Errorf("read budget stats: %w", err)
	}

	posts, err := e.board.PostCount(userID)
	if err != nil {
		return Scores{}, fmt.Errorf("count posts: %w", err)
	}
	claims, err := e.board.ClaimCount(userID)
	if err != nil {
		return Scores{}, fmt.Errorf("count claims: %w", err)
	}

	recent, err := e.sims.RecentScores(userID, judgmentWindow)
	if err != nil {
		return Scores{}, fmt.Errorf("read recent sim scores: %w", err)
	}

	return Scores{
		Skills:    SkillsScore(questCount),
		Budgeting: BudgetingScore(stats.Health, stats.Streak, stats.Total, stats.Spend),
		Community: CommunityScore(posts, claims),
		Judgment:  JudgmentScore(recent),
	}, nil
}

// Index computes the weighted Autonomy Index for a user, rounded to
// one decimal place.
func (e *Engine) Index(userID string) (float64, error) {
	scores, err := e.IndividualScores(userID)
	if err != nil {
		return 0, err
	}
	weights, err := e.settings.Weights(userID)
	if err != nil {
		return 0, fmt.Errorf("read weights: %w", err)
	}
	return scores.WeightedIndex(weights), nil
}

// UpdateWeights stores a new weight set for a user. Weights that do
// not sum to 1.0 within tolerance are rejected without touching the
// stored values.
func (e *Engine) UpdateWeights(userID string, w Weights) error {
	if !w.Valid() {
		return fmt.Errorf("%w: got %.3f", ErrInvalidWeights, w.Sum())
	}
	if err := e.settings.SetWeights(userID, w); err != nil {
		return fmt.Errorf("store weights: %w", err)
	}
	return nil
}
