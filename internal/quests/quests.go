// Package quests tracks progress through the life-skill catalog.
// Quests share the skill graph's identifier space: starting and
// completing a quest is what unlocks dependent skills.
package quests

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/indiepilot/internal/skillgraph"
)

var (
	ErrUnknownQuest     = errors.New("unknown quest")
	ErrAlreadyStarted   = errors.New("quest already started")
	ErrNotStarted       = errors.New("quest not started")
	ErrAlreadyCompleted = errors.New("quest already completed")
)

// Progress is one user's state on one quest.
type Progress struct {
	ID          string
	UserID      string
	QuestID     string
	StartedAt   time.Time
	CompletedAt time.Time // zero while in progress
}

// Completed reports whether the quest has been finished.
func (p Progress) Completed() bool {
	return !p.CompletedAt.IsZero()
}

// Repo is the quest progress storage the service needs.
type Repo interface {
	Progress(userID, questID string) (Progress, bool, error)
	InsertProgress(p Progress) error
	MarkCompleted(userID, questID string, at time.Time) error
	ListProgress(userID string) ([]Progress, error)
}

// Summary is a user's overall quest progress.
type Summary struct {
	TotalQuests     int
	StartedQuests   int
	CompletedQuests int
	TotalXP         int
	CompletionRate  float64
}

// Service exposes quest operations.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService returns a quest service over the given storage.
func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Start begins a quest. Unknown quests and quests already started are
// refused.
func (s *Service) Start(userID, questID string) error {
	if _, err := skillgraph.GetSkill(questID); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuest, questID)
	}

	if _, exists, err := s.repo.Progress(userID, questID); err != nil {
		return fmt.Errorf("read progress: %w", err)
	} else if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, questID)
	}

	p := Progress{
		ID:        uuid.NewString(),
		UserID:    userID,
		QuestID:   questID,
		StartedAt: s.now(),
	}
	if err := s.repo.InsertProgress(p); err != nil {
		return fmt.Errorf("start quest: %w", err)
	}
	return nil
}

// Complete finishes a started quest.
func (s *Service) Complete(userID, questID string) error {
	p, exists, err := s.repo.Progress(userID, questID)
	if err != nil {
		return fmt.Errorf("read progress: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotStarted, questID)
	}
	if p.Completed() {
		return fmt.Errorf("%w: %s", ErrAlreadyCompleted, questID)
	}

	if err := s.repo.MarkCompleted(userID, questID, s.now()); err != nil {
		return fmt.Errorf("complete quest: %w", err)
	}
	return nil
}

// CompletedIDs returns the set of completed quest ids, in the form the
// skill graph consumes.
func (s *Service) CompletedIDs(userID string) (map[string]bool, error) {
	list, err := s.repo.ListProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	completed := make(map[string]bool)
	for _, p := range list {
		if p.Completed() {
			completed[p.QuestID] = true
		}
	}
	return completed, nil
}

// CompletedQuestCount reports how many quests the user has finished.
func (s *Service) CompletedQuestCount(userID string) (int, error) {
	completed, err := s.CompletedIDs(userID)
	if err != nil {
		return 0, err
	}
	return len(completed), nil
}

// InProgress returns started but unfinished quests, most recent first.
func (s *Service) InProgress(userID string) ([]Progress, error) {
	list, err := s.repo.ListProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	var open []Progress
	for _, p := range list {
		if !p.Completed() {
			open = append(open, p)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].StartedAt.After(open[j].StartedAt)
	})
	return open, nil
}

// Summary computes the user's overall quest progress, including XP
// earned from completed quests.
func (s *Service) Summary(userID string) (Summary, error) {
	list, err := s.repo.ListProgress(userID)
	if err != nil {
		return Summary{}, fmt.Errorf("list progress: %w", err)
	}

	sum := Summary{TotalQuests: len(skillgraph.AllSkills())}
	for _, p := range list {
		sum.StartedQuests++
		if !p.Completed() {
			continue
		}
		sum.CompletedQuests++
		if skill, err := skillgraph.GetSkill(p.QuestID); err == nil {
			sum.TotalXP += skill.XP
		}
	}
	if sum.TotalQuests > 0 {
		sum.CompletionRate = float64(sum.CompletedQuests) / float64(sum.TotalQuests) * 100
	}
	return sum, nil
}
