package quests

import (
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	progress []Progress
}

func (f *fakeRepo) Progress(userID, questID string) (Progress, bool, error) {
	for _, p := range f.progress {
		if p.UserID == userID && p.QuestID == questID {
			return p, true, nil
		}
	}
	return Progress{}, false, nil
}

func (f *fakeRepo) InsertProgress(p Progress) error {
	f.progress = append(f.progress, p)
	return nil
}

func (f *fakeRepo) MarkCompleted(userID, questID string, at time.Time) error {
	for i, p := range f.progress {
		if p.UserID == userID && p.QuestID == questID {
			f.progress[i].CompletedAt = at
			return nil
		}
	}
	return errors.New("no such progress row")
}

func (f *fakeRepo) ListProgress(userID string) ([]Progress, error) {
	var out []Progress
	for _, p := range f.progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestStartQuest(t *testing.T) {
	s := NewService(&fakeRepo{})

	if err := s.Start("u1", "basic_laundry"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if err := s.Start("u1", "basic_laundry"); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
	if err := s.Start("u1", "underwater_basket_weaving"); !errors.Is(err, ErrUnknownQuest) {
		t.Errorf("unknown quest error = %v, want ErrUnknownQuest", err)
	}
}

func TestCompleteQuest(t *testing.T) {
	s := NewService(&fakeRepo{})

	if err := s.Complete("u1", "basic_laundry"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Complete before Start error = %v, want ErrNotStarted", err)
	}

	if err := s.Start("u1", "basic_laundry"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := s.Complete("u1", "basic_laundry"); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if err := s.Complete("u1", "basic_laundry"); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("second Complete() error = %v, want ErrAlreadyCompleted", err)
	}

	done, err := s.CompletedIDs("u1")
	if err != nil {
		t.Fatalf("CompletedIDs() error: %v", err)
	}
	if !done["basic_laundry"] {
		t.Error("basic_laundry not in completed set")
	}
}

func TestSummary(t *testing.T) {
	s := NewService(&fakeRepo{})

	for _, id := range []string{"basic_laundry", "meal_planning", "time_management"} {
		if err := s.Start("u1", id); err != nil {
			t.Fatalf("Start(%s) error: %v", id, err)
		}
	}
	for _, id := range []string{"basic_laundry", "meal_planning"} {
		if err := s.Complete("u1", id); err != nil {
			t.Fatalf("Complete(%s) error: %v", id, err)
		}
	}

	sum, err := s.Summary("u1")
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if sum.TotalQuests != 15 {
		t.Errorf("TotalQuests = %d, want 15", sum.TotalQuests)
	}
	if sum.StartedQuests != 3 {
		t.Errorf("StartedQuests = %d, want 3", sum.StartedQuests)
	}
	if sum.CompletedQuests != 2 {
		t.Errorf("CompletedQuests = %d, want 2", sum.CompletedQuests)
	}
	if sum.TotalXP <= 0 {
		t.Errorf("TotalXP = %d, want > 0", sum.TotalXP)
	}
	wantRate := 2.0 / 15.0 * 100
	if sum.CompletionRate != wantRate {
		t.Errorf("CompletionRate = %v, want %v", sum.CompletionRate, wantRate)
	}

	count, err := s.CompletedQuestCount("u1")
	if err != nil {
		t.Fatalf("CompletedQuestCount() error: %v", err)
	}
	if count != 2 {
		t.Errorf("CompletedQuestCount = %d, want 2", count)
	}
}

func TestInProgress(t *testing.T) {
	s := NewService(&fakeRepo{})
	times := []time.Time{
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	i := 0
	s.now = func() time.Time {
		t := times[i%len(times)]
		i++
		return t
	}

	if err := s.Start("u1", "basic_laundry"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := s.Start("u1", "meal_planning"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	open, err := s.InProgress("u1")
	if err != nil {
		t.Fatalf("InProgress() error: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("len(InProgress) = %d, want 2", len(open))
	}
	if open[0].QuestID != "meal_planning" {
		t.Errorf("most recent quest = %s, want meal_planning", open[0].QuestID)
	}
}
