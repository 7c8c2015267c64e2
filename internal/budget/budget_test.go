package budget

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

type fakeRepo struct {
	logs   []LogEntry
	ratios Ratios
}

func (f *fakeRepo) InsertLog(entry LogEntry) error {
	f.logs = append(f.logs, entry)
	return nil
}

func (f *fakeRepo) JarBalance(userID string, jar Jar) (float64, error) {
	var sum float64
	for _, l := range f.logs {
		if l.UserID == userID && l.Jar == jar {
			sum += l.Amount
		}
	}
	return sum, nil
}

func (f *fakeRepo) RecentLogs(userID string, limit int) ([]LogEntry, error) {
	var out []LogEntry
	for i := len(f.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if f.logs[i].UserID == userID {
			out = append(out, f.logs[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) LogDates(userID string) ([]time.Time, error) {
	seen := map[string]time.Time{}
	for _, l := range f.logs {
		if l.UserID == userID {
			seen[l.TS.Format("2006-01-02")] = truncateDay(l.TS)
		}
	}
	var dates []time.Time
	for _, d := range seen {
		dates = append(dates, d)
	}
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			if dates[j].After(dates[i]) {
				dates[i], dates[j] = dates[j], dates[i]
			}
		}
	}
	return dates, nil
}

func (f *fakeRepo) Ratios(string) (Ratios, error) {
	if f.ratios == (Ratios{}) {
		return DefaultRatios(), nil
	}
	return f.ratios, nil
}

func (f *fakeRepo) SetRatios(_ string, r Ratios) error {
	f.ratios = r
	return nil
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	s := NewService(repo, repo)
	s.now = func() time.Time { return now }
	return s
}

func TestAddIncomeSplitsByRatios(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	if err := s.AddIncome("u1", 100, "allowance"); err != nil {
		t.Fatalf("AddIncome() error: %v", err)
	}
	if got, want := len(repo.logs), 3; got != want {
		t.Fatalf("logged %d entries, want %d", got, want)
	}

	wantAmounts := map[Jar]float64{JarSpend: 60, JarSave: 30, JarShare: 10}
	for _, entry := range repo.logs {
		if want := wantAmounts[entry.Jar]; entry.Amount != want {
			t.Errorf("%s jar amount = %v, want %v", entry.Jar, entry.Amount, want)
		}
		if !strings.HasPrefix(entry.Note, "Income: ") {
			t.Errorf("note = %q, want Income: prefix", entry.Note)
		}
		if entry.ID == "" {
			t.Error("entry has empty id")
		}
	}

	overview, err := s.Overview("u1")
	if err != nil {
		t.Fatalf("Overview() error: %v", err)
	}
	if overview.Total != 100 {
		t.Errorf("Total = %v, want 100", overview.Total)
	}
}

func TestAddExpense(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	if err := s.AddIncome("u1", 100, "allowance"); err != nil {
		t.Fatalf("AddIncome() error: %v", err)
	}

	if err := s.AddExpense("u1", 25, JarSpend, "bus pass"); err != nil {
		t.Fatalf("AddExpense() error: %v", err)
	}
	balance, _ := repo.JarBalance("u1", JarSpend)
	if balance != 35 {
		t.Errorf("spend balance = %v, want 35", balance)
	}

	err := s.AddExpense("u1", 500, JarSpend, "gaming rig")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overdraw error = %v, want ErrInsufficientFunds", err)
	}
	if balance, _ := repo.JarBalance("u1", JarSpend); balance != 35 {
		t.Errorf("refused expense changed balance to %v", balance)
	}

	if err := s.AddExpense("u1", 5, Jar("crypto"), "?"); !errors.Is(err, ErrUnknownJar) {
		t.Errorf("unknown jar error = %v, want ErrUnknownJar", err)
	}
	if err := s.AddExpense("u1", -5, JarSpend, "?"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}
}

func TestStreakFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no logs", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"yesterday only", []time.Time{day(-1)}, 1},
		{"today and yesterday", []time.Time{day(0), day(-1)}, 2},
		{"five consecutive", []time.Time{day(0), day(-1), day(-2), day(-3), day(-4)}, 5},
		{"anchored at yesterday", []time.Time{day(-1), day(-2), day(-3)}, 3},
		{"gap breaks streak", []time.Time{day(0), day(-2), day(-3)}, 1},
		{"stale logs", []time.Time{day(-3), day(-4)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streakFrom(tc.dates, now); got != tc.want {
				t.Errorf("streakFrom() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHealthScore(t *testing.T) {
	cases := []struct {
		name   string
		o      Overview
		streak int
		want   float64
	}{
		{"no money", Overview{}, 5, 0},
		{"heavy spender", Overview{Spend: 100, Total: 100}, 0, 0},
		{"modest saver", Overview{Spend: 70, Save: 20, Share: 10, Total: 100}, 0, 49},
		{"strong saver capped", Overview{Spend: 30, Save: 60, Share: 10, Total: 100}, 3, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := healthScore(tc.o, tc.streak)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("healthScore(%+v, %d) = %v, want %v", tc.o, tc.streak, got, tc.want)
			}
		})
	}
}

func TestEarnedBadges(t *testing.T) {
	none := earnedBadges(false, 0, Overview{})
	if len(none) != 0 {
		t.Errorf("new user earned %d badges, want 0", len(none))
	}

	first := earnedBadges(true, 1, Overview{Spend: 6, Save: 3, Share: 1, Total: 10})
	if len(first) != 1 || first[0].ID != "first_log" {
		t.Errorf("first log badges = %+v, want [first_log]", first)
	}

	all := earnedBadges(true, 30, Overview{Spend: 100, Save: 150, Share: 60, Total: 310})
	if len(all) != 5 {
		t.Errorf("veteran earned %d badges, want 5", len(all))
	}
}

func TestUpdateRatios(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, time.Now())

	valid := Ratios{Spend: 50, Save: 40, Share: 10}
	if err := s.UpdateRatios("u1", valid); err != nil {
		t.Fatalf("UpdateRatios(valid) error: %v", err)
	}
	if repo.ratios != valid {
		t.Errorf("stored ratios = %+v, want %+v", repo.ratios, valid)
	}

	err := s.UpdateRatios("u1", Ratios{Spend: 50, Save: 40, Share: 20})
	if !errors.Is(err, ErrInvalidRatios) {
		t.Errorf("UpdateRatios(invalid) error = %v, want ErrInvalidRatios", err)
	}
	if repo.ratios != valid {
		t.Errorf("rejected update mutated ratios: %+v", repo.ratios)
	}
}
