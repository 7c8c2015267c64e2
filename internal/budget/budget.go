// Package budget implements the three-jar budgeting system: income is
// split across spend, save, and share jars by per-user ratios, and
// daily logging builds streaks, badges, and a financial health score.
package budget

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Jar identifies one of the three money jars.
type Jar string

const (
	JarSpend Jar = "spend"
	JarSave  Jar = "save"
	JarShare Jar = "share"
)

// AllJars returns the jars in display order.
func AllJars() []Jar {
	return []Jar{JarSpend, JarSave, JarShare}
}

// ValidJar reports whether j names a real jar.
func ValidJar(j Jar) bool {
	switch j {
	case JarSpend, JarSave, JarShare:
		return true
	}
	return false
}

var (
	ErrUnknownJar        = errors.New("unknown jar")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidRatios     = errors.New("ratios must sum to 100")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// LogEntry is one row of the budget log. Income is positive, expenses
// negative.
type LogEntry struct {
	ID     string
	UserID string
	Amount float64
	Jar    Jar
	Note   string
	TS     time.Time
}

// Overview is the current balance of each jar.
type Overview struct {
	Spend float64
	Save  float64
	Share float64
	Total float64
}

// Ratios is the percentage split applied to incoming money.
type Ratios struct {
	Spend float64
	Save  float64
	Share float64
}

// DefaultRatios returns the standard 60/30/10 split.
func DefaultRatios() Ratios {
	return Ratios{Spend: 60, Save: 30, Share: 10}
}

// Valid reports whether the ratios sum to 100 within tolerance.
func (r Ratios) Valid() bool {
	return math.Abs(r.Spend+r.Save+r.Share-100) <= 0.01
}

// Repo is the budget log storage the service needs.
type Repo interface {
	InsertLog(entry LogEntry) error
	JarBalance(userID string, jar Jar) (float64, error)
	RecentLogs(userID string, limit int) ([]LogEntry, error)
	// LogDates returns the distinct calendar dates with at least one
	// log entry, most recent first.
	LogDates(userID string) ([]time.Time, error)
}

// SettingsRepo stores per-user jar ratios.
type SettingsRepo interface {
	Ratios(userID string) (Ratios, error)
	SetRatios(userID string, r Ratios) error
}

// Service exposes the budgeting operations.
type Service struct {
	repo     Repo
	settings SettingsRepo
	now      func() time.Time
}

// NewService returns a budgeting service over the given storage.
func NewService(repo Repo, settings SettingsRepo) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

// AddIncome splits amount across the jars by the user's ratios and
// records one log entry per jar.
func (s *Service) AddIncome(userID string, amount float64, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ratios, err := s.settings.Ratios(userID)
	if err != nil {
		return fmt.Errorf("read ratios: %w", err)
	}

	splits := []struct {
		jar   Jar
		share float64
	}{
		{JarSpend, ratios.Spend},
		{JarSave, ratios.Save},
		{JarShare, ratios.Share},
	}
	ts := s.now()
	for _, sp := range splits {
		entry := LogEntry{
			ID:     uuid.NewString(),
			UserID: userID,
			Amount: amount * sp.share / 100,
			Jar:    sp.jar,
			Note:   "Income: " + note,
			TS:     ts,
		}
		if err := s.repo.InsertLog(entry); err != nil {
			return fmt.Errorf("log income to %s jar: %w", sp.jar, err)
		}
	}
	return nil
}

// AddExpense records a withdrawal from one jar. Spending more than the
// jar holds is refused.
func (s *Service) AddExpense(userID string, amount float64, jar Jar, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !ValidJar(jar) {
		return fmt.Errorf("%w: %q", ErrUnknownJar, jar)
	}

	balance, err := s.repo.JarBalance(userID, jar)
	if err != nil {
		return fmt.Errorf("read %s jar balance: %w", jar, err)
	}
	if balance < amount {
		return fmt.Errorf("%w: %s jar holds %.2f, need %.2f", ErrInsufficientFunds, jar, balance, amount)
	}

	entry := LogEntry{
		ID:     uuid.NewString(),
		UserID: userID,
		Amount: -amount,
		Jar:    jar,
		Note:   note,
		TS:     s.now(),
	}
	if err := s.repo.InsertLog(entry); err != nil {
		return fmt.Errorf("log expense: %w", err)
	}
	return nil
}

// Overview returns the current balance of every jar.
func (s *Service) Overview(userID string) (Overview, error) {
	var o Overview
	balances := map[Jar]*float64{
		JarSpend: &o.Spend,
		JarSave:  &o.Save,
		JarShare: &o.Share,
	}
	for _, jar := range AllJars() {
		b, err := s.repo.JarBalance(userID, jar)
		if err != nil {
			return Overview{}, fmt.Errorf("read %s jar balance: %w", jar, err)
		}
		*balances[jar] = b
	}
	o.Total = o.Spend + o.Save + o.Share
	return o, nil
}

// RecentTransactions returns the latest log entries, newest first.
func (s *Service) RecentTransactions(userID string, limit int) ([]LogEntry, error) {
	return s.repo.RecentLogs(userID, limit)
}

// CurrentStreak returns the length of the user's consecutive daily
// logging streak.
func (s *Service) CurrentStreak(userID string) (int, error) {
	dates, err := s.repo.LogDates(userID)
	if err != nil {
		return 0, fmt.Errorf("read log dates: %w", err)
	}
	return streakFrom(dates, s.now()), nil
}

// Ratios returns the user's current jar split.
func (s *Service) Ratios(userID string) (Ratios, error) {
	return s.settings.Ratios(userID)
}

// UpdateRatios stores a new jar split for the user.
func (s *Service) UpdateRatios(userID string, r Ratios) error {
	if !r.Valid() {
		return fmt.Errorf("%w: got %.1f", ErrInvalidRatios, r.Spend+r.Save+r.Share)
	}
	if err := s.settings.SetRatios(userID, r); err != nil {
		return fmt.Errorf("store ratios: %w", err)
	}
	return nil
}

// streakFrom counts consecutive logged days ending today or yesterday.
// dates must be distinct calendar dates, most recent first.
func streakFrom(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := truncateDay(now)
	first := truncateDay(dates[0])
	if !first.Equal(today) && !first.Equal(today.AddDate(0, 0, -1)) {
		return 0
	}

	anchor := first
	streak := 1
	for _, d := range dates[1:] {
		expected := anchor.AddDate(0, 0, -streak)
		if !truncateDay(d).Equal(expected) {
			break
		}
		streak++
	}
	return streak
}

// truncateDay normalizes to a UTC midnight carrying the calendar date,
// so dates from different locations compare by day.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
