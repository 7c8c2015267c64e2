package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/indiepilot/internal/budget"
)

// BudgetRepo stores the budget log. It satisfies budget.Repo.
type BudgetRepo struct {
	db *sql.DB
}

// BudgetRepo returns a budget log repository backed by this store.
func (s *Store) BudgetRepo() *BudgetRepo {
	return &BudgetRepo{db: s.db}
}

// InsertLog appends one entry to the budget log.
func (r *BudgetRepo) InsertLog(entry budget.LogEntry) error {
	_, err := r.db.Exec(
		`INSERT INTO budget_log (id, user_id, amount, jar, note, ts) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Amount, string(entry.Jar), entry.Note,
		entry.TS.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert budget log: %w", err)
	}
	return nil
}

// JarBalance sums the signed amounts logged for one jar.
func (r *BudgetRepo) JarBalance(userID string, jar budget.Jar) (float64, error) {
	var balance float64
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM budget_log WHERE user_id = ? AND jar = ?`,
		userID, string(jar),
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("sum %s jar: %w", jar, err)
	}
	return balance, nil
}

// RecentLogs returns the latest log entries, newest first.
func (r *BudgetRepo) RecentLogs(userID string, limit int) ([]budget.LogEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, amount, jar, note, ts
		 FROM budget_log WHERE user_id = ? ORDER BY ts DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query budget log: %w", err)
	}
	defer rows.Close()

	var entries []budget.LogEntry
	for rows.Next() {
		var e budget.LogEntry
		var jar, ts string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &jar, &e.Note, &ts); err != nil {
			return nil, fmt.Errorf("scan budget log: %w", err)
		}
		e.Jar = budget.Jar(jar)
		if e.TS, err = time.Parse(timeFormat, ts); err != nil {
			return nil, fmt.Errorf("parse log timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LogDates returns the distinct calendar dates with at least one log
// entry, most recent first.
func (r *BudgetRepo) LogDates(userID string) ([]time.Time, error) {
	rows, err := r.db.Query(
		`SELECT DISTINCT DATE(ts) FROM budget_log WHERE user_id = ? ORDER BY DATE(ts) DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query log dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan log date: %w", err)
		}
		d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse log date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
