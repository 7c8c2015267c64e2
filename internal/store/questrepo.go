package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/indiepilot/internal/quests"
)

// QuestRepo stores quest progress. It satisfies quests.Repo.
type QuestRepo struct {
	db *sql.DB
}

// QuestRepo returns a quest progress repository backed by this store.
func (s *Store) QuestRepo() *QuestRepo {
	return &QuestRepo{db: s.db}
}

// Progress returns the user's progress on one quest.
func (r *QuestRepo) Progress(userID, questID string) (quests.Progress, bool, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, quest_id, started_at, completed_at
		 FROM quest_progress WHERE user_id = ? AND quest_id = ?`,
		userID, questID,
	)
	p, err := scanProgress(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return quests.Progress{}, false, nil
	}
	if err != nil {
		return quests.Progress{}, false, fmt.Errorf("read quest progress: %w", err)
	}
	return p, true, nil
}

// InsertProgress records a newly started quest.
func (r *QuestRepo) InsertProgress(p quests.Progress) error {
	_, err := r.db.Exec(
		`INSERT INTO quest_progress (id, user_id, quest_id, started_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.UserID, p.QuestID, p.StartedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert quest progress: %w", err)
	}
	return nil
}

// MarkCompleted sets the completion time on a started quest.
func (r *QuestRepo) MarkCompleted(userID, questID string, at time.Time) error {
	res, err := r.db.Exec(
		`UPDATE quest_progress SET completed_at = ? WHERE user_id = ? AND quest_id = ?`,
		at.UTC().Format(timeFormat), userID, questID,
	)
	if err != nil {
		return fmt.Errorf("mark quest completed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no progress row for quest %s", questID)
	}
	return nil
}

// ListProgress returns all progress rows for the user.
func (r *QuestRepo) ListProgress(userID string) ([]quests.Progress, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, quest_id, started_at, completed_at
		 FROM quest_progress WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query quest progress: %w", err)
	}
	defer rows.Close()

	var list []quests.Progress
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan quest progress: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProgress(scan func(...any) error) (quests.Progress, error) {
	var p quests.Progress
	var started string
	var completed sql.NullString
	if err := scan(&p.ID, &p.UserID, &p.QuestID, &started, &completed); err != nil {
		return quests.Progress{}, err
	}

	var err error
	if p.StartedAt, err = time.Parse(timeFormat, started); err != nil {
		return quests.Progress{}, fmt.Errorf("parse started_at: %w", err)
	}
	if completed.Valid {
		if p.CompletedAt, err = time.Parse(timeFormat, completed.String); err != nil {
			return quests.Progress{}, fmt.Errorf("parse completed_at: %w", err)
		}
	}
	return p, nil
}
