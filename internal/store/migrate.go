package store

import (
	"database/sql"
	"fmt"
	"time"
)

// timeFormat is how timestamps are stored in the database.
const timeFormat = time.RFC3339Nano

// migrate creates the schema. Idempotent; safe to run on every open.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_settings (
			user_id          TEXT PRIMARY KEY,
			spend_ratio      REAL NOT NULL DEFAULT 60.0,
			save_ratio       REAL NOT NULL DEFAULT 30.0,
			share_ratio      REAL NOT NULL DEFAULT 10.0,
			skills_weight    REAL NOT NULL DEFAULT 0.30,
			budgeting_weight REAL NOT NULL DEFAULT 0.30,
			community_weight REAL NOT NULL DEFAULT 0.15,
			judgment_weight  REAL NOT NULL DEFAULT 0.25
		)`,
		`CREATE TABLE IF NOT EXISTS quest_progress (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			quest_id     TEXT NOT NULL,
			started_at   TEXT NOT NULL,
			completed_at TEXT,
			UNIQUE (user_id, quest_id)
		)`,
		`CREATE TABLE IF NOT EXISTS budget_log (
			id      TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			amount  REAL NOT NULL,
			jar     TEXT NOT NULL,
			note    TEXT NOT NULL DEFAULT '',
			ts      TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS board_post (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			kind       TEXT NOT NULL,
			title      TEXT NOT NULL,
			detail     TEXT NOT NULL DEFAULT '',
			share_code TEXT NOT NULL UNIQUE,
			status     TEXT NOT NULL DEFAULT 'available',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS board_claim (
			id           TEXT PRIMARY KEY,
			post_id      TEXT NOT NULL REFERENCES board_post(id),
			user_id      TEXT NOT NULL,
			mock_contact TEXT NOT NULL,
			claimed_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sim_run (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			scenario_id TEXT NOT NULL,
			score       INTEGER NOT NULL,
			breakdown   TEXT NOT NULL,
			ran_at      TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_budget_log_user ON budget_log(user_id, ts)`,
		`CREATE INDEX IF NOT EXISTS idx_sim_run_user ON sim_run(user_id, ran_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// seedDemoPosts inserts the sample board posts shown to new users.
// Existing rows are left alone.
func seedDemoPosts(db *sql.DB) error {
	posts := []struct {
		id, userID, kind, title, detail, shareCode string
	}{
		{
			id:        "post_study_1",
			userID:    "demo_user_1",
			kind:      "study",
			title:     "Math Study Group",
			detail:    "Looking for study partners for Algebra 2. Meet at library 3-5pm weekdays.",
			shareCode: "STDY-A9F4",
		},
		{
			id:        "post_carpool_1",
			userID:    "demo_user_2",
			kind:      "carpool",
			title:     "School Carpool",
			detail:    "Need ride to school from downtown area. Can contribute to gas.",
			shareCode: "CARP-B7E2",
		},
		{
			id:        "post_swap_1",
			userID:    "demo_user_3",
			kind:      "swap",
			title:     "Guitar Lessons for Math Help",
			detail:    "I can teach guitar basics in exchange for math tutoring.",
			shareCode: "SWAP-C3D8",
		},
	}
	now := time.Now().UTC().Format(timeFormat)
	for _, p := range posts {
		_, err := db.Exec(`INSERT OR IGNORE INTO board_post
			(id, user_id, kind, title, detail, share_code, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, 'available', ?)`,
			p.id, p.userID, p.kind, p.title, p.detail, p.shareCode, now)
		if err != nil {
			return fmt.Errorf("seed post %s: %w", p.id, err)
		}
	}
	return nil
}
