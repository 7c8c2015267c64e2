package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/indiepilot/internal/sim"
)

// Run is one recorded simulation run.
type Run struct {
	ID         string
	UserID     string
	ScenarioID string
	Score      int
	Breakdown  map[sim.Category]int
	RanAt      time.Time
}

// SimRepo stores simulation runs. It satisfies autonomy.SimReader.
type SimRepo struct {
	db *sql.DB
}

// SimRepo returns a simulation run repository backed by this store.
func (s *Store) SimRepo() *SimRepo {
	return &SimRepo{db: s.db}
}

// SaveRun records a finished simulation run.
func (r *SimRepo) SaveRun(userID, scenarioID string, result sim.Result) error {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("encode breakdown: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO sim_run (id, user_id, scenario_id, score, breakdown, ran_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, scenarioID, result.Overall, string(breakdown),
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert sim run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest runs, newest first.
func (r *SimRepo) RecentRuns(userID string, limit int) ([]Run, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, scenario_id, score, breakdown, ran_at
		 FROM sim_run WHERE user_id = ? ORDER BY ran_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sim runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var breakdown, ranAt string
		if err := rows.Scan(&run.ID, &run.UserID, &run.ScenarioID, &run.Score, &breakdown, &ranAt); err != nil {
			return nil, fmt.Errorf("scan sim run: %w", err)
		}
		if err := json.Unmarshal([]byte(breakdown), &run.Breakdown); err != nil {
			return nil, fmt.Errorf("decode breakdown: %w", err)
		}
		if run.RanAt, err = time.Parse(timeFormat, ranAt); err != nil {
			return nil, fmt.Errorf("parse ran_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RecentScores returns the latest run scores, newest first.
func (r *SimRepo) RecentScores(userID string, limit int) ([]int, error) {
	runs, err := r.RecentRuns(userID, limit)
	if err != nil {
		return nil, err
	}
	scores := make([]int, len(runs))
	for i, run := range runs {
		scores[i] = run.Score
	}
	return scores, nil
}

// ScenarioCount pairs a scenario with how often it has been run.
type ScenarioCount struct {
	ScenarioID string
	Runs       int
}

// RunStats aggregates a user's run history.
type RunStats struct {
	TotalRuns    int
	AverageScore float64
	ByScenario   []ScenarioCount
}

// Stats summarizes all recorded runs, scenarios ordered most-run first.
func (r *SimRepo) Stats(userID string) (RunStats, error) {
	var stats RunStats
	var avg sql.NullFloat64
	err := r.db.QueryRow(
		`SELECT COUNT(*), AVG(score) FROM sim_run WHERE user_id = ?`, userID,
	).Scan(&stats.TotalRuns, &avg)
	if err != nil {
		return RunStats{}, fmt.Errorf("aggregate sim runs: %w", err)
	}
	stats.AverageScore = avg.Float64

	rows, err := r.db.Query(
		`SELECT scenario_id, COUNT(*) AS n FROM sim_run
		 WHERE user_id = ? GROUP BY scenario_id ORDER BY n DESC, scenario_id`,
		userID,
	)
	if err != nil {
		return RunStats{}, fmt.Errorf("group sim runs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc ScenarioCount
		if err := rows.Scan(&sc.ScenarioID, &sc.Runs); err != nil {
			return RunStats{}, fmt.Errorf("scan scenario count: %w", err)
		}
		stats.ByScenario = append(stats.ByScenario, sc)
	}
	return stats, rows.Err()
}

// RunCount reports how many runs the user has recorded.
func (r *SimRepo) RunCount(userID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sim_run WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sim runs: %w", err)
	}
	return n, nil
}
