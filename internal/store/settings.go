package store

import (
	"database/sql"
	"fmt"

	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/abhisek/indiepilot/internal/budget"
)

// SettingsRepo stores per-user jar ratios and autonomy weights. It
// satisfies budget.SettingsRepo and autonomy.SettingsStore.
type SettingsRepo struct {
	db *sql.DB
}

// SettingsRepo returns a settings repository backed by this store.
func (s *Store) SettingsRepo() *SettingsRepo {
	return &SettingsRepo{db: s.db}
}

// ensure inserts the default settings row for the user if missing.
func (r *SettingsRepo) ensure(userID string) error {
	_, err := r.db.Exec(`INSERT OR IGNORE INTO user_settings (user_id) VALUES (?)`, userID)
	if err != nil {
		return fmt.Errorf("ensure settings row: %w", err)
	}
	return nil
}

// Ratios returns the user's jar split, creating defaults on first use.
func (r *SettingsRepo) Ratios(userID string) (budget.Ratios, error) {
	if err := r.ensure(userID); err != nil {
		return budget.Ratios{}, err
	}
	var ratios budget.Ratios
	err := r.db.QueryRow(
		`SELECT spend_ratio, save_ratio, share_ratio FROM user_settings WHERE user_id = ?`,
		userID,
	).Scan(&ratios.Spend, &ratios.Save, &ratios.Share)
	if err != nil {
		return budget.Ratios{}, fmt.Errorf("read ratios: %w", err)
	}
	return ratios, nil
}

// SetRatios stores a new jar split for the user.
func (r *SettingsRepo) SetRatios(userID string, ratios budget.Ratios) error {
	if err := r.ensure(userID); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`UPDATE user_settings SET spend_ratio = ?, save_ratio = ?, share_ratio = ? WHERE user_id = ?`,
		ratios.Spend, ratios.Save, ratios.Share, userID,
	)
	if err != nil {
		return fmt.Errorf("update ratios: %w", err)
	}
	return nil
}

// Weights returns the user's autonomy weights, creating defaults on
// first use.
func (r *SettingsRepo) Weights(userID string) (autonomy.Weights, error) {
	if err := r.ensure(userID); err != nil {
		return autonomy.Weights{}, err
	}
	var w autonomy.Weights
	err := r.db.QueryRow(
		`SELECT skills_weight, budgeting_weight, community_weight, judgment_weight
		 FROM user_settings WHERE user_id = ?`,
		userID,
	).Scan(&w.Skills, &w.Budgeting, &w.Community, &w.Judgment)
	if err != nil {
		return autonomy.Weights{}, fmt.Errorf("read weights: %w", err)
	}
	return w, nil
}

// SetWeights stores new autonomy weights for the user.
func (r *SettingsRepo) SetWeights(userID string, w autonomy.Weights) error {
	if err := r.ensure(userID); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`UPDATE user_settings
		 SET skills_weight = ?, budgeting_weight = ?, community_weight = ?, judgment_weight = ?
		 WHERE user_id = ?`,
		w.Skills, w.Budgeting, w.Community, w.Judgment, userID,
	)
	if err != nil {
		return fmt.Errorf("update weights: %w", err)
	}
	return nil
}
