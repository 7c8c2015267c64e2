package cmd

import (
	"fmt"

	"github.com/abhisek/indiepilot/internal/app"
	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/abhisek/indiepilot/internal/board"
	"github.com/abhisek/indiepilot/internal/budget"
	"github.com/abhisek/indiepilot/internal/quests"
	"github.com/abhisek/indiepilot/internal/store"
	"github.com/spf13/cobra"
)

// deps is the wired-up service graph every command works against.
type deps struct {
	store  *store.Store
	userID string

	quests *quests.Service
	budget *budget.Service
	board  *board.Service
	engine *autonomy.Engine
	runs   *store.SimRepo
}

// openDeps opens the store and builds all services.
func openDeps(cmd *cobra.Command) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	settings := st.SettingsRepo()
	questSvc := quests.NewService(st.QuestRepo())
	budgetSvc := budget.NewService(st.BudgetRepo(), settings)
	boardSvc := board.NewService(st.BoardRepo())
	runs := st.SimRepo()

	engine := autonomy.NewEngine(
		questSvc,
		budgetReader{svc: budgetSvc},
		boardSvc,
		runs,
		settings,
	)

	return &deps{
		store:  st,
		userID: store.DefaultUserID,
		quests: questSvc,
		budget: budgetSvc,
		board:  boardSvc,
		engine: engine,
		runs:   runs,
	}, nil
}

func (d *deps) Close() error {
	return d.store.Close()
}

// budgetReader adapts the budget service to the autonomy engine's view.
type budgetReader struct {
	svc *budget.Service
}

func (b budgetReader) BudgetStats(userID string) (autonomy.BudgetStats, error) {
	overview, err := b.svc.Overview(userID)
	if err != nil {
		return autonomy.BudgetStats{}, err
	}
	streak, err := b.svc.CurrentStreak(userID)
	if err != nil {
		return autonomy.BudgetStats{}, err
	}
	health, err := b.svc.HealthScore(userID)
	if err != nil {
		return autonomy.BudgetStats{}, err
	}
	return autonomy.BudgetStats{
		Total:  overview.Total,
		Spend:  overview.Spend,
		Streak: streak,
		Health: health,
	}, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Services{
		UserID: d.userID,
		Quests: d.quests,
		Budget: d.budget,
		Engine: d.engine,
		Runs:   d.runs,
	})
}
