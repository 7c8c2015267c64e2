package cmd

import (
	"github.com/abhisek/indiepilot/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "indiepilot",
	Short: "Offline life-skills coach for teens",
	Long:  "IndiePilot — terminal coach that helps teens (13-18) build real-world independence: life-skill quests, budget jars, decision practice, and an autonomy score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INDIEPILOT_DB env var)")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(autonomyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INDIEPILOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
