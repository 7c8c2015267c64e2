package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/indiepilot/internal/sim"
	"github.com/spf13/cobra"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Practice decisions in the simulator",
}

var simListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios, err := scenariosFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-22s  %-28s  %5s  %s\n", "ID", "Title", "Steps", "Time")
		fmt.Println(strings.Repeat("─", 70))
		for _, sc := range scenarios {
			fmt.Printf("%-22s  %-28s  %5d  ~%d min\n",
				sc.ID, sc.Title, len(sc.Steps), sc.EstMinutes)
		}
		return nil
	},
}

var simRunCmd = &cobra.Command{
	Use:   "run <scenario-id>",
	Short: "Run a scenario interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios, err := scenariosFrom(cmd)
		if err != nil {
			return err
		}
		var scenario sim.Scenario
		found := false
		for _, sc := range scenarios {
			if sc.ID == args[0] {
				scenario = sc
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("scenario not found: %q", args[0])
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		fmt.Printf("=== %s ===\n%s\n", scenario.Title, scenario.Description)

		choices, err := promptChoices(scenario)
		if err != nil {
			return err
		}

		result := sim.Score(scenario, choices)
		fmt.Printf("\nScore: %d/100\n", result.Overall)
		for _, cat := range sim.AllCategories() {
			fmt.Printf("  %-12s %d\n", cat, result.Breakdown[cat])
		}
		fmt.Println()
		fmt.Println(sim.Debrief(scenario.ID, result.Overall))

		if err := d.runs.SaveRun(d.userID, scenario.ID, result); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		return nil
	},
}

var simStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.runs.Stats(d.userID)
		if err != nil {
			return err
		}
		if stats.TotalRuns == 0 {
			fmt.Println("No runs yet. Try: indiepilot sim run <scenario-id>")
			return nil
		}

		fmt.Printf("Runs: %d\n", stats.TotalRuns)
		fmt.Printf("Average score: %.1f/100\n", stats.AverageScore)
		fmt.Println("\nMost practiced:")
		for _, sc := range stats.ByScenario {
			title := sc.ScenarioID
			if scenario, ok := sim.GetScenario(sc.ScenarioID); ok {
				title = scenario.Title
			}
			fmt.Printf("  %-28s %d run(s)\n", title, sc.Runs)
		}
		return nil
	},
}

var simPackCmd = &cobra.Command{
	Use:   "pack <file>",
	Short: "Validate a custom scenario pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := sim.LoadPack(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Pack OK: %d scenario(s)\n", len(pack.Scenarios))
		for _, sc := range pack.Scenarios {
			fmt.Printf("  %-22s  %s (%d steps)\n", sc.ID, sc.Title, len(sc.Steps))
		}
		return nil
	},
}

// scenariosFrom returns the built-in scenarios plus any loaded from the
// --pack flag.
func scenariosFrom(cmd *cobra.Command) ([]sim.Scenario, error) {
	scenarios := sim.Scenarios()
	packPath, _ := cmd.Flags().GetString("pack")
	if packPath == "" {
		return scenarios, nil
	}
	pack, err := sim.LoadPack(packPath)
	if err != nil {
		return nil, fmt.Errorf("load pack: %w", err)
	}
	return append(scenarios, pack.Scenarios...), nil
}

// promptChoices walks the user through each step on stdin and returns
// the picked choices.
func promptChoices(scenario sim.Scenario) ([]sim.Choice, error) {
	reader := bufio.NewReader(os.Stdin)
	var choices []sim.Choice

	for i, step := range scenario.Steps {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(scenario.Steps), step.Question)
		for j, c := range step.Choices {
			fmt.Printf("  %d. %s\n", j+1, c.Text)
		}

		for {
			fmt.Printf("Choice [1-%d]: ", len(step.Choices))
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("read choice: %w", err)
			}
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || n < 1 || n > len(step.Choices) {
				fmt.Println("Pick one of the numbers above.")
				continue
			}
			choices = append(choices, step.Choices[n-1])
			break
		}
	}
	return choices, nil
}

func init() {
	simListCmd.Flags().String("pack", "", "Also load scenarios from a custom pack file")
	simRunCmd.Flags().String("pack", "", "Also load scenarios from a custom pack file")

	simCmd.AddCommand(simListCmd)
	simCmd.AddCommand(simRunCmd)
	simCmd.AddCommand(simStatsCmd)
	simCmd.AddCommand(simPackCmd)
}
