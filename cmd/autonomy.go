package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/indiepilot/internal/autonomy"
	"github.com/spf13/cobra"
)

var autonomyCmd = &cobra.Command{
	Use:   "autonomy",
	Short: "Track your Autonomy Index",
}

var autonomyIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Show the weighted Autonomy Index",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		index, err := d.engine.Index(d.userID)
		if err != nil {
			return err
		}
		fmt.Printf("◉ Autonomy Index: %.1f/100\n", index)
		return nil
	},
}

var autonomyScoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the four sub-scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		scores, err := d.engine.IndividualScores(d.userID)
		if err != nil {
			return err
		}
		fmt.Printf("Skills:     %.1f\n", scores.Skills)
		fmt.Printf("Budgeting:  %.1f\n", scores.Budgeting)
		fmt.Printf("Community:  %.1f\n", scores.Community)
		fmt.Printf("Judgment:   %.1f\n", scores.Judgment)
		return nil
	},
}

var autonomyInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show coaching insights per area",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		scores, err := d.engine.IndividualScores(d.userID)
		if err != nil {
			return err
		}
		for _, line := range autonomy.Insights(scores) {
			fmt.Println(line)
		}
		return nil
	},
}

var autonomyMilestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show the next milestone in each area",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		milestones, err := d.engine.Milestones(d.userID)
		if err != nil {
			return err
		}
		if len(milestones) == 0 {
			fmt.Println("All milestones reached. Impressive.")
			return nil
		}
		for _, m := range milestones {
			fmt.Printf("%-10s  %-34s  %d/%d  %s\n",
				m.Area, m.Label, m.Current, m.Target, m.Reward)
		}
		return nil
	},
}

var autonomyWeightsCmd = &cobra.Command{
	Use:   "weights [skills budgeting community judgment]",
	Short: "Show or set the index weights (must sum to 1.0)",
	Args:  cobra.RangeArgs(0, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if len(args) == 0 {
			w, err := d.store.SettingsRepo().Weights(d.userID)
			if err != nil {
				return err
			}
			fmt.Printf("Skills: %.2f  Budgeting: %.2f  Community: %.2f  Judgment: %.2f\n",
				w.Skills, w.Budgeting, w.Community, w.Judgment)
			return nil
		}
		if len(args) != 4 {
			return fmt.Errorf("provide all four weights: skills budgeting community judgment")
		}

		var vals [4]float64
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", a)
			}
			vals[i] = v
		}
		w := autonomy.Weights{
			Skills:    vals[0],
			Budgeting: vals[1],
			Community: vals[2],
			Judgment:  vals[3],
		}
		if err := d.engine.UpdateWeights(d.userID, w); err != nil {
			return err
		}
		fmt.Println("Weights updated.")
		return nil
	},
}

func init() {
	autonomyCmd.AddCommand(autonomyIndexCmd)
	autonomyCmd.AddCommand(autonomyScoresCmd)
	autonomyCmd.AddCommand(autonomyInsightsCmd)
	autonomyCmd.AddCommand(autonomyMilestonesCmd)
	autonomyCmd.AddCommand(autonomyWeightsCmd)
}
