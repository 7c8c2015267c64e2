package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/indiepilot/internal/recommend"
	"github.com/abhisek/indiepilot/internal/skillgraph"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the life-skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var skills []skillgraph.Skill
		if category != "" {
			skills = skillgraph.ByCategory(skillgraph.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		} else {
			skills = skillgraph.AllSkills()
		}

		fmt.Printf("%-22s  %-34s  %-12s  %-10s  %5s\n",
			"ID", "Title", "Difficulty", "Category", "XP")
		fmt.Println(strings.Repeat("─", 92))

		for _, s := range skills {
			title := s.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			fmt.Printf("%-22s  %-34s  %-12s  %-10s  %5d\n",
				s.ID, title, skillgraph.DifficultyName(s.Difficulty),
				s.Category, s.XP)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the next skills to learn",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		completed, err := d.quests.CompletedIDs(d.userID)
		if err != nil {
			return fmt.Errorf("read completed quests: %w", err)
		}

		ranked := recommend.NextSkills(completed, limit)
		if len(ranked) == 0 {
			fmt.Println("Nothing left to learn. You finished the whole catalog!")
			return nil
		}

		fmt.Println("Recommended next skills:")
		for i, r := range ranked {
			fmt.Printf("%d. %-34s  unlocks %d skill(s), %d XP\n",
				i+1, r.Skill.Title, r.Coverage, r.Skill.XP)
		}
		return nil
	},
}

var skillPathCmd = &cobra.Command{
	Use:   "path <skill-id>",
	Short: "Show the shortest learning path to a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if _, err := skillgraph.GetSkill(target); err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		completed, err := d.quests.CompletedIDs(d.userID)
		if err != nil {
			return fmt.Errorf("read completed quests: %w", err)
		}

		if completed[target] {
			fmt.Println("Already completed.")
			return nil
		}

		path := skillgraph.PathTo(target, completed)
		if len(path) == 0 {
			fmt.Println("No path found.")
			return nil
		}

		fmt.Printf("Path to %q (%d step(s)):\n", target, len(path))
		for i, s := range path {
			fmt.Printf("%d. %s (%s, %d XP)\n",
				i+1, s.Title, skillgraph.DifficultyName(s.Difficulty), s.XP)
		}
		return nil
	},
}

var skillSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by title, description, or category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches := recommend.Search(args[0])
		if len(matches) == 0 {
			fmt.Println("No matching skills.")
			return nil
		}
		for _, s := range matches {
			fmt.Printf("%-22s  %s (%s)\n", s.ID, s.Title, s.Category)
		}
		return nil
	},
}

var skillStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress over the skill catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		completed, err := d.quests.CompletedIDs(d.userID)
		if err != nil {
			return fmt.Errorf("read completed quests: %w", err)
		}

		stats := recommend.SkillStats(completed)
		fmt.Printf("Skills:      %d/%d completed (%.1f%%)\n",
			stats.CompletedCount, stats.TotalSkills, stats.CompletionRate)
		fmt.Printf("Available:   %d ready to start\n", stats.AvailableCount)
		fmt.Println("Difficulty mix:")
		for diff := skillgraph.DifficultyBeginner; diff <= skillgraph.DifficultyAdvanced; diff++ {
			fmt.Printf("  %-13s %d\n", skillgraph.DifficultyName(diff), stats.DifficultyBreakdown[diff])
		}
		if len(stats.NextRecommendations) > 0 {
			fmt.Println("Up next:")
			for _, r := range stats.NextRecommendations {
				fmt.Printf("  %s\n", r.Skill.Title)
			}
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. household, finance)")
	skillNextCmd.Flags().IntP("limit", "n", 3, "How many recommendations to show")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillNextCmd)
	skillCmd.AddCommand(skillPathCmd)
	skillCmd.AddCommand(skillSearchCmd)
	skillCmd.AddCommand(skillStatsCmd)
}
