package cmd

import (
	"fmt"

	"github.com/abhisek/indiepilot/internal/skillgraph"
	"github.com/spf13/cobra"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Start and complete life-skill quests",
}

var questStartCmd = &cobra.Command{
	Use:   "start <skill-id>",
	Short: "Start a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.quests.Start(d.userID, args[0]); err != nil {
			return err
		}
		sk, _ := skillgraph.GetSkill(args[0])
		fmt.Printf("Started %q. Worth %d XP when you finish.\n", sk.Title, sk.XP)
		return nil
	},
}

var questCompleteCmd = &cobra.Command{
	Use:   "complete <skill-id>",
	Short: "Complete a started quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.quests.Complete(d.userID, args[0]); err != nil {
			return err
		}
		sk, _ := skillgraph.GetSkill(args[0])
		fmt.Printf("Completed %q! +%d XP\n", sk.Title, sk.XP)
		return nil
	},
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show quests in progress and overall totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		inProgress, err := d.quests.InProgress(d.userID)
		if err != nil {
			return fmt.Errorf("list quests: %w", err)
		}
		summary, err := d.quests.Summary(d.userID)
		if err != nil {
			return fmt.Errorf("summarize quests: %w", err)
		}

		if len(inProgress) == 0 {
			fmt.Println("No quests in progress. Try: indiepilot skill next")
		} else {
			fmt.Println("In progress:")
			for _, p := range inProgress {
				sk, err := skillgraph.GetSkill(p.QuestID)
				if err != nil {
					continue
				}
				fmt.Printf("  %-34s  started %s\n", sk.Title, p.StartedAt.Format("Jan 02"))
			}
		}

		fmt.Printf("\nCompleted %d/%d (%.1f%%), %d XP earned\n",
			summary.CompletedQuests, summary.TotalQuests,
			summary.CompletionRate, summary.TotalXP)
		return nil
	},
}

func init() {
	questCmd.AddCommand(questStartCmd)
	questCmd.AddCommand(questCompleteCmd)
	questCmd.AddCommand(questListCmd)
}
