package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/indiepilot/internal/budget"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the spend/save/share jars",
}

var budgetOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show jar balances and money health",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		overview, err := d.budget.Overview(d.userID)
		if err != nil {
			return err
		}
		health, err := d.budget.HealthScore(d.userID)
		if err != nil {
			return err
		}
		streak, err := d.budget.CurrentStreak(d.userID)
		if err != nil {
			return err
		}

		fmt.Printf("Spend:  $%.2f\n", overview.Spend)
		fmt.Printf("Save:   $%.2f\n", overview.Save)
		fmt.Printf("Share:  $%.2f\n", overview.Share)
		fmt.Printf("Total:  $%.2f\n", overview.Total)
		fmt.Printf("\nMoney health: %.0f/100   Streak: %d day(s)\n", health, streak)
		return nil
	},
}

var budgetIncomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Log income, split across jars by your ratios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		note, _ := cmd.Flags().GetString("note")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.budget.AddIncome(d.userID, amount, note); err != nil {
			return err
		}

		ratios, err := d.budget.Ratios(d.userID)
		if err != nil {
			return err
		}
		fmt.Printf("Logged $%.2f income: $%.2f spend / $%.2f save / $%.2f share\n",
			amount,
			amount*ratios.Spend/100,
			amount*ratios.Save/100,
			amount*ratios.Share/100)
		return nil
	},
}

var budgetExpenseCmd = &cobra.Command{
	Use:   "expense <amount>",
	Short: "Log an expense from a jar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		jar, _ := cmd.Flags().GetString("jar")
		note, _ := cmd.Flags().GetString("note")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.budget.AddExpense(d.userID, amount, budget.Jar(jar), note); err != nil {
			return err
		}
		fmt.Printf("Logged $%.2f expense from %s\n", amount, jar)
		return nil
	},
}

var budgetStreakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the daily logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		streak, err := d.budget.CurrentStreak(d.userID)
		if err != nil {
			return err
		}
		if streak == 0 {
			fmt.Println("No streak yet. Log something today to start one.")
			return nil
		}
		fmt.Printf("🔥 %d day(s) and counting\n", streak)
		return nil
	},
}

var budgetBadgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		badges, err := d.budget.Badges(d.userID)
		if err != nil {
			return err
		}
		if len(badges) == 0 {
			fmt.Println("No badges yet. Log your first transaction to earn one.")
			return nil
		}
		for _, b := range badges {
			fmt.Printf("🏅 %-16s %s\n", b.Name, b.Description)
		}
		return nil
	},
}

var budgetRatiosCmd = &cobra.Command{
	Use:   "ratios [spend save share]",
	Short: "Show or set the income split (must sum to 100)",
	Args:  cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if len(args) == 0 {
			ratios, err := d.budget.Ratios(d.userID)
			if err != nil {
				return err
			}
			fmt.Printf("Split: %.0f%% spend / %.0f%% save / %.0f%% share\n",
				ratios.Spend, ratios.Save, ratios.Share)
			return nil
		}
		if len(args) != 3 {
			return fmt.Errorf("provide all three values: spend save share")
		}

		var vals [3]float64
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid percentage %q", a)
			}
			vals[i] = v
		}
		r := budget.Ratios{Spend: vals[0], Save: vals[1], Share: vals[2]}
		if err := d.budget.UpdateRatios(d.userID, r); err != nil {
			return err
		}
		fmt.Printf("Split updated: %.0f/%.0f/%.0f\n", r.Spend, r.Save, r.Share)
		return nil
	},
}

var budgetLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		entries, err := d.budget.RecentTransactions(d.userID, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No transactions yet.")
			return nil
		}
		for _, e := range entries {
			note := e.Note
			if note == "" {
				note = "(no note)"
			}
			fmt.Printf("%s  %+9.2f  %-5s  %s\n",
				e.TS.Format("2006-01-02"), e.Amount, e.Jar, note)
		}
		return nil
	},
}

func init() {
	budgetIncomeCmd.Flags().StringP("note", "n", "", "What the money is from")
	budgetExpenseCmd.Flags().String("jar", "spend", "Jar to take the money from (spend, save, share)")
	budgetExpenseCmd.Flags().StringP("note", "n", "", "What the money was for")
	budgetLogCmd.Flags().Int("limit", 10, "How many entries to show")

	budgetCmd.AddCommand(budgetOverviewCmd)
	budgetCmd.AddCommand(budgetIncomeCmd)
	budgetCmd.AddCommand(budgetExpenseCmd)
	budgetCmd.AddCommand(budgetStreakCmd)
	budgetCmd.AddCommand(budgetBadgesCmd)
	budgetCmd.AddCommand(budgetRatiosCmd)
	budgetCmd.AddCommand(budgetLogCmd)
}
