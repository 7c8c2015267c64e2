package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/indiepilot/internal/board"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Share and claim on the youth board",
}

var boardPostCmd = &cobra.Command{
	Use:   "post <kind> <title> [detail]",
	Short: "Create a post (kind: study, carpool, or swap)",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := board.Kind(args[0])
		title := args[1]
		detail := ""
		if len(args) == 3 {
			detail = args[2]
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		code, err := d.board.CreatePost(d.userID, kind, title, detail)
		if err != nil {
			return err
		}
		fmt.Printf("Posted! Share code: %s\n", code)
		return nil
	},
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		all, _ := cmd.Flags().GetBool("all")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		status := board.StatusAvailable
		if all {
			status = ""
		}
		posts, err := d.board.Posts(board.Kind(kind), status)
		if err != nil {
			return err
		}
		printPosts(posts)
		return nil
	},
}

var boardClaimCmd = &cobra.Command{
	Use:   "claim <share-code>",
	Short: "Claim a post by its share code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		post, ok, err := d.board.PostByShareCode(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no post with share code %q", args[0])
		}

		contact, err := d.board.ClaimPost(d.userID, post.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Claimed %q. Your contact:\n", post.Title)
		fmt.Printf("  %s (%s grade, %s)\n", contact.Name, contact.Grade, contact.School)
		fmt.Printf("  %s\n", contact.Email)
		fmt.Printf("  Available: %s\n", contact.Availability)
		return nil
	},
}

var boardMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your posts and claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		posts, err := d.board.MyPosts(d.userID)
		if err != nil {
			return err
		}
		claims, err := d.board.MyClaims(d.userID)
		if err != nil {
			return err
		}

		if len(posts) == 0 && len(claims) == 0 {
			fmt.Println("Nothing yet. Try: indiepilot board post study \"Math study group\"")
			return nil
		}
		if len(posts) > 0 {
			fmt.Println("Your posts:")
			printPosts(posts)
		}
		if len(claims) > 0 {
			fmt.Println("Your claims:")
			for _, c := range claims {
				fmt.Printf("  %s  claimed %s, contact %s\n",
					c.PostID, c.ClaimedAt.Format("Jan 02"), c.Contact.Name)
			}
		}
		return nil
	},
}

var boardSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search posts by title or detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		posts, err := d.board.Search(args[0])
		if err != nil {
			return err
		}
		printPosts(posts)
		return nil
	},
}

var boardStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show board activity totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.board.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("Posts:     %d total, %d open, %d claimed\n",
			stats.TotalPosts, stats.AvailablePosts, stats.ClaimedPosts)
		fmt.Printf("By kind:   %d study, %d carpool, %d swap\n",
			stats.StudyPosts, stats.CarpoolPosts, stats.SwapPosts)
		return nil
	},
}

func printPosts(posts []board.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return
	}
	for _, p := range posts {
		fmt.Printf("  %s  %-8s  %-30s  %s  %s\n",
			p.ShareCode, p.Kind, p.Title, p.Status, p.CreatedAt.Format("Jan 02"))
	}
}

func init() {
	boardListCmd.Flags().String("kind", "", "Filter by kind (study, carpool, swap)")
	boardListCmd.Flags().Bool("all", false, "Include claimed posts")

	boardCmd.AddCommand(boardPostCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardClaimCmd)
	boardCmd.AddCommand(boardMineCmd)
	boardCmd.AddCommand(boardSearchCmd)
	boardCmd.AddCommand(boardStatsCmd)
}
