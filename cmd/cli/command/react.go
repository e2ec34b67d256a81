package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"blogify/cmd/cli/command/client"
	"blogify/internal/http-api/models"
	"blogify/pkg/reactionview"
)

var reactCmd = &cobra.Command{
	Use:   "react [post-id] [kind]",
	Short: "Toggle a reaction on a post",
	Long: `Toggle a reaction on a post. Reacting with the kind you already have
removes it; reacting with a different kind replaces it. Valid kinds: ` + kindList() + `.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		kind := strings.ToLower(args[1])
		if !models.ReactionKind(kind).Valid() {
			return fmt.Errorf("invalid reaction kind %q, valid kinds: %s", kind, kindList())
		}

		username := CurrentUsername()
		if username == "" {
			return fmt.Errorf("not logged in, run \"blogify auth login\" first")
		}

		httpClient := GetAuthenticatedClient()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		view := reactionview.NewView(httpClient, username, postID)
		if err := view.Load(ctx); err != nil {
			return fmt.Errorf("failed to load reactions: %w", err)
		}

		if err := view.Toggle(ctx, kind); err != nil {
			return fmt.Errorf("failed to toggle reaction: %w", err)
		}

		fmt.Printf("✓ Toggled %q on post %d\n", kind, postID)
		printSummaries(view.Summaries())

		return nil
	},
}

var reactionsCmd = &cobra.Command{
	Use:   "reactions [post-id]",
	Short: "View reaction tallies for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		httpClient := client.NewHTTPClient(apiURL)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		summaries, err := httpClient.GetReactions(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get reactions: %w", err)
		}

		printSummaries(summaries)
		return nil
	},
}

func printSummaries(summaries []reactionview.Summary) {
	if len(summaries) == 0 {
		fmt.Println("No reactions yet.")
		return
	}
	for _, s := range summaries {
		fmt.Printf("%-8s %d  (%s)\n", s.Kind, s.Count, strings.Join(s.Users, ", "))
	}
}

func kindList() string {
	kinds := models.ReactionKinds()
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(reactCmd)
	rootCmd.AddCommand(reactionsCmd)
}
