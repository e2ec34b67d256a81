package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blogify/cmd/cli/command/client"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment management commands",
	Long:  `Manage post comments: create, list, and delete comments`,
}

var createCommentCmd = &cobra.Command{
	Use:   "create [post-id] [content]",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		content := strings.Join(args[1:], " ")

		httpClient := GetAuthenticatedClient()

		result, err := httpClient.CreateComment(postID, content)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		fmt.Println("✓ Comment posted successfully!")
		fmt.Printf("Comment ID: %d\n", result.ID)
		fmt.Printf("Posted by: %s\n", result.Username)
		fmt.Printf("Content: %s\n", result.Content)
		fmt.Printf("Created at: %s\n", result.CreatedAt.Format("2006-01-02 15:04:05"))

		return nil
	},
}

var listCommentsCmd = &cobra.Command{
	Use:   "list [post-id]",
	Short: "List comments on a post, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		httpClient := client.NewHTTPClient(apiURL)

		result, err := httpClient.ListComments(postID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}

		if result.Total == 0 {
			fmt.Println("No comments yet.")
			return nil
		}

		for _, comment := range result.Data {
			fmt.Printf("#%d  %s (%s)\n", comment.ID, comment.Username, comment.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("    %s\n", comment.Content)
		}
		fmt.Printf("\n%d comments total\n", result.Total)

		return nil
	},
}

var deleteCommentCmd = &cobra.Command{
	Use:   "delete [comment-id]",
	Short: "Delete your comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid comment ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()

		if err := httpClient.DeleteComment(commentID); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		fmt.Println("✓ Comment deleted successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)

	commentCmd.AddCommand(createCommentCmd)
	commentCmd.AddCommand(listCommentsCmd)
	commentCmd.AddCommand(deleteCommentCmd)
}
