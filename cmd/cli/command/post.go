package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blogify/cmd/cli/command/client"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post management commands",
	Long:  `Manage blog posts: create, view, list, update, and delete posts`,
}

var createPostCmd = &cobra.Command{
	Use:   "create [title] [content]",
	Short: "Create a new post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		content := strings.Join(args[1:], " ")

		httpClient := GetAuthenticatedClient()

		result, err := httpClient.CreatePost(title, content)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		fmt.Println("✓ Post created successfully!")
		fmt.Printf("Post ID: %d\n", result.ID)
		fmt.Printf("Title: %s\n", result.Title)
		fmt.Printf("Created at: %s\n", result.CreatedAt.Format("2006-01-02 15:04:05"))

		return nil
	},
}

var getPostCmd = &cobra.Command{
	Use:   "get [post-id]",
	Short: "View a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		httpClient := client.NewHTTPClient(apiURL)

		result, err := httpClient.GetPost(postID)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		fmt.Printf("Post #%d: %s\n", result.ID, result.Title)
		fmt.Printf("By %s on %s\n", result.Author, result.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println(result.Content)

		return nil
	},
}

var listPostsCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := client.NewHTTPClient(apiURL)

		result, err := httpClient.ListPosts(page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list posts: %w", err)
		}

		if len(result.Data) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		for _, post := range result.Data {
			fmt.Printf("#%d  %s\n", post.ID, post.Title)
			fmt.Printf("    by %s, %s\n", post.Author, post.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("\nPage %d/%d (%d posts total)\n", result.Page, result.TotalPages, result.Total)

		return nil
	},
}

var updatePostCmd = &cobra.Command{
	Use:   "update [post-id] [title] [content]",
	Short: "Update your post",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		title := args[1]
		content := strings.Join(args[2:], " ")

		httpClient := GetAuthenticatedClient()

		result, err := httpClient.UpdatePost(postID, title, content)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		fmt.Println("✓ Post updated successfully!")
		fmt.Printf("Post ID: %d\n", result.ID)
		fmt.Printf("Title: %s\n", result.Title)
		fmt.Printf("Updated at: %s\n", result.UpdatedAt.Format("2006-01-02 15:04:05"))

		return nil
	},
}

var deletePostCmd = &cobra.Command{
	Use:   "delete [post-id]",
	Short: "Delete your post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()

		if err := httpClient.DeletePost(postID); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		fmt.Println("✓ Post deleted successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd)

	postCmd.AddCommand(createPostCmd)
	postCmd.AddCommand(getPostCmd)
	postCmd.AddCommand(listPostsCmd)
	postCmd.AddCommand(updatePostCmd)
	postCmd.AddCommand(deletePostCmd)

	listPostsCmd.Flags().Int("page", 1, "Page number")
	listPostsCmd.Flags().Int("page-size", 10, "Posts per page")
}
