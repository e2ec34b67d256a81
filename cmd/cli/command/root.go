package command

// root.go defines the root command for the blogify CLI.
// Global flags and the authenticated client helper live here.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blogify/cmd/cli/authentication"
	"blogify/cmd/cli/command/client"
)

var (
	apiURL string // global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blogify",
	Short: "blogify - Blogify Command Line Interface",
	Long: `blogify is a tool for interacting with the Blogify API from the terminal.
Use it to:
- Register and log in
- Browse, create, update and delete posts
- Comment on posts
- React to posts (like, love, helpful) and view reaction tallies

Use "blogify [command] --help" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}

// GetAuthenticatedClient returns an HTTP client carrying the stored access
// token. Commands that hit protected endpoints call this; ones that don't
// use client.NewHTTPClient directly.
func GetAuthenticatedClient() *client.HTTPClient {
	httpClient := client.NewHTTPClient(apiURL)
	creds, err := authentication.GetTokens()
	if err == nil && creds.AccessToken != "" {
		httpClient.SetToken(creds.AccessToken)
	}
	return httpClient
}

// CurrentUsername returns the username stored at login, or "" when logged out.
func CurrentUsername() string {
	creds, err := authentication.GetTokens()
	if err != nil {
		return ""
	}
	return creds.Username
}
