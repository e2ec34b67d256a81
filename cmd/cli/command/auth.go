package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blogify/cmd/cli/authentication"
	"blogify/cmd/cli/command/client"
	"blogify/internal/http-api/dto"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Register a new account, log in, and log out`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		email, _ := cmd.Flags().GetString("email")

		httpClient := client.NewHTTPClient(apiURL)
		result, err := httpClient.Register(&dto.RegisterRequest{
			Username: username,
			Password: password,
			Email:    email,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("✓ Account created successfully!")
		fmt.Printf("Username: %s\n", result.Username)
		fmt.Printf("Email: %s\n", result.Email)
		fmt.Println(`Run "blogify auth login" to log in.`)

		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		result, err := httpClient.Login(&dto.LoginRequest{
			Username: username,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			Username:     result.Username,
			ExpiresAt:    time.Now().Unix() + result.ExpiresIn,
		})
		if err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Printf("✓ Logged in as %s\n", result.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err != nil {
			fmt.Println("Not logged in.")
			return nil
		}

		// Best effort server-side revocation, the local tokens go either way.
		httpClient := client.NewHTTPClient(apiURL)
		if err := httpClient.RevokeToken(creds.RefreshToken); err != nil {
			fmt.Printf("Warning: could not revoke refresh token: %v\n", err)
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to delete stored credentials: %w", err)
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
