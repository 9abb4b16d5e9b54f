// Login, logout, and whoami commands managing the persisted session.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long: `Login authenticates against the clinic's user set and persists the
session, so subsequent commands act as that user until logout.

Example:
  frontdesk login --email admin@entnt.in --password admin123`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	user, err := clinic.Login(loginEmail, loginPassword)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if flagJSON {
		return printJSON(user)
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clinic.Logout(); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("%s (%s)\n", user.Email, user.Role)
		return nil
	},
}
