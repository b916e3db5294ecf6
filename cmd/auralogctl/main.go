package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "auralogctl",
		Short: "CLI client for the auralog journal REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "journal service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "session token for protected endpoints")

	registerCmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(apiFlag, args[0], args[1], os.Stdout)
		},
	}
	rootCmd.AddCommand(registerCmd)

	loginCmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Exchange credentials for a session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(apiFlag, args[0], args[1], os.Stdout)
		},
	}
	rootCmd.AddCommand(loginCmd)

	profileCmd := &cobra.Command{
		Use:   "setup-profile",
		Short: "Replace the caller's goals and principles",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, _ := cmd.Flags().GetStringArray("goal")
			principles, _ := cmd.Flags().GetStringArray("principle")
			if tokenFlag == "" {
				return fmt.Errorf("--token required")
			}
			return runSetupProfile(apiFlag, tokenFlag, goals, principles, os.Stdout)
		},
	}
	profileCmd.Flags().StringArrayP("goal", "g", nil, "goal text (repeatable)")
	profileCmd.Flags().StringArrayP("principle", "p", nil, "principle text (repeatable)")
	rootCmd.AddCommand(profileCmd)

	summarizeCmd := &cobra.Command{
		Use:   "summarize <transcript>",
		Short: "Submit a journal entry and print summary plus goal alignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required")
			}
			return runSummarize(apiFlag, tokenFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(summarizeCmd)

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantically search the caller's past entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required")
			}
			return runSearch(apiFlag, tokenFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
