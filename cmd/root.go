package cmd

import (
	"socialnet-cli/auth"
	"socialnet-cli/term"
	"socialnet-cli/types"

	"github.com/spf13/cobra"
)

var session *auth.Auth
var apiClient types.ApiClient

// Setup injects the session owner and the API client. It must run before
// Execute.
func Setup(a *auth.Auth, client types.ApiClient) {
	session = a
	apiClient = client
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `socialnet [command] [flags]`,
	Short: "socialnet: share photos from your terminal",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) {
	allowed, err := session.Check()
	if err != nil {
		term.OutputErrorAndExit("Error reading session: %v", err)
	}

	if !allowed {
		term.PrintCmds("", "sign-in", "sign-up")
		return
	}

	term.PrintCmds("", "feed", "post", "profile", "sign-out")
}
