package cmd

import (
	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	Run:   signUp,
}

func init() {
	RootCmd.AddCommand(signUpCmd)
}

func signUp(cmd *cobra.Command, args []string) {
	err := session.PromptSignUp(cmd.Context())
	if err != nil {
		term.OutputErrorAndExit("Error signing up: %v", err)
	}

	term.PrintCmds("", "feed", "post")
}
