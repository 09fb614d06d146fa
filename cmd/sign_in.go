package cmd

import (
	"fmt"

	"socialnet-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to your account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)

	signInCmd.Flags().StringP("username", "u", "", "Username (password is always prompted)")
}

func signIn(cmd *cobra.Command, args []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		term.OutputErrorAndExit("Error getting username: %v", err)
	}

	if username == "" {
		err = session.PromptSignIn(cmd.Context())
		if err != nil {
			term.OutputErrorAndExit("Error signing in: %v", err)
		}
		term.PrintCmds("", "feed", "profile")
		return
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	term.StartSpinner("")
	err = session.SignIn(cmd.Context(), username, password)
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "signing in")

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(username))
	fmt.Println()
	term.PrintCmds("", "feed", "profile")
}
