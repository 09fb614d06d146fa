package cmd

import (
	"fmt"

	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"logout"},
	Short:   "Sign out and remove stored tokens",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	err := session.SignOut()
	if err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}

	fmt.Println("👋 Signed out")
	fmt.Println()
	term.PrintCmds("", "sign-in")
}
