package cmd

import (
	"fmt"
	"time"

	"socialnet-cli/auth"
	"socialnet-cli/format"
	"socialnet-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you're signed in",
	Args:  cobra.NoArgs,
	Run:   status,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func status(cmd *cobra.Command, args []string) {
	current, err := session.Store().Read()
	if err != nil {
		term.OutputErrorAndExit("Error reading session: %v", err)
	}

	if !auth.Allow(current) {
		fmt.Println("🔒 Not signed in")
		fmt.Println()
		term.PrintCmds("", "sign-in", "sign-up")
		return
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Signed in")

	info, err := auth.InspectToken(current.AccessToken)
	if err != nil {
		// opaque tokens are fine, there's just nothing more to show
		fmt.Println("Access token is not a JWT")
	} else {
		if info.UserId != "" {
			fmt.Printf("User id: %s\n", info.UserId)
		}
		if info.ExpiresAt != nil {
			label := "expires"
			if info.Expired(time.Now()) {
				label = "expired"
			}
			fmt.Printf("Access token %s %s\n", label, format.Time(*info.ExpiresAt))
		}
	}

	if current.RefreshToken != "" {
		fmt.Println("Refresh token stored")
	}
}
