package cmd

import (
	"fmt"

	"socialnet-cli/lib"
	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"pr"},
	Short:   "Show your profile and your posts",
	Args:    cobra.NoArgs,
	Run:     profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func profile(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	ps := mustLoadProfile(cmd)
	renderProfile(ps)
}

// mustLoadProfile is the profile view's own guard and load; it checks the
// session again before fetching anything.
func mustLoadProfile(cmd *cobra.Command) *lib.ProfileSync {
	session.MustAllow(cmd.Context())

	ps := lib.NewProfileSync(apiClient)

	term.StartSpinner("")
	err := ps.LoadProfileAndOwnPosts(cmd.Context())
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "loading profile")

	return ps
}

func renderProfile(ps *lib.ProfileSync) {
	p := ps.Profile()
	if p == nil {
		fmt.Println("🤷‍♂️ No profile found.")
		return
	}

	fmt.Println(renderProfileCard(p))
	fmt.Println()

	myPosts := ps.MyPosts()
	if len(myPosts) == 0 {
		fmt.Println("You haven't posted anything yet.")
		fmt.Println()
		term.PrintCmds("", "post")
		return
	}

	fmt.Println(term.GetDivisionLine())
	fmt.Printf("My posts · %d %s\n", len(myPosts), shared.Pluralize(len(myPosts), "post"))
	renderPostsTable(myPosts, false)
	fmt.Println()
	term.PrintCmds("", "delete-post")
}
