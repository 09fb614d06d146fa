package cmd

import (
	"fmt"

	feedtui "socialnet-cli/feed_tui"
	"socialnet-cli/lib"
	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var feedSearch string
var feedInteractive bool

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Show the feed",
	Args:    cobra.NoArgs,
	Run:     feed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringVarP(&feedSearch, "search", "s", "", "Only show posts whose author or description fuzzy-matches")
	feedCmd.Flags().BoolVarP(&feedInteractive, "interactive", "i", false, "Browse and react in an interactive view")
}

func feed(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	f := lib.NewFeed(apiClient)

	if feedInteractive {
		err := feedtui.Run(cmd.Context(), f)
		mustHandleErr(cmd.Context(), err, "running feed")
		return
	}

	term.StartSpinner("")
	err := f.LoadAll(cmd.Context())
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "loading posts")

	posts := lib.SearchPosts(f.Posts(), feedSearch)

	if len(posts) == 0 {
		if feedSearch != "" {
			fmt.Printf("🤷‍♂️ No posts match '%s'\n", feedSearch)
		} else {
			fmt.Println("🤷‍♂️ No posts found.")
		}
		fmt.Println()
		term.PrintCmds("", "post")
		return
	}

	renderPostsTable(posts, true)
	fmt.Println()
	term.PrintCmds("", "like", "dislike", "post")
}
