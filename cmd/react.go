package cmd

import (
	"context"
	"fmt"
	"log"

	"socialnet-cli/lib"
	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post, or remove your like",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		react(cmd, args, shared.ReactionLike)
	},
}

var dislikeCmd = &cobra.Command{
	Use:   "dislike <post-id>",
	Short: "Dislike a post, or remove your dislike",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		react(cmd, args, shared.ReactionDislike)
	},
}

func init() {
	RootCmd.AddCommand(likeCmd)
	RootCmd.AddCommand(dislikeCmd)
}

func react(cmd *cobra.Command, args []string, reaction shared.Reaction) {
	session.MustResolveAuth(cmd.Context())

	postId := parsePostId(args[0])

	f := lib.NewFeed(apiClient)

	term.StartSpinner("")
	err := f.LoadAll(cmd.Context())
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "loading posts")

	term.StartSpinner("")
	updated, err := sendReaction(cmd.Context(), f, postId, reaction)
	term.StopSpinner()
	mustAlertErr(cmd.Context(), err, "react on post")

	renderPost(updated)
	fmt.Println()
}

// sendReaction reacts even when the post isn't in the loaded feed: the
// server decides whether it exists, and the feed only changes if it has an
// entry with that id.
func sendReaction(ctx context.Context, f *lib.Feed, postId int64, reaction shared.Reaction) (*shared.Post, error) {
	if f.Find(postId) == nil {
		log.Printf("post %d isn't in the loaded feed, reacting anyway", postId)
	}
	return f.React(ctx, postId, reaction)
}
