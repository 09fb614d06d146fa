package cmd

import (
	"fmt"

	"socialnet-cli/term"

	"github.com/spf13/cobra"
)

var deletePostYes bool

var deletePostCmd = &cobra.Command{
	Use:   "delete-post <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	Run:   deletePost,
}

func init() {
	RootCmd.AddCommand(deletePostCmd)

	deletePostCmd.Flags().BoolVarP(&deletePostYes, "yes", "y", false, "Skip confirmation")
}

func deletePost(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	postId := parsePostId(args[0])

	ps := mustLoadProfile(cmd)

	found := false
	for _, p := range ps.MyPosts() {
		if p.Id == postId {
			found = true
			break
		}
	}
	if !found {
		term.OutputErrorAndExit("Post %d isn't one of your posts", postId)
	}

	if !deletePostYes {
		confirmed, err := term.ConfirmYesNo("Delete post %d?", postId)
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !confirmed {
			return
		}
	}

	term.StartSpinner("")
	err := ps.DeletePost(cmd.Context(), postId)
	term.StopSpinner()
	mustAlertErr(cmd.Context(), err, "delete post")

	fmt.Printf("🗑️  Deleted post %d\n", postId)
	fmt.Println()
	renderProfile(ps)
}
