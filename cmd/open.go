package cmd

import (
	"fmt"

	"socialnet-cli/lib"
	"socialnet-cli/term"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <post-id>",
	Short: "Open a post's photo in your browser",
	Args:  cobra.ExactArgs(1),
	Run:   openPost,
}

func init() {
	RootCmd.AddCommand(openCmd)
}

func openPost(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	postId := parsePostId(args[0])

	f := lib.NewFeed(apiClient)

	term.StartSpinner("")
	err := f.LoadAll(cmd.Context())
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "loading posts")

	post := f.Find(postId)
	if post == nil {
		term.OutputErrorAndExit("Post %d not found in the feed", postId)
	}
	if post.Image == "" {
		term.OutputErrorAndExit("Post %d has no image", postId)
	}

	fmt.Printf("Opening %s\n", post.Image)
	err = browser.OpenURL(post.Image)
	if err != nil {
		fmt.Printf("Failed to open URL automatically: %v\n", err)
		fmt.Println("Please open the URL manually in your browser.")
	}
}
