package cmd

import (
	"fmt"

	"socialnet-cli/lib"
	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var postDescription string

var postCmd = &cobra.Command{
	Use:     "post <image-path>",
	Aliases: []string{"p"},
	Short:   "Share a new photo (JPEG or PNG, up to 5 MB)",
	Args:    cobra.ExactArgs(1),
	Run:     createPost,
}

func init() {
	RootCmd.AddCommand(postCmd)

	postCmd.Flags().StringVarP(&postDescription, "description", "d", "", "Caption for the photo")
}

func createPost(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	term.StartSpinner("📤 Uploading...")
	post, err := lib.CreatePost(cmd.Context(), apiClient, shared.CreatePostRequest{
		ImagePath:   args[0],
		Description: postDescription,
	})
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "uploading post")

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Posted")
	fmt.Println()
	renderPost(post)
	fmt.Println()
	term.PrintCmds("", "feed")
}
