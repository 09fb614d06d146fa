package cmd

import (
	"fmt"

	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update your profile",
	Long: `Update your profile. Only the flags you pass change; the rest keep their
current values. With no flags you're prompted for each field.`,
	Args: cobra.NoArgs,
	Run:  profileEdit,
}

func init() {
	profileCmd.AddCommand(profileEditCmd)

	profileEditCmd.Flags().String("username", "", "New username")
	profileEditCmd.Flags().String("bio", "", "Bio")
	profileEditCmd.Flags().String("location", "", "Location")
	profileEditCmd.Flags().String("phone", "", "Phone")
	profileEditCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	profileEditCmd.Flags().String("image", "", "Path to a new profile picture (JPEG or PNG)")
}

func profileEdit(cmd *cobra.Command, args []string) {
	session.MustResolveAuth(cmd.Context())

	ps := mustLoadProfile(cmd)

	edits := shared.EditsFromProfile(ps.Profile())

	flags := map[string]*string{
		"username": &edits.Username,
		"bio":      &edits.Bio,
		"location": &edits.Location,
		"phone":    &edits.Phone,
		"dob":      &edits.DateOfBirth,
		"image":    &edits.ProfileImagePath,
	}

	anyChanged := false
	for name, target := range flags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		val, err := cmd.Flags().GetString(name)
		if err != nil {
			term.OutputErrorAndExit("Error getting --%s: %v", name, err)
		}
		*target = val
		anyChanged = true
	}

	if !anyChanged {
		edits = mustPromptProfileEdits(edits)
	}

	term.StartSpinner("💾 Saving...")
	err := ps.SaveProfile(cmd.Context(), edits)
	term.StopSpinner()
	mustHandleErr(cmd.Context(), err, "updating profile")

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Profile updated successfully.")
	fmt.Println()
	renderProfile(ps)
}

func mustPromptProfileEdits(edits shared.ProfileEdits) shared.ProfileEdits {
	fields := []struct {
		label  string
		target *string
	}{
		{"Username:", &edits.Username},
		{"Bio:", &edits.Bio},
		{"Location:", &edits.Location},
		{"Phone:", &edits.Phone},
		{"Date of birth (YYYY-MM-DD):", &edits.DateOfBirth},
		{"New profile picture path (blank to keep):", &edits.ProfileImagePath},
	}

	for _, f := range fields {
		val, err := term.GetUserStringInputWithDefault(f.label, *f.target)
		if err != nil {
			term.OutputErrorAndExit("Error prompting %s %v", f.label, err)
		}
		*f.target = val
	}

	return edits
}
