package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"socialnet-cli/format"
	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func reactionLabel(r shared.Reaction) string {
	switch r {
	case shared.ReactionLike:
		return "You liked this"
	case shared.ReactionDislike:
		return "You disliked this"
	}
	return "No reaction yet"
}

func renderPostsTable(posts []*shared.Post, showAuthor bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)

	header := []string{"#", "Id"}
	if showAuthor {
		header = append(header, "Author")
	}
	header = append(header, "Description", "👍", "👎", "Reaction", "Posted")
	table.SetHeader(header)

	for i, p := range posts {
		row := []string{strconv.Itoa(i + 1), strconv.FormatInt(p.Id, 10)}
		if showAuthor {
			row = append(row, "@"+p.Author)
		}
		row = append(row,
			truncate(p.Description, 48),
			strconv.Itoa(p.LikesCount),
			strconv.Itoa(p.DislikesCount),
			reactionLabel(p.UserReaction),
			format.Time(p.CreatedAt),
		)

		var style []tablewriter.Colors
		switch p.UserReaction {
		case shared.ReactionLike:
			style = rowColors(len(row), tablewriter.Colors{tablewriter.FgHiGreenColor, tablewriter.Bold})
		case shared.ReactionDislike:
			style = rowColors(len(row), tablewriter.Colors{tablewriter.FgHiRedColor})
		}

		if style == nil {
			table.Append(row)
		} else {
			table.Rich(row, style)
		}
	}

	table.Render()
}

func rowColors(n int, c tablewriter.Colors) []tablewriter.Colors {
	res := make([]tablewriter.Colors, n)
	for i := range res {
		res[i] = c
	}
	return res
}

func renderPost(p *shared.Post) {
	fmt.Printf("%s %s\n",
		color.New(color.Bold, term.ColorHiCyan).Sprintf("@%s", p.Author),
		color.New(color.FgHiBlack).Sprintf("· post %d · %s", p.Id, format.Time(p.CreatedAt)),
	)
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Printf("👍 %d  👎 %d  %s\n", p.LikesCount, p.DislikesCount, reactionLabel(p.UserReaction))
	if p.Image != "" {
		fmt.Println(color.New(color.FgHiBlack).Sprint(p.Image))
	}
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

var labelStyle = lipgloss.NewStyle().Bold(true).Width(15)

func renderProfileCard(p *shared.Profile) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("@" + p.Username),
	}

	add := func(label, value string) {
		if value == "" {
			value = "-"
		}
		lines = append(lines, labelStyle.Render(label)+value)
	}

	add("Email", p.UserEmail)
	add("Bio", p.Bio)
	add("Location", p.Location)
	add("Phone", p.Phone)
	add("Date of birth", p.DateOfBirth)
	if p.ProfileImage != "" {
		add("Picture", p.ProfileImage)
	} else {
		add("Picture", "No image")
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func parsePostId(arg string) int64 {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		term.OutputErrorAndExit("Invalid post id: %s", arg)
	}
	return id
}
