package feedtui

import (
	"fmt"
	"strings"

	"socialnet-cli/format"
	"socialnet-cli/shared"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	authorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	likedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	dislikedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	noticeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	selectedCard  = cardStyle.BorderForeground(lipgloss.Color("205"))
)

// lines per rendered post card, used to window the list
const cardHeight = 5

func (m *feedUIModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Feed"))
	b.WriteString("\n")

	posts := m.feed.Posts()

	if m.loading && !m.feed.Loaded() {
		b.WriteString(m.spinner.View() + " Loading...\n")
		return b.String()
	}

	if len(posts) == 0 {
		b.WriteString("No posts found.\n")
	}

	start, end := m.window(len(posts))
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(posts[i], i == m.selected))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View() + " Reloading...\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render("⚠️  " + m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())

	return b.String()
}

func (m *feedUIModel) window(n int) (int, int) {
	visible := n
	if m.height > 0 {
		visible = max(1, (m.height-6)/cardHeight)
	}
	if visible >= n {
		return 0, n
	}

	start := m.selected - visible/2
	start = max(0, min(start, n-visible))
	return start, start + visible
}

func (m *feedUIModel) renderCard(p *shared.Post, selected bool) string {
	header := authorStyle.Render("@"+p.Author) + dimStyle.Render(fmt.Sprintf(" · #%d · %s", p.Id, format.Time(p.CreatedAt)))

	likes := fmt.Sprintf("👍 %d", p.LikesCount)
	dislikes := fmt.Sprintf("👎 %d", p.DislikesCount)
	status := "No reaction yet"
	switch p.UserReaction {
	case shared.ReactionLike:
		likes = likedStyle.Render(likes)
		status = "You liked this"
	case shared.ReactionDislike:
		dislikes = dislikedStyle.Render(dislikes)
		status = "You disliked this"
	}
	if m.pending[p.Id] {
		status = m.spinner.View() + " sending..."
	}

	description := p.Description
	if description == "" {
		description = dimStyle.Render("(no description)")
	}

	body := strings.Join([]string{
		header,
		description,
		likes + "  " + dislikes + "  " + dimStyle.Render(status),
	}, "\n")

	style := cardStyle
	if selected {
		style = selectedCard
	}
	if m.width > 4 {
		style = style.Width(min(m.width-4, 80))
	}

	return style.Render(body)
}

func (m *feedUIModel) renderHelp() string {
	bindings := []struct{ key, desc string }{
		{m.keymap.up.Help().Key, m.keymap.up.Help().Desc},
		{m.keymap.down.Help().Key, m.keymap.down.Help().Desc},
		{m.keymap.like.Help().Key, m.keymap.like.Help().Desc},
		{m.keymap.dislike.Help().Key, m.keymap.dislike.Help().Desc},
		{m.keymap.reload.Help().Key, m.keymap.reload.Help().Desc},
		{m.keymap.open.Help().Key, m.keymap.open.Help().Desc},
		{m.keymap.quit.Help().Key, m.keymap.quit.Help().Desc},
	}

	var parts []string
	for _, b := range bindings {
		parts = append(parts, b.key+" "+dimStyle.Render(b.desc))
	}
	return strings.Join(parts, dimStyle.Render(" • "))
}
