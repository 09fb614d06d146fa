package feedtui

import (
	"errors"
	"log"

	"socialnet-cli/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type loadedMsg struct {
	err error
}

type reactedMsg struct {
	postId int64
	err    error
}

type openedMsg struct {
	err error
}

func (m *feedUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			if isInvalidToken(msg.err) {
				m.err = msg.err
				return m, tea.Quit
			}
			m.notice = "Failed to load posts"
		}
		m.clampSelection()

	case reactedMsg:
		delete(m.pending, msg.postId)
		if msg.err != nil {
			if isInvalidToken(msg.err) {
				m.err = msg.err
				return m, tea.Quit
			}
			m.notice = "Failed to react on post"
		}

	case openedMsg:
		if msg.err != nil {
			m.notice = "Failed to open photo"
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *feedUIModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return m, tea.Quit

	case bubbleKey.Matches(msg, m.keymap.up):
		if m.selected > 0 {
			m.selected--
		}

	case bubbleKey.Matches(msg, m.keymap.down):
		if m.selected < len(m.feed.Posts())-1 {
			m.selected++
		}

	case bubbleKey.Matches(msg, m.keymap.like):
		return m, m.react(shared.ReactionLike)

	case bubbleKey.Matches(msg, m.keymap.dislike):
		return m, m.react(shared.ReactionDislike)

	case bubbleKey.Matches(msg, m.keymap.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.load())

	case bubbleKey.Matches(msg, m.keymap.open):
		post := m.selectedPost()
		if post == nil || post.Image == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return openedMsg{err: m.openURL(post.Image)}
		}
	}

	return m, nil
}

func (m *feedUIModel) load() tea.Cmd {
	feed := m.feed
	ctx := m.ctx
	return func() tea.Msg {
		return loadedMsg{err: feed.LoadAll(ctx)}
	}
}

// react fires a reaction for the selected post. Several can be in flight on
// different posts; each completion only replaces its own entry.
func (m *feedUIModel) react(reaction shared.Reaction) tea.Cmd {
	post := m.selectedPost()
	if post == nil || m.pending[post.Id] {
		return nil
	}

	m.pending[post.Id] = true
	m.notice = ""

	feed := m.feed
	ctx := m.ctx
	postId := post.Id
	return func() tea.Msg {
		_, err := feed.React(ctx, postId, reaction)
		if err != nil {
			log.Printf("reaction to %d failed: %v", postId, err)
		}
		return reactedMsg{postId: postId, err: err}
	}
}

func (m *feedUIModel) selectedPost() *shared.Post {
	posts := m.feed.Posts()
	if m.selected < 0 || m.selected >= len(posts) {
		return nil
	}
	return posts[m.selected]
}

func (m *feedUIModel) clampSelection() {
	n := len(m.feed.Posts())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func isInvalidToken(err error) bool {
	var apiErr *shared.ApiError
	return errors.As(err, &apiErr) && apiErr.Type == shared.ApiErrorTypeInvalidToken
}
