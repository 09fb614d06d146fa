package feedtui

import (
	"context"

	"socialnet-cli/lib"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type keymap struct {
	up      bubbleKey.Binding
	down    bubbleKey.Binding
	like    bubbleKey.Binding
	dislike bubbleKey.Binding
	reload  bubbleKey.Binding
	open    bubbleKey.Binding
	quit    bubbleKey.Binding
}

func newKeymap() keymap {
	return keymap{
		up:      bubbleKey.NewBinding(bubbleKey.WithKeys("up", "k"), bubbleKey.WithHelp("↑/k", "up")),
		down:    bubbleKey.NewBinding(bubbleKey.WithKeys("down", "j"), bubbleKey.WithHelp("↓/j", "down")),
		like:    bubbleKey.NewBinding(bubbleKey.WithKeys("l"), bubbleKey.WithHelp("l", "like")),
		dislike: bubbleKey.NewBinding(bubbleKey.WithKeys("d"), bubbleKey.WithHelp("d", "dislike")),
		reload:  bubbleKey.NewBinding(bubbleKey.WithKeys("r"), bubbleKey.WithHelp("r", "reload")),
		open:    bubbleKey.NewBinding(bubbleKey.WithKeys("o"), bubbleKey.WithHelp("o", "open photo")),
		quit:    bubbleKey.NewBinding(bubbleKey.WithKeys("q", "ctrl+c", "esc"), bubbleKey.WithHelp("q", "quit")),
	}
}

type feedUIModel struct {
	ctx    context.Context
	feed   *lib.Feed
	keymap keymap

	spinner spinner.Model
	loading bool

	selected int
	// post ids with a reaction request in flight
	pending map[int64]bool

	// last non-fatal failure, shown until the next action
	notice string

	width  int
	height int

	// set when the session was rejected; the caller handles it after exit
	err error

	openURL func(url string) error
}

func initialModel(ctx context.Context, feed *lib.Feed, openURL func(string) error) *feedUIModel {
	s := spinner.New()
	s.Spinner = spinner.Points

	return &feedUIModel{
		ctx:     ctx,
		feed:    feed,
		keymap:  newKeymap(),
		spinner: s,
		loading: true,
		pending: map[int64]bool{},
		openURL: openURL,
	}
}

func (m *feedUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}
