package feedtui

import (
	"context"
	"fmt"

	"socialnet-cli/lib"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// Run shows the feed until the user quits. A rejected session ends the view
// early and is returned so the caller can sign the user out.
func Run(ctx context.Context, feed *lib.Feed) error {
	initial := initialModel(ctx, feed, browser.OpenURL)

	ui := tea.NewProgram(initial, tea.WithAltScreen())

	m, err := ui.Run()
	if err != nil {
		return fmt.Errorf("error running feed UI: %v", err)
	}

	mod := m.(*feedUIModel)
	return mod.err
}
