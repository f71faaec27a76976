package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/tootview/app"
	"github.com/CrestNiraj12/tootview/tui/common"
	"github.com/CrestNiraj12/tootview/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Timeline  app.TimelineService
	Reactions app.ReactionService // nil disables the react key
	Reaction  string
	Limit     int
}

// App is the root Bubble Tea model. It owns global keys and delegates the
// rest to the timeline view.
type App struct {
	feed feed.Model
	keys common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		feed: feed.New(deps.Timeline, deps.Reactions, deps.Reaction, deps.Limit),
		keys: common.DefaultKeyMap(),
	}
}

// Init starts the first timeline fetch.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles global keys and routes everything else to the feed.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	updated, cmd := a.feed.Update(msg)
	a.feed = updated
	return a, cmd
}

// View renders the feed.
func (a App) View() string {
	return a.feed.View()
}

// Feed exposes the timeline model for inspection.
func (a App) Feed() feed.Model {
	return a.feed
}
