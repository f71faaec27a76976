package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit      key.Binding
	Refresh   key.Binding // r: fetch statuses newer than the top one
	LoadMore  key.Binding // m: fetch the next older page
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Home      key.Binding
	Local     key.Binding
	Global    key.Binding
	React     key.Binding // a: toggle the configured emoji reaction
	Spoiler   key.Binding // s: reveal/hide content behind a content warning
	Sensitive key.Binding // v: reveal sensitive media
	Profile   key.Binding // p: open the author's statuses
	Back      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "older"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next timeline"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev timeline"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Local: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "local"),
		),
		Global: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "global"),
		),
		React: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "react"),
		),
		Spoiler: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show more"),
		),
		Sensitive: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show media"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Refresh, k.LoadMore, k.React, k.Spoiler, k.Profile, k.Quit}
}
