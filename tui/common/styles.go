package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 2, 0, 1)

	// TabActiveStyle styles the selected timeline tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// TabInactiveStyle styles the other timeline tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// AuthorStyle styles the author display name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// AcctStyle styles the @acct handle.
	AcctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8E8E"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// BoostStyle styles the "boosted" banner above a reblog.
	BoostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Bold(true)

	// ContentStyle styles status content text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// EmojiStyle marks custom emoji placeholders inside content.
	EmojiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	// SpoilerStyle styles the content warning line.
	SpoilerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F")).
			Bold(true)

	// ToggleStyle styles the "show more" / "hide" toggle.
	ToggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D9C5")).
			Underline(true)

	// MetaStyle styles media, card and counter lines.
	MetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BD5CA")).
			Faint(true)

	// SensitiveStyle marks hidden sensitive media.
	SensitiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// ReactionMineStyle highlights reactions made by the authenticated user.
	ReactionMineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6600")).
				Bold(true)

	// SelectedStyle highlights the currently selected status.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	// UnselectedStyle gives unselected statuses a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)
)
