package feed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/tootview/domain"
)

func (m Model) fetch(seq int, mode loadMode, page domain.PageParams) tea.Cmd {
	timeline := m.timeline
	tab := m.tab
	inProfile := m.profile != nil
	var accountID string
	if inProfile {
		accountID = m.profile.ID
	}
	return func() tea.Msg {
		ctx := context.Background()
		var (
			statuses []domain.Status
			err      error
		)
		switch {
		case inProfile:
			statuses, err = timeline.FetchAccountStatuses(ctx, accountID, page)
		case tab == TabLocal:
			statuses, err = timeline.FetchLocal(ctx, page)
		case tab == TabGlobal:
			statuses, err = timeline.FetchGlobal(ctx, page)
		default:
			statuses, err = timeline.FetchHome(ctx, page)
		}
		if err != nil {
			return StatusesErrorMsg{Seq: seq, Err: err}
		}
		return StatusesLoadedMsg{Seq: seq, Mode: mode, Statuses: statuses}
	}
}

// react toggles the configured reaction on the displayed status: it is
// removed when the user already reacted with it, added otherwise.
func (m Model) react(st domain.Status) tea.Cmd {
	reactions := m.reactions
	emoji := m.reaction
	target := st.Displayed()
	mine := false
	if r, ok := target.Reaction(emoji); ok {
		mine = r.Me
	}
	return func() tea.Msg {
		ctx := context.Background()
		var (
			updated domain.Status
			err     error
		)
		if mine {
			updated, err = reactions.RemoveReaction(ctx, target.ID, emoji)
		} else {
			updated, err = reactions.AddReaction(ctx, target.ID, emoji)
		}
		return ReactionResultMsg{StatusID: target.ID, Status: updated, Err: err}
	}
}
