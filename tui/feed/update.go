package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/tootview/domain"
	"github.com/CrestNiraj12/tootview/tui/common"
)

// Update handles messages for the timeline view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.keepCursorVisible()
		return m, nil

	case StatusesLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.applyPage(msg.Mode, msg.Statuses)
		return m, nil

	case StatusesErrorMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ReactionResultMsg:
		if msg.Err != nil {
			m.notice = "Reaction failed: " + common.DescribeError(msg.Err)
			return m, nil
		}
		m.replaceStatus(msg.StatusID, msg.Status)
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.keepCursorVisible()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.statuses)-1 {
			m.cursor++
		}
		m.keepCursorVisible()

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % Tab(len(tabNames)))
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case key.Matches(msg, m.keys.Home):
		return m.switchTab(TabHome)
	case key.Matches(msg, m.keys.Local):
		return m.switchTab(TabLocal)
	case key.Matches(msg, m.keys.Global):
		return m.switchTab(TabGlobal)

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			break
		}
		if len(m.statuses) == 0 {
			return m.reload()
		}
		m.seq++
		m.loading = true
		return m, m.fetch(m.seq, loadPrepend, domain.PageParams{SinceID: m.statuses[0].ID, Limit: m.limit})

	case key.Matches(msg, m.keys.LoadMore):
		if m.loading || m.noOlder || len(m.statuses) == 0 {
			break
		}
		m.seq++
		m.loading = true
		last := m.statuses[len(m.statuses)-1]
		return m, m.fetch(m.seq, loadAppend, domain.PageParams{MaxID: last.ID, Limit: m.limit})

	case key.Matches(msg, m.keys.React):
		st, ok := m.Selected()
		if !ok || m.reactions == nil || m.reaction == "" {
			break
		}
		m.notice = "Reacting..."
		return m, m.react(st)

	case key.Matches(msg, m.keys.Spoiler):
		if st, ok := m.Selected(); ok && st.Displayed().SpoilerText != "" {
			id := st.Displayed().ID
			m.spoilers[id] = !m.spoilers[id]
		}

	case key.Matches(msg, m.keys.Sensitive):
		if st, ok := m.Selected(); ok && st.Displayed().Sensitive {
			id := st.Displayed().ID
			m.media[id] = !m.media[id]
		}

	case key.Matches(msg, m.keys.Profile):
		st, ok := m.Selected()
		if !ok {
			break
		}
		acct := st.Displayed().Account
		if acct.ID == "" {
			m.notice = "Profile unavailable: account has no id."
			break
		}
		m.profile = &acct
		return m.reload()

	case key.Matches(msg, m.keys.Back):
		if m.profile != nil {
			m.profile = nil
			return m.reload()
		}
	}

	return m, nil
}

func (m Model) switchTab(t Tab) (Model, tea.Cmd) {
	if t == m.tab && m.profile == nil {
		return m, nil
	}
	m.tab = t
	m.profile = nil
	return m.reload()
}

// reload discards the current list and fetches the first page of the
// current source.
func (m Model) reload() (Model, tea.Cmd) {
	m.seq++
	m.loading = true
	m.err = nil
	m.notice = ""
	m.noOlder = false
	m.statuses = nil
	m.cursor = 0
	m.offset = 0
	return m, m.fetch(m.seq, loadReplace, domain.PageParams{Limit: m.limit})
}

func (m *Model) applyPage(mode loadMode, page []domain.Status) {
	switch mode {
	case loadAppend:
		if len(page) == 0 {
			m.noOlder = true
			m.notice = "No older statuses."
			return
		}
		m.statuses = append(m.statuses, page...)
		m.notice = ""
	case loadPrepend:
		if len(page) == 0 {
			m.notice = "Up to date."
			return
		}
		merged := make([]domain.Status, 0, len(page)+len(m.statuses))
		merged = append(merged, page...)
		merged = append(merged, m.statuses...)
		m.statuses = merged
		m.cursor += len(page)
		m.notice = ""
		m.keepCursorVisible()
	default:
		m.statuses = page
		m.cursor = 0
		m.offset = 0
	}
}

// replaceStatus swaps in an updated status wherever it is displayed, either
// as a top-level entry or as the target of a reblog.
func (m *Model) replaceStatus(id string, updated domain.Status) {
	updated.Reblog = nil
	for i, st := range m.statuses {
		switch {
		case st.ID == id && st.Reblog == nil:
			m.statuses[i] = updated
		case st.Reblog != nil && st.Reblog.ID == id:
			u := updated
			st.Reblog = &u
			m.statuses[i] = st
		}
	}
}

func (m *Model) keepCursorVisible() {
	visible := m.visibleCount()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleCount estimates how many statuses fit on screen.
// Reserved height: header (~4), status bar and help (~4).
func (m Model) visibleCount() int {
	const reserved, perStatus = 8, 7
	return max((m.height-reserved)/perStatus, 1)
}
