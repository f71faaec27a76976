package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/CrestNiraj12/tootview/tui/common"
)

// View renders the timeline as a string.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("🐘 tootview") + "\n")
	b.WriteString(m.headerView() + "\n\n")

	switch {
	case m.loading && len(m.statuses) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading statuses...\n", m.spinner.View()))
	case m.err != nil && len(m.statuses) == 0:
		b.WriteString(common.ErrorStyle.Render("  Error: " + common.DescribeError(m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.statuses) == 0:
		b.WriteString("  Nothing here yet.\n")
	default:
		end := min(m.offset+m.visibleCount(), len(m.statuses))
		boxWidth := max(m.width-4, 20)
		for i := m.offset; i < end; i++ {
			style := common.UnselectedStyle
			if i == m.cursor {
				style = common.SelectedStyle
			}
			b.WriteString(style.Width(boxWidth).Render(m.renderStatus(m.statuses[i], boxWidth-4)))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	if m.profile != nil {
		name := common.SanitizeForTerminal(m.profile.Name())
		return " " + common.TabActiveStyle.Render(name) +
			common.AcctStyle.Render(" @"+common.SanitizeForTerminal(m.profile.Acct)) +
			common.TimestampStyle.Render("  (esc: back)")
	}
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, common.TabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, common.TabInactiveStyle.Render(name))
		}
	}
	return " " + strings.Join(tabs, " ")
}

func (m Model) footerView() string {
	var parts []string
	if m.loading && len(m.statuses) > 0 {
		parts = append(parts, m.spinner.View()+" loading")
	}
	if m.err != nil && len(m.statuses) > 0 {
		parts = append(parts, common.ErrorStyle.Render(common.DescribeError(m.err)))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	if len(m.statuses) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.cursor+1, len(m.statuses)))
	}

	h := help.New()
	h.Width = m.width
	bar := common.StatusBarStyle.Render(strings.Join(parts, "  ·  "))
	return bar + "\n" + h.ShortHelpView(m.keys.ShortHelp())
}
