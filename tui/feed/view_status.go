package feed

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/tootview/domain"
	"github.com/CrestNiraj12/tootview/richtext"
	"github.com/CrestNiraj12/tootview/tui/common"
)

func (m Model) renderStatus(st domain.Status, width int) string {
	var lines []string
	if st.IsReblog() {
		booster := common.SanitizeForTerminal(st.Account.Name())
		lines = append(lines, common.BoostStyle.Render("🔁 "+booster+" boosted"))
	}

	shown := st.Displayed()
	lines = append(lines, m.renderHeader(shown))

	if shown.SpoilerText != "" {
		lines = append(lines, common.SpoilerStyle.Render("CW: "+common.SanitizeForTerminal(richtext.PlainText(shown.SpoilerText))))
		if m.spoilers[shown.ID] {
			lines = append(lines, common.ToggleStyle.Render("hide"))
			lines = append(lines, renderContent(shown, width))
		} else {
			n := utf8.RuneCountInString(richtext.PlainText(shown.Content))
			lines = append(lines, common.ToggleStyle.Render(fmt.Sprintf("show more (%d chars)", n)))
		}
	} else if content := renderContent(shown, width); content != "" {
		lines = append(lines, content)
	}

	if media := m.renderMedia(shown); media != "" {
		lines = append(lines, media)
	}
	if shown.Card != nil && shown.Card.Title != "" {
		lines = append(lines, common.MetaStyle.Render("🔗 "+common.SanitizeForTerminal(shown.Card.Title)))
	}
	lines = append(lines, renderCounters(shown))
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(st domain.Status) string {
	name := renderSegments(richtext.RenderText(st.Account.Name(), st.Account.Emojis))
	out := common.AuthorStyle.Render(name) + common.AcctStyle.Render(" @"+common.SanitizeForTerminal(st.Account.Acct))
	if t, ok := st.CreatedTime(); ok {
		out += common.TimestampStyle.Render(" · " + common.RelativeTime(t, m.now()))
	}
	return out
}

func renderContent(st domain.Status, width int) string {
	text := renderSegments(richtext.Render(st.Content, st.Emojis))
	if text == "" {
		return ""
	}
	return common.ContentStyle.Width(width).Render(text)
}

// renderSegments writes text runs as-is and custom emoji as highlighted
// :shortcode: tokens, since the terminal cannot show the image.
func renderSegments(segs richtext.Segments) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case richtext.Emoji:
			b.WriteString(common.EmojiStyle.Render(":" + common.SanitizeForTerminal(seg.Shortcode) + ":"))
		default:
			b.WriteString(common.SanitizeForTerminal(seg.Text))
		}
	}
	return b.String()
}

func (m Model) renderMedia(st domain.Status) string {
	if len(st.MediaAttachments) == 0 {
		return ""
	}
	if st.Sensitive && !m.media[st.ID] {
		return common.SensitiveStyle.Render("[sensitive] press v to show media")
	}
	first := st.MediaAttachments[0]
	out := "🖼 " + common.SanitizeForTerminal(first.URL)
	if extra := len(st.MediaAttachments) - 1; extra > 0 {
		out += fmt.Sprintf(" (+%d)", extra)
	}
	return common.MetaStyle.Render(out)
}

func renderCounters(st domain.Status) string {
	parts := []string{
		fmt.Sprintf("↩ %d", st.RepliesCount),
		fmt.Sprintf("🔁 %d", st.ReblogsCount),
		fmt.Sprintf("★ %d", st.FavouritesCount),
	}
	out := common.MetaStyle.Render(strings.Join(parts, "  "))

	reactions := make([]string, 0, len(st.EmojiReactions))
	for _, r := range st.EmojiReactions {
		if r.Count <= 0 {
			continue
		}
		label := common.SanitizeForTerminal(r.Name)
		if r.URL != "" {
			label = ":" + label + ":"
		}
		style := lipgloss.NewStyle()
		if r.Me {
			style = common.ReactionMineStyle
		}
		reactions = append(reactions, style.Render(fmt.Sprintf("%s %d", label, r.Count)))
	}
	if len(reactions) > 0 {
		out += "  " + strings.Join(reactions, " ")
	}
	return out
}
