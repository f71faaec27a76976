// Package richtext turns status HTML into plain text runs interleaved with
// custom emoji placeholders.
package richtext

import (
	"strings"

	"github.com/CrestNiraj12/tootview/domain"
)

// Kind distinguishes plain text runs from emoji placeholders.
type Kind int

const (
	Text Kind = iota
	Emoji
)

// Segment is either a run of plain text or a reference to a custom emoji image.
type Segment struct {
	Kind      Kind
	Text      string // set for Text
	Shortcode string // set for Emoji
	URL       string // set for Emoji
}

// Segments is an ordered rendering of one piece of content.
type Segments []Segment

// String flattens the segments back to text, writing emoji as :shortcode:.
func (s Segments) String() string {
	var b strings.Builder
	for _, seg := range s {
		switch seg.Kind {
		case Emoji:
			b.WriteString(":" + seg.Shortcode + ":")
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func (s Segments) appendText(text string) Segments {
	if text == "" {
		return s
	}
	return append(s, Segment{Kind: Text, Text: text})
}

// Render converts HTML content to segments, substituting each custom emoji.
//
// Emoji are matched in list order, not in order of appearance: each one is
// searched for from the current cursor, so an emoji whose only occurrence lies
// before an earlier match is left in the text. Each emoji matches at most
// once. Unmatched emoji are skipped silently.
func Render(content string, emojis []domain.CustomEmoji) Segments {
	return RenderText(PlainText(content), emojis)
}

// RenderText substitutes custom emoji in text that is already plain, such
// as a display name. The text is used verbatim: no tags are stripped and no
// entities are decoded.
func RenderText(plain string, emojis []domain.CustomEmoji) Segments {
	if plain == "" {
		return nil
	}

	var out Segments
	cursor := 0
	for _, e := range emojis {
		if e.Shortcode == "" {
			continue
		}
		idx := strings.Index(plain[cursor:], ":"+e.Shortcode+":")
		if idx < 0 {
			continue
		}
		start := cursor + idx
		out = out.appendText(plain[cursor:start])
		out = append(out, Segment{Kind: Emoji, Shortcode: e.Shortcode, URL: e.URL})
		cursor = start + len(e.Shortcode) + 2
	}
	return out.appendText(plain[cursor:])
}
