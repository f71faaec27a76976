package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// textEscaper re-encodes decoded text the way an HTML serializer writes text
// nodes: only &, <, > and no-break space are escaped.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// Only these entities are decoded afterwards, in this order, one pass each.
// &nbsp; therefore stays encoded in the output.
var entityReplacements = [][2]string{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
}

// PlainText strips every tag from content, keeping text nodes only. Each
// text node is decoded, has its whitespace runs collapsed and is re-escaped;
// the common entities are then decoded and the result trimmed. Script and
// style bodies are dropped along with their tags.
func PlainText(content string) string {
	if content == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(content))
	var b strings.Builder
	hidden := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return decodeEntities(b.String())
		case html.TextToken:
			if hidden == 0 {
				b.WriteString(textEscaper.Replace(collapseWhitespace(string(z.Text()))))
			}
		case html.StartTagToken:
			if isHiddenElement(z) {
				hidden++
			}
		case html.EndTagToken:
			if isHiddenElement(z) && hidden > 0 {
				hidden--
			}
		}
	}
}

func isHiddenElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style:
		return true
	}
	return false
}

// collapseWhitespace turns each run of ASCII whitespace into one space.
// No-break spaces are content, not whitespace.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWhite := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			if !lastWhite {
				b.WriteByte(' ')
			}
			lastWhite = true
		default:
			b.WriteRune(r)
			lastWhite = false
		}
	}
	return b.String()
}

func decodeEntities(s string) string {
	for _, r := range entityReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return strings.TrimSpace(s)
}
