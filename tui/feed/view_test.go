package feed

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/tootview/domain"
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_RendersStatusParts(t *testing.T) {
	st := makeStatus("1")
	st.Content = "<p>Hello :blobcat: &amp; friends</p>"
	st.Emojis = []domain.CustomEmoji{{Shortcode: "blobcat", URL: "https://x/blobcat.png"}}
	st.Account.DisplayName = ""
	st.RepliesCount, st.ReblogsCount, st.FavouritesCount = 1, 2, 3
	st.EmojiReactions = []domain.EmojiReaction{
		{Name: "👍", Count: 2, Me: true},
		{Name: "blobcat", Count: 1, URL: "https://x/blobcat.png"},
		{Name: "gone", Count: 0},
	}
	st.Card = &domain.Card{Title: "A link"}

	out := plainView(loaded(t, &stubTimeline{}, nil, st))
	for _, want := range []string{
		"user1",                  // username fallback for empty display name
		"@user1@example.test",    // acct
		"5m",                     // relative time
		"Hello :blobcat: & friends",
		"↩ 1", "🔁 2", "★ 3",
		"👍 2", ":blobcat: 1",
		"🔗 A link",
		"1/1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "gone") {
		t.Fatalf("zero-count reaction must be hidden:\n%s", out)
	}
	if strings.Contains(out, "<p>") {
		t.Fatalf("markup leaked into view:\n%s", out)
	}
}

func TestView_DisplayNameIsPlainText(t *testing.T) {
	st := makeStatus("1")
	st.Account.DisplayName = "I <heart> Go &amp; :blobcat:"
	st.Account.Emojis = []domain.CustomEmoji{{Shortcode: "blobcat", URL: "https://x/blobcat.png"}}

	out := plainView(loaded(t, &stubTimeline{}, nil, st))
	if !strings.Contains(out, "I <heart> Go &amp; :blobcat:") {
		t.Fatalf("display name must be shown verbatim:\n%s", out)
	}
}

func TestView_BoostBanner(t *testing.T) {
	boosted := makeStatus("9")
	boosted.Account.DisplayName = "Original Author"
	wrapper := makeStatus("10")
	wrapper.Account.DisplayName = "Booster"
	wrapper.Content = "<p>wrapper content</p>"
	wrapper.Reblog = &boosted

	out := plainView(loaded(t, &stubTimeline{}, nil, wrapper))
	if !strings.Contains(out, "🔁 Booster boosted") || !strings.Contains(out, "Original Author") {
		t.Fatalf("expected boost banner and original author:\n%s", out)
	}
	if !strings.Contains(out, "hello 9") || strings.Contains(out, "wrapper content") {
		t.Fatalf("boost must show the boosted content only:\n%s", out)
	}
}

func TestView_SpoilerToggle(t *testing.T) {
	st := makeStatus("1")
	st.SpoilerText = "food"
	st.Content = "<p>secret recipe</p>"
	m := loaded(t, &stubTimeline{}, nil, st)

	out := plainView(m)
	if !strings.Contains(out, "CW: food") || !strings.Contains(out, "show more (13 chars)") {
		t.Fatalf("expected collapsed spoiler:\n%s", out)
	}
	if strings.Contains(out, "secret recipe") {
		t.Fatalf("content must be hidden behind the spoiler:\n%s", out)
	}

	m, _ = m.Update(keyMsg("s"))
	out = plainView(m)
	if !strings.Contains(out, "secret recipe") || !strings.Contains(out, "hide") {
		t.Fatalf("expected revealed spoiler:\n%s", out)
	}
}

func TestView_SensitiveMedia(t *testing.T) {
	st := makeStatus("1")
	st.Sensitive = true
	st.MediaAttachments = []domain.MediaAttachment{{URL: "https://x/a.png"}, {URL: "https://x/b.png"}}
	m := loaded(t, &stubTimeline{}, nil, st)

	out := plainView(m)
	if !strings.Contains(out, "[sensitive]") || strings.Contains(out, "https://x/a.png") {
		t.Fatalf("sensitive media must be hidden:\n%s", out)
	}

	m, _ = m.Update(keyMsg("v"))
	out = plainView(m)
	if !strings.Contains(out, "https://x/a.png (+1)") {
		t.Fatalf("expected revealed media:\n%s", out)
	}
}

func TestView_StripsTerminalEscapes(t *testing.T) {
	st := makeStatus("1")
	st.Content = "<p>safe\x1b[2Jtext</p>"
	st.Account.DisplayName = "evil\x1b]0;title\x07name"
	out := rawView(t, st)
	if strings.Contains(out, "\x1b[2J") || strings.Contains(out, "\x1b]0;") {
		t.Fatalf("escape sequences from remote content must be stripped: %q", out)
	}
	if !strings.Contains(ansi.Strip(out), "safetext") {
		t.Fatalf("expected sanitized content: %q", out)
	}
}

func rawView(t *testing.T, st domain.Status) string {
	t.Helper()
	return loaded(t, &stubTimeline{}, nil, st).View()
}

func TestView_LoadingErrorAndEmpty(t *testing.T) {
	m := newTestModel(&stubTimeline{}, nil)
	if out := plainView(m); !strings.Contains(out, "Loading statuses") {
		t.Fatalf("expected loading state:\n%s", out)
	}

	m, _ = m.Update(StatusesErrorMsg{Seq: m.seq, Err: &domain.ServiceError{Op: "fetchHome", StatusCode: 401}})
	if out := plainView(m); !strings.Contains(out, "unauthorized (401)") {
		t.Fatalf("expected error state:\n%s", out)
	}

	m = loaded(t, &stubTimeline{}, nil)
	if out := plainView(m); !strings.Contains(out, "Nothing here yet") {
		t.Fatalf("expected empty state:\n%s", out)
	}
}

func TestView_Header(t *testing.T) {
	m := loaded(t, &stubTimeline{}, nil, makeStatus("1"))
	out := plainView(m)
	for _, tab := range []string{"Home", "Local", "Global"} {
		if !strings.Contains(out, tab) {
			t.Fatalf("expected tab %q in header:\n%s", tab, out)
		}
	}

	m, _ = m.Update(keyMsg("p"))
	out = plainView(m)
	if !strings.Contains(out, "@user1@example.test") || !strings.Contains(out, "esc: back") {
		t.Fatalf("expected profile header:\n%s", out)
	}
}
