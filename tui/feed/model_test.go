package feed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CrestNiraj12/tootview/domain"
)

func TestInit_FetchesHomeWithLimit(t *testing.T) {
	tl := &stubTimeline{statuses: []domain.Status{makeStatus("1")}}
	m := newTestModel(tl, nil)
	if !m.Loading() {
		t.Fatalf("new model should start loading")
	}

	msg := m.fetch(m.seq, loadReplace, domain.PageParams{Limit: m.limit})()
	got := tl.lastCall(t)
	if diff := cmp.Diff(timelineCall{Op: "home", Page: domain.PageParams{Limit: 20}}, got); diff != "" {
		t.Fatalf("unexpected call (-want +got):\n%s", diff)
	}

	m, _ = m.Update(msg)
	if m.Loading() || len(m.Statuses()) != 1 {
		t.Fatalf("expected one loaded status, got %d (loading=%v)", len(m.Statuses()), m.Loading())
	}
}

func TestSwitchTab_FetchesMatchingTimeline(t *testing.T) {
	tests := []struct {
		key  string
		tab  Tab
		want string
	}{
		{key: "2", tab: TabLocal, want: "local"},
		{key: "3", tab: TabGlobal, want: "global"},
		{key: "tab", tab: TabLocal, want: "local"},
		{key: "shift+tab", tab: TabGlobal, want: "global"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			tl := &stubTimeline{}
			m := loaded(t, tl, nil, makeStatus("1"))

			m, cmd := m.Update(keyMsg(tc.key))
			if m.Tab() != tc.tab {
				t.Fatalf("expected tab %v, got %v", tc.tab, m.Tab())
			}
			if !m.Loading() || len(m.Statuses()) != 0 {
				t.Fatalf("tab switch should clear and reload")
			}
			runCmd(t, cmd)
			if got := tl.lastCall(t).Op; got != tc.want {
				t.Fatalf("expected %s fetch, got %s", tc.want, got)
			}
		})
	}
}

func TestSwitchTab_SameTabIsNoop(t *testing.T) {
	m := loaded(t, &stubTimeline{}, nil, makeStatus("1"))
	m, cmd := m.Update(keyMsg("1"))
	if cmd != nil || len(m.Statuses()) != 1 {
		t.Fatalf("selecting the active tab must not reload")
	}
}

func TestLoadMore_UsesLastIDAsMaxID(t *testing.T) {
	tl := &stubTimeline{statuses: []domain.Status{makeStatus("1")}}
	m := loaded(t, tl, nil, makeStatus("3"), makeStatus("2"))

	m, cmd := m.Update(keyMsg("m"))
	msg := runCmd(t, cmd)
	if got := tl.lastCall(t); got.Page.MaxID != "2" || got.Page.SinceID != "" || got.Page.Limit != 20 {
		t.Fatalf("unexpected page params: %+v", got.Page)
	}

	m, _ = m.Update(msg)
	ids := statusIDs(m.Statuses())
	if diff := cmp.Diff([]string{"3", "2", "1"}, ids); diff != "" {
		t.Fatalf("older page must be appended (-want +got):\n%s", diff)
	}
}

func TestLoadMore_EmptyPageStopsPaging(t *testing.T) {
	tl := &stubTimeline{}
	m := loaded(t, tl, nil, makeStatus("2"))

	m, cmd := m.Update(keyMsg("m"))
	m, _ = m.Update(runCmd(t, cmd))
	if m.Notice() != "No older statuses." {
		t.Fatalf("unexpected notice: %q", m.Notice())
	}
	if _, cmd := m.Update(keyMsg("m")); cmd != nil {
		t.Fatalf("no further paging after an empty page")
	}
}

func TestRefresh_PrependsNewerWithSinceID(t *testing.T) {
	tl := &stubTimeline{statuses: []domain.Status{makeStatus("5"), makeStatus("4")}}
	m := loaded(t, tl, nil, makeStatus("3"), makeStatus("2"))
	m, _ = m.Update(keyMsg("j"))

	m, cmd := m.Update(keyMsg("r"))
	msg := runCmd(t, cmd)
	if got := tl.lastCall(t); got.Page.SinceID != "3" || got.Page.MaxID != "" {
		t.Fatalf("unexpected page params: %+v", got.Page)
	}

	m, _ = m.Update(msg)
	if diff := cmp.Diff([]string{"5", "4", "3", "2"}, statusIDs(m.Statuses())); diff != "" {
		t.Fatalf("newer statuses must be prepended (-want +got):\n%s", diff)
	}
	if sel, _ := m.Selected(); sel.ID != "2" {
		t.Fatalf("selection must stay on the same status, got %s", sel.ID)
	}
}

func TestStaleResponsesAreDropped(t *testing.T) {
	tl := &stubTimeline{}
	m := loaded(t, tl, nil, makeStatus("1"))
	staleSeq := m.seq

	m, _ = m.Update(keyMsg("2"))
	m, _ = m.Update(StatusesLoadedMsg{Seq: staleSeq, Mode: loadReplace, Statuses: []domain.Status{makeStatus("old")}})
	if len(m.Statuses()) != 0 || !m.Loading() {
		t.Fatalf("response from a previous tab must be ignored")
	}
	m, _ = m.Update(StatusesErrorMsg{Seq: staleSeq, Err: errors.New("late")})
	if m.Err() != nil {
		t.Fatalf("stale error must be ignored")
	}
}

func TestFetchError_IsKept(t *testing.T) {
	apiErr := &domain.ServiceError{Op: "fetchHome", StatusCode: 401}
	tl := &stubTimeline{err: apiErr}
	m := newTestModel(tl, nil)

	m, _ = m.Update(m.fetch(m.seq, loadReplace, domain.PageParams{})())
	if !domain.IsUnauthorized(m.Err()) {
		t.Fatalf("expected 401 service error, got %v", m.Err())
	}
	if m.Loading() {
		t.Fatalf("loading must end on error")
	}
}

func TestProfile_OpensAuthorOfDisplayedStatus(t *testing.T) {
	tl := &stubTimeline{}
	boosted := makeStatus("9")
	wrapper := makeStatus("10")
	wrapper.Reblog = &boosted
	m := loaded(t, tl, nil, wrapper)

	m, cmd := m.Update(keyMsg("p"))
	acct, ok := m.Profile()
	if !ok || acct.ID != "acct-9" {
		t.Fatalf("expected profile of the boosted author, got %+v", acct)
	}
	runCmd(t, cmd)
	if got := tl.lastCall(t); got.Op != "account" || got.AccountID != "acct-9" {
		t.Fatalf("unexpected fetch: %+v", got)
	}

	m, cmd = m.Update(keyMsg("esc"))
	if m.InProfile() {
		t.Fatalf("esc must leave the profile")
	}
	runCmd(t, cmd)
	if got := tl.lastCall(t).Op; got != "home" {
		t.Fatalf("expected home reload after leaving profile, got %s", got)
	}
}

func TestProfile_RequiresAccountID(t *testing.T) {
	tl := &stubTimeline{}
	st := makeStatus("1")
	st.Account.ID = ""
	m := loaded(t, tl, nil, st)

	m, cmd := m.Update(keyMsg("p"))
	if m.InProfile() {
		t.Fatalf("profile must not open for an account without id")
	}
	if cmd != nil {
		t.Fatalf("no fetch expected, got a command")
	}
	if m.Notice() == "" {
		t.Fatalf("expected a notice explaining the refusal")
	}
	if len(tl.calls) != 0 {
		t.Fatalf("no timeline call expected, got %+v", tl.calls)
	}
	if len(m.Statuses()) != 1 {
		t.Fatalf("timeline must stay as it was")
	}
}

func TestCursorBounds(t *testing.T) {
	m := loaded(t, &stubTimeline{}, nil, makeStatus("1"), makeStatus("2"))
	m, _ = m.Update(keyMsg("k"))
	if m.Cursor() != 0 {
		t.Fatalf("cursor must not go above 0")
	}
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	if m.Cursor() != 1 {
		t.Fatalf("cursor must stop at last status, got %d", m.Cursor())
	}
}

func TestKeepCursorVisible_ScrollsOffset(t *testing.T) {
	statuses := make([]domain.Status, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		statuses = append(statuses, makeStatus(id))
	}
	m := loaded(t, &stubTimeline{}, nil, statuses...)
	m.height = 8 + 2*7 // two statuses visible

	for range 5 {
		m, _ = m.Update(keyMsg("j"))
	}
	if m.cursor != 5 || m.offset != 4 {
		t.Fatalf("expected offset to follow cursor: cursor=%d offset=%d", m.cursor, m.offset)
	}
	for range 5 {
		m, _ = m.Update(keyMsg("k"))
	}
	if m.offset != 0 {
		t.Fatalf("offset must return to top, got %d", m.offset)
	}
}

func statusIDs(sts []domain.Status) []string {
	out := make([]string, 0, len(sts))
	for _, st := range sts {
		out = append(out, st.ID)
	}
	return out
}
