package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/tootview/app"
	"github.com/CrestNiraj12/tootview/domain"
)

type timelineCall struct {
	Op        string
	AccountID string
	Page      domain.PageParams
}

type stubTimeline struct {
	mu       sync.Mutex
	calls    []timelineCall
	statuses []domain.Status
	err      error
}

func (s *stubTimeline) record(op, accountID string, page domain.PageParams) ([]domain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, timelineCall{Op: op, AccountID: accountID, Page: page})
	return s.statuses, s.err
}

func (s *stubTimeline) lastCall(t *testing.T) timelineCall {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		t.Fatalf("no timeline call recorded")
	}
	return s.calls[len(s.calls)-1]
}

func (s *stubTimeline) FetchHome(_ context.Context, p domain.PageParams) ([]domain.Status, error) {
	return s.record("home", "", p)
}
func (s *stubTimeline) FetchLocal(_ context.Context, p domain.PageParams) ([]domain.Status, error) {
	return s.record("local", "", p)
}
func (s *stubTimeline) FetchGlobal(_ context.Context, p domain.PageParams) ([]domain.Status, error) {
	return s.record("global", "", p)
}
func (s *stubTimeline) FetchAccountStatuses(_ context.Context, id string, p domain.PageParams) ([]domain.Status, error) {
	return s.record("account", id, p)
}

type reactionCall struct {
	Add      bool
	StatusID string
	Emoji    string
}

type stubReactions struct {
	calls  []reactionCall
	result domain.Status
	err    error
}

func (s *stubReactions) AddReaction(_ context.Context, id, emoji string) (domain.Status, error) {
	s.calls = append(s.calls, reactionCall{Add: true, StatusID: id, Emoji: emoji})
	return s.result, s.err
}

func (s *stubReactions) RemoveReaction(_ context.Context, id, emoji string) (domain.Status, error) {
	s.calls = append(s.calls, reactionCall{Add: false, StatusID: id, Emoji: emoji})
	return s.result, s.err
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func makeStatus(id string) domain.Status {
	return domain.Status{
		ID:        id,
		Content:   "<p>hello " + id + "</p>",
		CreatedAt: testNow.Add(-5 * time.Minute).Format(time.RFC3339),
		Account: domain.Account{
			ID:       "acct-" + id,
			Username: "user" + id,
			Acct:     "user" + id + "@example.test",
		},
	}
}

func newTestModel(tl *stubTimeline, rx *stubReactions) Model {
	var reactions app.ReactionService
	if rx != nil {
		reactions = rx
	}
	m := New(tl, reactions, "👍", 20)
	m.width = 200
	m.height = 200
	m.now = func() time.Time { return testNow }
	return m
}

// loaded returns a model that has finished its first load with statuses.
func loaded(t *testing.T, tl *stubTimeline, rx *stubReactions, statuses ...domain.Status) Model {
	t.Helper()
	m := newTestModel(tl, rx)
	m, _ = m.Update(StatusesLoadedMsg{Seq: m.seq, Mode: loadReplace, Statuses: statuses})
	if m.Loading() {
		t.Fatalf("model still loading after first page")
	}
	return m
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return cmd()
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
