package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/tootview/app"
	"github.com/CrestNiraj12/tootview/domain"
	"github.com/CrestNiraj12/tootview/tui/common"
)

// Tab is one of the fixed timelines.
type Tab int

const (
	TabHome Tab = iota
	TabLocal
	TabGlobal
)

var tabNames = [...]string{"Home", "Local", "Global"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "?"
	}
	return tabNames[t]
}

type loadMode int

const (
	loadReplace loadMode = iota
	loadAppend           // older page, max_id
	loadPrepend          // newer statuses, since_id
)

// --- Messages ---

// StatusesLoadedMsg is sent when a timeline fetch completes successfully.
type StatusesLoadedMsg struct {
	Seq      int
	Mode     loadMode
	Statuses []domain.Status
}

// StatusesErrorMsg is sent when a timeline fetch fails.
type StatusesErrorMsg struct {
	Seq int
	Err error
}

// ReactionResultMsg carries the status returned by a reaction call.
type ReactionResultMsg struct {
	StatusID string
	Status   domain.Status
	Err      error
}

// --- Model ---

// Model holds the state for the timeline view.
type Model struct {
	timeline  app.TimelineService
	reactions app.ReactionService
	reaction  string // emoji sent by the react key
	limit     int

	tab      Tab
	profile  *domain.Account // non-nil while browsing one account's statuses
	statuses []domain.Status
	cursor   int
	offset   int // first rendered status

	loading  bool
	seq      int // id of the newest fetch; older responses are dropped
	err      error
	notice   string
	noOlder  bool
	spoilers map[string]bool // revealed content warnings, by status id
	media    map[string]bool // revealed sensitive media, by status id

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
	now     func() time.Time
}

// New creates a timeline model with injected dependencies.
func New(timeline app.TimelineService, reactions app.ReactionService, reaction string, limit int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	return Model{
		timeline:  timeline,
		reactions: reactions,
		reaction:  reaction,
		limit:     limit,
		tab:       TabHome,
		loading:   true,
		spoilers:  make(map[string]bool),
		media:     make(map[string]bool),
		keys:      common.DefaultKeyMap(),
		spinner:   s,
		width:     80,
		height:    24,
		now:       time.Now,
	}
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetch(m.seq, loadReplace, domain.PageParams{Limit: m.limit}),
		m.spinner.Tick,
	)
}

// Statuses returns the loaded statuses.
func (m Model) Statuses() []domain.Status {
	return m.statuses
}

// Tab returns the active timeline tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Profile returns the account being browsed, if any.
func (m Model) Profile() (domain.Account, bool) {
	if m.profile == nil {
		return domain.Account{}, false
	}
	return *m.profile, true
}

// Loading returns whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last fetch error, if any.
func (m Model) Err() error {
	return m.err
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the transient message for the status bar.
func (m Model) Notice() string {
	return m.notice
}

// Selected returns the highlighted status, if any.
func (m Model) Selected() (domain.Status, bool) {
	if len(m.statuses) == 0 {
		return domain.Status{}, false
	}
	return m.statuses[m.cursor], true
}

// InProfile reports whether esc should return to the timeline rather than quit.
func (m Model) InProfile() bool {
	return m.profile != nil
}
