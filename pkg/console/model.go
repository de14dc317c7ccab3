// Package console is the interactive admin console for a tournament server.
// It is a full-screen Bubble Tea program: a sidebar of sections, a content
// panel, and an overlay layer for dialogs, forms, errors and the preloader.
package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/internal/api"
	"github.com/courtsidehq/courtside/internal/cache"
	"github.com/courtsidehq/courtside/internal/models"
	"github.com/courtsidehq/courtside/internal/session"
	"github.com/courtsidehq/courtside/pkg/console/mouse"
	"github.com/courtsidehq/courtside/pkg/console/overlay"
)

// Model is the main Bubble Tea model for the console.
type Model struct {
	// Injected dependencies
	API     adminAPI
	Cache   *cache.Cache     // may be nil (cache disabled)
	Session *session.Session // nil until login succeeds
	Config  *models.Config

	// SaveSession persists the session after login; nil in tests.
	SaveSession func(*session.Session) error
	// SaveConfig persists config changes (last section); nil in tests.
	SaveConfig func(*models.Config) error

	// Window dimensions
	Width  int
	Height int

	// Overlay layer
	Overlays *overlay.Manager
	Mouse    *mouse.Handler

	// Login screen state (shown while Session is nil)
	EmailInput    textinput.Model
	PasswordInput textinput.Model
	LoginFocus    int // 0=email, 1=password
	BackdropPhase int

	// Navigation
	ActiveSection    Section
	SidebarCursor    int
	SidebarCollapsed bool
	FilterMode       bool
	Filter           string

	// Panel data
	Dashboard   *api.Dashboard
	Tournaments []models.Tournament
	Players     []models.Player
	PlayersFor  string // tournament ID whose players are loaded
	Users       []models.User

	// Per-section cursor position
	RowCursor map[Section]int

	LastRefresh time.Time
	Err         error

	// queued collects commands produced by overlay callbacks (form submit,
	// dialogue confirm) during one message; Update flushes it after the
	// overlay layer runs.
	queued []tea.Cmd
	// pendingConfirm is the dialogue waiting on a delete round-trip. Confirm
	// does not close it; the completion message does.
	pendingConfirm *overlay.Dialogue
}

// New builds the console model. sess may be nil, in which case the login
// screen is shown first.
func New(client adminAPI, sess *session.Session, cfg *models.Config, c *cache.Cache) *Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120
	password.Width = 32

	if cfg == nil {
		cfg = &models.Config{}
	}

	m := &Model{
		API:           client,
		Cache:         c,
		Session:       sess,
		Config:        cfg,
		Overlays:      overlay.NewManager(),
		Mouse:         mouse.NewHandler(),
		EmailInput:    email,
		PasswordInput: password,
		ActiveSection: sectionFromName(cfg.LastSection),
		RowCursor:     make(map[Section]int),
	}
	m.SidebarCursor = int(m.ActiveSection)
	return m
}

// LoggedIn reports whether a usable session is present.
func (m *Model) LoggedIn() bool {
	return m.Session != nil && !m.Session.Expired()
}

// Init starts the backdrop animation and, when already logged in, the first
// data fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{backdropTick(), textinput.Blink}
	if m.LoggedIn() {
		cmds = append(cmds, m.loadCached(), m.refreshSection())
	}
	return tea.Batch(cmds...)
}

// refreshSection fetches the active section's data, behind the preloader.
func (m *Model) refreshSection() tea.Cmd {
	var fetch tea.Cmd
	switch m.ActiveSection {
	case SectionDashboard:
		fetch = m.fetchDashboard()
	case SectionTournaments:
		fetch = m.fetchTournaments()
	case SectionPlayers:
		if id := m.selectedTournamentID(); id != "" {
			m.loadCachedPlayers(id)
			fetch = m.fetchPlayers(id)
		} else {
			fetch = m.fetchTournaments()
		}
	case SectionUsers:
		fetch = m.fetchUsers()
	}
	if fetch == nil {
		return nil
	}
	return tea.Batch(m.Overlays.Preloader().Show(), fetch)
}

// loadCached paints the last known tournament list before the network
// answers, stamping the header with the cache's fetch time. Errors are
// ignored; the cache is best-effort.
func (m *Model) loadCached() tea.Cmd {
	if m.Cache == nil {
		return nil
	}
	if ts, err := m.Cache.Tournaments(); err == nil && len(ts) > 0 {
		m.Tournaments = ts
		if at, err := m.Cache.FetchedAt(); err == nil && !at.IsZero() {
			m.LastRefresh = at
		}
	}
	return nil
}

// loadCachedPlayers paints the cached player list for a tournament while the
// fetch is in flight.
func (m *Model) loadCachedPlayers(tournamentID string) {
	if m.Cache == nil {
		return
	}
	if ps, err := m.Cache.Players(tournamentID); err == nil && len(ps) > 0 {
		m.Players = ps
		m.PlayersFor = tournamentID
	}
}

// selectedTournamentID returns the tournament under the cursor in the
// tournaments section, or the one players were last loaded for.
func (m *Model) selectedTournamentID() string {
	if m.PlayersFor != "" {
		return m.PlayersFor
	}
	cur := m.RowCursor[SectionTournaments]
	if cur >= 0 && cur < len(m.Tournaments) {
		return m.Tournaments[cur].ID
	}
	return ""
}

// setSection switches the active section and persists the choice.
func (m *Model) setSection(s Section) tea.Cmd {
	if s == m.ActiveSection {
		return nil
	}
	m.ActiveSection = s
	m.SidebarCursor = int(s)
	m.Config.LastSection = s.String()
	if m.SaveConfig != nil {
		m.SaveConfig(m.Config)
	}
	return m.refreshSection()
}
