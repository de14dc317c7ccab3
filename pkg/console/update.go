package console

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/internal/session"
	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// Update is the main message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case backdropMsg:
		m.BackdropPhase++
		if !m.LoggedIn() {
			return m, backdropTick()
		}
		return m, nil

	case spinner.TickMsg:
		return m, m.Overlays.Update(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case dashboardMsg:
		m.Overlays.Preloader().Hide()
		if msg.err != nil {
			m.Overlays.ShowError(msg.err.Error(), "Load Failed")
			return m, nil
		}
		m.Dashboard = msg.data
		m.Tournaments = msg.data.Tournaments
		m.Users = msg.data.Users
		m.LastRefresh = time.Now()
		m.cacheTournaments()
		return m, nil

	case tournamentsMsg:
		m.Overlays.Preloader().Hide()
		if msg.err != nil {
			m.Overlays.ShowError(msg.err.Error(), "Load Failed")
			return m, nil
		}
		m.Tournaments = msg.list
		m.LastRefresh = time.Now()
		m.clampCursor(SectionTournaments, len(m.Tournaments))
		m.cacheTournaments()
		return m, nil

	case playersMsg:
		m.Overlays.Preloader().Hide()
		if msg.err != nil {
			m.Overlays.ShowError(msg.err.Error(), "Load Failed")
			return m, nil
		}
		m.Players = msg.list
		m.PlayersFor = msg.tournamentID
		m.LastRefresh = time.Now()
		m.clampCursor(SectionPlayers, len(m.Players))
		if m.Cache != nil {
			m.Cache.PutPlayers(msg.tournamentID, msg.list)
		}
		return m, nil

	case usersMsg:
		m.Overlays.Preloader().Hide()
		if msg.err != nil {
			m.Overlays.ShowError(msg.err.Error(), "Load Failed")
			return m, nil
		}
		m.Users = msg.list
		m.LastRefresh = time.Now()
		m.clampCursor(SectionUsers, len(m.Users))
		return m, nil

	case userSavedMsg:
		m.Overlays.Preloader().Hide()
		if msg.err != nil {
			m.Overlays.ShowError(msg.err.Error(), "Save Failed")
			return m, nil
		}
		return m, tea.Batch(m.Overlays.Preloader().Show(), m.fetchUsers())

	case deletedMsg:
		return m.handleDeleted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.Overlays.Preloader().Hide()
	if msg.err != nil {
		m.PasswordInput.SetValue("")
		m.Overlays.ShowError(msg.err.Error(), "Login Failed")
		return m, nil
	}

	sess := &session.Session{
		AccessToken:  msg.res.Access,
		RefreshToken: msg.res.Refresh,
		Email:        msg.res.Email,
		Name:         msg.res.Name,
		Groups:       msg.res.Groups,
		IssuedAt:     time.Now(),
	}
	m.Session = sess
	if m.SaveSession != nil {
		if err := m.SaveSession(sess); err != nil {
			m.Overlays.ShowError(fmt.Sprintf("Signed in, but saving the session failed: %v", err), "Session")
		}
	}
	return m, tea.Batch(m.loadCached(), m.refreshSection())
}

func (m *Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	m.Overlays.Preloader().Hide()
	if m.pendingConfirm != nil {
		m.pendingConfirm.Close()
		m.pendingConfirm = nil
	}
	if msg.err != nil {
		m.Overlays.ShowError(msg.err.Error(), "Delete Failed")
		return m, nil
	}
	switch msg.kind {
	case "user":
		return m, tea.Batch(m.Overlays.Preloader().Show(), m.fetchUsers())
	case "tournament":
		return m, tea.Batch(m.Overlays.Preloader().Show(), m.fetchTournaments())
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even under an overlay
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The overlay layer gets keys first while anything is open
	if m.Overlays.Active() {
		_, cmd, handled := m.Overlays.HandleKey(msg)
		if handled {
			return m, tea.Batch(cmd, m.drainQueued())
		}
		// Unhandled keys under an overlay are swallowed, not passed through
		return m, nil
	}

	if !m.LoggedIn() {
		return m.handleLoginKey(msg)
	}

	if m.FilterMode {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.openHelp()
		return m, nil
	case "r":
		return m, m.refreshSection()
	case "/":
		m.FilterMode = true
		m.Filter = ""
		return m, nil
	case "tab":
		next := Section((int(m.ActiveSection) + 1) % len(sectionNames))
		return m, m.setSection(next)
	case "shift+tab":
		prev := Section((int(m.ActiveSection) + len(sectionNames) - 1) % len(sectionNames))
		return m, m.setSection(prev)
	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(msg.String())
		return m, m.setSection(Section(n - 1))
	case "b":
		m.SidebarCollapsed = !m.SidebarCollapsed
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "enter":
		return m.activateRow()
	case "n":
		if m.ActiveSection == SectionUsers {
			m.openUserForm(nil)
		}
		return m, nil
	case "e":
		switch m.ActiveSection {
		case SectionUsers:
			if u := m.selectedUser(); u != nil {
				m.openUserForm(u)
			}
		case SectionSettings:
			m.openSettingsForm()
		}
		return m, nil
	case "d", "delete", "backspace":
		return m.confirmDelete()
	}
	// esc with nothing open is deliberately ignored
	return m, nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusLogin((m.LoginFocus + 1) % 2)
		return m, nil
	case "shift+tab", "up":
		m.focusLogin((m.LoginFocus + 1) % 2)
		return m, nil
	case "enter":
		if m.LoginFocus == 0 {
			m.focusLogin(1)
			return m, nil
		}
		return m, m.submitLogin()
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.LoginFocus == 0 {
		m.EmailInput, cmd = m.EmailInput.Update(msg)
	} else {
		m.PasswordInput, cmd = m.PasswordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusLogin(i int) {
	m.LoginFocus = i
	if i == 0 {
		m.EmailInput.Focus()
		m.PasswordInput.Blur()
	} else {
		m.EmailInput.Blur()
		m.PasswordInput.Focus()
	}
}

// submitLogin validates locally then runs the login call behind the
// preloader.
func (m *Model) submitLogin() tea.Cmd {
	email := m.EmailInput.Value()
	password := m.PasswordInput.Value()
	if email == "" || password == "" {
		m.Overlays.ShowError("Email and password are required.", "Login")
		return nil
	}
	return tea.Batch(m.Overlays.Preloader().Show(), m.loginCmd(email, password))
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.FilterMode = false
		m.Filter = ""
		return m, nil
	case "enter":
		entries := filterSections(m.Filter)
		m.FilterMode = false
		m.Filter = ""
		if len(entries) > 0 {
			return m, m.setSection(entries[0].Section)
		}
		return m, nil
	case "backspace":
		if len(m.Filter) > 0 {
			m.Filter = m.Filter[:len(m.Filter)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.Filter += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	act := m.Mouse.HandleMouse(msg)

	if m.Overlays.Active() {
		_, cmd, _ := m.Overlays.HandleMouse(act)
		return m, tea.Batch(cmd, m.drainQueued())
	}

	if act.Type != mouse.ActionClick || act.Region == nil {
		return m, nil
	}

	switch {
	case len(act.Region.ID) > 8 && act.Region.ID[:8] == "sidebar.":
		if i, err := strconv.Atoi(act.Region.ID[8:]); err == nil {
			return m, m.setSection(Section(i))
		}
	case len(act.Region.ID) > 4 && act.Region.ID[:4] == "row.":
		if i, err := strconv.Atoi(act.Region.ID[4:]); err == nil {
			m.RowCursor[m.ActiveSection] = i
			if act.IsDoubleClick {
				return m.activateRow()
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	n := m.rowCount()
	if n == 0 {
		return
	}
	cur := m.RowCursor[m.ActiveSection] + delta
	if cur < 0 {
		cur = 0
	}
	if cur >= n {
		cur = n - 1
	}
	m.RowCursor[m.ActiveSection] = cur
}

func (m *Model) rowCount() int {
	switch m.ActiveSection {
	case SectionTournaments:
		return len(m.Tournaments)
	case SectionPlayers:
		return len(m.Players)
	case SectionUsers:
		return len(m.Users)
	}
	return 0
}

func (m *Model) clampCursor(s Section, n int) {
	if m.RowCursor[s] >= n {
		if n == 0 {
			m.RowCursor[s] = 0
		} else {
			m.RowCursor[s] = n - 1
		}
	}
}

// activateRow opens the row under the cursor: a tournament drills into its
// players, a user opens the edit form, settings opens the settings form.
func (m *Model) activateRow() (tea.Model, tea.Cmd) {
	switch m.ActiveSection {
	case SectionTournaments:
		cur := m.RowCursor[SectionTournaments]
		if cur < len(m.Tournaments) {
			m.PlayersFor = m.Tournaments[cur].ID
			m.ActiveSection = SectionPlayers
			m.SidebarCursor = int(SectionPlayers)
			m.loadCachedPlayers(m.PlayersFor)
			return m, tea.Batch(m.Overlays.Preloader().Show(), m.fetchPlayers(m.PlayersFor))
		}
	case SectionUsers:
		if u := m.selectedUser(); u != nil {
			m.openUserForm(u)
		}
	case SectionSettings:
		m.openSettingsForm()
	}
	return m, nil
}

// drainQueued flushes commands queued by overlay callbacks during this
// message.
func (m *Model) drainQueued() tea.Cmd {
	if len(m.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.queued))
	copy(cmds, m.queued)
	m.queued = m.queued[:0]
	return tea.Batch(cmds...)
}

func (m *Model) cacheTournaments() {
	if m.Cache != nil && len(m.Tournaments) > 0 {
		m.Cache.PutTournaments(m.Tournaments)
	}
}
