package console

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtsidehq/courtside/internal/api"
	"github.com/courtsidehq/courtside/internal/cache"
	"github.com/courtsidehq/courtside/internal/models"
	"github.com/courtsidehq/courtside/internal/session"
	"github.com/courtsidehq/courtside/pkg/console/overlay"
)

// fakeAPI records calls and serves canned data.
type fakeAPI struct {
	loginErr    error
	tournaments []models.Tournament
	players     []models.Player
	users       []models.User

	deletedUsers       []string
	deletedTournaments []string
	created            []map[string]string
	updated            map[string]map[string]string
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.LoginResult{
		Access: "acc", Refresh: "ref",
		Email: email, Name: "Test Admin", Groups: []string{"admin"},
	}, nil
}

func (f *fakeAPI) FetchDashboard(context.Context) (*api.Dashboard, error) {
	return &api.Dashboard{Tournaments: f.tournaments, Users: f.users}, nil
}

func (f *fakeAPI) ListTournaments(context.Context) ([]models.Tournament, error) {
	return f.tournaments, nil
}

func (f *fakeAPI) ListPlayers(context.Context, string) ([]models.Player, error) {
	return f.players, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, fields map[string]string) (*models.User, error) {
	f.created = append(f.created, fields)
	return &models.User{ID: "new"}, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id string, fields map[string]string) (*models.User, error) {
	if f.updated == nil {
		f.updated = make(map[string]map[string]string)
	}
	f.updated[id] = fields
	return &models.User{ID: id}, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id string) error {
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeAPI) DeleteTournament(_ context.Context, id string) error {
	f.deletedTournaments = append(f.deletedTournaments, id)
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loggedInModel(f *fakeAPI) *Model {
	m := New(f, &session.Session{
		AccessToken: "acc",
		Email:       "admin@example.com",
		Name:        "Test Admin",
		IssuedAt:    time.Now(),
	}, &models.Config{}, nil)
	m.Width = 100
	m.Height = 30
	return m
}

func press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

func TestLoginEmptyFieldsShowsError(t *testing.T) {
	m := New(&fakeAPI{}, nil, &models.Config{}, nil)
	m.Width, m.Height = 80, 24

	press(m, "enter") // email -> password
	press(m, "enter") // submit with both empty

	if !m.Overlays.Active() {
		t.Fatal("expected error modal for empty credentials")
	}
	if m.LoggedIn() {
		t.Error("should not be logged in")
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	m := New(&fakeAPI{loginErr: errors.New("Invalid credentials")}, nil, &models.Config{}, nil)
	m.Width, m.Height = 80, 24

	m.EmailInput.SetValue("a@b.c")
	m.PasswordInput.SetValue("wrong")
	m.focusLogin(1)
	cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("expected login command")
	}
	if !m.Overlays.Active() {
		t.Fatal("expected preloader while login runs")
	}

	m.Update(loginResultMsg{err: errors.New("Invalid credentials")})
	if !m.Overlays.Active() {
		t.Fatal("expected error modal after failed login")
	}
	if m.PasswordInput.Value() != "" {
		t.Error("password not cleared after failure")
	}

	view := m.View()
	if !strings.Contains(view, "Invalid credentials") {
		t.Error("error modal does not show the server message")
	}

	// Acknowledge and the screen is interactive again
	press(m, "enter")
	if m.Overlays.Active() {
		t.Error("error modal still open after ack")
	}
}

func TestLoginSuccessStoresSession(t *testing.T) {
	var saved *session.Session
	m := New(&fakeAPI{}, nil, &models.Config{}, nil)
	m.Width, m.Height = 80, 24
	m.SaveSession = func(s *session.Session) error {
		saved = s
		return nil
	}

	m.Update(loginResultMsg{res: &api.LoginResult{
		Access: "acc", Refresh: "ref",
		Email: "a@b.c", Name: "Ada", Groups: []string{"admin"},
	}})

	if !m.LoggedIn() {
		t.Fatal("not logged in after success")
	}
	if saved == nil || saved.AccessToken != "acc" || saved.Name != "Ada" {
		t.Errorf("session not persisted: %+v", saved)
	}
}

func TestEscWithNothingOpenIsIgnored(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	if cmd := press(m, "esc"); cmd != nil {
		t.Errorf("esc with nothing open produced a command")
	}
	if m.Overlays.Active() {
		t.Error("esc opened something")
	}
}

func TestSectionSwitching(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	press(m, "tab")
	if m.ActiveSection != SectionTournaments {
		t.Errorf("after tab section = %v", m.ActiveSection)
	}
	// land the fetch so the preloader comes down before the next key
	m.Update(tournamentsMsg{})

	press(m, "shift+tab")
	if m.ActiveSection != SectionDashboard {
		t.Errorf("after shift+tab section = %v", m.ActiveSection)
	}
	m.Update(dashboardMsg{data: &api.Dashboard{}})

	press(m, "4")
	if m.ActiveSection != SectionUsers {
		t.Errorf("after 4 section = %v", m.ActiveSection)
	}
}

func TestSectionPersistedToConfig(t *testing.T) {
	var savedSection string
	m := loggedInModel(&fakeAPI{})
	m.SaveConfig = func(c *models.Config) error {
		savedSection = c.LastSection
		return nil
	}

	press(m, "2")
	if savedSection != "Tournaments" {
		t.Errorf("persisted section = %q", savedSection)
	}
}

func TestFilterJumpsToSection(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	press(m, "/")
	if !m.FilterMode {
		t.Fatal("filter mode not entered")
	}
	press(m, "u")
	press(m, "s")
	press(m, "enter")

	if m.FilterMode {
		t.Error("filter mode still on after enter")
	}
	if m.ActiveSection != SectionUsers {
		t.Errorf("section = %v, want Users", m.ActiveSection)
	}
}

func TestFilterEscCancels(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	press(m, "/")
	press(m, "x")
	press(m, "esc")
	if m.FilterMode || m.Filter != "" {
		t.Errorf("filter not reset: mode=%v filter=%q", m.FilterMode, m.Filter)
	}
	if m.ActiveSection != SectionDashboard {
		t.Errorf("section changed on cancel: %v", m.ActiveSection)
	}
}

func TestDeleteUserFlow(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	m.ActiveSection = SectionUsers
	m.Users = []models.User{
		{ID: "u1", Email: "first@example.com"},
		{ID: "u2", Email: "second@example.com"},
	}
	m.RowCursor[SectionUsers] = 1

	press(m, "d")
	if !m.Overlays.Active() {
		t.Fatal("confirmation dialogue not shown")
	}
	view := m.View()
	if !strings.Contains(view, "second@example.com") {
		t.Error("dialogue does not name the user")
	}

	// Confirm runs the delete but the dialogue stays open until the server
	// answers
	cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("confirm produced no command")
	}
	if !m.Overlays.Active() {
		t.Error("dialogue closed before the round-trip finished")
	}

	m.Update(deletedMsg{kind: "user", id: "u2"})
	if m.pendingConfirm != nil {
		t.Error("pendingConfirm not cleared")
	}

	// Refresh lands and the screen is interactive again
	m.Update(usersMsg{list: []models.User{{ID: "u1", Email: "first@example.com"}}})
	if m.Overlays.Active() {
		t.Error("overlay still active after refresh")
	}
	if len(m.Users) != 1 {
		t.Errorf("users = %d after delete", len(m.Users))
	}
}

func TestDeleteConfirmEscCancels(t *testing.T) {
	f := &fakeAPI{}
	m := loggedInModel(f)
	m.ActiveSection = SectionUsers
	m.Users = []models.User{{ID: "u1", Email: "a@b.c"}}

	press(m, "d")
	press(m, "esc")
	if m.Overlays.Active() {
		t.Error("dialogue still open after esc")
	}
	if len(f.deletedUsers) != 0 {
		t.Error("delete ran despite cancel")
	}
}

func TestUserFormSubmit(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	m.ActiveSection = SectionUsers

	press(m, "n")
	if !m.Overlays.Active() {
		t.Fatal("form not shown")
	}
	m.View() // establish focus and hit regions

	for _, r := range "new@example.com" {
		press(m, string(r))
	}
	press(m, "tab")
	for _, r := range "New Admin" {
		press(m, string(r))
	}
	press(m, "tab") // group select
	press(m, "down")
	press(m, "tab") // notes
	press(m, "tab") // create button
	cmd := press(m, "enter")

	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	// The form is gone; only the preloader remains while the save runs
	if top := m.Overlays.Top(); top == nil || top.Kind() != overlay.KindPreloader {
		t.Error("expected preloader on top after submit")
	}

	m.Update(userSavedMsg{user: &models.User{ID: "new"}})
	m.Update(usersMsg{list: []models.User{{ID: "new", Email: "new@example.com"}}})
	if m.Overlays.Active() {
		t.Error("overlay still active after save round-trip")
	}
}

func TestUserFormRequiredValidation(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	m.ActiveSection = SectionUsers

	press(m, "n")
	m.View()

	// Submit with everything empty: the form stays open with inline errors
	press(m, "tab")
	press(m, "tab")
	press(m, "tab")
	press(m, "tab") // create button
	press(m, "enter")

	if !m.Overlays.Active() {
		t.Fatal("form closed despite missing required fields")
	}
	view := m.View()
	if !strings.Contains(view, "required") {
		t.Error("inline validation error not rendered")
	}
}

func TestTournamentEnterOpensPlayers(t *testing.T) {
	f := &fakeAPI{
		tournaments: []models.Tournament{{ID: "t1", Name: "Spring Open"}},
		players:     []models.Player{{ID: "p1", TournamentID: "t1", Name: "A. Nguyen"}},
	}
	m := loggedInModel(f)
	m.ActiveSection = SectionTournaments
	m.Tournaments = f.tournaments

	cmd := press(m, "enter")
	if m.ActiveSection != SectionPlayers {
		t.Fatalf("section = %v, want Players", m.ActiveSection)
	}
	if m.PlayersFor != "t1" {
		t.Errorf("PlayersFor = %q", m.PlayersFor)
	}
	if cmd == nil {
		t.Error("no fetch command issued")
	}

	m.Update(playersMsg{tournamentID: "t1", list: f.players})
	if len(m.Players) != 1 {
		t.Errorf("players = %d", len(m.Players))
	}
	if m.Overlays.Active() {
		t.Error("preloader still up after data landed")
	}
}

func TestLoadFailureShowsErrorModal(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	m.Update(tournamentsMsg{err: errors.New("connection refused")})
	if !m.Overlays.Active() {
		t.Fatal("error modal not shown for load failure")
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("error text missing from modal")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	press(m, "?")
	if !m.Overlays.Active() {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "esc:cancel") {
		t.Error("hint line not rendered on help modal")
	}
	// Keys are swallowed while help is open
	press(m, "2")
	if m.ActiveSection != SectionDashboard {
		t.Error("section changed under help overlay")
	}
	press(m, "esc")
	if m.Overlays.Active() {
		t.Error("help still open after esc")
	}
}

func TestCachedListsPaintBeforeFetch(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	defer store.Close()

	store.PutTournaments([]models.Tournament{{ID: "t1", Name: "Spring Open"}})
	store.PutPlayers("t1", []models.Player{{ID: "p1", TournamentID: "t1", Name: "A. Nguyen"}})

	f := &fakeAPI{}
	m := loggedInModel(f)
	m.Cache = store

	// Cached tournaments appear without any network round-trip, stamped
	// with the cache's fetch time
	m.loadCached()
	if len(m.Tournaments) != 1 || m.Tournaments[0].Name != "Spring Open" {
		t.Fatalf("cached tournaments = %+v", m.Tournaments)
	}
	if m.LastRefresh.IsZero() {
		t.Error("LastRefresh not taken from the cache")
	}

	// Drilling into the tournament paints cached players while the fetch
	// is still in flight
	m.ActiveSection = SectionTournaments
	press(m, "enter")
	if len(m.Players) != 1 || m.Players[0].Name != "A. Nguyen" {
		t.Errorf("cached players = %+v", m.Players)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	m.ActiveSection = SectionUsers
	m.Users = []models.User{{ID: "a"}, {ID: "b"}}

	press(m, "j")
	press(m, "j")
	press(m, "j")
	if m.RowCursor[SectionUsers] != 1 {
		t.Errorf("cursor = %d, want clamp at 1", m.RowCursor[SectionUsers])
	}
	press(m, "k")
	press(m, "k")
	press(m, "k")
	if m.RowCursor[SectionUsers] != 0 {
		t.Errorf("cursor = %d, want clamp at 0", m.RowCursor[SectionUsers])
	}
}

func TestSettingsSectionIsLocal(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	cmd := press(m, "5")
	if m.ActiveSection != SectionSettings {
		t.Fatalf("section = %v, want Settings", m.ActiveSection)
	}
	// Settings reads local config only; no fetch, no preloader
	if cmd != nil {
		t.Error("switching to settings produced a command")
	}
	if m.Overlays.Active() {
		t.Error("preloader shown for a local section")
	}
	if out := m.View(); !strings.Contains(out, "Server URL") {
		t.Error("settings panel not rendered")
	}
}

func TestSettingsFormPersistsConfig(t *testing.T) {
	m := loggedInModel(&fakeAPI{})
	m.Config.ServerURL = "https://old.example.com"

	press(m, "5")
	var saved *models.Config
	m.SaveConfig = func(c *models.Config) error {
		saved = c
		return nil
	}
	press(m, "e")
	if !m.Overlays.Active() {
		t.Fatal("settings form not shown")
	}
	m.View() // establish focus

	press(m, "tab")  // theme select
	press(m, "down") // dark -> light
	press(m, "tab")  // save button
	press(m, "enter")

	if m.Overlays.Active() {
		t.Fatal("form still open after submit")
	}
	if m.Config.Theme != "light" {
		t.Errorf("theme = %q, want light", m.Config.Theme)
	}
	if m.Config.ServerURL != "https://old.example.com" {
		t.Errorf("server url = %q, want unchanged", m.Config.ServerURL)
	}
	if saved == nil {
		t.Error("config was not saved")
	}
}

func TestSidebarCollapseToggle(t *testing.T) {
	m := loggedInModel(&fakeAPI{})

	press(m, "b")
	if !m.SidebarCollapsed {
		t.Fatal("sidebar not collapsed")
	}
	if sb := m.renderSidebar(20); strings.Contains(sb, "Dashboard") {
		t.Error("collapsed sidebar still shows section names")
	}

	press(m, "b")
	if m.SidebarCollapsed {
		t.Fatal("sidebar did not expand")
	}
	if sb := m.renderSidebar(20); !strings.Contains(sb, "Dashboard") {
		t.Error("expanded sidebar missing section names")
	}
}

func TestTruncateCellIsWidthSafe(t *testing.T) {
	cases := []struct {
		in  string
		max int
	}{
		{"Renée Müller-Østergård", 10},
		{"山田太郎", 5},
		{"plain ascii name", 8},
	}
	for _, c := range cases {
		out := truncateCell(c.in, c.max)
		if !utf8.ValidString(out) {
			t.Errorf("truncateCell(%q, %d) produced invalid UTF-8: %q", c.in, c.max, out)
		}
		if w := lipgloss.Width(out); w > c.max {
			t.Errorf("truncateCell(%q, %d) width = %d", c.in, c.max, w)
		}
		if !strings.HasSuffix(out, "…") {
			t.Errorf("truncateCell(%q, %d) = %q, want ellipsis", c.in, c.max, out)
		}
	}

	if got := truncateCell("short", 10); got != "short" {
		t.Errorf("short cell changed: %q", got)
	}
}
