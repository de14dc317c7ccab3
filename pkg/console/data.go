package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/internal/api"
	"github.com/courtsidehq/courtside/internal/models"
)

// adminAPI is the slice of the API client the console uses. Tests supply a
// fake.
type adminAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	FetchDashboard(ctx context.Context) (*api.Dashboard, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	ListPlayers(ctx context.Context, tournamentID string) ([]models.Player, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, fields map[string]string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, fields map[string]string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteTournament(ctx context.Context, id string) error
}

// Messages delivered by data commands. Each carries its error so Update can
// route failures to the error modal in one place.

type loginResultMsg struct {
	res *api.LoginResult
	err error
}

type dashboardMsg struct {
	data *api.Dashboard
	err  error
}

type tournamentsMsg struct {
	list []models.Tournament
	err  error
}

type playersMsg struct {
	tournamentID string
	list         []models.Player
	err          error
}

type usersMsg struct {
	list []models.User
	err  error
}

type userSavedMsg struct {
	user *models.User
	err  error
}

type deletedMsg struct {
	kind string // "tournament" or "user"
	id   string
	err  error
}

func (m *Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.API.Login(context.Background(), email, password)
		return loginResultMsg{res: res, err: err}
	}
}

func (m *Model) fetchDashboard() tea.Cmd {
	return func() tea.Msg {
		d, err := m.API.FetchDashboard(context.Background())
		return dashboardMsg{data: d, err: err}
	}
}

func (m *Model) fetchTournaments() tea.Cmd {
	return func() tea.Msg {
		list, err := m.API.ListTournaments(context.Background())
		return tournamentsMsg{list: list, err: err}
	}
}

func (m *Model) fetchPlayers(tournamentID string) tea.Cmd {
	return func() tea.Msg {
		list, err := m.API.ListPlayers(context.Background(), tournamentID)
		return playersMsg{tournamentID: tournamentID, list: list, err: err}
	}
}

func (m *Model) fetchUsers() tea.Cmd {
	return func() tea.Msg {
		list, err := m.API.ListUsers(context.Background())
		return usersMsg{list: list, err: err}
	}
}

func (m *Model) createUserCmd(fields map[string]string) tea.Cmd {
	return func() tea.Msg {
		u, err := m.API.CreateUser(context.Background(), fields)
		return userSavedMsg{user: u, err: err}
	}
}

func (m *Model) updateUserCmd(id string, fields map[string]string) tea.Cmd {
	return func() tea.Msg {
		u, err := m.API.UpdateUser(context.Background(), id, fields)
		return userSavedMsg{user: u, err: err}
	}
}

func (m *Model) deleteUserCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.API.DeleteUser(context.Background(), id)
		return deletedMsg{kind: "user", id: id, err: err}
	}
}

func (m *Model) deleteTournamentCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.API.DeleteTournament(context.Background(), id)
		return deletedMsg{kind: "tournament", id: id, err: err}
	}
}
