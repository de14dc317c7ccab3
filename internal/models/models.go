package models

import "time"

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	TournamentPending   TournamentStatus = "pending"
	TournamentActive    TournamentStatus = "active"
	TournamentCompleted TournamentStatus = "completed"
	TournamentCancelled TournamentStatus = "cancelled"
)

// Format is the bracket format of a tournament.
type Format string

const (
	FormatSingleElimination Format = "single_elimination"
	FormatDoubleElimination Format = "double_elimination"
	FormatGroupKnockout     Format = "group_knockout"
)

// Tournament is a tournament as the admin API reports it.
type Tournament struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Status      TournamentStatus `json:"status"`
	Format      Format           `json:"format"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	PlayerCount int              `json:"player_count"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PlayerStatus is the registration state of a player.
type PlayerStatus string

const (
	PlayerRegistered PlayerStatus = "registered"
	PlayerCheckedIn  PlayerStatus = "checked_in"
	PlayerWithdrawn  PlayerStatus = "withdrawn"
)

// Player is a tournament participant.
type Player struct {
	ID           string       `json:"id"`
	TournamentID string       `json:"tournament_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Seed         int          `json:"seed"`
	Status       PlayerStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// User is an admin-console account.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Groups    []string   `json:"groups"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Config is the persisted console configuration.
type Config struct {
	ServerURL   string `json:"server_url,omitempty"`
	Theme       string `json:"theme,omitempty"`
	LastSection string `json:"last_section,omitempty"`
}
