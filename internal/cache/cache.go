// Package cache keeps a local read cache of server data so the console can
// paint the last known lists immediately while a refresh is in flight.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/courtsidehq/courtside/internal/models"
)

const cacheFile = ".courtside/cache.db"

const schema = `
CREATE TABLE IF NOT EXISTS tournaments (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    fetched_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    tournament_id TEXT NOT NULL,
    data TEXT NOT NULL,
    fetched_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_players_tournament ON players(tournament_id);
`

// Cache wraps the sqlite connection.
type Cache struct {
	conn *sql.DB
}

// Open opens (or creates) the cache under baseDir.
func Open(baseDir string) (*Cache, error) {
	path := filepath.Join(baseDir, cacheFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	// WAL lets a refresh write while the view reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	conn.Exec("PRAGMA busy_timeout=500")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Cache{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Cache) Close() error {
	return c.conn.Close()
}

// PutTournaments replaces the cached tournament list.
func (c *Cache) PutTournaments(ts []models.Tournament) error {
	tx, err := c.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tournaments"); err != nil {
		return fmt.Errorf("clear tournaments: %w", err)
	}
	for _, t := range ts {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshal tournament %s: %w", t.ID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO tournaments (id, data, fetched_at) VALUES (?, ?, ?)",
			t.ID, string(data), time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("insert tournament %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// Tournaments returns the cached tournament list, oldest fetch first by ID
// order.
func (c *Cache) Tournaments() ([]models.Tournament, error) {
	rows, err := c.conn.Query("SELECT data FROM tournaments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query tournaments: %w", err)
	}
	defer rows.Close()

	var out []models.Tournament
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan tournament: %w", err)
		}
		var t models.Tournament
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			return nil, fmt.Errorf("unmarshal tournament: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// PutPlayers replaces the cached players of one tournament.
func (c *Cache) PutPlayers(tournamentID string, ps []models.Player) error {
	tx, err := c.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM players WHERE tournament_id = ?", tournamentID); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}
	for _, p := range ps {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal player %s: %w", p.ID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO players (id, tournament_id, data, fetched_at) VALUES (?, ?, ?, ?)",
			p.ID, tournamentID, string(data), time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// Players returns the cached players of a tournament.
func (c *Cache) Players(tournamentID string) ([]models.Player, error) {
	rows, err := c.conn.Query(
		"SELECT data FROM players WHERE tournament_id = ? ORDER BY id", tournamentID)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []models.Player
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		var p models.Player
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("unmarshal player: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FetchedAt reports when the tournament list was last written, or the zero
// time when the cache is empty. The column is read directly rather than
// through MAX(): aggregates lose the DATETIME affinity the driver needs to
// hand back a time.Time.
func (c *Cache) FetchedAt() (time.Time, error) {
	var ts time.Time
	err := c.conn.QueryRow(
		"SELECT fetched_at FROM tournaments ORDER BY fetched_at DESC LIMIT 1").Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query fetched_at: %w", err)
	}
	return ts, nil
}
