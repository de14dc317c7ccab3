// Package session persists the authenticated admin identity between runs,
// carrying what the server hands back at login: the access and refresh
// tokens plus the display fields (email, name, groups).
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const sessionFile = ".courtside/session.json"

// Token lifetimes matching what the server sets on its cookies.
const (
	AccessTTL  = time.Hour
	RefreshTTL = 30 * 24 * time.Hour
)

// Session is the persisted admin identity.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Groups       []string  `json:"groups,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
}

// DisplayName returns the name to show in the console header, falling back
// to the email when no name was set.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// Expired reports whether the access token is past its lifetime.
func (s *Session) Expired() bool {
	return time.Since(s.IssuedAt) >= AccessTTL
}

// Refreshable reports whether the refresh token is still within its
// lifetime.
func (s *Session) Refreshable() bool {
	return s.RefreshToken != "" && time.Since(s.IssuedAt) < RefreshTTL
}

// GroupList returns the groups as a single comma-joined string for display.
func (s *Session) GroupList() string {
	return strings.Join(s.Groups, ", ")
}

// Load reads the persisted session. Returns nil without error when no
// session exists.
func Load(baseDir string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &sess, nil
}

// Save writes the session to disk with owner-only permissions; the file
// holds bearer tokens.
func Save(baseDir string, sess *Session) error {
	path := filepath.Join(baseDir, sessionFile)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing a missing session is fine.
func Clear(baseDir string) error {
	err := os.Remove(filepath.Join(baseDir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
