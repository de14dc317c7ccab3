package cmd

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/courtsidehq/courtside/internal/api"
	"github.com/courtsidehq/courtside/internal/cache"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/models"
	"github.com/courtsidehq/courtside/internal/session"
	"github.com/courtsidehq/courtside/pkg/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive admin console",
	RunE:  runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

// resolveServer picks the server URL: flag first, then config.
func resolveServer(cfg *models.Config) (string, error) {
	if serverURL != "" {
		return serverURL, nil
	}
	if cfg.ServerURL != "" {
		return cfg.ServerURL, nil
	}
	return "", fmt.Errorf("no server configured: pass --server or run 'courtside login --server <url>'")
}

func runConsole(cmd *cobra.Command, args []string) error {
	base := getBaseDir()

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	url, err := resolveServer(cfg)
	if err != nil {
		return err
	}

	sess, err := session.Load(base)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	client := api.New(url, "")
	switch {
	case sess == nil:
	case !sess.Expired():
		client.SetToken(sess.AccessToken)
	case sess.Refreshable():
		// Expired access token but a live refresh token: exchange it
		// before falling back to the login screen.
		res, rerr := client.Refresh(cmd.Context(), sess.RefreshToken)
		if rerr != nil {
			slog.Debug("token refresh failed", "error", rerr)
			sess = nil
			break
		}
		sess.AccessToken = res.Access
		if res.Refresh != "" {
			sess.RefreshToken = res.Refresh
		}
		sess.IssuedAt = time.Now()
		if err := session.Save(base, sess); err != nil {
			slog.Warn("saving refreshed session failed", "error", err)
		}
	default:
		sess = nil
	}

	// The cache is best-effort; the console runs without it
	var store *cache.Cache
	if store, err = cache.Open(base); err != nil {
		slog.Warn("cache disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	m := console.New(client, sess, cfg, store)
	m.SaveSession = func(s *session.Session) error {
		client.SetToken(s.AccessToken)
		return session.Save(base, s)
	}
	m.SaveConfig = func(c *models.Config) error {
		return config.Save(base, c)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
