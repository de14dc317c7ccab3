package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/courtsidehq/courtside/internal/api"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the tournament server",
	Long: `Sign in to the tournament server and store the session locally.

Without flags an interactive form is shown. When --email is given and the
input is not a terminal, the password is read from stdin.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prefer the prompt)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	base := getBaseDir()

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	url, err := resolveServer(cfg)
	if err != nil {
		return err
	}

	email, password := loginEmail, loginPassword
	switch {
	case email != "" && password != "":
		// fully non-interactive
	case email != "" && term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Fprintf(os.Stderr, "Password for %s: ", email)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	default:
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	client := api.New(url, "")
	res, err := client.Login(context.Background(), email, password)
	if err != nil {
		color.Red("Login failed: %v", err)
		os.Exit(1)
	}

	sess := &session.Session{
		AccessToken:  res.Access,
		RefreshToken: res.Refresh,
		Email:        res.Email,
		Name:         res.Name,
		Groups:       res.Groups,
		IssuedAt:     time.Now(),
	}
	if err := session.Save(base, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if serverURL != "" && serverURL != cfg.ServerURL {
		cfg.ServerURL = serverURL
		if err := config.Save(base, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}

	color.Green("Signed in as %s", sess.DisplayName())
	if groups := sess.GroupList(); groups != "" {
		fmt.Printf("Groups: %s\n", groups)
	}
	return nil
}
