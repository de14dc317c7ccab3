package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   string
	baseDir   string
	serverURL string
	debug     bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Terminal admin console for a tournament server",
	Long: `courtside - A terminal admin console for a tournament server.

Sign in once with 'courtside login', then run 'courtside' to browse
tournaments, players and admin accounts from the keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation opens the console
		return runConsole(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir, initLogging)
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging to stderr")
}

func initBaseDir() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = home
}

func initLogging() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// getBaseDir returns the directory holding config, session and cache
func getBaseDir() string {
	return baseDir
}
