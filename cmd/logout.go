package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/courtsidehq/courtside/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := getBaseDir()
		sess, err := session.Load(base)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		if err := session.Clear(base); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		color.Green("Signed out %s", sess.DisplayName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
