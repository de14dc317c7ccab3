package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/courtsidehq/courtside/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess == nil {
			fmt.Println("Not signed in. Run 'courtside login'.")
			return nil
		}

		fmt.Printf("Signed in as %s <%s>\n", sess.Name, sess.Email)
		if groups := sess.GroupList(); groups != "" {
			fmt.Printf("Groups: %s\n", groups)
		}
		switch {
		case sess.Expired() && !sess.Refreshable():
			color.Red("Session expired. Run 'courtside login'.")
		case sess.Expired():
			color.Yellow("Access token expired; it will refresh on next use.")
		default:
			color.Green("Session valid.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
