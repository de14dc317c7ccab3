package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the courtside version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("courtside %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
