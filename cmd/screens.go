package cmd

import (
	"fmt"

	"github.com/saravenpi/stencil/internal/config"
	"github.com/spf13/cobra"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List screens that can be opened with --screen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range config.Screens {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	},
}

func init() {
	rootCmd.AddCommand(screensCmd)
}
