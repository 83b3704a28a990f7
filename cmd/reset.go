package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/preference"
	"github.com/ttvcli/ttv/style"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

// resetCmd forgets persisted preferences such as --always and --print-url.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset persisted preferences, keeping the broadcasters cache",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(preference.Store{}.Reset())
		fmt.Printf("%s preferences reset\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
