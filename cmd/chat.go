package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/open"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/twitch"
)

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("browser", "B", "", "Open the chat with this application instead of the default browser")
}

// chatCmd opens the popout chat of a broadcaster in the browser.
var chatCmd = &cobra.Command{
	Use:               "chat [broadcaster]",
	Short:             "Open the chat of a broadcaster in the browser",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBroadcasters,
	Run: func(cmd *cobra.Command, args []string) {
		target := twitch.ChatURL(args[0])
		handleErr(open.Start(target, lo.Must(cmd.Flags().GetString("browser"))))
		fmt.Printf("%s opened %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Faint(target))
	},
}
