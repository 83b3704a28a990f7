package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/twitch"
	"github.com/ttvcli/ttv/util"
)

func init() {
	rootCmd.AddCommand(vodCmd)
	addSelectionFlags(vodCmd)
}

// vodCmd plays an archived video by id.
var vodCmd = &cobra.Command{
	Use:     "vod [video id]",
	Short:   "Watch an archived video",
	Example: "  ttv vod 1234567890\n  ttv vod https://www.twitch.tv/videos/1234567890",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(play(cmd, twitch.VOD, videoID(args[0])))
	},
}

// videoID accepts a bare id, a "v" prefixed id or a video page URL.
func videoID(arg string) string {
	arg = strings.TrimSpace(arg)
	if i := strings.LastIndex(arg, "/videos/"); i >= 0 {
		arg = arg[i+len("/videos/"):]
	}
	arg, _, _ = strings.Cut(arg, "?")
	return strings.TrimPrefix(strings.Trim(arg, "/"), "v")
}

func init() {
	rootCmd.AddCommand(vodsCmd)
	addSelectionFlags(vodsCmd)

	vodsCmd.Flags().IntP("limit", "n", 10, "Number of past broadcasts to list")
	lo.Must0(viper.BindPFlag(key.VodsLimit, vodsCmd.Flags().Lookup("limit")))
}

// vodsCmd lists the past broadcasts of a broadcaster and plays the chosen one.
var vodsCmd = &cobra.Command{
	Use:               "vods [broadcaster]",
	Short:             "Pick one of the past broadcasts of a broadcaster and watch it",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBroadcasters,
	Run: func(cmd *cobra.Command, args []string) {
		login := args[0]

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching past broadcasts of %s...", icon.Get(icon.Progress), login))
		list, err := newClient().Broadcasts(cmd.Context(), login, viper.GetInt(key.VodsLimit))
		erase()
		handleErr(err)

		if len(list) == 0 {
			fmt.Printf("%s %s has no past broadcasts\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), login)
			return
		}

		var index int
		handleErr(survey.AskOne(&survey.Select{
			Message: "Past broadcast",
			Options: lo.Map(list, func(b twitch.Broadcast, _ int) string { return b.String() }),
		}, &index))

		handleErr(play(cmd, twitch.VOD, list[index].ID))
	},
}
