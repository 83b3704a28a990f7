package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/broadcasters"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/util"
)

func init() {
	rootCmd.AddCommand(broadcastersCmd)
	broadcastersCmd.Flags().StringSliceP("forget", "f", []string{}, "Remove broadcasters from the cache")
	lo.Must0(broadcastersCmd.RegisterFlagCompletionFunc("forget", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return broadcasters.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// broadcastersCmd lists or prunes the remembered broadcasters.
var broadcastersCmd = &cobra.Command{
	Use:   "broadcasters",
	Short: "List the broadcasters you have watched",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if forget := lo.Must(cmd.Flags().GetStringSlice("forget")); len(forget) > 0 {
			for _, login := range forget {
				handleErr(broadcasters.Forget(login))
				fmt.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(login))
			}
			return
		}

		all, err := broadcasters.All()
		handleErr(err)

		for _, record := range all {
			fmt.Printf("%s %s\n",
				style.Fg(color.Purple)(record.Login),
				style.Faint(fmt.Sprintf("(%s, last %s)", util.Quantify(record.Rank, "watch", "watches"), record.LastWatched.Format("2006-01-02"))),
			)
		}
	},
}
