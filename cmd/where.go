package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/where"
)

// location is a path `ttv where` can print, selected by its flag.
type location struct {
	flag  string
	short string
	path  func() string
}

var locations = []location{
	{flag: "config", short: "c", path: where.Config},
	{flag: "cache", short: "C", path: where.Cache},
	{flag: "logs", short: "l", path: where.Logs},
	{flag: "broadcasters", path: where.Broadcasters},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, "Print only the "+l.flag+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where ttv keeps its config, cache and logs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		for _, l := range locations {
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%-13s", l.flag)), l.path())
		}
	},
}
