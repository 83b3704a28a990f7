package cmd

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the bare version string")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the ttv version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(cmd.Context())

		cmd.Printf("%s %s\n\n", style.Live(" "+constant.App+" "), style.Bold(constant.Version))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, row := range [][2]string{
			{"revision", constant.Revision},
			{"built at", constant.BuiltAt},
			{"built by", constant.BuiltBy},
			{"platform", runtime.GOOS + "/" + runtime.GOARCH},
			{"go", runtime.Version()},
		} {
			_, _ = fmt.Fprintf(w, "  %s\t%s\n", style.Fg(color.Purple)(row[0]), row[1])
		}
		handleErr(w.Flush())
	},
}
