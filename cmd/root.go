// Package cmd implements the command-line interface for ttv.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/broadcasters"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/twitch"
	"github.com/ttvcli/ttv/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addSelectionFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})
}

// rootCmd plays the live broadcast of the given broadcaster.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [broadcaster]",
	Short: "Watch Twitch broadcasts in your own media player",
	Long: style.Bold(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Pick a stream quality and watch Twitch broadcasts in your own media player"),
	Example: strings.Join([]string{
		"  ttv somebody",
		"  ttv somebody --always resolution",
		"  ttv somebody --bitrate --print-url",
	}, "\n"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionBroadcasters,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var login string
		if len(args) == 1 {
			login = args[0]
		} else {
			login = pickRememberedBroadcaster(cmd)
		}

		handleErr(play(cmd, twitch.Live, login))
	},
}

// pickRememberedBroadcaster asks for one of the remembered broadcasters.
// Without any, it prints the help and exits.
func pickRememberedBroadcaster(cmd *cobra.Command) string {
	remembered, err := broadcasters.All()
	if err != nil {
		log.Warnf("broadcaster cache: %v", err)
	}

	if len(remembered) == 0 {
		handleErr(cmd.Help())
		os.Exit(0)
	}

	logins := lo.Map(remembered, func(r *broadcasters.Record, _ int) string { return r.Login })

	var login string
	handleErr(survey.AskOne(&survey.Select{
		Message: "Broadcaster",
		Options: logins,
	}, &login))

	return login
}

func completionBroadcasters(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return broadcasters.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	// Ctrl+C inside a survey prompt is a deliberate exit.
	if errors.Is(err, context.Canceled) || errors.Is(err, terminal.InterruptErr) {
		os.Exit(130)
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
	os.Exit(1)
}
