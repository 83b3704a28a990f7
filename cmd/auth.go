package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/auth"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authRemoveCmd, authStatusCmd)
}

// authCmd manages the optional OAuth token sent with access token requests.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Twitch OAuth token used for subscriber-only content",
	Long: `Manage the Twitch OAuth token stored in the system keyring.

The token is the value of the "auth-token" cookie of a logged in twitch.tv session.
It is only needed for content restricted to subscribers or turbo users.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the OAuth token, prompting for it when omitted",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{Message: "OAuth token"}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"delete"},
	Short:   "Remove the stored OAuth token",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether an OAuth token is stored",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.Token()
		handleErr(err)

		if token.IsPresent() {
			fmt.Println(style.Fg(color.Green)("token stored"))
		} else {
			fmt.Println(style.Faint("no token stored"))
		}
	},
}
