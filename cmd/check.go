package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/player"
	"github.com/ttvcli/ttv/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd verifies that the configured player can be launched.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the configured media player is installed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := player.New()
		name, _, err := p.Command("https://example.com/stream.m3u8", "")
		handleErr(err)

		if _, err := exec.LookPath(name); err != nil {
			printMissingDependencyError(name)
			handleErr(fmt.Errorf("%s not found in PATH", name))
		}

		fmt.Printf("%s %s found\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(name))
	},
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch dep {
	case player.MPV, player.VLC:
		switch runtime.GOOS {
		case constant.Darwin:
			installCmd = "brew install " + dep
		case constant.Linux:
			installCmd = "sudo apt install " + dep
		case constant.Windows:
			installCmd = "scoop install " + dep
		}
	}

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The player '%s' was not found in your PATH.\nChange it with: ttv config set %s <player>", dep, key.PlayerDefault)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\nTo install it, try running:\n  %s", style.New().Foreground(color.Orange).Bold(true).Render(installCmd))
	}

	fmt.Println(style.Box(color.HiRed)(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			body,
			suggestion,
		),
	))
}
