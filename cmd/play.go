package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/auth"
	"github.com/ttvcli/ttv/broadcasters"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/player"
	"github.com/ttvcli/ttv/playlist"
	"github.com/ttvcli/ttv/preference"
	"github.com/ttvcli/ttv/quality"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/twitch"
	"github.com/ttvcli/ttv/util"
)

// addSelectionFlags registers the quality selection flags shared by every playing command.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("always", "a", "", "Always select the highest variant on this axis from now on (resolution, bitrate)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("always", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return quality.Preferences(), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().BoolP("resolution", "r", false, "Select the highest resolution for this run only")
	cmd.Flags().BoolP("bitrate", "b", false, "Select the highest bitrate for this run only")
	cmd.Flags().BoolP("print-url", "p", false, "Print the stream URL instead of launching a player (remembered, pass --print-url=false to undo)")
	cmd.Flags().Bool("verify", false, "Cross-check the parsed playlist with an independent decoder")
}

func selectionOptions(cmd *cobra.Command) (quality.Options, error) {
	always, err := quality.ParsePreference(lo.Must(cmd.Flags().GetString("always")))
	if err != nil {
		return quality.Options{}, fmt.Errorf("--always: %w", err)
	}

	return quality.Options{
		Always:     always,
		Resolution: lo.Must(cmd.Flags().GetBool("resolution")),
		Bitrate:    lo.Must(cmd.Flags().GetBool("bitrate")),
	}, nil
}

func newClient() *twitch.Client {
	token, err := auth.Token()
	if err != nil {
		log.Warnf("keyring: %v", err)
	}
	return twitch.New(token)
}

func printWarning(warning string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), warning)
}

// play resolves id, selects a variant and hands it to the player or prints its URL.
func play(cmd *cobra.Command, kind twitch.Kind, id string) error {
	ctx := cmd.Context()

	opts, err := selectionOptions(cmd)
	if err != nil {
		return err
	}

	// Conflicting flags abort before anything is persisted or fetched.
	if _, _, err := quality.Resolve(quality.None, opts); err != nil {
		return err
	}

	store := preference.Store{}
	printURL := mo.None[bool]()
	if cmd.Flags().Changed("print-url") {
		printURL = mo.Some(lo.Must(cmd.Flags().GetBool("print-url")))
	}
	if err := store.Persist(preference.Options{Always: opts.Always, PrintURL: printURL}); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	client := newClient()

	erase := util.PrintErasable(fmt.Sprintf("%s Fetching playlist for %s...", icon.Get(icon.Progress), id))
	manifest, err := client.Manifest(ctx, kind, id)
	erase()
	if err != nil {
		return err
	}

	variants, err := playlist.Parse(manifest)
	if err != nil {
		return err
	}

	if lo.Must(cmd.Flags().GetBool("verify")) {
		if err := playlist.Verify(manifest, variants); err != nil {
			return err
		}
	}

	title := id
	if kind == twitch.Live {
		if err := broadcasters.Remember(id); err != nil {
			log.Warnf("broadcaster cache: %v", err)
		}

		stream, err := client.StreamInfo(ctx, id)
		if err != nil {
			log.Warnf("stream info: %v", err)
		} else if s, ok := stream.Get(); ok {
			// keep stdout to the bare URL when it is meant to be captured
			if store.PrintURL() {
				printStream(os.Stderr, s)
			} else {
				printStream(os.Stdout, s)
			}
			title = fmt.Sprintf("%s - %s", s.DisplayName, s.Title)
		}
	}

	selector := &quality.Selector{
		Store:     store,
		Prompt:    quality.NewInteractive(os.Stdin, os.Stdout),
		Options:   opts,
		OnWarning: printWarning,
	}

	chosen, err := selector.Select(variants)
	if err != nil {
		return err
	}
	log.Infof("selected %s for %s", chosen, id)

	if store.PrintURL() {
		fmt.Println(chosen.URL)
		return nil
	}

	p := player.New()
	if err := p.Play(chosen.URL, title); err != nil {
		return err
	}

	fmt.Printf("%s Playing %s in %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(chosen.String()), p.Name)
	return nil
}

func printStream(w io.Writer, s twitch.Stream) {
	header := fmt.Sprintf("%s %s %s",
		style.Live(icon.Get(icon.Live)),
		style.Bold(s.DisplayName),
		style.Faint(fmt.Sprintf("playing %s for %s", s.Game, util.Quantify(s.Viewers, "viewer", "viewers"))),
	)
	_, _ = fmt.Fprintln(w, header)
	if title := strings.TrimSpace(s.Title); title != "" {
		_, _ = fmt.Fprintln(w, style.Italic(util.Wrap(title, 80)))
	}
	_, _ = fmt.Fprintln(w)
}
