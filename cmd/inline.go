package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/ttvcli/ttv/filesystem"
	"github.com/ttvcli/ttv/inline"
	"github.com/ttvcli/ttv/twitch"
	"github.com/ttvcli/ttv/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().Bool("vod", false, "Treat the argument as an archived video id")
	inlineCmd.Flags().StringP("pick", "P", "", "Print only the variant chosen by this picker")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().Bool("verify", false, "Cross-check the parsed playlist with an independent decoder")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("pick", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"resolution", "bitrate", "first", "last"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd prints variants without any interaction, for scripts.
var inlineCmd = &cobra.Command{
	Use:     "inline [broadcaster | video id]",
	Aliases: []string{"variants"},
	Short:   "Print the available variants without interaction",
	Long: `Print the variants of a live broadcast or an archived video, one per line:
index, label, resolution, bitrate and URL separated by tabs.

Pickers:
  resolution - highest resolution
  bitrate - highest bitrate
  first - first variant in the playlist
  last - last variant in the playlist
  [number] - variant by position, starting from 1
  [label] - variant by label, e.g. 720p60

With a picker only the URL of the chosen variant is printed.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBroadcasters,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			kind             = twitch.Live
			id               = args[0]
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		if lo.Must(cmd.Flags().GetBool("vod")) {
			kind = twitch.VOD
			id = videoID(id)
		}

		picker := mo.None[inline.VariantPicker]()
		if description := lo.Must(cmd.Flags().GetString("pick")); description != "" {
			fn, err := inline.ParseVariantPicker(description)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:    writer,
			Kind:   kind,
			ID:     id,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Verify: lo.Must(cmd.Flags().GetBool("verify")),
			Picker: picker,
		}

		handleErr(inline.Run(cmd.Context(), newClient(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline JSON output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline mode output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "variant", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
