package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/playlist"
)

// Run resolves options.ID through src and writes the variants, or only the
// picked one, to options.Out.
func Run(ctx context.Context, src Source, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	manifest, err := src.Manifest(ctx, options.Kind, options.ID)
	if err != nil {
		return err
	}

	variants, err := playlist.Parse(manifest)
	if err != nil {
		return err
	}
	log.Infof("parsed %d variants for %s %s", len(variants), options.Kind, options.ID)

	if options.Verify {
		if err := playlist.Verify(manifest, variants); err != nil {
			return err
		}
	}

	var selected *playlist.Variant
	if picker, ok := options.Picker.Get(); ok {
		if selected, err = picker(variants); err != nil {
			return err
		}
	}

	if options.Json {
		output := &Output{
			Kind:     options.Kind.String(),
			ID:       options.ID,
			Variants: lo.Map(variants, func(v *playlist.Variant, _ int) *Variant { return newVariant(v) }),
		}
		if selected != nil {
			output.Selected = newVariant(selected)
		}
		return writeJson(options.Out, output)
	}

	if selected != nil {
		_, err = fmt.Fprintln(options.Out, selected.URL)
		return err
	}

	for _, v := range variants {
		if _, err := fmt.Fprintf(options.Out, "%d\t%s\t%s\t%s\t%s\n", v.Index, v.Label, v.Resolution.OrElse("-"), v.Bitrate, v.URL); err != nil {
			return err
		}
	}

	return nil
}
