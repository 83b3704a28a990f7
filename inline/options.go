// Package inline implements the non-interactive mode: resolve a playlist,
// optionally pick one variant, and print the result as text or JSON.
package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/playlist"
	"github.com/ttvcli/ttv/quality"
	"github.com/ttvcli/ttv/twitch"
)

// Source downloads the master playlist of a broadcast or video.
type Source interface {
	Manifest(ctx context.Context, kind twitch.Kind, id string) (string, error)
}

// VariantPicker chooses one variant without user interaction.
type VariantPicker func([]*playlist.Variant) (*playlist.Variant, error)

type Options struct {
	Out    io.Writer
	Kind   twitch.Kind
	ID     string
	Json   bool
	Verify bool
	Picker mo.Option[VariantPicker]
}

// ParseVariantPicker builds a picker from its description.
//
//	resolution, bitrate - highest variant along that axis
//	first, last         - by manifest position
//	[number]            - by 1-based manifest position
//	[label]             - the variant whose label matches, e.g. 720p60
func ParseVariantPicker(description string) (VariantPicker, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("empty variant picker")
	}

	if pref, err := quality.ParsePreference(description); err == nil && pref != quality.None {
		return func(variants []*playlist.Variant) (*playlist.Variant, error) {
			return quality.Select(variants, pref, nil)
		}, nil
	}

	switch strings.ToLower(description) {
	case "first":
		return byPosition(func(int) int { return 0 }), nil
	case "last":
		return byPosition(func(n int) int { return n - 1 }), nil
	}

	if n, err := strconv.Atoi(description); err == nil {
		if n < 1 {
			return nil, fmt.Errorf("invalid index: %s", description)
		}
		return func(variants []*playlist.Variant) (*playlist.Variant, error) {
			if len(variants) == 0 {
				return nil, quality.ErrEmptyVariantSet
			}
			if n > len(variants) {
				return nil, fmt.Errorf("index %d out of range, %d variants available", n, len(variants))
			}
			return variants[n-1], nil
		}, nil
	}

	return func(variants []*playlist.Variant) (*playlist.Variant, error) {
		if len(variants) == 0 {
			return nil, quality.ErrEmptyVariantSet
		}
		for _, v := range variants {
			if strings.EqualFold(v.Label, description) {
				return v, nil
			}
		}
		return nil, fmt.Errorf("no variant labelled %q", description)
	}, nil
}

func byPosition(index func(n int) int) VariantPicker {
	return func(variants []*playlist.Variant) (*playlist.Variant, error) {
		if len(variants) == 0 {
			return nil, quality.ErrEmptyVariantSet
		}
		return variants[index(len(variants))], nil
	}
}
