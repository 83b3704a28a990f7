package quality

import (
	"errors"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/playlist"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyVariantSet is returned when there is nothing to choose from.
	ErrEmptyVariantSet = errors.New("no variants to choose from")

	// ErrInputExhausted is returned when the input closes before a valid selection.
	ErrInputExhausted = errors.New("input closed before a quality was selected")

	// ErrNoPrompt is returned when an interactive choice is needed but no prompt was given.
	ErrNoPrompt = errors.New("no quality preference set and no interactive prompt available")
)

// Prompter asks the user to pick one of the variants.
type Prompter interface {
	Choose(variants []*playlist.Variant) (*playlist.Variant, error)
}

// Select picks a variant along pref, or asks prompt when pref is None.
// Automatic picks keep the first of equally ranked variants.
func Select(variants []*playlist.Variant, pref Preference, prompt Prompter) (*playlist.Variant, error) {
	if len(variants) == 0 {
		return nil, ErrEmptyVariantSet
	}

	switch pref {
	case Resolution:
		v := stableMax(variants, func(v *playlist.Variant) mo.Option[int] {
			return v.PixelCount
		})
		log.Infof("selected %s by resolution", v.Label)
		return v, nil
	case Bitrate:
		v := stableMax(variants, func(v *playlist.Variant) mo.Option[float64] {
			return mo.Some(v.Bandwidth)
		})
		log.Infof("selected %s by bitrate", v.Label)
		return v, nil
	}

	if prompt == nil {
		return nil, ErrNoPrompt
	}

	return prompt.Choose(variants)
}

// stableMax returns the first variant with the greatest metric.
// Variants without a metric lose every comparison.
func stableMax[T constraints.Ordered](variants []*playlist.Variant, metric func(*playlist.Variant) mo.Option[T]) *playlist.Variant {
	best := variants[0]
	bestValue := metric(best)

	for _, v := range variants[1:] {
		value, ok := metric(v).Get()
		if !ok {
			continue
		}

		if current, has := bestValue.Get(); !has || value > current {
			best, bestValue = v, mo.Some(value)
		}
	}

	return best
}
