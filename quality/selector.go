package quality

import (
	"errors"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/playlist"
)

// ErrConflictingFlags is returned when both ad-hoc axes are requested at once.
var ErrConflictingFlags = errors.New("the --bitrate and --resolution flags cannot be supplied together")

// WarnAlwaysPrecedence is emitted when --always is combined with an ad-hoc axis.
const WarnAlwaysPrecedence = "--always takes precedence over --bitrate or --resolution"

// Options are the per-run selection flags.
type Options struct {
	// Always is the axis the user asked to persist, None if not given.
	Always Preference
	// Resolution and Bitrate pick an axis for this run only.
	Resolution bool
	Bitrate    bool
}

// Resolve merges run flags with the persisted preference.
// --always wins over ad-hoc flags, which win over the persisted value.
func Resolve(persisted Preference, opts Options) (Preference, mo.Option[string], error) {
	if opts.Always != None {
		if opts.Resolution || opts.Bitrate {
			return opts.Always, mo.Some(WarnAlwaysPrecedence), nil
		}
		return opts.Always, mo.None[string](), nil
	}

	switch {
	case opts.Resolution && opts.Bitrate:
		return None, mo.None[string](), ErrConflictingFlags
	case opts.Resolution:
		return Resolution, mo.None[string](), nil
	case opts.Bitrate:
		return Bitrate, mo.None[string](), nil
	}

	return persisted, mo.None[string](), nil
}

// PreferenceLoader reads the persisted selection axis.
type PreferenceLoader interface {
	Load() (Preference, error)
}

// Selector reads the persisted preference once per call and selects with it.
type Selector struct {
	Store   PreferenceLoader
	Prompt  Prompter
	Options Options
	// OnWarning receives non-fatal notices about the flag combination.
	OnWarning func(string)
}

func (s *Selector) Select(variants []*playlist.Variant) (*playlist.Variant, error) {
	persisted := None
	if s.Store != nil {
		var err error
		if persisted, err = s.Store.Load(); err != nil {
			return nil, err
		}
	}

	pref, warning, err := Resolve(persisted, s.Options)
	if err != nil {
		return nil, err
	}

	if w, ok := warning.Get(); ok {
		log.Warn(w)
		if s.OnWarning != nil {
			s.OnWarning(w)
		}
	}

	return Select(variants, pref, s.Prompt)
}
