// Package preference persists the automatic selection axis and related output
// flags in the configuration file.
package preference

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/config"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/quality"
)

// Options are the values a run may ask to persist.
type Options struct {
	// Always is written when it is not quality.None.
	Always quality.Preference
	// PrintURL is written when present. False removes the setting.
	PrintURL mo.Option[bool]
}

// Store reads and writes preferences through viper.
type Store struct{}

// Load returns the persisted axis. An unrecognized stored value is an error.
func (Store) Load() (quality.Preference, error) {
	raw := viper.GetString(key.QualityAlways)
	pref, err := quality.ParsePreference(raw)
	if err != nil {
		return quality.None, fmt.Errorf("%s: %w", key.QualityAlways, err)
	}
	return pref, nil
}

// PrintURL reports whether the chosen URL should be printed instead of played.
func (Store) PrintURL() bool {
	return viper.GetBool(key.PlayerPrintURL)
}

// Persist writes opts to the configuration file. Nothing is written when
// opts carries no change.
func (Store) Persist(opts Options) error {
	changed := false

	if opts.Always != quality.None {
		log.Infof("persisting %s=%s", key.QualityAlways, opts.Always)
		viper.Set(key.QualityAlways, string(opts.Always))
		changed = true
	}

	if printURL, ok := opts.PrintURL.Get(); ok {
		log.Infof("persisting %s=%t", key.PlayerPrintURL, printURL)
		viper.Set(key.PlayerPrintURL, printURL)
		changed = true
	}

	if !changed {
		return nil
	}

	return config.Write()
}

// Reset restores every configuration key to its default and writes the file.
// The broadcaster cache lives in its own file and is left untouched.
func (Store) Reset() error {
	for name, field := range config.Default {
		viper.Set(name, field.Value)
	}
	log.Info("configuration reset to defaults")
	return config.Write()
}
