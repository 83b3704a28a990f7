// Package quality picks one variant out of a parsed playlist, either automatically
// along a persisted axis or by asking the user.
package quality

import (
	"fmt"
	"strings"
)

// Preference is the axis used for automatic selection.
type Preference string

const (
	// None defers the choice to the interactive prompt.
	None       Preference = ""
	Resolution Preference = "resolution"
	Bitrate    Preference = "bitrate"
)

// Preferences lists the automatic axes, for flag validation and completion.
func Preferences() []string {
	return []string{string(Resolution), string(Bitrate)}
}

// ParsePreference accepts "", "none", "resolution" and "bitrate", case-insensitively.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case string(Resolution):
		return Resolution, nil
	case string(Bitrate):
		return Bitrate, nil
	default:
		return None, fmt.Errorf("unknown quality preference %q, expected one of %s", s, strings.Join(Preferences(), ", "))
	}
}

func (p Preference) String() string {
	if p == None {
		return "none"
	}
	return string(p)
}
