package quality

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/playlist"
)

func variant(index int, label string, resolution mo.Option[string], bandwidth float64) *playlist.Variant {
	pixels, err := playlist.PixelCount(resolution)
	if err != nil {
		panic(err)
	}

	return &playlist.Variant{
		Index:      index,
		Label:      label,
		URL:        "https://example.com/" + label + ".m3u8",
		Resolution: resolution,
		PixelCount: pixels,
		Bandwidth:  bandwidth,
		Bitrate:    playlist.HumanizeBandwidth(bandwidth),
	}
}

type fixedStore struct {
	pref  Preference
	err   error
	loads int
}

func (s *fixedStore) Load() (Preference, error) {
	s.loads++
	return s.pref, s.err
}

type failingPrompt struct{}

func (failingPrompt) Choose([]*playlist.Variant) (*playlist.Variant, error) {
	panic("prompt must not be used")
}

func TestSelect(t *testing.T) {
	Convey("Given variants with tied resolutions", t, func() {
		variants := []*playlist.Variant{
			variant(1, "chunked", mo.Some("1920x1080"), 6_000_000),
			variant(2, "720p60", mo.Some("1280x720"), 3_000_000),
			variant(3, "1080p30", mo.Some("1920x1080"), 8_000_000),
		}

		Convey("Resolution picks the first maximal variant", func() {
			v, err := Select(variants, Resolution, failingPrompt{})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[0])
		})

		Convey("Bitrate picks the highest bandwidth", func() {
			v, err := Select(variants, Bitrate, failingPrompt{})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[2])
		})
	})

	Convey("Bitrate over [3000000, 6000000] returns the second variant", t, func() {
		variants := []*playlist.Variant{
			variant(1, "720p60", mo.Some("1280x720"), 3_000_000),
			variant(2, "chunked", mo.Some("1920x1080"), 6_000_000),
		}
		v, err := Select(variants, Bitrate, nil)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, variants[1])
	})

	Convey("Variants without a resolution lose resolution comparisons", t, func() {
		audio := variant(1, "audio_only", mo.None[string](), 160_000)
		low := variant(2, "160p30", mo.Some("284x160"), 230_000)

		v, err := Select([]*playlist.Variant{audio, low}, Resolution, nil)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, low)

		Convey("Unless no variant has one", func() {
			other := variant(2, "audio_hq", mo.None[string](), 320_000)
			v, err := Select([]*playlist.Variant{audio, other}, Resolution, nil)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, audio)
		})
	})

	Convey("An empty set always fails", t, func() {
		for _, pref := range []Preference{None, Resolution, Bitrate} {
			_, err := Select(nil, pref, failingPrompt{})
			So(errors.Is(err, ErrEmptyVariantSet), ShouldBeTrue)
		}
	})

	Convey("No preference without a prompt fails", t, func() {
		_, err := Select([]*playlist.Variant{variant(1, "a", mo.None[string](), 1)}, None, nil)
		So(errors.Is(err, ErrNoPrompt), ShouldBeTrue)
	})
}

func TestInteractive(t *testing.T) {
	Convey("Given two variants", t, func() {
		variants := []*playlist.Variant{
			variant(1, "chunked", mo.Some("1920x1080"), 6_000_000),
			variant(2, "audio_only", mo.None[string](), 160_000),
		}
		var out bytes.Buffer

		Convey("Invalid and out-of-range input re-prompts", func() {
			prompt := NewInteractive(strings.NewReader("abc\n0\n2\n"), &out)
			v, err := Select(variants, None, prompt)

			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[1])
			So(out.String(), ShouldEqual, strings.Join([]string{
				"1: 1920x1080 (6.0 mb/s)",
				"2: audio_only (160.0 kb/s)",
				"Select quality: Error: Invalid selection",
				"Select quality: Error: Invalid selection",
				"Select quality: ",
			}, "\n"))
		})

		Convey("A final line without newline is accepted", func() {
			v, err := NewInteractive(strings.NewReader("1"), &out).Choose(variants)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[0])
		})

		Convey("Closed input is reported", func() {
			_, err := NewInteractive(strings.NewReader("7\n"), &out).Choose(variants)
			So(errors.Is(err, ErrInputExhausted), ShouldBeTrue)
			So(strings.Count(out.String(), "Error: Invalid selection"), ShouldEqual, 1)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Falls back to the persisted preference", func() {
			pref, warning, err := Resolve(Bitrate, Options{})
			So(err, ShouldBeNil)
			So(pref, ShouldEqual, Bitrate)
			So(warning.IsAbsent(), ShouldBeTrue)
		})

		Convey("Ad-hoc flags override the persisted preference", func() {
			pref, _, err := Resolve(Bitrate, Options{Resolution: true})
			So(err, ShouldBeNil)
			So(pref, ShouldEqual, Resolution)
		})

		Convey("Both ad-hoc flags conflict", func() {
			_, _, err := Resolve(None, Options{Resolution: true, Bitrate: true})
			So(errors.Is(err, ErrConflictingFlags), ShouldBeTrue)
		})

		Convey("--always takes precedence with a warning", func() {
			pref, warning, err := Resolve(None, Options{Always: Bitrate, Resolution: true, Bitrate: true})
			So(err, ShouldBeNil)
			So(pref, ShouldEqual, Bitrate)
			So(warning.MustGet(), ShouldEqual, WarnAlwaysPrecedence)
		})
	})

	Convey("ParsePreference", t, func() {
		p, err := ParsePreference("Resolution")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, Resolution)

		p, err = ParsePreference("")
		So(err, ShouldBeNil)
		So(p.String(), ShouldEqual, "none")

		_, err = ParsePreference("framerate")
		So(err, ShouldNotBeNil)
	})
}

func TestSelector(t *testing.T) {
	Convey("Given a selector backed by a store", t, func() {
		variants := []*playlist.Variant{
			variant(1, "720p60", mo.Some("1280x720"), 3_000_000),
			variant(2, "chunked", mo.Some("1920x1080"), 6_000_000),
		}
		store := &fixedStore{pref: Resolution}

		Convey("The preference is read once per selection", func() {
			s := &Selector{Store: store, Prompt: failingPrompt{}}
			v, err := s.Select(variants)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[1])
			So(store.loads, ShouldEqual, 1)
		})

		Convey("Store failures propagate", func() {
			store.err = errors.New("broken config")
			_, err := (&Selector{Store: store}).Select(variants)
			So(err, ShouldEqual, store.err)
		})

		Convey("Warnings are forwarded", func() {
			var warnings []string
			s := &Selector{
				Store:     store,
				Options:   Options{Always: Bitrate, Resolution: true},
				OnWarning: func(w string) { warnings = append(warnings, w) },
			}
			v, err := s.Select(variants)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[1])
			So(warnings, ShouldResemble, []string{WarnAlwaysPrecedence})
		})
	})
}
