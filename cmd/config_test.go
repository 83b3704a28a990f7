package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/config"
	"github.com/ttvcli/ttv/key"
)

func TestParseValue(t *testing.T) {
	Convey("Given the registered settings", t, func() {
		Convey("quality.always is stored in canonical form", func() {
			v, err := parseValue(config.Default[key.QualityAlways], []string{"Resolution"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "resolution")

			v, err = parseValue(config.Default[key.QualityAlways], []string{"none"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "")

			_, err = parseValue(config.Default[key.QualityAlways], []string{"framerate"})
			So(err, ShouldNotBeNil)
		})

		Convey("Enumerated settings reject unknown values", func() {
			_, err := parseValue(config.Default[key.IconsVariant], []string{"ascii"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(config.Default[key.IconsVariant], []string{"emoji"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "emoji")
		})

		Convey("Values take the type of the default", func() {
			v, err := parseValue(config.Default[key.PlayerPrintURL], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseValue(config.Default[key.VodsLimit], []string{"25"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 25)

			v, err = parseValue(config.Default[key.PlayerArgs], []string{"--no-border", "--volume=50"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"--no-border", "--volume=50"})
		})

		Convey("The VOD listing limit must be positive", func() {
			_, err := parseValue(config.Default[key.VodsLimit], []string{"0"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.VodsLimit], []string{"ten"})
			So(err, ShouldNotBeNil)
		})
	})
}
