package preference

import (
	"os"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/config"
	"github.com/ttvcli/ttv/filesystem"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/quality"
	"github.com/ttvcli/ttv/where"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvConfigPath, "/ttv-preference-test")
}

func TestStore(t *testing.T) {
	Convey("Given a fresh configuration", t, func() {
		So(config.Setup(), ShouldBeNil)
		_ = filesystem.API().Remove(config.File())
		viper.Set(key.QualityAlways, "")
		viper.Set(key.PlayerPrintURL, false)

		var store Store

		Convey("Load returns None by default", func() {
			pref, err := store.Load()
			So(err, ShouldBeNil)
			So(pref, ShouldEqual, quality.None)
		})

		Convey("Load rejects unknown values", func() {
			viper.Set(key.QualityAlways, "framerate")
			_, err := store.Load()
			So(err, ShouldNotBeNil)
		})

		Convey("Persist without changes does not create the file", func() {
			So(store.Persist(Options{}), ShouldBeNil)
			exists, _ := filesystem.API().Exists(config.File())
			So(exists, ShouldBeFalse)
		})

		Convey("Persist writes the axis and the print flag", func() {
			So(store.Persist(Options{Always: quality.Bitrate, PrintURL: mo.Some(true)}), ShouldBeNil)

			pref, err := store.Load()
			So(err, ShouldBeNil)
			So(pref, ShouldEqual, quality.Bitrate)
			So(store.PrintURL(), ShouldBeTrue)

			content, err := filesystem.API().ReadFile(config.File())
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "bitrate")

			Convey("An explicit false clears the print flag", func() {
				So(store.Persist(Options{PrintURL: mo.Some(false)}), ShouldBeNil)
				So(store.PrintURL(), ShouldBeFalse)

				pref, _ := store.Load()
				So(pref, ShouldEqual, quality.Bitrate)
			})

			Convey("Reset restores defaults", func() {
				So(store.Reset(), ShouldBeNil)
				pref, err := store.Load()
				So(err, ShouldBeNil)
				So(pref, ShouldEqual, quality.None)
				So(store.PrintURL(), ShouldBeFalse)
				So(viper.GetString(key.PlayerDefault), ShouldEqual, "mpv")
			})
		})
	})
}
