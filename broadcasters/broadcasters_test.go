package broadcasters

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/filesystem"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/where"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvCachePath, "/ttv-broadcasters-test")
}

func TestBroadcasters(t *testing.T) {
	Convey("Given an empty broadcaster cache", t, func() {
		So(cacher().Set(map[string]*Record{}), ShouldBeNil)
		viper.Set(key.BroadcastersSuggest, true)

		Convey("Remember stores each login once, normalized", func() {
			So(Remember("Somebody"), ShouldBeNil)
			So(Remember(" somebody "), ShouldBeNil)
			So(Remember("another_one"), ShouldBeNil)
			So(Remember(""), ShouldBeNil)

			all, err := All()
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 2)
			So(all[0].Login, ShouldEqual, "somebody")
			So(all[0].Rank, ShouldEqual, 2)

			Convey("Suggest matches fuzzily, best ranked first", func() {
				So(Suggest("sbdy"), ShouldResemble, []string{"somebody"})
				So(Suggest("o"), ShouldResemble, []string{"somebody", "another_one"})
				So(Suggest("zzz"), ShouldBeEmpty)
			})

			Convey("Suggest is empty when disabled", func() {
				viper.Set(key.BroadcastersSuggest, false)
				So(Suggest("some"), ShouldBeEmpty)
			})

			Convey("Forget removes a login", func() {
				So(Forget("SOMEBODY"), ShouldBeNil)
				all, err := All()
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 1)
				So(all[0].Login, ShouldEqual, "another_one")
			})
		})

		Convey("The cache is written to its own file", func() {
			So(Remember("somebody"), ShouldBeNil)
			exists, err := filesystem.API().Exists(where.Broadcasters())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
