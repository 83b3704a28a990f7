package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Given overridden base directories", t, func() {
		So(os.Setenv(EnvConfigPath, "/where-test/config"), ShouldBeNil)
		So(os.Setenv(EnvCachePath, "/where-test/cache"), ShouldBeNil)

		Convey("Config() and Cache() honour the override and exist", func() {
			So(Config(), ShouldEqual, "/where-test/config")
			So(Cache(), ShouldEqual, "/where-test/cache")
			So(lo.Must(filesystem.API().IsDir(Config())), ShouldBeTrue)
			So(lo.Must(filesystem.API().IsDir(Cache())), ShouldBeTrue)
		})

		Convey("Logs() lives under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("/where-test/config", "logs"))
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Cache files live under the cache directory", func() {
			So(filepath.Dir(Broadcasters()), ShouldEqual, "/where-test/cache")
			So(filepath.Base(Version()), ShouldEqual, "version.json")
		})
	})
}
