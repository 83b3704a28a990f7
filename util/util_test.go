package util

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "variant", "variants"), ShouldEqual, "1 variant")
		So(Quantify(2, "variant", "variants"), ShouldEqual, "2 variants")
		So(Quantify(0, "variant", "variants"), ShouldEqual, "0 variants")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("resolution"), ShouldEqual, "Resolution")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap only changes whitespace", t, func() {
		title := "watch the whole trilogy tonight with chat"
		wrapped := Wrap(title, 10)
		So(strings.Fields(wrapped), ShouldResemble, strings.Fields(title))
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Delete removes files", func() {
			So(fs.WriteFile("/tmp/file.json", []byte("[]"), 0o644), ShouldBeNil)
			So(Delete("/tmp/file.json"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/file.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes directories recursively", func() {
			So(fs.MkdirAll("/tmp/dir/nested", 0o755), ShouldBeNil)
			So(Delete("/tmp/dir"), ShouldBeNil)
			exists, _ := fs.DirExists("/tmp/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("Given a status line", t, func() {
		var out bytes.Buffer
		erase := PrintErasableTo(&out, "Fetching playlist...")

		Convey("It is printed without a newline and erased in place", func() {
			So(out.String(), ShouldEqual, "\rFetching playlist...")

			out.Reset()
			erase()
			So(out.String(), ShouldEqual, "\r"+strings.Repeat(" ", len("Fetching playlist..."))+"\r")
		})
	})
}
