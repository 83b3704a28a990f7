package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideoID(t *testing.T) {
	Convey("videoID accepts the usual spellings", t, func() {
		So(videoID("1234567890"), ShouldEqual, "1234567890")
		So(videoID("v1234567890"), ShouldEqual, "1234567890")
		So(videoID("https://www.twitch.tv/videos/1234567890"), ShouldEqual, "1234567890")
		So(videoID("https://www.twitch.tv/videos/1234567890?t=1h2m"), ShouldEqual, "1234567890")
		So(videoID(" 42/ "), ShouldEqual, "42")
	})
}
