package cmd

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/twitch"
)

func TestPrintStream(t *testing.T) {
	Convey("Given a live stream", t, func() {
		stream := twitch.Stream{
			Title:       "speedrun practice",
			Game:        "Celeste",
			Viewers:     1,
			DisplayName: "Streamer",
		}

		Convey("The header goes only to the given writer", func() {
			var out bytes.Buffer
			printStream(&out, stream)

			So(out.String(), ShouldContainSubstring, "Streamer")
			So(out.String(), ShouldContainSubstring, "Celeste")
			So(out.String(), ShouldContainSubstring, "1 viewer")
			So(out.String(), ShouldContainSubstring, "speedrun")
		})
	})
}
