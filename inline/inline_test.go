package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttvcli/ttv/playlist"
	"github.com/ttvcli/ttv/quality"
	"github.com/ttvcli/ttv/twitch"
)

const manifest = `#EXTM3U
#EXT-X-MEDIA:TYPE=VIDEO,GROUP-ID="chunked",NAME="1080p60 (source)",AUTOSELECT=YES,DEFAULT=YES
#EXT-X-STREAM-INF:BANDWIDTH=6000000,RESOLUTION=1920x1080,CODECS="avc1.64002A,mp4a.40.2",VIDEO="chunked"
https://video.example/chunked.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=3000000,RESOLUTION=1280x720,CODECS="avc1.4D401F,mp4a.40.2",VIDEO="720p60"
https://video.example/720p60.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=160000,CODECS="mp4a.40.2",VIDEO="audio_only"
https://video.example/audio_only.m3u8
`

type fakeSource struct {
	manifest string
	err      error
	kind     twitch.Kind
	id       string
}

func (f *fakeSource) Manifest(_ context.Context, kind twitch.Kind, id string) (string, error) {
	f.kind, f.id = kind, id
	return f.manifest, f.err
}

func TestRun(t *testing.T) {
	Convey("Given a source serving a manifest", t, func() {
		src := &fakeSource{manifest: manifest}
		var out bytes.Buffer
		ctx := context.Background()

		Convey("Text mode lists every variant in order", func() {
			err := Run(ctx, src, &Options{Out: &out, Kind: twitch.VOD, ID: "123"})
			So(err, ShouldBeNil)
			So(src.kind, ShouldEqual, twitch.VOD)
			So(src.id, ShouldEqual, "123")

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldEqual, "1\tchunked\t1920x1080\t6.0 mb/s\thttps://video.example/chunked.m3u8")
			So(lines[2], ShouldEqual, "3\taudio_only\t-\t160.0 kb/s\thttps://video.example/audio_only.m3u8")
		})

		Convey("A picker prints only the chosen URL", func() {
			picker, err := ParseVariantPicker("bitrate")
			So(err, ShouldBeNil)

			err = Run(ctx, src, &Options{Out: &out, ID: "somebody", Picker: mo.Some(picker), Verify: true})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "https://video.example/chunked.m3u8\n")
		})

		Convey("JSON mode writes the document", func() {
			picker, _ := ParseVariantPicker("720p60")
			err := Run(ctx, src, &Options{Out: &out, ID: "somebody", Json: true, Picker: mo.Some(picker)})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Kind, ShouldEqual, "live")
			So(output.Variants, ShouldHaveLength, 3)
			So(output.Variants[0].Pixels, ShouldEqual, 2073600)
			So(output.Variants[2].Resolution, ShouldBeEmpty)
			So(output.Variants[1].Attributes["codecs"], ShouldEqual, `"avc1.4D401F,mp4a.40.2"`)
			So(output.Selected.Label, ShouldEqual, "720p60")
		})

		Convey("Source failures propagate", func() {
			src.err = twitch.ErrOffline
			err := Run(ctx, src, &Options{Out: &out, ID: "somebody"})
			So(errors.Is(err, twitch.ErrOffline), ShouldBeTrue)
		})

		Convey("Parse failures propagate", func() {
			src.manifest = "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1"
			err := Run(ctx, src, &Options{Out: &out, ID: "somebody"})
			So(errors.Is(err, playlist.ErrParse), ShouldBeTrue)
		})
	})
}

func TestParseVariantPicker(t *testing.T) {
	Convey("Given parsed variants", t, func() {
		variants, err := playlist.Parse(manifest)
		So(err, ShouldBeNil)

		pick := func(description string) (*playlist.Variant, error) {
			picker, err := ParseVariantPicker(description)
			if err != nil {
				return nil, err
			}
			return picker(variants)
		}

		Convey("Axes select like the quality policy", func() {
			v, err := pick("resolution")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[0])
		})

		Convey("Positions and indices", func() {
			v, _ := pick("first")
			So(v, ShouldEqual, variants[0])
			v, _ = pick("last")
			So(v, ShouldEqual, variants[2])
			v, _ = pick("2")
			So(v, ShouldEqual, variants[1])

			_, err := pick("4")
			So(err, ShouldNotBeNil)
			_, err = ParseVariantPicker("0")
			So(err, ShouldNotBeNil)
		})

		Convey("Labels match case-insensitively", func() {
			v, err := pick("AUDIO_ONLY")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, variants[2])

			_, err = pick("4k")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty sets fail for every picker", func() {
			for _, description := range []string{"bitrate", "first", "1", "chunked"} {
				picker, err := ParseVariantPicker(description)
				So(err, ShouldBeNil)
				_, err = picker(nil)
				So(errors.Is(err, quality.ErrEmptyVariantSet), ShouldBeTrue)
			}
		})

		Convey("An empty description is rejected", func() {
			_, err := ParseVariantPicker(" ")
			So(err, ShouldNotBeNil)
		})
	})
}
