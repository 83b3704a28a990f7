package playlist

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/log"
)

// Variant is one playable rendition declared by a master playlist.
type Variant struct {
	// Index is the 1-based position of the variant in the manifest.
	Index int
	// Label is the VIDEO attribute with quotes stripped (e.g. "720p60", "chunked").
	Label string
	// URL of the media playlist, taken from the line after the directive.
	URL        string
	Resolution mo.Option[string]
	PixelCount mo.Option[int]
	// Bandwidth is the declared peak bitrate in bits per second.
	Bandwidth float64
	// Bitrate is Bandwidth rendered for humans, see HumanizeBandwidth.
	Bitrate    string
	Attributes Attributes
}

func (v *Variant) String() string {
	return fmt.Sprintf("%s (%s)", v.Describe(), v.Bitrate)
}

// Describe returns the resolution, falling back to the label and then to "unknown".
func (v *Variant) Describe() string {
	if r, ok := v.Resolution.Get(); ok {
		return r
	}
	if v.Label != "" {
		return v.Label
	}
	return "unknown"
}

// ParseReader reads a whole manifest and parses it.
func ParseReader(r io.Reader) ([]*Variant, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return Parse(string(raw))
}

// Parse decodes every stream directive of a master playlist, in manifest order.
// The line following a directive is always consumed as that variant's URL.
func Parse(manifest string) ([]*Variant, error) {
	lines := strings.Split(strings.TrimRight(manifest, "\r\n"), "\n")

	var variants []*Variant
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		if !strings.HasPrefix(line, constant.StreamInfMarker) {
			continue
		}

		if i+1 >= len(lines) {
			return nil, parseErrorf(i+1, nil, "stream directive is not followed by a URL line")
		}

		uri := strings.TrimSuffix(lines[i+1], "\r")

		attrs := ParseAttributes(strings.TrimPrefix(line, constant.StreamInfMarker))
		v, err := newVariant(len(variants)+1, attrs, uri)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) && pe.Line == 0 {
				pe.Line = i + 1
			}
			return nil, err
		}

		variants = append(variants, v)
		i++
	}

	log.Debugf("parsed %d variants", len(variants))
	return variants, nil
}

func newVariant(index int, attrs Attributes, uri string) (*Variant, error) {
	raw, ok := attrs.Unquoted("bandwidth")
	if !ok {
		return nil, parseErrorf(0, nil, "missing BANDWIDTH attribute")
	}

	bandwidth, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, parseErrorf(0, err, "invalid BANDWIDTH %q", raw)
	}
	if math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) || bandwidth < 0 {
		return nil, parseErrorf(0, nil, "invalid BANDWIDTH %q", raw)
	}

	label, _ := attrs.Unquoted("video")

	resolution := mo.None[string]()
	if r, ok := attrs.Unquoted("resolution"); ok {
		resolution = mo.Some(r)
	}

	pixels, err := PixelCount(resolution)
	if err != nil {
		return nil, err
	}

	return &Variant{
		Index:      index,
		Label:      label,
		URL:        uri,
		Resolution: resolution,
		PixelCount: pixels,
		Bandwidth:  bandwidth,
		Bitrate:    HumanizeBandwidth(bandwidth),
		Attributes: attrs,
	}, nil
}
