package playlist

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Bandwidth thresholds are strict: exactly 1000 b/s stays in b/s.
const (
	kilo = 1_000
	mega = 1_000_000
)

// PixelCount multiplies the two sides of a WIDTHxHEIGHT resolution.
// An absent resolution yields an absent count; a present but malformed one is a *ParseError.
func PixelCount(resolution mo.Option[string]) (mo.Option[int], error) {
	raw, ok := resolution.Get()
	if !ok {
		return mo.None[int](), nil
	}

	w, h, found := strings.Cut(raw, "x")
	if !found {
		return mo.None[int](), parseErrorf(0, nil, "resolution %q is not WIDTHxHEIGHT", raw)
	}

	width, err := parseDimension(w)
	if err != nil {
		return mo.None[int](), parseErrorf(0, err, "resolution %q has an invalid width", raw)
	}

	height, err := parseDimension(h)
	if err != nil {
		return mo.None[int](), parseErrorf(0, err, "resolution %q has an invalid height", raw)
	}

	pixels := width * height
	if width != 0 && pixels/width != height {
		return mo.None[int](), parseErrorf(0, strconv.ErrRange, "resolution %q is too large", raw)
	}

	return mo.Some(pixels), nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// HumanizeBandwidth renders bits per second as "<value> <unit>".
// Scaled values are rounded to two decimals and always carry a fractional
// part ("2.0 mb/s"); plain b/s values are neither rounded nor padded.
func HumanizeBandwidth(bps float64) string {
	switch {
	case bps > mega:
		return scaled(bps/mega) + " mb/s"
	case bps > kilo:
		return scaled(bps/kilo) + " kb/s"
	default:
		return strconv.FormatFloat(bps, 'f', -1, 64) + " b/s"
	}
}

func scaled(v float64) string {
	s := strconv.FormatFloat(round2(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
