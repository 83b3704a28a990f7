package playlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grafov/m3u8"
)

// Verify decodes manifest with an independent HLS decoder and checks that it
// agrees with variants on count, order, bandwidth and URL.
func Verify(manifest string, variants []*Variant) error {
	decoded, listType, err := m3u8.DecodeFrom(strings.NewReader(manifest), false)
	if err != nil {
		return fmt.Errorf("decode playlist: %w", err)
	}

	if listType != m3u8.MASTER {
		return errors.New("not a master playlist")
	}

	master, ok := decoded.(*m3u8.MasterPlaylist)
	if !ok {
		return errors.New("unexpected playlist type")
	}

	if len(master.Variants) != len(variants) {
		return fmt.Errorf("variant count mismatch: parsed %d, decoder found %d", len(variants), len(master.Variants))
	}

	var errs []error
	for i, mv := range master.Variants {
		v := variants[i]
		if float64(mv.Bandwidth) != v.Bandwidth {
			errs = append(errs, fmt.Errorf("variant %d: bandwidth %v, decoder found %d", v.Index, v.Bandwidth, mv.Bandwidth))
		}
		if strings.TrimSpace(mv.URI) != strings.TrimSpace(v.URL) {
			errs = append(errs, fmt.Errorf("variant %d: url %q, decoder found %q", v.Index, v.URL, mv.URI))
		}
		if r, ok := v.Resolution.Get(); ok && mv.Resolution != "" && r != mv.Resolution {
			errs = append(errs, fmt.Errorf("variant %d: resolution %q, decoder found %q", v.Index, r, mv.Resolution))
		}
	}

	return errors.Join(errs...)
}
