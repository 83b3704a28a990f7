package inline

import (
	"encoding/json"
	"io"

	"github.com/ttvcli/ttv/playlist"
)

// Variant is the JSON form of a playlist variant.
type Variant struct {
	Index      int               `json:"index"`
	Label      string            `json:"label"`
	URL        string            `json:"url"`
	Resolution string            `json:"resolution,omitempty"`
	Pixels     int               `json:"pixels,omitempty"`
	Bandwidth  float64           `json:"bandwidth"`
	Bitrate    string            `json:"bitrate"`
	Attributes map[string]string `json:"attributes"`
}

// Output is the document written in JSON mode.
type Output struct {
	Kind     string     `json:"kind"`
	ID       string     `json:"id"`
	Variants []*Variant `json:"variants"`
	// Selected is set when a picker was given.
	Selected *Variant `json:"selected,omitempty"`
}

func newVariant(v *playlist.Variant) *Variant {
	attributes := make(map[string]string, len(v.Attributes))
	for name, value := range v.Attributes {
		attributes[name] = value
	}

	return &Variant{
		Index:      v.Index,
		Label:      v.Label,
		URL:        v.URL,
		Resolution: v.Resolution.OrEmpty(),
		Pixels:     v.PixelCount.OrEmpty(),
		Bandwidth:  v.Bandwidth,
		Bitrate:    v.Bitrate,
		Attributes: attributes,
	}
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
