package playlist

import "strings"

// Attributes holds a directive's attribute list keyed by normalized name.
// Values are kept verbatim, surrounding quotes included.
type Attributes map[string]string

// Get returns the raw value stored under the normalized form of name.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a[NormalizeKey(name)]
	return v, ok
}

// Unquoted returns the value under name without its surrounding double quotes.
func (a Attributes) Unquoted(name string) (string, bool) {
	v, ok := a.Get(name)
	if !ok {
		return "", false
	}
	return unquote(v), true
}

// NormalizeKey lower-cases an attribute name and replaces dashes with underscores,
// so FRAME-RATE becomes frame_rate.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// ParseAttributes tokenizes a comma-separated NAME=VALUE list.
// Commas inside "..." spans are part of the value. A bare token without "="
// belongs to the preceding value, which keeps unquoted lists like
// CODECS=avc1.4d401f,mp4a.40.2 intact.
func ParseAttributes(list string) Attributes {
	attrs := make(Attributes)
	last := ""

	for _, field := range splitFields(list) {
		name, value, found := cutUnquoted(field, '=')
		if !found {
			if last != "" && strings.TrimSpace(field) != "" {
				attrs[last] += "," + field
			}
			continue
		}

		k := NormalizeKey(name)
		if k == "" {
			continue
		}
		attrs[k] = value
		last = k
	}

	return attrs
}

// splitFields splits on commas that are outside double quotes.
func splitFields(list string) []string {
	var (
		fields []string
		start  int
		quoted bool
	)

	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				fields = append(fields, list[start:i])
				start = i + 1
			}
		}
	}

	return append(fields, list[start:])
}

// cutUnquoted is strings.Cut that ignores separators inside double quotes.
func cutUnquoted(s string, sep byte) (before, after string, found bool) {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
