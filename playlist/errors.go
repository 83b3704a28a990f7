// Package playlist decodes adaptive-bitrate master playlists into ordered variant records.
package playlist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is matched by every *ParseError via errors.Is.
var ErrParse = errors.New("malformed playlist")

// ParseError reports a structural or numeric problem in a manifest.
type ParseError struct {
	// Line is the 1-based manifest line, or 0 when the value was not read from a manifest.
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(line int, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
