package quality

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/playlist"
)

// Interactive prints a numbered menu and reads a 1-based choice, line by line,
// until a valid one arrives. It blocks without timeout.
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive returns a prompt reading from in and writing to out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *Interactive) Choose(variants []*playlist.Variant) (*playlist.Variant, error) {
	if len(variants) == 0 {
		return nil, ErrEmptyVariantSet
	}

	for i, v := range variants {
		fmt.Fprintf(p.out, "%d: %s (%s)\n", i+1, v.Describe(), v.Bitrate)
	}

	for {
		fmt.Fprint(p.out, "Select quality: ")

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil, ErrInputExhausted
			}
			return nil, fmt.Errorf("read selection: %w", err)
		}

		if n := atoi(line); n >= 1 && n <= len(variants) {
			return variants[n-1], nil
		}

		log.Debugf("invalid selection %q", strings.TrimSpace(line))
		fmt.Fprintln(p.out, "Error: Invalid selection")
	}
}

// atoi reads a selection; anything non-numeric counts as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
