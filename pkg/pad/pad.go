package pad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrEmptyPad     = errors.New("pad contains no usable bits")
	ErrMalformedPad = errors.New("malformed pad record")
)

// Pad is an ordered sequence of bits, treated as a ring by consumers.
type Pad []bool

// Parse reads a pad file from r.
// It fails with ErrEmptyPad when no usable bits are found, and with
// ErrMalformedPad on a record that isn't a bit value or an "index value" pair.
func Parse(r io.Reader) (Pad, error) {
	var (
		scanner = bufio.NewScanner(r)
		bits    Pad
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: line %d: want a value or an index and a value, got %d fields", ErrMalformedPad, lineNo, len(fields))
		}
		bit, err := strconv.ParseBool(fields[len(fields)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a bit value", ErrMalformedPad, lineNo, fields[len(fields)-1])
		}
		bits = append(bits, bit)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(bits) == 0 {
		return nil, ErrEmptyPad
	}
	return bits, nil
}

// Encode writes p to w in the pad file format, one "index value" record per
// line. Parse reverses it.
func Encode(w io.Writer, p Pad) error {
	if len(p) == 0 {
		return ErrEmptyPad
	}
	bw := bufio.NewWriter(w)
	for i, bit := range p {
		value := 0
		if bit {
			value = 1
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", i, value); err != nil {
			return err
		}
	}
	return bw.Flush()
}
