// Package pbm reads and writes a plain-text monochrome bitmap format: a "P1"
// marker line, a "width height" line, then one line per row of space-separated
// 0/1 pixels.
package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Marker is the format marker on the first line of a bitmap file.
const Marker = "P1"

var ErrMalformed = errors.New("malformed bitmap")

// Bitmap is a rectangular grid of on/off pixels. Every row has the same
// length, enforced by Decode and New.
type Bitmap struct {
	Pixels [][]bool
}

// New returns a zero-filled bitmap with the given dimensions.
func New(width, height int) *Bitmap {
	pixels := make([][]bool, height)
	for y := range pixels {
		pixels[y] = make([]bool, width)
	}
	return &Bitmap{Pixels: pixels}
}

// Width is the length of the first row, or 0 for an empty bitmap.
func (b *Bitmap) Width() int {
	if len(b.Pixels) == 0 {
		return 0
	}
	return len(b.Pixels[0])
}

// Height is the number of rows.
func (b *Bitmap) Height() int {
	return len(b.Pixels)
}

// At returns the pixel at a point, or false outside the bitmap.
func (b *Bitmap) At(x, y int) bool {
	if y < 0 || y >= b.Height() || x < 0 || x >= b.Width() {
		return false
	}
	return b.Pixels[y][x]
}

// Set sets the pixel at a point. Points outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, bit bool) {
	if y < 0 || y >= b.Height() || x < 0 || x >= b.Width() {
		return
	}
	b.Pixels[y][x] = bit
}

// Decode reads a bitmap from r, failing with ErrMalformed on a missing
// marker, a bad dimension line, or any row/column count mismatch.
func Decode(r io.Reader) (*Bitmap, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing %q marker line", ErrMalformed, Marker)
	}
	if marker := strings.TrimSpace(scanner.Text()); marker != Marker {
		return nil, fmt.Errorf("%w: want marker %q, got %q", ErrMalformed, Marker, marker)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing dimension line", ErrMalformed)
	}
	var width, height int
	if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("%w: bad dimension line %q", ErrMalformed, scanner.Text())
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d", ErrMalformed, width, height)
	}
	bitmap := New(width, height)
	for y := 0; y < height; y++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: want %d rows, got %d", ErrMalformed, height, y)
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrMalformed, y, len(tokens), width)
		}
		for x, token := range tokens {
			switch token {
			case "0":
			case "1":
				bitmap.Pixels[y][x] = true
			default:
				return nil, fmt.Errorf("%w: row %d: %q is not a pixel value", ErrMalformed, y, token)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bitmap, nil
}

// Encode writes the bitmap to w. Decode reverses it.
func (b *Bitmap) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", Marker, b.Width(), b.Height()); err != nil {
		return err
	}
	for _, row := range b.Pixels {
		for x, bit := range row {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			pixel := byte('0')
			if bit {
				pixel = '1'
			}
			if err := bw.WriteByte(pixel); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
