// Package dotfont parses square dot-matrix font definitions.
//
// A font file is a sequence of glyph blocks. Each block is one line holding a
// single character, followed by N lines of N characters, where a space is an
// "off" pixel and '*' is an "on" pixel. N is inferred from the first pixel row
// of the first glyph and must hold for the whole file.
package dotfont

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Mark is the "on" pixel character in a font definition.
const Mark = '*'

var (
	ErrMalformedFont  = errors.New("malformed font definition")
	ErrDuplicateGlyph = errors.New("duplicate glyph definition")
)

// Glyph is a square grid of on/off pixels for a single character.
type Glyph [][]bool

// Clone returns an independent deep copy of the glyph, so callers may mutate
// the copy without touching the font definition.
func (g Glyph) Clone() Glyph {
	c := make(Glyph, len(g))
	for i, row := range g {
		c[i] = make([]bool, len(row))
		copy(c[i], row)
	}
	return c
}

// Font maps characters to their pixel grids. All glyphs share the same Size,
// and every glyph is exactly Size rows of Size pixels.
type Font struct {
	Size   int
	Glyphs map[rune]Glyph
}

// Parse reads a font definition from r.
// It fails with ErrMalformedFont on inconsistent glyph blocks and with
// ErrDuplicateGlyph when the same character is defined twice.
func Parse(r io.Reader) (*Font, error) {
	var (
		scanner = bufio.NewScanner(r)
		font    = &Font{Glyphs: make(map[rune]Glyph)}
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if utf8.RuneCountInString(line) != 1 {
			return nil, fmt.Errorf("%w: line %d: want a single character, got %q", ErrMalformedFont, lineNo, line)
		}
		ch, _ := utf8.DecodeRuneInString(line)
		if _, ok := font.Glyphs[ch]; ok {
			return nil, fmt.Errorf("%w: %q redefined at line %d", ErrDuplicateGlyph, ch, lineNo)
		}
		var g Glyph
		for row := 0; font.Size == 0 || row < font.Size; row++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("%w: glyph %q truncated after line %d", ErrMalformedFont, ch, lineNo)
			}
			lineNo++
			pixels, err := parseRow(scanner.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFont, lineNo, err)
			}
			if font.Size == 0 {
				if len(pixels) <= 1 {
					return nil, fmt.Errorf("%w: line %d: glyph size %d, must be at least 2", ErrMalformedFont, lineNo, len(pixels))
				}
				font.Size = len(pixels)
			}
			if len(pixels) != font.Size {
				return nil, fmt.Errorf("%w: line %d: row is %d pixels wide, want %d", ErrMalformedFont, lineNo, len(pixels), font.Size)
			}
			g = append(g, pixels)
		}
		font.Glyphs[ch] = g
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(font.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyph definitions found", ErrMalformedFont)
	}
	return font, nil
}

func parseRow(line string) ([]bool, error) {
	pixels := make([]bool, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
		case Mark:
			pixels[i] = true
		default:
			return nil, fmt.Errorf("unexpected pixel character %q", line[i])
		}
	}
	return pixels, nil
}
