package raster

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/gopadx/pkg/dotfont"
)

var (
	ErrUnknownCharacter = errors.New("character not present in font")
	ErrEmptyMessage     = errors.New("message contains nothing to encode")
)

// Buffer holds a rasterized message: one slice of cells per message line,
// where a nil cell is a blank (space) and any other cell is a private copy of
// a font glyph. Screening mutates the cells in place, never the font.
type Buffer struct {
	Lines  [][]dotfont.Glyph
	Width  int // most cells on any line
	Height int // line count
	Size   int // glyph pixel size
}

// Rasterize converts text into a Buffer using font. A newline ends the
// current line and starts a new one, so trailing newlines leave a trailing
// empty line. Carriage returns get no special treatment.
// It fails with ErrUnknownCharacter when the font has no glyph for a message
// character, and with ErrEmptyMessage when the text is empty or only
// newlines.
func Rasterize(text string, font *dotfont.Font) (*Buffer, error) {
	var (
		buf   = &Buffer{Size: font.Size}
		line  []dotfont.Glyph
		cells int
	)
	for _, ch := range text {
		switch ch {
		case '\n':
			buf.Lines = append(buf.Lines, line)
			line = nil
		case ' ':
			line = append(line, nil)
			cells++
		default:
			g, ok := font.Glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, ch)
			}
			line = append(line, g.Clone())
			cells++
		}
	}
	buf.Lines = append(buf.Lines, line)
	if cells == 0 {
		return nil, ErrEmptyMessage
	}
	buf.Height = len(buf.Lines)
	for _, l := range buf.Lines {
		if len(l) > buf.Width {
			buf.Width = len(l)
		}
	}
	return buf, nil
}
