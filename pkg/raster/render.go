package raster

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/gopadx/pkg/dotfont"
	"github.com/saylorsolutions/gopadx/pkg/pbm"
)

// Layout constants. Changing any of these changes the output bit-for-bit.
const (
	pixelSize   = 7  // side of one glyph pixel's block
	borderWidth = 1  // grid line thickness
	charMargin  = 10 // gap between character cells, and around the hint
	imageMargin = 20 // outer margin on every side
)

var ErrNonSquareGlyph = errors.New("only square fonts are supported")

// Render lays buf out on a square bitmap, centered, with an optional hint
// image placed directly below the text block, centered on its own width.
// Every glyph pixel gets a one-pixel grid outline whether it's on or off; on
// pixels are filled solid. Blank cells contribute nothing. It fails with
// ErrNonSquareGlyph when any cell's grid isn't square.
func Render(buf *Buffer, hint *pbm.Bitmap) (*pbm.Bitmap, error) {
	for _, line := range buf.Lines {
		for _, cell := range line {
			if cell == nil {
				continue
			}
			for _, row := range cell {
				if len(row) != len(cell) {
					return nil, fmt.Errorf("%w: got a %dx%d glyph", ErrNonSquareGlyph, len(cell), len(row))
				}
			}
		}
	}

	charPitch := pixelSize*buf.Size - borderWidth + charMargin
	hintSpace := 0
	if hint != nil {
		hintSpace = hint.Height() + charMargin
	}
	width := imageMargin + charMargin + buf.Width*charPitch + imageMargin
	height := imageMargin + hintSpace + charMargin + buf.Height*charPitch + hintSpace + imageMargin
	side := width
	if height > side {
		side = height
	}

	out := pbm.New(side, side)
	textX := (side - buf.Width*charPitch) / 2
	textY := (side-height)/2 + imageMargin + hintSpace + charMargin
	for y, line := range buf.Lines {
		for x, cell := range line {
			if cell == nil {
				continue
			}
			drawCell(out, textX+x*charPitch, textY+y*charPitch, cell)
		}
	}
	if hint != nil {
		drawHint(out, (side-hint.Width())/2, textY+buf.Height*charPitch, hint)
	}
	return out, nil
}

// drawCell paints one glyph at origin (cx, cy). Neighboring outlines overlap
// on shared grid lines, which is harmless: rendering only ever sets pixels.
func drawCell(out *pbm.Bitmap, cx, cy int, cell dotfont.Glyph) {
	for r, row := range cell {
		for c, on := range row {
			px, py := cx+c*pixelSize, cy+r*pixelSize
			outline(out, px-borderWidth, py-borderWidth, px+pixelSize, py+pixelSize)
			if !on {
				continue
			}
			for y := py; y <= py+pixelSize; y++ {
				for x := px; x <= px+pixelSize; x++ {
					out.Set(x, y, true)
				}
			}
		}
	}
}

func drawHint(out *pbm.Bitmap, hx, hy int, hint *pbm.Bitmap) {
	for y := 0; y < hint.Height(); y++ {
		for x := 0; x < hint.Width(); x++ {
			if hint.At(x, y) {
				out.Set(hx+x, hy+y, true)
			}
		}
	}
}

func outline(out *pbm.Bitmap, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		out.Set(x, y0, true)
		out.Set(x, y1, true)
	}
	for y := y0; y <= y1; y++ {
		out.Set(x0, y, true)
		out.Set(x1, y, true)
	}
}
