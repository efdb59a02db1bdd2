package raster

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/gopadx/pkg/pad"
)

type bitScreen struct {
	pad pad.Pad
	cur int
}

func newBitScreen(p pad.Pad, offset ...int) (*bitScreen, error) {
	if len(p) == 0 {
		return nil, errors.New("cannot screen with an empty pad")
	}
	s := &bitScreen{pad: p}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(p) {
			return nil, fmt.Errorf("offset %d out of range for pad of len %d", offset[0], len(p))
		}
		s.cur = offset[0]
	}
	return s, nil
}

func (s *bitScreen) screen(bit bool) bool {
	bit = bit != s.pad[s.cur]
	s.cur = (s.cur + 1) % len(s.pad)
	return bit
}

// Screen XORs every glyph pixel of buf against p in place, walking lines,
// then cells, then glyph rows, then columns. Blank cells consume no pad bits.
// The pad cursor starts at offset (default 0) and wraps past the end of the
// pad; the final cursor position is returned so further messages can continue
// on the same pad stream. Applying Screen twice with the same pad and offset
// restores the original buffer.
func Screen(buf *Buffer, p pad.Pad, offset ...int) (int, error) {
	scr, err := newBitScreen(p, offset...)
	if err != nil {
		return 0, err
	}
	for _, line := range buf.Lines {
		for _, cell := range line {
			if cell == nil {
				continue
			}
			for _, row := range cell {
				for x, bit := range row {
					row[x] = scr.screen(bit)
				}
			}
		}
	}
	return scr.cur, nil
}
