package raster

import (
	"bufio"
	"io"
	"strings"
)

// Fprint writes a human-readable rendition of buf to w, for eyeballing a
// buffer before or after screening. On pixels print as '*', off pixels as
// spaces, blank cells as a run of spaces the width of a glyph. Cells are
// separated by two spaces and text lines by a blank line.
func Fprint(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)
	for i, line := range buf.Lines {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for r := 0; r < buf.Size; r++ {
			for c, cell := range line {
				if c > 0 {
					bw.WriteString("  ")
				}
				if cell == nil {
					bw.WriteString(strings.Repeat(" ", buf.Size))
					continue
				}
				for _, on := range cell[r] {
					if on {
						bw.WriteByte('*')
					} else {
						bw.WriteByte(' ')
					}
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
