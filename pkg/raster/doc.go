/*
Package raster turns text into a pad-screened monochrome bitmap.

Note that this is NOT encryption, since the scheme collapses under a known
plaintext. It's a visual demonstration of one-time-pad XOR, and nothing more.

# How it works:

Rasterize looks every message character up in a dot-matrix font and collects
the glyph grids into a Buffer, one row of cells per message line. Spaces become
blank cells and newlines start a new row. Each glyph is deep-copied out of the
font, because the next step mutates it.

Screen applies a bitwise XOR to every glyph pixel in the buffer, in a fixed
line/cell/row/column order, consuming one pad bit per pixel. The pad acts as a
ring buffer: when the last bit is used, the first is used again. Blank cells
consume nothing. Screen returns the final cursor position so a second message
can continue where the first left off. Screening the same buffer twice with
the same pad and starting offset restores the plaintext.

Render lays the screened cells out on a square bitmap with grid lines around
every pixel, centers the content, and places an optional plaintext hint image
below the text block. The result serializes through pkg/pbm.

# Important note:

The same pad and offset must be used to reverse the screen. Failing to do so
yields pixel noise with no recoverable message.
*/
package raster
