package raster

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/gopadx/pkg/dotfont"
	"github.com/saylorsolutions/gopadx/pkg/pbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Square(t *testing.T) {
	font := testFont(t)
	for _, text := range []string{"Hi", "A\nB\nA", "A B o Y\n\nHi"} {
		buf, err := Rasterize(text, font)
		require.NoError(t, err)
		img, err := Render(buf, nil)
		require.NoError(t, err)
		assert.Equal(t, img.Width(), img.Height(), "text %q", text)
	}
}

// Layout for "A B" with the 2x2 test font: character pitch is 7*2-1+10 = 23,
// so the image is max(20+10+3*23+20, 20+10+23+20) = 119 on a side, the text
// block starts at x = (119-69)/2 = 25, y = (119-73)/2+30 = 53.
func TestRender_Layout(t *testing.T) {
	buf, err := Rasterize("A B", testFont(t))
	require.NoError(t, err)
	img, err := Render(buf, nil)
	require.NoError(t, err)
	require.Equal(t, 119, img.Width())

	// Grid outline around the first glyph pixel.
	assert.True(t, img.At(24, 52))
	assert.True(t, img.At(32, 52))
	// Solid fill inside the first pixel, which is on for 'A'.
	assert.True(t, img.At(28, 56))
	// Interior of A's bottom-right pixel, which is off.
	assert.False(t, img.At(35, 63))
	// The blank cell's whole footprint stays empty, outline included.
	for y := 52; y <= 67; y++ {
		for x := 47; x <= 62; x++ {
			assert.False(t, img.At(x, y), "blank cell pixel at (%d,%d)", x, y)
		}
	}
	// B's leading outline starts past the blank gap.
	assert.True(t, img.At(70, 52))
}

// A 4x3 hint under "Hi": the side grows to 20+13+10+23+13+20 = 99, the text
// block starts at y = 43, so the hint lands at y = 66 centered at x = 47.
func TestRender_HintPlacement(t *testing.T) {
	buf, err := Rasterize("Hi", testFont(t))
	require.NoError(t, err)
	hint := pbm.New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			hint.Set(x, y, true)
		}
	}
	img, err := Render(buf, hint)
	require.NoError(t, err)
	require.Equal(t, 99, img.Width())
	require.Equal(t, 99, img.Height())

	assert.True(t, img.At(47, 66))
	assert.True(t, img.At(50, 68))
	assert.False(t, img.At(46, 66), "left of the hint")
	assert.False(t, img.At(51, 66), "right of the hint")
	assert.False(t, img.At(47, 69), "below the hint")
	assert.False(t, img.At(47, 65), "between text block and hint")
}

func TestRender_Deterministic(t *testing.T) {
	font := testFont(t)
	serialize := func() string {
		buf, err := Rasterize("Hi", font)
		require.NoError(t, err)
		img, err := Render(buf, nil)
		require.NoError(t, err)
		var out strings.Builder
		require.NoError(t, img.Encode(&out))
		return out.String()
	}
	assert.Equal(t, serialize(), serialize())
}

func TestRender_NonSquareGlyph(t *testing.T) {
	buf := &Buffer{
		Lines:  [][]dotfont.Glyph{{dotfont.Glyph{{true, false, true}}}},
		Width:  1,
		Height: 1,
		Size:   1,
	}
	_, err := Render(buf, nil)
	assert.ErrorIs(t, err, ErrNonSquareGlyph)
}
