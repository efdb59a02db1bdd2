package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/saylorsolutions/gopadx/pkg/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_SelfInverse(t *testing.T) {
	font := testFont(t)
	bits := pad.Pad{true, true, false, false, true, false}
	buf, err := Rasterize("Hi\nYo", font)
	require.NoError(t, err)
	want, err := Rasterize("Hi\nYo", font)
	require.NoError(t, err)

	first, err := Screen(buf, bits, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(want.Lines, buf.Lines); diff == "" {
		t.Error("screening changed nothing")
	}
	second, err := Screen(buf, bits, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(want.Lines, buf.Lines); diff != "" {
		t.Errorf("double screening must restore the plaintext (-want +got):\n%s", diff)
	}
	assert.Equal(t, first, second)
}

func TestScreen_CursorWrap(t *testing.T) {
	// 2 glyphs of 2x2 pixels is 8 pixels against a 6-bit pad.
	buf, err := Rasterize("Hi", testFont(t))
	require.NoError(t, err)
	bits := pad.Pad{true, true, false, false, true, false}
	cursor, err := Screen(buf, bits, 1)
	require.NoError(t, err)
	assert.Equal(t, (1+8)%6, cursor)
}

func TestScreen_BlankCellSkip(t *testing.T) {
	font := testFont(t)
	bits, err := pad.Generate(30)
	require.NoError(t, err)

	spaced, err := Rasterize("A B", font)
	require.NoError(t, err)
	packed, err := Rasterize("AB", font)
	require.NoError(t, err)

	cursorSpaced, err := Screen(spaced, bits)
	require.NoError(t, err)
	cursorPacked, err := Screen(packed, bits)
	require.NoError(t, err)

	assert.Equal(t, 8, cursorSpaced, "the blank cell must not consume pad bits")
	assert.Equal(t, cursorPacked, cursorSpaced)
	if diff := cmp.Diff(packed.Lines[0][1], spaced.Lines[0][2]); diff != "" {
		t.Errorf("glyph after the blank must screen with the same bits (-want +got):\n%s", diff)
	}
}

func TestScreen_Chaining(t *testing.T) {
	font := testFont(t)
	bits := pad.Pad{true, false, true, true, false}
	whole, err := Rasterize("Hi\nYo", font)
	require.NoError(t, err)
	head, err := Rasterize("Hi\n", font)
	require.NoError(t, err)
	tail, err := Rasterize("Yo", font)
	require.NoError(t, err)

	wantCursor, err := Screen(whole, bits)
	require.NoError(t, err)
	mid, err := Screen(head, bits)
	require.NoError(t, err)
	gotCursor, err := Screen(tail, bits, mid)
	require.NoError(t, err)

	assert.Equal(t, wantCursor, gotCursor)
	if diff := cmp.Diff(whole.Lines[1], tail.Lines[0]); diff != "" {
		t.Errorf("chained screening must match one continuous pass (-want +got):\n%s", diff)
	}
}

func TestScreen_Neg(t *testing.T) {
	buf, err := Rasterize("Hi", testFont(t))
	require.NoError(t, err)
	_, err = Screen(buf, nil)
	assert.Error(t, err)
	_, err = Screen(buf, pad.Pad{true}, -1)
	assert.Error(t, err)
	_, err = Screen(buf, pad.Pad{true}, 1)
	assert.Error(t, err)
}
