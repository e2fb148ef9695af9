package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	off := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	for i, c := range cells {
		want := off
		if c != 0 {
			want = on
		}
		base := i * 4
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("cell %d: pixel = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	if buf[8] != 255 || buf[9] != 255 || buf[10] != 255 {
		t.Fatalf("age beyond the palette must clamp to the last entry, got %v", buf[8:12])
	}
}
