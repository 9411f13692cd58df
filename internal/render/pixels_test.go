package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 253, G: 249, B: 0, A: 255},
		{R: 0, G: 121, B: 241, A: 255},
	}
	cells := []uint8{1, 0, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		253, 249, 0, 255,
		0, 0, 0, 255,
		0, 121, 241, 255,
		0, 121, 241, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("fillPaletteRGBA = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("expected cleared buffer, got %v", buf)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{0, 3}, color.White, color.Black)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("fillBinaryRGBA = %v, want %v", buf, want)
	}
}
