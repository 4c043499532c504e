package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBAHidesUnrevealedRows(t *testing.T) {
	cells := []uint8{1, 0, 1, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}

	FillBinaryRGBA(buf, cells, 2, on, off)

	want := []uint8{255, 0, 0, 0}
	for i, r := range want {
		if got := buf[i*4]; got != r {
			t.Fatalf("pixel %d red=%d, expected %d", i, got, r)
		}
		if buf[i*4+3] != 255 {
			t.Fatalf("pixel %d must be opaque", i)
		}
	}
}
