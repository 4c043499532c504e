//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var markerColor = color.RGBA{R: 220, G: 60, B: 60, A: 255}

// Draw renders stage boundaries up to the shown rows and the caption.
func (o *Overlay) Draw(screen *ebiten.Image, width, shown int) {
	if !o.visible {
		return
	}
	for _, m := range o.markers {
		if m.Row == 0 || m.Row >= shown {
			continue
		}
		y := float32(m.Row*o.scale) + float32(o.scale)/2
		vector.StrokeLine(screen, 0, y, float32(width*o.scale), y, 1, markerColor, false)
	}
	ebitenutil.DebugPrint(screen, o.Caption(shown))
}
