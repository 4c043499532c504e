//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"ca-stages/internal/core"
	"ca-stages/internal/render"
	"ca-stages/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer adapts a computed state sequence to the ebiten.Game interface and
// reveals it one time step per tick.
type Viewer struct {
	seq      *core.Sequence
	painter  *render.GridPainter
	playback *core.Playback
	overlay  *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale  int
	paused bool
}

// New constructs a Viewer for seq.
func New(seq *core.Sequence, opts Options) *Viewer {
	opts = opts.withDefaults()
	return &Viewer{
		seq:      seq,
		painter:  render.NewGridPainter(seq.Width(), seq.Len()),
		playback: core.NewPlayback(seq.Len(), opts.TPS),
		overlay:  ui.NewOverlay(opts.Markers, opts.Scale),
		onColor:  color.White,
		offColor: color.Black,
		scale:    opts.Scale,
	}
}

// Update handles per-frame input and advances playback.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.playback.Reveal()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.playback.Rewind()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.overlay.Toggle()
	}
	if !v.paused {
		v.playback.Advance(time.Now())
	}
	return nil
}

// Draw renders the revealed part of the space-time diagram.
func (v *Viewer) Draw(screen *ebiten.Image) {
	shown := v.playback.Shown()
	v.painter.Blit(screen, v.seq.Cells(), shown, v.onColor, v.offColor, v.scale)
	v.overlay.Draw(screen, v.seq.Width(), shown)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.seq.Width() * v.scale, v.seq.Len() * v.scale
}

// Show opens a window playing back seq and blocks until it is closed.
func Show(seq *core.Sequence, opts Options) error {
	opts = opts.withDefaults()
	v := New(seq, opts)

	ebiten.SetWindowTitle(fmt.Sprintf("ca-stages — %d cells, %d steps", seq.Width(), seq.Len()-1))
	ebiten.SetWindowSize(seq.Width()*opts.Scale, seq.Len()*opts.Scale)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
