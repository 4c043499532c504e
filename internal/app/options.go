// Package app plays back a computed automaton run in a window. The window
// is only available when built with the ebiten tag.
package app

import (
	"errors"

	"ca-stages/internal/ui"
)

// ErrViewerUnavailable is returned by Show in builds without the ebiten tag.
var ErrViewerUnavailable = errors.New("viewer requires building with -tags ebiten")

// Options controls the viewer window.
type Options struct {
	Scale int
	TPS   int

	// Markers label where each rule starts; see ui.StageMarkers.
	Markers []ui.Marker
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.TPS <= 0 {
		o.TPS = 10
	}
	return o
}
