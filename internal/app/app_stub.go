//go:build !ebiten

package app

import "ca-stages/internal/core"

// Show reports that the viewer needs the ebiten build tag.
func Show(*core.Sequence, Options) error {
	return ErrViewerUnavailable
}
