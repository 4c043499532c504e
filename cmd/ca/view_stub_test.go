//go:build !ebiten

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ca-stages/internal/app"
)

func TestViewWithoutEbitenTag(t *testing.T) {
	out, _, err := execute(t, rule150Input, "--view")
	assert.True(t, errors.Is(err, app.ErrViewerUnavailable))
	assert.Contains(t, out, "==THE END")
}
