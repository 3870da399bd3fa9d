//go:build !js

package rlwindow

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"learngl/internal/config"
	"learngl/internal/graphics"
)

func TestConfigFlags(t *testing.T) {
	p := config.Default()
	p.VSync = false
	flags := configFlags(p)
	assert.NotZero(t, flags&uint32(rl.FlagWindowResizable))
	assert.NotZero(t, flags&uint32(rl.FlagWindowHighdpi))
	assert.Zero(t, flags&uint32(rl.FlagVsyncHint))

	p.VSync = true
	assert.NotZero(t, configFlags(p)&uint32(rl.FlagVsyncHint))
}

func TestFrameEvents(t *testing.T) {
	tests := []struct {
		name    string
		first   bool
		resized bool
		want    []graphics.Event
	}{
		{"first frame", true, false, []graphics.Event{graphics.Resize{Width: 800, Height: 600}, graphics.Redraw{}}},
		{"resized", false, true, []graphics.Event{graphics.Resize{Width: 800, Height: 600}, graphics.Redraw{}}},
		{"plain", false, false, []graphics.Event{graphics.Redraw{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, frameEvents(tt.first, tt.resized, 800, 600))
		})
	}
}

func TestOverlayOrigin(t *testing.T) {
	x, y := overlayOrigin(1024, 100, 0)
	assert.Equal(t, int32(1024-100-overlayPadding), x)
	assert.Equal(t, int32(overlayPadding), y)

	_, y = overlayOrigin(1024, 100, 1)
	assert.Equal(t, int32(overlayPadding+overlayLineHeight), y)
}
