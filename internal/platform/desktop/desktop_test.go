//go:build !js

package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learngl/internal/graphics"
)

func TestSettle(t *testing.T) {
	resize := graphics.Resize{Width: 640, Height: 480}
	tests := []struct {
		name        string
		pending     []graphics.Event
		shouldClose bool
		want        []graphics.Event
	}{
		{"empty", nil, false, nil},
		{"close only", nil, true, []graphics.Event{graphics.Close{}}},
		{"resize gets redraw", []graphics.Event{resize}, false, []graphics.Event{resize, graphics.Redraw{}}},
		{"ends in redraw", []graphics.Event{resize, graphics.Redraw{}}, false, []graphics.Event{resize, graphics.Redraw{}}},
		{"redraw then resize", []graphics.Event{graphics.Redraw{}, resize}, false, []graphics.Event{graphics.Redraw{}, resize, graphics.Redraw{}}},
		{"close goes last", []graphics.Event{resize}, true, []graphics.Event{resize, graphics.Redraw{}, graphics.Close{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settle(tt.pending, tt.shouldClose))
		})
	}
}
