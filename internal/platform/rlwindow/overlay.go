//go:build !js

package rlwindow

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
)

// drawOverlay draws lines right-aligned at the top-right corner in green,
// one under the other.
func drawOverlay(lines []string, screenW int32) {
	for i, text := range lines {
		if text == "" {
			continue
		}
		x, y := overlayOrigin(screenW, rl.MeasureText(text, overlayFontSize), i)
		rl.DrawText(text, x, y, overlayFontSize, rl.Green)
	}
}

// overlayOrigin is the top-left corner of line i of text that is textW
// pixels wide.
func overlayOrigin(screenW, textW int32, i int) (x, y int32) {
	return screenW - textW - overlayPadding, overlayPadding + int32(i)*overlayLineHeight
}
