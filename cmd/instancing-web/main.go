//go:build js && wasm

// Command instancing-web renders a single frame of the instancing demo into
// the page's canvas. Build with GOOS=js GOARCH=wasm and serve next to
// index.html and wasm_exec.js.
package main

import (
	"os"

	"learngl/internal/app"
	"learngl/internal/graphics"
	"learngl/internal/instancing"
	"learngl/internal/platform/canvas"
)

func main() {
	prefs, log := app.Setup()

	ctx, err := canvas.Open(prefs.CanvasID)
	if err != nil {
		log.Error("open canvas", "id", prefs.CanvasID, "err", err)
		os.Exit(1)
	}
	if _, err := graphics.RenderOnce(ctx, instancing.Factory); err != nil {
		log.Error("render", "err", err)
		os.Exit(1)
	}
	log.Info("frame rendered", "canvas", prefs.CanvasID)
}
