//go:build !js

// Command instancing draws a 10x10 grid of quads with one instanced draw call
// in a glfw window.
package main

import (
	"os"
	"runtime"

	"learngl/internal/app"
	"learngl/internal/debug"
	"learngl/internal/graphics"
	"learngl/internal/instancing"
	"learngl/internal/platform/desktop"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	prefs, log := app.Setup()

	win, err := desktop.Open(prefs)
	if err != nil {
		log.Error("open window", "err", err)
		os.Exit(1)
	}
	log.Info("window open", "title", prefs.Title, "gl", win.Version())

	err = graphics.Run(win, instancing.Factory,
		graphics.WithLogger(log.Logger),
		graphics.WithStats(debug.New(log.Logger, prefs.ShowFPS)),
	)
	win.Close()
	if err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
