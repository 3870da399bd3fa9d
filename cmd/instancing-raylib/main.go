//go:build !js

// Command instancing-raylib is the instancing demo hosted in a raylib window.
package main

import (
	"os"
	"runtime"

	"learngl/internal/app"
	"learngl/internal/debug"
	"learngl/internal/graphics"
	"learngl/internal/instancing"
	"learngl/internal/platform/rlwindow"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	prefs, log := app.Setup()

	win, err := rlwindow.Open(prefs)
	if err != nil {
		log.Error("open window", "err", err)
		os.Exit(1)
	}

	stats := debug.New(log.Logger, prefs.ShowFPS)
	win.ShowStats(stats)

	err = graphics.Run(win, instancing.Factory,
		graphics.WithLogger(log.Logger),
		graphics.WithStats(stats),
	)
	win.Close()
	if err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
