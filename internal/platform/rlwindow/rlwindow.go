//go:build !js

// Package rlwindow hosts a renderer in a raylib window. raylib owns the window
// and the OpenGL context; drawing goes through go-gl against that context.
//
// raylib links its own copy of GLFW, so this package must never end up in the
// same binary as package desktop.
package rlwindow

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"learngl/internal/config"
	"learngl/internal/debug"
	"learngl/internal/gl"
	"learngl/internal/gl/glcore"
	"learngl/internal/graphics"
)

// targetFPS caps the frame rate when events arrive faster than the display.
const targetFPS = 60

// Window is a graphics.Host backed by raylib. Event waiting is enabled, so
// EndDrawing sleeps in glfwWaitEvents until the platform reports something and
// the loop only redraws after an event.
type Window struct {
	ctx     *glcore.Context
	stats   *debug.Stats
	first   bool
	drawing bool
}

var _ graphics.Host = (*Window)(nil)

// Open creates a resizable raylib window and loads OpenGL on its context.
func Open(p config.Prefs) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(configFlags(p))
	rl.InitWindow(int32(p.Width), int32(p.Height), p.Title)
	if !rl.IsWindowReady() {
		return nil, &gl.ResourceError{Resource: "raylib window"}
	}
	rl.SetExitKey(rl.KeyNull) // close via window button only, like the glfw host
	rl.SetTargetFPS(targetFPS)
	rl.EnableEventWaiting()

	ctx, err := glcore.New()
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}
	// rlgl enables back-face culling at startup; the demo quad mixes windings.
	rl.DisableBackfaceCulling()
	return &Window{ctx: ctx, first: true}, nil
}

func configFlags(p config.Prefs) uint32 {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if p.VSync {
		flags |= uint32(rl.FlagVsyncHint)
	}
	return flags
}

// ShowStats draws the overlay of s (frame rate and heap) over every frame.
func (w *Window) ShowStats(s *debug.Stats) {
	w.stats = s
}

func (w *Window) Context() gl.Context { return w.ctx }

// WaitEvents reports close, resize and a redraw for the coming frame. The
// blocking wait happened in the previous Present.
func (w *Window) WaitEvents() []graphics.Event {
	if rl.WindowShouldClose() {
		return []graphics.Event{graphics.Close{}}
	}
	events := frameEvents(w.first, rl.IsWindowResized(), rl.GetRenderWidth(), rl.GetRenderHeight())
	w.first = false
	rl.BeginDrawing()
	w.drawing = true
	return events
}

// frameEvents is the batch for one raylib frame: the drawable size on the
// first frame or after a resize, then a redraw.
func frameEvents(first, resized bool, width, height int) []graphics.Event {
	if first || resized {
		return []graphics.Event{graphics.Resize{Width: width, Height: height}, graphics.Redraw{}}
	}
	return []graphics.Event{graphics.Redraw{}}
}

// Present draws the stats overlay, flushes raylib's batch, swaps buffers and
// waits for the next event.
func (w *Window) Present() {
	if !w.drawing {
		return
	}
	if w.stats != nil {
		drawOverlay(w.stats.Overlay(), int32(rl.GetScreenWidth()))
	}
	rl.EndDrawing()
	w.drawing = false
}

// Close closes the window. The renderer must have been cleaned up first.
func (w *Window) Close() {
	rl.CloseWindow()
}
