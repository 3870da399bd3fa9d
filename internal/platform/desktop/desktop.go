//go:build !js

// Package desktop hosts a renderer in a glfw window with an OpenGL 3.3 core
// context. glfw must only be used from the main OS thread: callers lock it
// (runtime.LockOSThread in an init func) before calling Open.
package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"learngl/internal/config"
	"learngl/internal/gl"
	"learngl/internal/gl/glcore"
	"learngl/internal/graphics"
)

// Window is a graphics.Host backed by glfw.
type Window struct {
	win     *glfw.Window
	ctx     *glcore.Context
	pending []graphics.Event
}

var _ graphics.Host = (*Window)(nil)

// Open initializes glfw, creates a window of the configured logical size and
// makes its context current. The first WaitEvents returns the initial
// framebuffer size and a redraw.
func Open(p config.Prefs) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &gl.ResourceError{Resource: "glfw", Err: err}
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(p.Width, p.Height, p.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &gl.ResourceError{Resource: "window", Err: err}
	}
	win.MakeContextCurrent()
	if p.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	ctx, err := glcore.New()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w := &Window{win: win, ctx: ctx}
	fbw, fbh := win.GetFramebufferSize()
	w.pending = append(w.pending, graphics.Resize{Width: fbw, Height: fbh}, graphics.Redraw{})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, graphics.Resize{Width: width, Height: height})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, graphics.Redraw{})
	})
	return w, nil
}

// Version describes the OpenGL context, for logging.
func (w *Window) Version() string {
	return fmt.Sprintf("OpenGL %s", w.ctx.Version())
}

func (w *Window) Context() gl.Context { return w.ctx }

// WaitEvents sleeps in glfw.WaitEvents until the platform reports something
// and returns the settled batch.
func (w *Window) WaitEvents() []graphics.Event {
	for len(w.pending) == 0 && !w.win.ShouldClose() {
		glfw.WaitEvents()
	}
	events := settle(w.pending, w.win.ShouldClose())
	w.pending = nil
	return events
}

// settle finishes a batch of pending events. A batch that does not end in a
// redraw gets one, so the frame always reflects the latest size, and a close
// request goes last.
func settle(pending []graphics.Event, shouldClose bool) []graphics.Event {
	if n := len(pending); n > 0 {
		if _, ok := pending[n-1].(graphics.Redraw); !ok {
			pending = append(pending, graphics.Redraw{})
		}
	}
	if shouldClose {
		pending = append(pending, graphics.Close{})
	}
	return pending
}

func (w *Window) Present() { w.win.SwapBuffers() }

// Close destroys the window and shuts glfw down. The renderer must have been
// cleaned up first.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
