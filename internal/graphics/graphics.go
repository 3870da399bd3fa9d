package graphics

import (
	"fmt"
	"log/slog"

	"learngl/internal/debug"
	"learngl/internal/gl"
	"learngl/internal/logger"
	"learngl/internal/render"
)

// Event is something the platform reports to the loop: Redraw, Resize or Close.
type Event interface{ isEvent() }

// Redraw asks for a new frame.
type Redraw struct{}

// Resize reports a new drawable size in pixels.
type Resize struct{ Width, Height int }

// Close asks the loop to release the renderer and return.
type Close struct{}

func (Redraw) isEvent() {}
func (Resize) isEvent() {}
func (Close) isEvent()  {}

// Host is a window (or canvas) with a current graphics context. Hosts are single-threaded:
// every method runs on the thread that owns the context.
type Host interface {
	Context() gl.Context
	// WaitEvents blocks until the platform has at least one event and returns all pending ones in
	// order.
	WaitEvents() []Event
	// Present shows the frame drawn since the previous Present (swap buffers).
	Present()
}

type options struct {
	log   *slog.Logger
	stats *debug.Stats
}

// Option configures Run.
type Option func(*options)

// WithLogger sets the logger for lifecycle messages. Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStats records every presented frame in s.
func WithStats(s *debug.Stats) Option {
	return func(o *options) { o.stats = s }
}

// Run initializes a renderer from factory and drives it from host's events until Close: Redraw
// updates then presents, Resize forwards the new size, Close cleans up and returns. An init
// failure is returned without touching the host again.
func Run(host Host, factory render.Factory, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Discard()
	}

	ctx := host.Context()
	lc := render.NewLifecycle(factory)
	if err := lc.Init(ctx); err != nil {
		return fmt.Errorf("graphics: %w", err)
	}
	o.log.Info("renderer initialized")

	for {
		for _, ev := range host.WaitEvents() {
			switch ev := ev.(type) {
			case Redraw:
				if err := lc.Update(ctx); err != nil {
					return fmt.Errorf("graphics: update: %w", err)
				}
				host.Present()
				if o.stats != nil {
					o.stats.Frame()
				}
			case Resize:
				o.log.Debug("resize", "width", ev.Width, "height", ev.Height)
				if err := lc.Resize(ctx, ev.Width, ev.Height); err != nil {
					return fmt.Errorf("graphics: resize: %w", err)
				}
			case Close:
				if err := lc.Cleanup(ctx); err != nil {
					return fmt.Errorf("graphics: cleanup: %w", err)
				}
				o.log.Info("renderer cleaned up")
				return nil
			}
		}
	}
}

// RenderOnce draws a single frame with no loop, for targets like a browser canvas that keep the
// last frame on screen: init, one Update, then Flush. The returned Lifecycle still owns the
// renderer's resources.
func RenderOnce(ctx gl.Context, factory render.Factory) (*render.Lifecycle, error) {
	lc := render.NewLifecycle(factory)
	if err := lc.Init(ctx); err != nil {
		return nil, fmt.Errorf("graphics: %w", err)
	}
	if err := lc.Update(ctx); err != nil {
		return nil, fmt.Errorf("graphics: update: %w", err)
	}
	ctx.Flush()
	return lc, nil
}
