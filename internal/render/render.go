// Package render defines the lifecycle every visual demo implements and a
// guard that enforces its ordering.
//
// A renderer is created once (init), then receives any number of Update and
// Resize calls, then exactly one Cleanup:
//
//	uninitialized -> initialized -> (update | resize)* -> cleaned-up
package render

import (
	"errors"
	"fmt"

	"learngl/internal/gl"
)

// Renderer is a visual demo driven by a host loop. All methods run on the
// thread that owns ctx.
type Renderer interface {
	// Update clears the frame and issues draw work. It must not allocate
	// long-lived resources.
	Update(ctx gl.Context)
	// Resize adjusts to a new drawable size in pixels. Embed Viewport for the
	// default behaviour.
	Resize(ctx gl.Context, width, height int)
	// Cleanup releases every resource acquired at init.
	Cleanup(ctx gl.Context)
}

// Factory allocates a Renderer's resources. It plays the role of init and is
// called exactly once per Lifecycle.
type Factory func(ctx gl.Context) (Renderer, error)

// Viewport provides the default Resize: the viewport covers the whole drawable.
type Viewport struct{}

// Resize sets the viewport to (0, 0, width, height).
func (Viewport) Resize(ctx gl.Context, width, height int) {
	ctx.Viewport(0, 0, int32(width), int32(height))
}

// State is the lifecycle phase of a renderer.
type State int

const (
	Uninitialized State = iota
	Initialized
	CleanedUp
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case CleanedUp:
		return "cleaned-up"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrNotInitialized     = errors.New("render: renderer is not initialized")
	ErrAlreadyInitialized = errors.New("render: renderer is already initialized")
	ErrCleanedUp          = errors.New("render: renderer has been cleaned up")
)

// Lifecycle owns one Renderer and rejects calls made out of order, so a
// renderer never sees Update before init or anything after Cleanup.
type Lifecycle struct {
	factory  Factory
	renderer Renderer
	state    State
}

// NewLifecycle returns an uninitialized Lifecycle for factory.
func NewLifecycle(factory Factory) *Lifecycle {
	return &Lifecycle{factory: factory}
}

// State reports the current phase.
func (l *Lifecycle) State() State { return l.state }

// Renderer returns the managed renderer, or nil before Init succeeds.
func (l *Lifecycle) Renderer() Renderer { return l.renderer }

// Init runs the factory. A failed Init leaves the Lifecycle uninitialized so
// the caller may retry or give up.
func (l *Lifecycle) Init(ctx gl.Context) error {
	switch l.state {
	case Initialized:
		return ErrAlreadyInitialized
	case CleanedUp:
		return ErrCleanedUp
	}
	r, err := l.factory(ctx)
	if err != nil {
		return fmt.Errorf("render: init: %w", err)
	}
	if r == nil {
		return fmt.Errorf("render: init: factory returned no renderer")
	}
	l.renderer = r
	l.state = Initialized
	return nil
}

func (l *Lifecycle) ready() error {
	switch l.state {
	case Uninitialized:
		return ErrNotInitialized
	case CleanedUp:
		return ErrCleanedUp
	}
	return nil
}

// Update draws one frame.
func (l *Lifecycle) Update(ctx gl.Context) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.renderer.Update(ctx)
	return nil
}

// Resize forwards a new drawable size. Negative sizes are clamped to zero.
func (l *Lifecycle) Resize(ctx gl.Context, width, height int) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.renderer.Resize(ctx, max(width, 0), max(height, 0))
	return nil
}

// Cleanup releases the renderer's resources. It may only run once.
func (l *Lifecycle) Cleanup(ctx gl.Context) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.renderer.Cleanup(ctx)
	l.state = CleanedUp
	return nil
}
