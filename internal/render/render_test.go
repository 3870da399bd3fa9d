package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngl/internal/gl"
	"learngl/internal/gl/glfake"
)

type countingRenderer struct {
	Viewport
	updates  int
	resizes  int
	cleanups int
}

func (r *countingRenderer) Update(gl.Context) { r.updates++ }

func (r *countingRenderer) Resize(ctx gl.Context, w, h int) {
	r.resizes++
	r.Viewport.Resize(ctx, w, h)
}

func (r *countingRenderer) Cleanup(gl.Context) { r.cleanups++ }

func TestViewportResize(t *testing.T) {
	ctx := glfake.New()
	var v Viewport
	v.Resize(ctx, 1024, 768)
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, ctx.GetViewport())
	v.Resize(ctx, 1, 2)
	assert.Equal(t, [4]int32{0, 0, 1, 2}, ctx.GetViewport())
}

func TestLifecycleOrder(t *testing.T) {
	ctx := glfake.New()
	r := &countingRenderer{}
	l := NewLifecycle(func(gl.Context) (Renderer, error) { return r, nil })

	assert.Equal(t, Uninitialized, l.State())
	assert.ErrorIs(t, l.Update(ctx), ErrNotInitialized)
	assert.ErrorIs(t, l.Resize(ctx, 1, 1), ErrNotInitialized)
	assert.ErrorIs(t, l.Cleanup(ctx), ErrNotInitialized)

	require.NoError(t, l.Init(ctx))
	assert.Equal(t, Initialized, l.State())
	assert.Same(t, r, l.Renderer())
	assert.ErrorIs(t, l.Init(ctx), ErrAlreadyInitialized)

	require.NoError(t, l.Update(ctx))
	require.NoError(t, l.Resize(ctx, 800, 600))
	require.NoError(t, l.Update(ctx))
	assert.Equal(t, [4]int32{0, 0, 800, 600}, ctx.GetViewport())

	require.NoError(t, l.Cleanup(ctx))
	assert.Equal(t, CleanedUp, l.State())
	assert.ErrorIs(t, l.Update(ctx), ErrCleanedUp)
	assert.ErrorIs(t, l.Resize(ctx, 1, 1), ErrCleanedUp)
	assert.ErrorIs(t, l.Cleanup(ctx), ErrCleanedUp)
	assert.ErrorIs(t, l.Init(ctx), ErrCleanedUp)

	assert.Equal(t, 2, r.updates)
	assert.Equal(t, 1, r.resizes)
	assert.Equal(t, 1, r.cleanups)
}

func TestLifecycleInitFailure(t *testing.T) {
	ctx := glfake.New()
	boom := errors.New("boom")
	calls := 0
	l := NewLifecycle(func(gl.Context) (Renderer, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return &countingRenderer{}, nil
	})

	err := l.Init(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Uninitialized, l.State())
	assert.ErrorIs(t, l.Update(ctx), ErrNotInitialized)

	require.NoError(t, l.Init(ctx), "a failed init may be retried")
	assert.Equal(t, Initialized, l.State())
}

func TestLifecycleNilRenderer(t *testing.T) {
	l := NewLifecycle(func(gl.Context) (Renderer, error) { return nil, nil })
	assert.Error(t, l.Init(glfake.New()))
	assert.Equal(t, Uninitialized, l.State())
}

func TestLifecycleClampsNegativeSize(t *testing.T) {
	ctx := glfake.New()
	l := NewLifecycle(func(gl.Context) (Renderer, error) { return &countingRenderer{}, nil })
	require.NoError(t, l.Init(ctx))
	require.NoError(t, l.Resize(ctx, -5, 10))
	assert.Equal(t, [4]int32{0, 0, 0, 10}, ctx.GetViewport())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "cleaned-up", CleanedUp.String())
	assert.Equal(t, "State(7)", State(7).String())
}
