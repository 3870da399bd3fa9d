package instancing

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngl/internal/bytesview"
	"learngl/internal/gl"
	"learngl/internal/gl/glfake"
	"learngl/internal/render"
	"learngl/internal/shader"
)

func TestDefaultGridOffsets(t *testing.T) {
	offsets, err := Offsets(DefaultGrid)
	require.NoError(t, err)
	require.Len(t, offsets, 100)
	assert.Equal(t, 100, DefaultGrid.Len())

	seen := make(map[mgl32.Vec2]bool, len(offsets))
	for _, o := range offsets {
		assert.False(t, seen[o], "duplicate offset %v", o)
		seen[o] = true
	}

	first := offsets[0]
	assert.InDelta(t, -0.9, first.X(), 1e-6)
	assert.InDelta(t, -0.9, first.Y(), 1e-6)

	// Cell x=0, y=0 sits at row 5, column 5.
	zero := offsets[5*10+5]
	assert.InDelta(t, 0.1, zero.X(), 1e-6)
	assert.InDelta(t, 0.1, zero.Y(), 1e-6)

	last := offsets[len(offsets)-1]
	assert.InDelta(t, 0.9, last.X(), 1e-6)
	assert.InDelta(t, 0.9, last.Y(), 1e-6)

	// x varies fastest.
	assert.InDelta(t, -0.7, offsets[1].X(), 1e-6)
	assert.InDelta(t, -0.9, offsets[1].Y(), 1e-6)
}

func TestOffsetsSpacing(t *testing.T) {
	offsets, err := Offsets(DefaultGrid)
	require.NoError(t, err)
	for i := 1; i < 10; i++ {
		assert.InDelta(t, 0.2, offsets[i].X()-offsets[i-1].X(), 1e-6)
	}
}

func TestOffsetsInvalidGrid(t *testing.T) {
	tests := []Grid{
		{Min: -10, Max: 10, Step: 0},
		{Min: -10, Max: 10, Step: -2},
		{Min: 10, Max: 10, Step: 2},
		{Min: 5, Max: -5, Step: 1},
	}
	for _, g := range tests {
		_, err := Offsets(g)
		assert.Error(t, err, "%+v", g)
		assert.Zero(t, g.Len())
	}
}

func TestOffsetsUnevenRange(t *testing.T) {
	g := Grid{Min: 0, Max: 5, Step: 2}
	offsets, err := Offsets(g)
	require.NoError(t, err)
	assert.Len(t, offsets, 9)
	assert.Equal(t, 9, g.Len())
}

func TestQuadLayout(t *testing.T) {
	assert.Len(t, bytesview.Of(Quad[:]), 6*5*4)
}

func TestNewUploadsMeshAndOffsets(t *testing.T) {
	ctx := glfake.New()
	d, err := New(ctx)
	require.NoError(t, err)
	assert.Empty(t, ctx.Misuse)

	assert.True(t, ctx.ProgramLive(d.program))
	assert.True(t, ctx.VertexArrayLive(d.vao))
	assert.Equal(t, 100, d.Instances())
	// Shader objects are gone after linking: program, vertex array, two buffers.
	assert.Equal(t, 4, ctx.Live())

	quad, err := bytesview.As[Vertex](ctx.BufferContents(d.quadVBO))
	require.NoError(t, err)
	assert.Equal(t, Quad[:], quad)

	offsets, err := bytesview.As[mgl32.Vec2](ctx.BufferContents(d.offsetVBO))
	require.NoError(t, err)
	want, _ := Offsets(DefaultGrid)
	assert.Equal(t, want, offsets)

	attrs := ctx.Attribs(d.vao)
	require.Len(t, attrs, 3)
	assert.Equal(t, glfake.Attrib{Buffer: d.quadVBO, Size: 2, Stride: 20, Offset: 0, Enabled: true}, attrs[attribPosition])
	assert.Equal(t, glfake.Attrib{Buffer: d.quadVBO, Size: 3, Stride: 20, Offset: 8, Enabled: true}, attrs[attribColor])
	assert.Equal(t, glfake.Attrib{Buffer: d.offsetVBO, Size: 2, Stride: 8, Offset: 0, Divisor: 1, Enabled: true}, attrs[attribOffset])
}

func TestUpdateIssuesOneInstancedDraw(t *testing.T) {
	ctx := glfake.New()
	d, err := New(ctx)
	require.NoError(t, err)

	d.Update(ctx)

	require.Len(t, ctx.Draws, 1)
	draw := ctx.Draws[0]
	assert.Equal(t, gl.Triangles, draw.Mode)
	assert.Equal(t, int32(0), draw.First)
	assert.Equal(t, int32(6), draw.Count)
	assert.Equal(t, int32(100), draw.Instances)
	assert.Equal(t, d.program, draw.Program)
	assert.Equal(t, d.vao, draw.VertexArray)

	assert.Equal(t, []gl.ClearMask{gl.ColorBufferBit}, ctx.Clears)
	assert.Equal(t, [4]float32{0.2, 0.2, 0.3, 1}, ctx.ClearColorValue())
	assert.Empty(t, ctx.Misuse)
}

func TestResizeSetsViewport(t *testing.T) {
	ctx := glfake.New()
	d, err := New(ctx)
	require.NoError(t, err)
	d.Resize(ctx, 640, 480)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, ctx.GetViewport())
}

func TestCleanupReleasesEverything(t *testing.T) {
	ctx := glfake.New()
	d, err := New(ctx)
	require.NoError(t, err)
	program, vao, quad, offs := d.program, d.vao, d.quadVBO, d.offsetVBO

	d.Cleanup(ctx)

	assert.False(t, ctx.ProgramLive(program))
	assert.False(t, ctx.VertexArrayLive(vao))
	assert.False(t, ctx.BufferLive(quad))
	assert.False(t, ctx.BufferLive(offs))
	assert.Zero(t, ctx.Live())
	assert.Empty(t, ctx.Misuse)
}

func TestNewFailuresReleasePartialState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*glfake.Context)
		check func(*testing.T, error)
	}{
		{
			name:  "compile",
			setup: func(c *glfake.Context) { c.CompileFail["aOffset"] = "0:3(1): error: bad offset" },
			check: func(t *testing.T, err error) {
				var ce *shader.CompileError
				require.True(t, errors.As(err, &ce))
				assert.Contains(t, err.Error(), "bad offset")
			},
		},
		{
			name:  "link",
			setup: func(c *glfake.Context) { c.LinkFail = "error: linking failed" },
			check: func(t *testing.T, err error) {
				var le *shader.LinkError
				require.True(t, errors.As(err, &le))
			},
		},
		{
			name:  "vertex array",
			setup: func(c *glfake.Context) { c.FailCreate["vertex array"] = true },
			check: func(t *testing.T, err error) {
				var re *gl.ResourceError
				require.True(t, errors.As(err, &re))
				assert.Equal(t, "vertex array", re.Resource)
			},
		},
		{
			name:  "buffer",
			setup: func(c *glfake.Context) { c.FailCreate["buffer"] = true },
			check: func(t *testing.T, err error) {
				var re *gl.ResourceError
				require.True(t, errors.As(err, &re))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := glfake.New()
			tt.setup(ctx)
			d, err := New(ctx)
			assert.Nil(t, d)
			tt.check(t, err)
			assert.Zero(t, ctx.Live())
			assert.Empty(t, ctx.Misuse)
		})
	}
}

func TestLifecycleWithDemo(t *testing.T) {
	ctx := glfake.New()
	l := render.NewLifecycle(Factory)
	require.NoError(t, l.Init(ctx))
	require.NoError(t, l.Update(ctx))
	require.NoError(t, l.Resize(ctx, 1024, 768))
	require.NoError(t, l.Cleanup(ctx))
	assert.Len(t, ctx.Draws, 1)
	assert.Zero(t, ctx.Live())
	assert.ErrorIs(t, l.Update(ctx), render.ErrCleanedUp)
}

func TestFactoryError(t *testing.T) {
	ctx := glfake.New()
	ctx.FailCreate["program"] = true
	r, err := Factory(ctx)
	assert.Nil(t, r)
	assert.Error(t, err)
}
