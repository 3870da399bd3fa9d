// Package instancing is the instanced-quads demo: one small quad mesh drawn
// once per grid offset with a single hardware-instanced draw call.
package instancing

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"learngl/internal/bytesview"
	"learngl/internal/gl"
	"learngl/internal/render"
	"learngl/internal/shader"
)

var (
	//go:embed shaders/instancing.vert
	vertexSource string
	//go:embed shaders/instancing.frag
	fragmentSource string
)

// Attribute locations, matching the layout qualifiers in the shaders.
const (
	attribPosition = 0
	attribColor    = 1
	attribOffset   = 2
)

// Vertex is one corner of the quad mesh.
type Vertex struct {
	Pos   mgl32.Vec2
	Color mgl32.Vec3
}

// Quad is the mesh shared by every instance: two triangles, 0.1 units wide.
var Quad = [6]Vertex{
	{Pos: mgl32.Vec2{-0.05, 0.05}, Color: mgl32.Vec3{1, 0, 0}},
	{Pos: mgl32.Vec2{0.05, -0.05}, Color: mgl32.Vec3{0, 1, 0}},
	{Pos: mgl32.Vec2{-0.05, -0.05}, Color: mgl32.Vec3{0, 0, 1}},

	{Pos: mgl32.Vec2{-0.05, 0.05}, Color: mgl32.Vec3{1, 0, 0}},
	{Pos: mgl32.Vec2{0.05, -0.05}, Color: mgl32.Vec3{0, 1, 0}},
	{Pos: mgl32.Vec2{0.05, 0.05}, Color: mgl32.Vec3{0, 1, 1}},
}

// ClearColor is the background the demo clears to every frame.
var ClearColor = [4]float32{0.2, 0.2, 0.3, 1}

// Demo owns the GPU resources of the instancing demo.
type Demo struct {
	render.Viewport

	program   gl.Program
	vao       gl.VertexArray
	quadVBO   gl.Buffer
	offsetVBO gl.Buffer
	instances int32
}

var _ render.Renderer = (*Demo)(nil)

// Factory adapts New to render.Factory.
func Factory(ctx gl.Context) (render.Renderer, error) {
	d, err := New(ctx)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// New builds the shader program and uploads the quad and the DefaultGrid
// offsets. Anything created before a failure is released again.
func New(ctx gl.Context) (*Demo, error) {
	offsets, err := Offsets(DefaultGrid)
	if err != nil {
		return nil, err
	}
	d := &Demo{instances: int32(len(offsets))}
	if err := d.init(ctx, offsets); err != nil {
		d.Cleanup(ctx)
		return nil, err
	}
	return d, nil
}

func (d *Demo) init(ctx gl.Context, offsets []mgl32.Vec2) error {
	var err error
	d.program, err = shader.Build(ctx, vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("instancing: build program: %w", err)
	}
	ctx.UseProgram(d.program)

	if d.vao, err = ctx.CreateVertexArray(); err != nil {
		return err
	}
	ctx.BindVertexArray(d.vao)

	if d.quadVBO, err = ctx.CreateBuffer(); err != nil {
		return err
	}
	ctx.BindBuffer(gl.ArrayBuffer, d.quadVBO)
	ctx.BufferData(gl.ArrayBuffer, bytesview.Of(Quad[:]), gl.StaticDraw)

	stride := int32(unsafe.Sizeof(Vertex{}))
	ctx.VertexAttribPointerF32(attribPosition, 2, false, stride, int32(unsafe.Offsetof(Vertex{}.Pos)))
	ctx.VertexAttribPointerF32(attribColor, 3, false, stride, int32(unsafe.Offsetof(Vertex{}.Color)))
	ctx.EnableVertexAttribArray(attribPosition)
	ctx.EnableVertexAttribArray(attribColor)

	if d.offsetVBO, err = ctx.CreateBuffer(); err != nil {
		return err
	}
	ctx.BindBuffer(gl.ArrayBuffer, d.offsetVBO)
	ctx.BufferData(gl.ArrayBuffer, bytesview.Of(offsets), gl.StaticDraw)
	ctx.VertexAttribPointerF32(attribOffset, 2, false, int32(unsafe.Sizeof(mgl32.Vec2{})), 0)
	ctx.VertexAttribDivisor(attribOffset, 1)
	ctx.EnableVertexAttribArray(attribOffset)
	return nil
}

// Instances returns how many quads each frame draws.
func (d *Demo) Instances() int { return int(d.instances) }

// Update clears the frame and draws every instance in one call.
func (d *Demo) Update(ctx gl.Context) {
	ctx.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	ctx.Clear(gl.ColorBufferBit)
	ctx.UseProgram(d.program)
	ctx.BindVertexArray(d.vao)
	ctx.DrawArraysInstanced(gl.Triangles, 0, int32(len(Quad)), d.instances)
}

// Cleanup deletes the program, vertex array and both buffers. Handles that
// were never created are skipped.
func (d *Demo) Cleanup(ctx gl.Context) {
	if d.program != 0 {
		ctx.DeleteProgram(d.program)
		d.program = 0
	}
	if d.vao != 0 {
		ctx.DeleteVertexArray(d.vao)
		d.vao = 0
	}
	if d.quadVBO != 0 {
		ctx.DeleteBuffer(d.quadVBO)
		d.quadVBO = 0
	}
	if d.offsetVBO != 0 {
		ctx.DeleteBuffer(d.offsetVBO)
		d.offsetVBO = 0
	}
}
