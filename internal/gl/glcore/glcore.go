//go:build !js

// Package glcore implements gl.Context on desktop OpenGL 3.3 core profile via
// go-gl. New must be called with the target context current on the calling
// thread.
package glcore

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	glapi "learngl/internal/gl"
)

// Context is a gl.Context backed by the process-wide go-gl function table.
type Context struct{}

var _ glapi.Context = (*Context)(nil)

// New loads the OpenGL function pointers for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, &glapi.ResourceError{Resource: "OpenGL context", Err: err}
	}
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) ShaderPreamble() string { return "#version 330 core\n" }

func (c *Context) CreateShader(stage glapi.ShaderStage) (glapi.Shader, error) {
	var kind uint32
	switch stage {
	case glapi.VertexShader:
		kind = gl.VERTEX_SHADER
	case glapi.FragmentShader:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, &glapi.ResourceError{Resource: "shader", Err: fmt.Errorf("unknown stage %v", stage)}
	}
	s := gl.CreateShader(kind)
	if s == 0 {
		return 0, &glapi.ResourceError{Resource: stage.String() + " shader"}
	}
	return glapi.Shader(s), nil
}

func (c *Context) ShaderSource(s glapi.Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s glapi.Shader) { gl.CompileShader(uint32(s)) }

func (c *Context) ShaderCompileStatus(s glapi.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s glapi.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s glapi.Shader) { gl.DeleteShader(uint32(s)) }

func (c *Context) CreateProgram() (glapi.Program, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return 0, &glapi.ResourceError{Resource: "program"}
	}
	return glapi.Program(p), nil
}

func (c *Context) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p glapi.Program) { gl.LinkProgram(uint32(p)) }

func (c *Context) ProgramLinkStatus(p glapi.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p glapi.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) UseProgram(p glapi.Program) { gl.UseProgram(uint32(p)) }

func (c *Context) DeleteProgram(p glapi.Program) { gl.DeleteProgram(uint32(p)) }

func (c *Context) CreateVertexArray() (glapi.VertexArray, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, &glapi.ResourceError{Resource: "vertex array"}
	}
	return glapi.VertexArray(vao), nil
}

func (c *Context) BindVertexArray(v glapi.VertexArray) { gl.BindVertexArray(uint32(v)) }

func (c *Context) DeleteVertexArray(v glapi.VertexArray) {
	vao := uint32(v)
	gl.DeleteVertexArrays(1, &vao)
}

func (c *Context) CreateBuffer() (glapi.Buffer, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, &glapi.ResourceError{Resource: "buffer"}
	}
	return glapi.Buffer(vbo), nil
}

func (c *Context) BindBuffer(target glapi.BufferTarget, b glapi.Buffer) {
	gl.BindBuffer(bufferTarget(target), uint32(b))
}

func (c *Context) BufferData(target glapi.BufferTarget, data []byte, usage glapi.Usage) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, bufferUsage(usage))
		return
	}
	gl.BufferData(bufferTarget(target), len(data), gl.Ptr(data), bufferUsage(usage))
}

func (c *Context) DeleteBuffer(b glapi.Buffer) {
	vbo := uint32(b)
	gl.DeleteBuffers(1, &vbo)
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, normalized, stride, uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (c *Context) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask glapi.ClearMask) {
	var bits uint32
	if mask&glapi.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (c *Context) GetViewport() [4]int32 {
	var v [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &v[0])
	return v
}

func (c *Context) DrawArraysInstanced(mode glapi.Primitive, first, count, instances int32) {
	gl.DrawArraysInstanced(primitive(mode), first, count, instances)
}

func (c *Context) Flush() { gl.Flush() }

func bufferTarget(t glapi.BufferTarget) uint32 {
	switch t {
	case glapi.ArrayBuffer:
		return gl.ARRAY_BUFFER
	}
	panic(fmt.Sprintf("glcore: unknown buffer target %d", t))
}

func bufferUsage(u glapi.Usage) uint32 {
	switch u {
	case glapi.StaticDraw:
		return gl.STATIC_DRAW
	}
	panic(fmt.Sprintf("glcore: unknown buffer usage %d", u))
}

func primitive(p glapi.Primitive) uint32 {
	switch p {
	case glapi.Triangles:
		return gl.TRIANGLES
	}
	panic(fmt.Sprintf("glcore: unknown primitive %d", p))
}
