// Package gl is the small slice of the OpenGL / WebGL2 API the renderers need,
// expressed as an interface so the same draw code runs on a desktop context,
// a browser canvas, or a recording fake in tests.
//
// Handles are opaque non-zero ids; zero means "none". A Context must only be
// used from the thread that owns it.
package gl

import "fmt"

// Shader is a compiled (or compiling) shader object.
type Shader uint32

// Program is a linked shader program.
type Program uint32

// VertexArray is a vertex array object holding attribute stream layout.
type VertexArray uint32

// Buffer is a GPU buffer object.
type Buffer uint32

// ShaderStage selects the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

// BufferTarget is the binding point a buffer is bound to.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
)

// Usage is the expected access pattern of buffer data.
type Usage int

const (
	StaticDraw Usage = iota
)

// Primitive is the primitive assembly mode for draw calls.
type Primitive int

const (
	Triangles Primitive = iota
)

// ClearMask selects which buffers Clear resets.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
)

// Context is the live handle to a graphics device. Create* methods return a
// *ResourceError when the driver hands back no object.
type Context interface {
	// ShaderPreamble is the line(s) placed before shader sources that do not
	// declare their own #version, e.g. "#version 330 core\n".
	ShaderPreamble() string

	CreateShader(stage ShaderStage) (Shader, error)
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompileStatus(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() (Program, error)
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinkStatus(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateVertexArray() (VertexArray, error)
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)

	CreateBuffer() (Buffer, error)
	BindBuffer(target BufferTarget, b Buffer)
	BufferData(target BufferTarget, data []byte, usage Usage)
	DeleteBuffer(b Buffer)

	// VertexAttribPointerF32 describes a float attribute stream sourced from
	// the buffer bound to ArrayBuffer. stride and offset are in bytes.
	VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32)
	EnableVertexAttribArray(index uint32)
	// VertexAttribDivisor sets how many instances pass before the attribute
	// advances; 0 means per vertex.
	VertexAttribDivisor(index, divisor uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int32)
	// GetViewport reports the active viewport as x, y, width, height.
	GetViewport() [4]int32
	DrawArraysInstanced(mode Primitive, first, count, instances int32)
	Flush()
}

// ResourceError reports that the platform or driver failed to create a
// resource: a window, a context, or a GL object.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return "gl: failed to create " + e.Resource
	}
	return "gl: failed to create " + e.Resource + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }
