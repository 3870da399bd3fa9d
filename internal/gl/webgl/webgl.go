//go:build js && wasm

// Package webgl implements gl.Context on a browser WebGL2 rendering context
// through syscall/js. JavaScript objects are kept in a handle table so callers
// only ever see the integer handles of package gl.
package webgl

import (
	"syscall/js"

	glapi "learngl/internal/gl"
)

type glConsts struct {
	arrayBuffer    int
	staticDraw     int
	floatType      int
	triangles      int
	colorBufferBit int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
	viewport       int
}

// Context is a gl.Context over a WebGL2RenderingContext.
type Context struct {
	gl     js.Value
	consts glConsts
	next   uint32
	// objects maps handles to the JS objects returned by the create* calls.
	objects map[uint32]js.Value
}

var _ glapi.Context = (*Context)(nil)

// New wraps a WebGL2RenderingContext value.
func New(ctx js.Value) (*Context, error) {
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, &glapi.ResourceError{Resource: "webgl2 context"}
	}
	c := &Context{gl: ctx, objects: make(map[uint32]js.Value)}
	c.consts = glConsts{
		arrayBuffer:    ctx.Get("ARRAY_BUFFER").Int(),
		staticDraw:     ctx.Get("STATIC_DRAW").Int(),
		floatType:      ctx.Get("FLOAT").Int(),
		triangles:      ctx.Get("TRIANGLES").Int(),
		colorBufferBit: ctx.Get("COLOR_BUFFER_BIT").Int(),
		compileStatus:  ctx.Get("COMPILE_STATUS").Int(),
		linkStatus:     ctx.Get("LINK_STATUS").Int(),
		vertexShader:   ctx.Get("VERTEX_SHADER").Int(),
		fragmentShader: ctx.Get("FRAGMENT_SHADER").Int(),
		viewport:       ctx.Get("VIEWPORT").Int(),
	}
	return c, nil
}

func (c *Context) ShaderPreamble() string {
	return "#version 300 es\nprecision mediump float;\n"
}

func (c *Context) put(v js.Value, resource string) (uint32, error) {
	if v.IsUndefined() || v.IsNull() {
		return 0, &glapi.ResourceError{Resource: resource}
	}
	c.next++
	c.objects[c.next] = v
	return c.next, nil
}

func (c *Context) get(h uint32) js.Value {
	if h == 0 {
		return js.Null()
	}
	v, ok := c.objects[h]
	if !ok {
		return js.Null()
	}
	return v
}

func (c *Context) drop(h uint32) js.Value {
	v := c.get(h)
	delete(c.objects, h)
	return v
}

func (c *Context) CreateShader(stage glapi.ShaderStage) (glapi.Shader, error) {
	kind := c.consts.vertexShader
	if stage == glapi.FragmentShader {
		kind = c.consts.fragmentShader
	}
	h, err := c.put(c.gl.Call("createShader", kind), stage.String()+" shader")
	return glapi.Shader(h), err
}

func (c *Context) ShaderSource(s glapi.Shader, source string) {
	c.gl.Call("shaderSource", c.get(uint32(s)), source)
}

func (c *Context) CompileShader(s glapi.Shader) {
	c.gl.Call("compileShader", c.get(uint32(s)))
}

func (c *Context) ShaderCompileStatus(s glapi.Shader) bool {
	return c.gl.Call("getShaderParameter", c.get(uint32(s)), c.consts.compileStatus).Truthy()
}

func (c *Context) ShaderInfoLog(s glapi.Shader) string {
	log := c.gl.Call("getShaderInfoLog", c.get(uint32(s)))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (c *Context) DeleteShader(s glapi.Shader) {
	c.gl.Call("deleteShader", c.drop(uint32(s)))
}

func (c *Context) CreateProgram() (glapi.Program, error) {
	h, err := c.put(c.gl.Call("createProgram"), "program")
	return glapi.Program(h), err
}

func (c *Context) AttachShader(p glapi.Program, s glapi.Shader) {
	c.gl.Call("attachShader", c.get(uint32(p)), c.get(uint32(s)))
}

func (c *Context) LinkProgram(p glapi.Program) {
	c.gl.Call("linkProgram", c.get(uint32(p)))
}

func (c *Context) ProgramLinkStatus(p glapi.Program) bool {
	return c.gl.Call("getProgramParameter", c.get(uint32(p)), c.consts.linkStatus).Truthy()
}

func (c *Context) ProgramInfoLog(p glapi.Program) string {
	log := c.gl.Call("getProgramInfoLog", c.get(uint32(p)))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (c *Context) UseProgram(p glapi.Program) {
	c.gl.Call("useProgram", c.get(uint32(p)))
}

func (c *Context) DeleteProgram(p glapi.Program) {
	c.gl.Call("deleteProgram", c.drop(uint32(p)))
}

func (c *Context) CreateVertexArray() (glapi.VertexArray, error) {
	h, err := c.put(c.gl.Call("createVertexArray"), "vertex array")
	return glapi.VertexArray(h), err
}

func (c *Context) BindVertexArray(v glapi.VertexArray) {
	c.gl.Call("bindVertexArray", c.get(uint32(v)))
}

func (c *Context) DeleteVertexArray(v glapi.VertexArray) {
	c.gl.Call("deleteVertexArray", c.drop(uint32(v)))
}

func (c *Context) CreateBuffer() (glapi.Buffer, error) {
	h, err := c.put(c.gl.Call("createBuffer"), "buffer")
	return glapi.Buffer(h), err
}

func (c *Context) BindBuffer(target glapi.BufferTarget, b glapi.Buffer) {
	c.gl.Call("bindBuffer", c.consts.arrayBuffer, c.get(uint32(b)))
}

func (c *Context) BufferData(target glapi.BufferTarget, data []byte, usage glapi.Usage) {
	typed := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(typed, data)
	c.gl.Call("bufferData", c.consts.arrayBuffer, typed, c.consts.staticDraw)
}

func (c *Context) DeleteBuffer(b glapi.Buffer) {
	c.gl.Call("deleteBuffer", c.drop(uint32(b)))
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	c.gl.Call("vertexAttribPointer", index, size, c.consts.floatType, normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.gl.Call("enableVertexAttribArray", index)
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.gl.Call("vertexAttribDivisor", index, divisor)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask glapi.ClearMask) {
	bits := 0
	if mask&glapi.ColorBufferBit != 0 {
		bits |= c.consts.colorBufferBit
	}
	c.gl.Call("clear", bits)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) GetViewport() [4]int32 {
	v := c.gl.Call("getParameter", c.consts.viewport)
	var out [4]int32
	for i := range out {
		out[i] = int32(v.Index(i).Int())
	}
	return out
}

func (c *Context) DrawArraysInstanced(mode glapi.Primitive, first, count, instances int32) {
	c.gl.Call("drawArraysInstanced", c.consts.triangles, first, count, instances)
}

func (c *Context) Flush() { c.gl.Call("flush") }
