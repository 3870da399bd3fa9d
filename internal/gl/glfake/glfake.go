// Package glfake provides a recording gl.Context for headless tests. It keeps
// track of live objects, the bound state and the active viewport, and records
// every draw call so tests can assert on what a renderer submitted.
package glfake

import (
	"fmt"
	"slices"
	"strings"

	"learngl/internal/gl"
)

// DrawCall is one recorded DrawArraysInstanced call with the state bound at
// the time it was issued.
type DrawCall struct {
	Mode        gl.Primitive
	First       int32
	Count       int32
	Instances   int32
	Program     gl.Program
	VertexArray gl.VertexArray
}

// Attrib is the recorded layout of one vertex attribute.
type Attrib struct {
	Buffer     gl.Buffer
	Size       int32
	Normalized bool
	Stride     int32
	Offset     int32
	Divisor    uint32
	Enabled    bool
}

type shaderObj struct {
	stage    gl.ShaderStage
	source   string
	compiled bool
	ok       bool
	log      string
}

type programObj struct {
	shaders []gl.Shader
	linked  bool
	ok      bool
	log     string
}

// Context is a fake gl.Context. The zero value is not usable; call New.
type Context struct {
	// CompileFail makes compilation fail for sources containing the key,
	// reporting the value as the info log.
	CompileFail map[string]string
	// LinkFail, when non-empty, makes every link fail with this info log.
	LinkFail string
	// FailCreate makes the named Create* call ("shader", "program",
	// "vertex array", "buffer") return a *gl.ResourceError.
	FailCreate map[string]bool

	next uint32

	shaders  map[gl.Shader]*shaderObj
	programs map[gl.Program]*programObj
	arrays   map[gl.VertexArray]map[uint32]*Attrib
	buffers  map[gl.Buffer][]byte

	program     gl.Program
	vertexArray gl.VertexArray
	arrayBuffer gl.Buffer
	clearColor  [4]float32
	viewport    [4]int32

	Draws   []DrawCall
	Clears  []gl.ClearMask
	Flushes int
	// Misuse collects calls made with handles that are not live.
	Misuse []string
}

var _ gl.Context = (*Context)(nil)

// New returns an empty fake context.
func New() *Context {
	return &Context{
		CompileFail: make(map[string]string),
		FailCreate:  make(map[string]bool),
		shaders:     make(map[gl.Shader]*shaderObj),
		programs:    make(map[gl.Program]*programObj),
		arrays:      make(map[gl.VertexArray]map[uint32]*Attrib),
		buffers:     make(map[gl.Buffer][]byte),
	}
}

func (c *Context) id() uint32 {
	c.next++
	return c.next
}

func (c *Context) misuse(format string, args ...any) {
	c.Misuse = append(c.Misuse, fmt.Sprintf(format, args...))
}

func (c *Context) ShaderPreamble() string { return "#version 330 core\n" }

func (c *Context) CreateShader(stage gl.ShaderStage) (gl.Shader, error) {
	if c.FailCreate["shader"] {
		return 0, &gl.ResourceError{Resource: stage.String() + " shader"}
	}
	s := gl.Shader(c.id())
	c.shaders[s] = &shaderObj{stage: stage}
	return s, nil
}

func (c *Context) ShaderSource(s gl.Shader, source string) {
	obj, ok := c.shaders[s]
	if !ok {
		c.misuse("ShaderSource(%d)", s)
		return
	}
	obj.source = source
}

func (c *Context) CompileShader(s gl.Shader) {
	obj, ok := c.shaders[s]
	if !ok {
		c.misuse("CompileShader(%d)", s)
		return
	}
	obj.compiled = true
	obj.ok = true
	obj.log = ""
	for key, log := range c.CompileFail {
		if strings.Contains(obj.source, key) {
			obj.ok = false
			obj.log = log
			return
		}
	}
}

func (c *Context) ShaderCompileStatus(s gl.Shader) bool {
	obj, ok := c.shaders[s]
	return ok && obj.compiled && obj.ok
}

func (c *Context) ShaderInfoLog(s gl.Shader) string {
	if obj, ok := c.shaders[s]; ok {
		return obj.log
	}
	return ""
}

func (c *Context) DeleteShader(s gl.Shader) {
	if _, ok := c.shaders[s]; !ok {
		c.misuse("DeleteShader(%d)", s)
		return
	}
	delete(c.shaders, s)
}

func (c *Context) CreateProgram() (gl.Program, error) {
	if c.FailCreate["program"] {
		return 0, &gl.ResourceError{Resource: "program"}
	}
	p := gl.Program(c.id())
	c.programs[p] = &programObj{}
	return p, nil
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	obj, ok := c.programs[p]
	if !ok {
		c.misuse("AttachShader(%d, %d)", p, s)
		return
	}
	if _, ok := c.shaders[s]; !ok {
		c.misuse("AttachShader(%d, %d)", p, s)
		return
	}
	obj.shaders = append(obj.shaders, s)
}

func (c *Context) LinkProgram(p gl.Program) {
	obj, ok := c.programs[p]
	if !ok {
		c.misuse("LinkProgram(%d)", p)
		return
	}
	obj.linked = true
	obj.ok = false
	stages := make(map[gl.ShaderStage]bool)
	for _, s := range obj.shaders {
		sh, ok := c.shaders[s]
		if !ok || !sh.ok {
			obj.log = fmt.Sprintf("error: shader %d is not compiled", s)
			return
		}
		stages[sh.stage] = true
	}
	if !stages[gl.VertexShader] || !stages[gl.FragmentShader] {
		obj.log = "error: program needs a vertex and a fragment shader"
		return
	}
	if c.LinkFail != "" {
		obj.log = c.LinkFail
		return
	}
	obj.ok = true
	obj.log = ""
}

func (c *Context) ProgramLinkStatus(p gl.Program) bool {
	obj, ok := c.programs[p]
	return ok && obj.linked && obj.ok
}

func (c *Context) ProgramInfoLog(p gl.Program) string {
	if obj, ok := c.programs[p]; ok {
		return obj.log
	}
	return ""
}

func (c *Context) UseProgram(p gl.Program) {
	if p != 0 && !c.ProgramLinkStatus(p) {
		c.misuse("UseProgram(%d)", p)
		return
	}
	c.program = p
}

func (c *Context) DeleteProgram(p gl.Program) {
	if _, ok := c.programs[p]; !ok {
		c.misuse("DeleteProgram(%d)", p)
		return
	}
	delete(c.programs, p)
	if c.program == p {
		c.program = 0
	}
}

func (c *Context) CreateVertexArray() (gl.VertexArray, error) {
	if c.FailCreate["vertex array"] {
		return 0, &gl.ResourceError{Resource: "vertex array"}
	}
	v := gl.VertexArray(c.id())
	c.arrays[v] = make(map[uint32]*Attrib)
	return v, nil
}

func (c *Context) BindVertexArray(v gl.VertexArray) {
	if _, ok := c.arrays[v]; v != 0 && !ok {
		c.misuse("BindVertexArray(%d)", v)
		return
	}
	c.vertexArray = v
}

func (c *Context) DeleteVertexArray(v gl.VertexArray) {
	if _, ok := c.arrays[v]; !ok {
		c.misuse("DeleteVertexArray(%d)", v)
		return
	}
	delete(c.arrays, v)
	if c.vertexArray == v {
		c.vertexArray = 0
	}
}

func (c *Context) CreateBuffer() (gl.Buffer, error) {
	if c.FailCreate["buffer"] {
		return 0, &gl.ResourceError{Resource: "buffer"}
	}
	b := gl.Buffer(c.id())
	c.buffers[b] = nil
	return b, nil
}

func (c *Context) BindBuffer(target gl.BufferTarget, b gl.Buffer) {
	if _, ok := c.buffers[b]; b != 0 && !ok {
		c.misuse("BindBuffer(%d)", b)
		return
	}
	c.arrayBuffer = b
}

func (c *Context) BufferData(target gl.BufferTarget, data []byte, usage gl.Usage) {
	if c.arrayBuffer == 0 {
		c.misuse("BufferData with no buffer bound")
		return
	}
	c.buffers[c.arrayBuffer] = slices.Clone(data)
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	if _, ok := c.buffers[b]; !ok {
		c.misuse("DeleteBuffer(%d)", b)
		return
	}
	delete(c.buffers, b)
	if c.arrayBuffer == b {
		c.arrayBuffer = 0
	}
}

func (c *Context) attrib(index uint32) *Attrib {
	attrs, ok := c.arrays[c.vertexArray]
	if !ok {
		c.misuse("attribute %d with no vertex array bound", index)
		return nil
	}
	a, ok := attrs[index]
	if !ok {
		a = &Attrib{}
		attrs[index] = a
	}
	return a
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	if a := c.attrib(index); a != nil {
		a.Buffer = c.arrayBuffer
		a.Size = size
		a.Normalized = normalized
		a.Stride = stride
		a.Offset = offset
	}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	if a := c.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	if a := c.attrib(index); a != nil {
		a.Divisor = divisor
	}
}

func (c *Context) ClearColor(r, g, b, a float32) { c.clearColor = [4]float32{r, g, b, a} }

func (c *Context) Clear(mask gl.ClearMask) { c.Clears = append(c.Clears, mask) }

func (c *Context) Viewport(x, y, width, height int32) {
	c.viewport = [4]int32{x, y, width, height}
}

func (c *Context) GetViewport() [4]int32 { return c.viewport }

func (c *Context) DrawArraysInstanced(mode gl.Primitive, first, count, instances int32) {
	c.Draws = append(c.Draws, DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		Instances:   instances,
		Program:     c.program,
		VertexArray: c.vertexArray,
	})
}

func (c *Context) Flush() { c.Flushes++ }

// ClearColorValue returns the last color passed to ClearColor.
func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

// ShaderLive reports whether s has been created and not deleted.
func (c *Context) ShaderLive(s gl.Shader) bool {
	_, ok := c.shaders[s]
	return ok
}

// ProgramLive reports whether p has been created and not deleted.
func (c *Context) ProgramLive(p gl.Program) bool {
	_, ok := c.programs[p]
	return ok
}

// VertexArrayLive reports whether v has been created and not deleted.
func (c *Context) VertexArrayLive(v gl.VertexArray) bool {
	_, ok := c.arrays[v]
	return ok
}

// BufferLive reports whether b has been created and not deleted.
func (c *Context) BufferLive(b gl.Buffer) bool {
	_, ok := c.buffers[b]
	return ok
}

// BufferContents returns the data last uploaded to b.
func (c *Context) BufferContents(b gl.Buffer) []byte { return c.buffers[b] }

// Attribs returns the recorded attribute layout of v, keyed by index.
func (c *Context) Attribs(v gl.VertexArray) map[uint32]Attrib {
	out := make(map[uint32]Attrib)
	for i, a := range c.arrays[v] {
		out[i] = *a
	}
	return out
}

// ShaderSourceOf returns the source last given to s.
func (c *Context) ShaderSourceOf(s gl.Shader) string {
	if obj, ok := c.shaders[s]; ok {
		return obj.source
	}
	return ""
}

// Live returns the number of live objects of every kind.
func (c *Context) Live() int {
	return len(c.shaders) + len(c.programs) + len(c.arrays) + len(c.buffers)
}
