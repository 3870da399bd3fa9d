package glfake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngl/internal/gl"
)

func TestLinkNeedsBothStages(t *testing.T) {
	c := New()
	vs, err := c.CreateShader(gl.VertexShader)
	require.NoError(t, err)
	c.ShaderSource(vs, "void main() {}")
	c.CompileShader(vs)
	require.True(t, c.ShaderCompileStatus(vs))

	p, err := c.CreateProgram()
	require.NoError(t, err)
	c.AttachShader(p, vs)
	c.LinkProgram(p)
	assert.False(t, c.ProgramLinkStatus(p))
	assert.NotEmpty(t, c.ProgramInfoLog(p))
}

func TestUncompiledShaderFailsStatus(t *testing.T) {
	c := New()
	s, err := c.CreateShader(gl.FragmentShader)
	require.NoError(t, err)
	assert.False(t, c.ShaderCompileStatus(s))
}

func TestMisuseAfterDelete(t *testing.T) {
	c := New()
	b, err := c.CreateBuffer()
	require.NoError(t, err)
	c.DeleteBuffer(b)
	c.BindBuffer(gl.ArrayBuffer, b)
	c.DeleteBuffer(b)
	assert.Len(t, c.Misuse, 2)
	assert.False(t, c.BufferLive(b))
}

func TestAttribWithoutVertexArray(t *testing.T) {
	c := New()
	c.EnableVertexAttribArray(0)
	assert.Len(t, c.Misuse, 1)
}

func TestFailCreate(t *testing.T) {
	c := New()
	c.FailCreate["buffer"] = true
	_, err := c.CreateBuffer()
	var re *gl.ResourceError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "gl: failed to create buffer", err.Error())
}
