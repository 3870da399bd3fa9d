// Package shader compiles and links GLSL programs against a gl.Context and
// reports driver diagnostics as typed errors.
package shader

import (
	"fmt"
	"strings"

	"learngl/internal/gl"
)

// CompileError is returned when the driver rejects a shader source. Log holds
// the compiler's info log.
type CompileError struct {
	Stage gl.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compile error: %s", e.Stage, diagnostic(e.Log))
}

// LinkError is returned when the driver fails to link a program. Log holds
// the linker's info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader link error: " + diagnostic(e.Log)
}

func diagnostic(log string) string {
	log = strings.TrimSpace(log)
	if log == "" {
		return "no diagnostic"
	}
	return log
}

// Source prefixes source with the context's shading-language preamble unless
// it already declares a #version.
func Source(ctx gl.Context, source string) string {
	if strings.HasPrefix(strings.TrimLeft(source, " \t\r\n"), "#version") {
		return source
	}
	var sb strings.Builder
	sb.WriteString(ctx.ShaderPreamble())
	sb.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

// Compile creates and compiles a shader for stage. On failure the shader
// object is deleted and a *CompileError is returned.
func Compile(ctx gl.Context, source string, stage gl.ShaderStage) (gl.Shader, error) {
	s, err := ctx.CreateShader(stage)
	if err != nil {
		return 0, err
	}
	ctx.ShaderSource(s, Source(ctx, source))
	ctx.CompileShader(s)
	if !ctx.ShaderCompileStatus(s) {
		log := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return s, nil
}

// Link attaches vertex and fragment to a new program and links it. The shader
// objects are left alone; on failure the program is deleted and a *LinkError
// is returned.
func Link(ctx gl.Context, vertex, fragment gl.Shader) (gl.Program, error) {
	p, err := ctx.CreateProgram()
	if err != nil {
		return 0, err
	}
	ctx.AttachShader(p, vertex)
	ctx.AttachShader(p, fragment)
	ctx.LinkProgram(p)
	if !ctx.ProgramLinkStatus(p) {
		log := ctx.ProgramInfoLog(p)
		ctx.DeleteProgram(p)
		return 0, &LinkError{Log: log}
	}
	return p, nil
}

// Build compiles both stages and links them. The intermediate shader objects
// are deleted whether or not the build succeeds.
func Build(ctx gl.Context, vertexSource, fragmentSource string) (gl.Program, error) {
	vs, err := Compile(ctx, vertexSource, gl.VertexShader)
	if err != nil {
		return 0, err
	}
	defer ctx.DeleteShader(vs)

	fs, err := Compile(ctx, fragmentSource, gl.FragmentShader)
	if err != nil {
		return 0, err
	}
	defer ctx.DeleteShader(fs)

	return Link(ctx, vs, fs)
}
