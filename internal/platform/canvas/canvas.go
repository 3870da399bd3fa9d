//go:build js && wasm

// Package canvas binds a WebGL2 context from an HTML canvas element.
package canvas

import (
	"fmt"
	"syscall/js"

	"learngl/internal/gl"
	"learngl/internal/gl/webgl"
)

// ContextType is the rendering context requested from the canvas.
const ContextType = "webgl2"

// Open looks up the canvas with the given DOM id and returns a gl.Context for
// its WebGL2 rendering context.
func Open(id string) (*webgl.Context, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, &gl.ResourceError{Resource: "canvas", Err: fmt.Errorf("no document")}
	}
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, &gl.ResourceError{Resource: "canvas", Err: fmt.Errorf("no element with id %q", id)}
	}
	if !el.InstanceOf(js.Global().Get("HTMLCanvasElement")) {
		return nil, &gl.ResourceError{Resource: "canvas", Err: fmt.Errorf("element %q is not a canvas", id)}
	}
	ctx := el.Call("getContext", ContextType)
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, &gl.ResourceError{Resource: ContextType + " context", Err: fmt.Errorf("canvas %q does not support %s", id, ContextType)}
	}
	return webgl.New(ctx)
}
