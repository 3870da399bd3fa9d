// Package bytesview reinterprets slices of plain fixed-layout values as raw bytes
// (and back) for handing vertex data to graphics APIs that take untyped buffers.
//
// This is the only place in the module that uses unsafe. Element types must be
// plain: numbers, bools, and arrays or structs built only from those.
package bytesview

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrSize is returned by As when the byte count is not a whole number of elements.
	ErrSize = errors.New("bytesview: length is not a multiple of the element size")
	// ErrAlignment is returned by As when the data is not aligned for the element type.
	ErrAlignment = errors.New("bytesview: data is not aligned for the element type")
)

// Of returns a read-only view of the bytes backing s. The view has length
// len(s)*unsafe.Sizeof(T) and shares memory with s; nothing is copied.
// Callers must not write through the returned slice.
//
// Of panics if T is not a plain fixed-layout type.
func Of[T any](s []T) []byte {
	mustPlain[T]()
	if len(s) == 0 {
		return nil
	}
	var zero T
	n := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// As is the inverse of Of: it views b as a slice of T without copying.
func As[T any](b []byte) ([]T, error) {
	mustPlain[T]()
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(b)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes, element size %d", ErrSize, len(b), size)
	}
	if len(b) == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, ErrAlignment
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}

// Plain reports whether values of t can be viewed as bytes: t holds no
// pointers, strings, slices, maps, interfaces, channels or funcs.
func Plain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return Plain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !Plain(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

func mustPlain[T any]() {
	t := reflect.TypeFor[T]()
	if !Plain(t) {
		panic(fmt.Sprintf("bytesview: %v is not a plain fixed-layout type", t))
	}
}
