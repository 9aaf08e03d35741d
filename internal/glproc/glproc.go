// Package glproc carries the host's OpenGL function resolver across the native boundary.
//
// The engine asks for GL entry points through a C callback that receives an opaque context pointer.
// Go pointers may not be kept by C, so the resolver is registered as a runtime/cgo handle and the
// handle's integer value is what travels through C.  Context is the only type that performs that
// conversion.
package glproc

import (
	"runtime/cgo"
	"unicode/utf8"
	"unsafe"
)

// Resolver looks up an OpenGL function by name in the current GL context.  It returns nil when the
// function is not available.
type Resolver interface {
	GetProcAddress(name string) unsafe.Pointer
}

// ResolverFunc adapts a plain function to Resolver
type ResolverFunc func(name string) unsafe.Pointer

// GetProcAddress calls f(name)
func (f ResolverFunc) GetProcAddress(name string) unsafe.Pointer {
	return f(name)
}

// Context pins a Resolver for as long as the engine may call back into it.
//
// Lifetime: the Context must stay alive until the render context it was installed on has been freed.
// Release it only after that, never before.
type Context struct {
	handle cgo.Handle
}

// NewContext registers r and returns the context to hand to the engine
func NewContext(r Resolver) *Context {
	return &Context{handle: cgo.NewHandle(r)}
}

// Token is the opaque value passed to the engine as the callback context
func (c *Context) Token() uintptr {
	return uintptr(c.handle)
}

// Release unregisters the resolver.  The token must not be used afterwards.
func (c *Context) Release() {
	if c.handle != 0 {
		c.handle.Delete()
		c.handle = 0
	}
}

// Lookup resolves name through the resolver registered under token.  The token is trusted to be one
// produced by Context.Token and not yet released.  A name that is not valid UTF-8 resolves to nil so
// the engine can treat the function as missing.
func Lookup(token uintptr, name string) unsafe.Pointer {
	if token == 0 || name == "" || !utf8.ValidString(name) {
		return nil
	}
	r, ok := cgo.Handle(token).Value().(Resolver)
	if !ok {
		return nil
	}
	return r.GetProcAddress(name)
}
