package mpv

import "C"

import (
	"unsafe"

	"github.com/PizzaHomicide/toyunda/internal/glproc"
)

// toyundaGetProcAddress is the get_proc_address callback handed to libmpv.  ctx is the token of the
// glproc.Context pinned by InstallRenderer.
//
//export toyundaGetProcAddress
func toyundaGetProcAddress(ctx unsafe.Pointer, name *C.char) unsafe.Pointer {
	if name == nil {
		return nil
	}
	return glproc.Lookup(uintptr(ctx), C.GoString(name))
}
