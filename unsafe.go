package volreg

import (
	"unsafe"

	"github.com/clktmr/volreg/debug"
)

// At returns the register block L located at the hardware address addr.
//
// This is unchecked: the caller guarantees that addr is the base of a memory
// mapped peripheral whose layout is L, and that the mapping lives for the
// rest of the program. In debug builds addr must be non-nil and aligned
// for L.
func At[L any](addr uintptr) *L {
	if debug.Enabled {
		var l L
		debug.AssertAligned(addr, unsafe.Alignof(l), "volreg: misaligned register block")
	}
	return (*L)(unsafe.Pointer(addr))
}

// Overlay returns the register block L located at p. Use it instead of At
// for memory the Go runtime knows about, e.g. an mmap'ed region or a test
// buffer, so the pointer stays valid for the garbage collector.
func Overlay[L any](p unsafe.Pointer) *L {
	if debug.Enabled {
		var l L
		debug.AssertAligned(uintptr(p), unsafe.Alignof(l), "volreg: misaligned register block")
	}
	return (*L)(p)
}
