package volreg

import (
	"unsafe"

	"github.com/clktmr/volreg/debug"
	"github.com/clktmr/volreg/internal/volatile"
)

// load dispatches on the payload's width. The switch is resolved per
// instantiation, so each register method reduces to a single volatile access.
// A register must be naturally aligned to be accessed in one transaction,
// which 64 bit fields on 32 bit targets aren't by default.
func load[T Scalar](p *T) T {
	if debug.Enabled {
		checkAligned(p)
	}
	switch unsafe.Sizeof(*p) {
	case 1:
		return T(volatile.Load8((*uint8)(unsafe.Pointer(p))))
	case 2:
		return T(volatile.Load16((*uint16)(unsafe.Pointer(p))))
	case 4:
		return T(volatile.Load32((*uint32)(unsafe.Pointer(p))))
	case 8:
		return T(volatile.Load64((*uint64)(unsafe.Pointer(p))))
	}
	panic("volreg: unsupported register width")
}

// store is the counterpart of load.
func store[T Scalar](p *T, v T) {
	if debug.Enabled {
		checkAligned(p)
	}
	switch unsafe.Sizeof(*p) {
	case 1:
		volatile.Store8((*uint8)(unsafe.Pointer(p)), uint8(v))
	case 2:
		volatile.Store16((*uint16)(unsafe.Pointer(p)), uint16(v))
	case 4:
		volatile.Store32((*uint32)(unsafe.Pointer(p)), uint32(v))
	case 8:
		volatile.Store64((*uint64)(unsafe.Pointer(p)), uint64(v))
	default:
		panic("volreg: unsupported register width")
	}
}

func checkAligned[T Scalar](p *T) {
	debug.Assert(uintptr(unsafe.Pointer(p))%unsafe.Sizeof(*p) == 0, "volreg: misaligned register")
}
