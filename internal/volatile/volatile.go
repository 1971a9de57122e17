// Package volatile provides loads and stores that are performed as exactly
// one memory transaction each, in program order. The compiler may not elide,
// merge or reorder them relative to each other.
//
// The implementation depends on the toolchain:
//   - embeddedgo (noos): embedded/mmio
//   - TinyGo: runtime/volatile
//   - gc on a hosted OS: sync/atomic for 32 and 64 bit, noinline accessors
//     for 8 and 16 bit
//
// Only 8, 16 and 32 bit accesses are guaranteed to be a single instruction
// on 32 bit targets.
package volatile

import "unsafe"

// Op is the direction of an access.
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

func (op Op) String() string {
	if op == OpStore {
		return "store"
	}
	return "load"
}

// Access describes a single volatile memory transaction.
type Access struct {
	Op    Op
	Addr  uintptr
	Size  uintptr // in bytes
	Value uint64
}

func Load8(p *uint8) uint8 {
	v := load8(p)
	if tracing {
		record(Access{OpLoad, uintptr(unsafe.Pointer(p)), 1, uint64(v)})
	}
	return v
}

func Load16(p *uint16) uint16 {
	v := load16(p)
	if tracing {
		record(Access{OpLoad, uintptr(unsafe.Pointer(p)), 2, uint64(v)})
	}
	return v
}

func Load32(p *uint32) uint32 {
	v := load32(p)
	if tracing {
		record(Access{OpLoad, uintptr(unsafe.Pointer(p)), 4, uint64(v)})
	}
	return v
}

func Load64(p *uint64) uint64 {
	v := load64(p)
	if tracing {
		record(Access{OpLoad, uintptr(unsafe.Pointer(p)), 8, v})
	}
	return v
}

func Store8(p *uint8, v uint8) {
	store8(p, v)
	if tracing {
		record(Access{OpStore, uintptr(unsafe.Pointer(p)), 1, uint64(v)})
	}
}

func Store16(p *uint16, v uint16) {
	store16(p, v)
	if tracing {
		record(Access{OpStore, uintptr(unsafe.Pointer(p)), 2, uint64(v)})
	}
}

func Store32(p *uint32, v uint32) {
	store32(p, v)
	if tracing {
		record(Access{OpStore, uintptr(unsafe.Pointer(p)), 4, uint64(v)})
	}
}

func Store64(p *uint64, v uint64) {
	store64(p, v)
	if tracing {
		record(Access{OpStore, uintptr(unsafe.Pointer(p)), 8, v})
	}
}
