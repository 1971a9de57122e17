// Package regtest provides in-memory stand-ins for register blocks, so code
// using package volreg can be tested on the host.
package regtest

import (
	"unsafe"

	"github.com/clktmr/volreg"
)

// Backing is zeroed memory holding one register block of type L.
type Backing[L any] struct {
	buf []byte
}

// New allocates backing memory for L, aligned as L requires.
func New[L any]() *Backing[L] {
	var l L
	return NewAligned[L](unsafe.Alignof(l))
}

// NewAligned allocates backing memory for L, aligned to align. align must be
// a power of two. Use it to place a block at an alignment the hardware has,
// e.g. a page.
func NewAligned[L any](align uintptr) *Backing[L] {
	var l L
	size := unsafe.Sizeof(l)
	if align < unsafe.Alignof(l) {
		align = unsafe.Alignof(l)
	}
	if align == 0 || align&(align-1) != 0 {
		panic("regtest: alignment must be a power of two")
	}

	// The buffer is allocated as uint64 so the runtime treats it as one
	// pointer-free object with at least 8 byte alignment.
	words := make([]uint64, (size+align+7)/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*8)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := (align - addr%align) % align
	return &Backing[L]{buf: buf[shift : shift+size : shift+size]}
}

// Layout returns the register block placed in the backing memory.
func (b *Backing[L]) Layout() *L {
	return volreg.Overlay[L](unsafe.Pointer(unsafe.SliceData(b.buf)))
}

// Bytes returns the raw backing memory. Modifying it simulates the hardware
// changing register contents.
func (b *Backing[L]) Bytes() []byte {
	return b.buf
}

// Addr returns the address of the first byte of the block.
func (b *Backing[L]) Addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
}

// Offset returns the offset of a register at addr from the start of the
// block. It panics if addr is outside of the block.
func (b *Backing[L]) Offset(addr uintptr) uintptr {
	base := b.Addr()
	if addr < base || addr >= base+uintptr(len(b.buf)) {
		panic("regtest: address outside of register block")
	}
	return addr - base
}
