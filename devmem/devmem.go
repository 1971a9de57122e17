//go:build linux

// Package devmem maps physical memory into the process, so register blocks
// can be accessed with package volreg from Linux userspace.
package devmem

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/clktmr/volreg"
)

// DefaultPath is the character device exposing physical memory.
const DefaultPath = "/dev/mem"

var (
	ErrOutOfRange = errors.New("devmem: address out of mapped range")
	ErrMisaligned = errors.New("devmem: misaligned address")
	ErrClosed     = errors.New("devmem: region closed")
)

// Region is a window of physical memory mapped into the process.
type Region struct {
	mem  []byte  // page aligned mapping
	base uintptr // physical address of mem[0]
	phys uintptr // requested start
	size int     // requested length
}

// Map maps size bytes of physical memory starting at phys from /dev/mem.
func Map(phys uintptr, size int) (*Region, error) {
	return Open(DefaultPath, phys, size)
}

// Open maps size bytes starting at offset phys of the file at path. The
// mapping is extended to page boundaries, shared and uncached where the
// kernel supports O_SYNC for the file.
func Open(path string, phys uintptr, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("devmem: invalid size %d", size)
	}

	page := uintptr(unix.Getpagesize())
	base := phys &^ (page - 1)
	length := (phys - base + uintptr(size) + page - 1) &^ (page - 1)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: %w", err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(length),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("devmem: mmap %s at %#x: %w", path, base, err)
	}

	return &Region{mem: mem, base: base, phys: phys, size: size}, nil
}

// Close unmaps the region. Register blocks obtained from it must not be used
// afterwards.
func (r *Region) Close() error {
	if r.mem == nil {
		return ErrClosed
	}
	err := unix.Munmap(r.mem)
	r.mem = nil
	if err != nil {
		return fmt.Errorf("devmem: munmap: %w", err)
	}
	return nil
}

// Phys returns the physical address the region was requested at.
func (r *Region) Phys() uintptr {
	return r.phys
}

// Len returns the requested length of the region.
func (r *Region) Len() int {
	return r.size
}

// Contains reports whether [phys, phys+n) lies within the region.
func (r *Region) Contains(phys uintptr, n uintptr) bool {
	return phys >= r.phys && n <= uintptr(r.size) && phys-r.phys <= uintptr(r.size)-n
}

func (r *Region) pointer(phys, size, align uintptr) (unsafe.Pointer, error) {
	if r.mem == nil {
		return nil, ErrClosed
	}
	if !r.Contains(phys, size) {
		return nil, fmt.Errorf("%w: %#x+%d", ErrOutOfRange, phys, size)
	}
	if phys%align != 0 {
		return nil, fmt.Errorf("%w: %#x not aligned to %d", ErrMisaligned, phys, align)
	}
	// An empty request may start at the end of the mapping, which can't be
	// indexed.
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.mem)), phys-r.base), nil
}

// Layout returns the register block L at physical address phys.
func Layout[L any](r *Region, phys uintptr) (*L, error) {
	var l L
	p, err := r.pointer(phys, unsafe.Sizeof(l), unsafe.Alignof(l))
	if err != nil {
		return nil, err
	}
	return volreg.Overlay[L](p), nil
}

// Registers returns n consecutive registers of type R starting at physical
// address phys.
func Registers[R any](r *Region, phys uintptr, n int) ([]R, error) {
	var reg R
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrOutOfRange, n)
	}
	p, err := r.pointer(phys, unsafe.Sizeof(reg)*uintptr(n), unsafe.Alignof(reg))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice(volreg.Overlay[R](p), n), nil
}
