//go:build noos && !tinygo

package volatile

import (
	"embedded/mmio"
	"unsafe"
)

func load8(p *uint8) uint8    { return (*mmio.U8)(unsafe.Pointer(p)).Load() }
func load16(p *uint16) uint16 { return (*mmio.U16)(unsafe.Pointer(p)).Load() }
func load32(p *uint32) uint32 { return (*mmio.U32)(unsafe.Pointer(p)).Load() }
func load64(p *uint64) uint64 { return (*mmio.U64)(unsafe.Pointer(p)).Load() }

func store8(p *uint8, v uint8)    { (*mmio.U8)(unsafe.Pointer(p)).Store(v) }
func store16(p *uint16, v uint16) { (*mmio.U16)(unsafe.Pointer(p)).Store(v) }
func store32(p *uint32, v uint32) { (*mmio.U32)(unsafe.Pointer(p)).Store(v) }
func store64(p *uint64, v uint64) { (*mmio.U64)(unsafe.Pointer(p)).Store(v) }
