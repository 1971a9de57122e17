// Package volreg provides typed volatile access to memory mapped hardware
// registers.
//
// A register block is declared as a plain struct whose fields mirror the
// hardware's register map byte for byte. The type of each field encodes its
// access policy:
//
//   - [RO] can only be loaded
//   - [RW] can be loaded, stored and modified
//   - [WO] can only be stored, also concurrently through shared pointers
//
// None of the wrappers add any bytes to their payload, so the field offsets of
// the struct are the register offsets of the hardware:
//
//	type gpio struct {
//		cr  volreg.RW[uint32] // 0x00 control
//		idr volreg.RO[uint32] // 0x04 input data
//		odr volreg.WO[uint32] // 0x08 output data
//	}
//
//	var gpioa = volreg.At[gpio](0x4001_0800)
//
//	gpioa.cr.SetBits(1 << 3)
//	if gpioa.idr.LoadBits(1<<0) != 0 {
//		gpioa.odr.Store(1 << 5)
//	}
//
// Every Load and Store is exactly one memory transaction at the register's
// address, in program order relative to other register accesses. It is a
// single instruction if the payload is a byte, halfword or word. No barriers
// are inserted: ordering against ordinary memory accesses or other CPU cores
// must be established by the caller.
//
// Read-modify-write operations ([RW.Modify], [RW.SetBits], ...) are a load
// followed by a store. They are not atomic: if the hardware or another
// goroutine changes the register in between, that change is lost. Callers
// that share a read-write register must serialize access themselves.
package volreg
