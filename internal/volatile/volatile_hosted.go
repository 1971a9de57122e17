//go:build !tinygo && !noos

package volatile

import "sync/atomic"

// The gc compiler never elides or merges atomic operations. There are no 8
// and 16 bit atomics, so these go through functions the compiler is not
// allowed to inline, which keeps the dereference as a single load or store at
// the call site's position in program order. They are hardware transactions,
// not Go memory accesses, so the race detector is kept out of them.

//go:noinline
//go:nosplit
//go:norace
func load8(p *uint8) uint8 { return *p }

//go:noinline
//go:nosplit
//go:norace
func load16(p *uint16) uint16 { return *p }

func load32(p *uint32) uint32 { return atomic.LoadUint32(p) }
func load64(p *uint64) uint64 { return atomic.LoadUint64(p) }

//go:noinline
//go:nosplit
//go:norace
func store8(p *uint8, v uint8) { *p = v }

//go:noinline
//go:nosplit
//go:norace
func store16(p *uint16, v uint16) { *p = v }

func store32(p *uint32, v uint32) { atomic.StoreUint32(p, v) }
func store64(p *uint64, v uint64) { atomic.StoreUint64(p, v) }
