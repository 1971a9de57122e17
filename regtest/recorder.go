//go:build volatiletrace

package regtest

import (
	"slices"
	"sync"

	"github.com/clktmr/volreg/internal/volatile"
)

// Access is a single recorded register access. Its Addr is the offset from
// the start of the recorded block.
type Access = volatile.Access

const (
	Load  = volatile.OpLoad
	Store = volatile.OpStore
)

// Recorder records all volatile accesses to a backing's memory. It is only
// available with the volatiletrace build tag.
type Recorder struct {
	base     uintptr
	size     uintptr
	accesses []Access
}

// Active recorders, most recently started last. The tracer is installed
// while the list is non-empty.
var (
	mu        sync.Mutex
	recorders []*Recorder
)

// Record starts recording accesses to the memory of b. Recorders may be
// nested and stopped in any order; an access is recorded by the most
// recently started recorder covering its address.
func Record[L any](b *Backing[L]) *Recorder {
	r := &Recorder{base: b.Addr(), size: uintptr(len(b.Bytes()))}
	mu.Lock()
	defer mu.Unlock()
	if len(recorders) == 0 {
		volatile.SetTracer(trace)
	}
	recorders = append(recorders, r)
	return r
}

func trace(a Access) {
	mu.Lock()
	defer mu.Unlock()
	for _, r := range slices.Backward(recorders) {
		if a.Addr >= r.base && a.Addr < r.base+r.size {
			a.Addr -= r.base
			r.accesses = append(r.accesses, a)
			return
		}
	}
}

// Stop ends the recording. Stopping a recorder twice is a no-op.
func (r *Recorder) Stop() {
	mu.Lock()
	defer mu.Unlock()
	i := slices.Index(recorders, r)
	if i < 0 {
		return
	}
	recorders = slices.Delete(recorders, i, i+1)
	if len(recorders) == 0 {
		volatile.SetTracer(nil)
	}
}

// Accesses returns the accesses recorded so far, in order.
func (r *Recorder) Accesses() []Access {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(r.accesses)
}

// Reset discards the accesses recorded so far.
func (r *Recorder) Reset() {
	mu.Lock()
	r.accesses = r.accesses[:0]
	mu.Unlock()
}
