//go:build volatiletrace

package volatile

import "sync/atomic"

// Builds with the volatiletrace tag report every access to the installed
// tracer. The tracer is called after the access was performed.
const tracing = true

var tracer atomic.Pointer[func(Access)]

// SetTracer installs fn as the tracer and returns the previous one. A nil fn
// disables tracing.
func SetTracer(fn func(Access)) (prev func(Access)) {
	var p *func(Access)
	if fn != nil {
		p = &fn
	}
	if old := tracer.Swap(p); old != nil {
		prev = *old
	}
	return prev
}

func record(a Access) {
	if fn := tracer.Load(); fn != nil {
		(*fn)(a)
	}
}
