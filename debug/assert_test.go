//go:build debug

package debug_test

import (
	"testing"

	"github.com/clktmr/volreg/debug"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error(name, "didn't panic")
		}
	}()
	f()
}

func TestAssert(t *testing.T) {
	debug.Assert(true, "unexpected")
	debug.AssertAligned(0x1000, 4, "unexpected")

	mustPanic(t, "Assert", func() { debug.Assert(false, "expected") })
	mustPanic(t, "AssertAligned nil", func() { debug.AssertAligned(0, 4, "expected") })
	mustPanic(t, "AssertAligned odd", func() { debug.AssertAligned(0x1002, 4, "expected") })
}
