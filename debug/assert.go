//go:build debug

package debug

// Enabled reports whether the debug build tag is set. Guard assertions that
// are expensive to evaluate with it, so release builds drop them entirely.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertAligned(addr, align uintptr, message string) {
	if addr == 0 || addr%align != 0 {
		panic(message)
	}
}
