//go:build !debug

// Package debug provides assertions which are compiled in with the debug
// build tag and are no-ops otherwise.
//
// Register access sits on hot paths of interrupt handlers and drivers, where
// a release build must not pay for checks the author already verified.
package debug

// Enabled reports whether the debug build tag is set. Guard assertions that
// are expensive to evaluate with it, so release builds drop them entirely.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertAligned panics if addr is nil or not a multiple of align.
func AssertAligned(addr, align uintptr, message string) {}
