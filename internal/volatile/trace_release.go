//go:build !volatiletrace

package volatile

const tracing = false

func record(Access) {}
