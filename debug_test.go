//go:build debug

package volreg_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/volreg"
)

func TestMisalignedRegisterPanics(t *testing.T) {
	var mem [2]uint64
	reg := (*volreg.RW[uint32])(unsafe.Add(unsafe.Pointer(&mem), 2))

	for _, c := range []struct {
		name string
		f    func()
	}{
		{"Load", func() { reg.Load() }},
		{"Store", func() { reg.Store(1) }},
		{"Modify", func() { reg.Modify(func(v uint32) uint32 { return v }) }},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on misaligned register didn't panic", c.name)
				}
			}()
			c.f()
		}()
	}
	if mem != [2]uint64{} {
		t.Error("misaligned register was accessed")
	}
}

func TestOverlayMisalignedPanics(t *testing.T) {
	var mem [2]uint64
	defer func() {
		if recover() == nil {
			t.Error("Overlay at misaligned address didn't panic")
		}
	}()
	volreg.Overlay[device](unsafe.Add(unsafe.Pointer(&mem), 1))
}
