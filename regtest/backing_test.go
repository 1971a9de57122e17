package regtest_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/volreg"
	"github.com/clktmr/volreg/regtest"
)

type block struct {
	ctrl   volreg.RW[uint32]
	status volreg.RO[uint8]
	data   volreg.WO[uint16]
}

func TestBackingAlignment(t *testing.T) {
	for _, align := range []uintptr{1, 2, 4, 8, 16, 64, 4096} {
		b := regtest.NewAligned[block](align)
		if b.Addr()%align != 0 {
			t.Errorf("align %d: got address %#x", align, b.Addr())
		}
		if len(b.Bytes()) != int(unsafe.Sizeof(block{})) {
			t.Errorf("align %d: got %d bytes, expected %d", align, len(b.Bytes()), unsafe.Sizeof(block{}))
		}
		for i, v := range b.Bytes() {
			if v != 0 {
				t.Fatalf("align %d: byte %d not zeroed", align, i)
			}
		}
	}
}

func TestBackingLayout(t *testing.T) {
	b := regtest.New[block]()
	regs := b.Layout()

	if regs.ctrl.Addr() != b.Addr() {
		t.Errorf("ctrl at %#x, block at %#x", regs.ctrl.Addr(), b.Addr())
	}
	if off := b.Offset(regs.status.Addr()); off != 4 {
		t.Errorf("status at offset %d, expected 4", off)
	}
	if off := b.Offset(regs.data.Addr()); off != 6 {
		t.Errorf("data at offset %d, expected 6", off)
	}

	b.Bytes()[4] = 0x42
	if v := regs.status.Load(); v != 0x42 {
		t.Errorf("status: got %#x, expected 0x42", v)
	}
}

func TestBackingOffsetPanics(t *testing.T) {
	b := regtest.New[block]()
	defer func() {
		if recover() == nil {
			t.Error("Offset outside of block didn't panic")
		}
	}()
	b.Offset(b.Addr() + unsafe.Sizeof(block{}))
}
