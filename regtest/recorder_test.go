//go:build volatiletrace

package regtest_test

import (
	"testing"

	"github.com/clktmr/volreg/regtest"
)

func TestRecorder(t *testing.T) {
	b := regtest.New[block]()
	other := regtest.New[block]()
	regs := b.Layout()

	rec := regtest.Record(b)
	regs.ctrl.Store(1)
	other.Layout().ctrl.Store(2)
	regs.status.Load()
	rec.Stop()
	regs.ctrl.Store(3)

	got := rec.Accesses()
	expected := []regtest.Access{
		{Op: regtest.Store, Addr: 0, Size: 4, Value: 1},
		{Op: regtest.Load, Addr: 4, Size: 1, Value: 0},
	}
	if len(got) != len(expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("access %d: got %+v, expected %+v", i, got[i], expected[i])
		}
	}

	rec.Reset()
	if len(rec.Accesses()) != 0 {
		t.Error("Reset didn't discard accesses")
	}
}

func TestRecorderNested(t *testing.T) {
	outerMem := regtest.New[block]()
	innerMem := regtest.New[block]()
	outerRegs, innerRegs := outerMem.Layout(), innerMem.Layout()

	outer := regtest.Record(outerMem)
	inner := regtest.Record(innerMem)
	same := regtest.Record(outerMem)

	outerRegs.ctrl.Store(1) // most recent recorder covering outerMem
	innerRegs.ctrl.Store(2)

	same.Stop()
	outer.Stop() // out of order, inner keeps recording
	outerRegs.ctrl.Store(3)
	innerRegs.ctrl.Store(4)

	inner.Stop()
	inner.Stop()
	innerRegs.ctrl.Store(5)

	for _, c := range []struct {
		name     string
		rec      *regtest.Recorder
		expected []uint64
	}{
		{"outer", outer, nil},
		{"same", same, []uint64{1}},
		{"inner", inner, []uint64{2, 4}},
	} {
		got := c.rec.Accesses()
		if len(got) != len(c.expected) {
			t.Errorf("%s: got %+v, expected values %v", c.name, got, c.expected)
			continue
		}
		for i, v := range c.expected {
			if got[i].Op != regtest.Store || got[i].Addr != 0 || got[i].Value != v {
				t.Errorf("%s: access %d: got %+v, expected store of %d", c.name, i, got[i], v)
			}
		}
	}
}
