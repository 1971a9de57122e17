package volreg_test

import (
	"fmt"

	"github.com/clktmr/volreg"
	"github.com/clktmr/volreg/regtest"
)

// Register block of a UART peripheral.
type uart struct {
	data    volreg.WO[uint8]
	_       [3]byte
	status  volreg.RO[uartStatus]
	control volreg.RW[uartControl]
	baud    volreg.RW[uint16]
}

type uartStatus uint32

const (
	txEmpty uartStatus = 1 << iota
	rxFull
)

type uartControl uint32

const (
	txEnable uartControl = 1 << iota
	rxEnable
)

func Example() {
	// On the target this is volreg.At[uart](0x4000_4400).
	hw := regtest.New[uart]()
	uart0 := hw.Layout()

	uart0.baud.Store(115200 / 100)
	uart0.control.SetBits(txEnable | rxEnable)
	for _, c := range []byte("hi") {
		if uart0.status.LoadBits(rxFull) != 0 {
			break
		}
		uart0.data.Store(c)
	}

	fmt.Printf("control %#x, last byte %q\n", uart0.control.Load(), hw.Bytes()[0])
	// Output: control 0x3, last byte 'i'
}

func ExampleRW_Modify() {
	hw := regtest.New[uart]()
	uart0 := hw.Layout()

	uart0.baud.Store(96)
	uart0.baud.Modify(func(div uint16) uint16 { return div * 12 })

	fmt.Println(uart0.baud.Load())
	// Output: 1152
}
