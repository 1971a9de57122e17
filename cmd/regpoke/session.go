//go:build linux

package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/sigurn/crc8"

	"github.com/clktmr/volreg"
	"github.com/clktmr/volreg/devmem"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errWidth          = errors.New("width must be 8, 16, 32 or 64")
)

var crcTable = crc8.MakeTable(crc8.CRC8)

// session executes commands against the memory file at path.
type session struct {
	path   string
	in     io.Reader
	out    io.Writer
	log    *log.Logger
	prompt string
}

func (s *session) run(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "read":
		return s.read(args)
	case "write":
		return s.write(args)
	case "modify":
		return s.modify(args)
	case "dump":
		return s.dump(args)
	case "shell":
		return s.shell(args)
	}
	return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func (s *session) flagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(s.out)
	return flags
}

func widthFlag(flags *flag.FlagSet) *uint {
	return flags.Uint("w", 32, "access width in bits: 8, 16, 32 or 64")
}

func (s *session) read(args []string) error {
	flags := s.flagSet("read")
	width := widthFlag(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("read: expected <addr>")
	}
	addr, err := parseAddr(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var v uint64
	err = s.withRegion(addr, *width, 1, func(r *devmem.Region) (err error) {
		v, err = load(r, addr, *width)
		return err
	})
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	fmt.Fprintln(s.out, hex(v, *width))
	return nil
}

func (s *session) write(args []string) error {
	flags := s.flagSet("write")
	width := widthFlag(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return errors.New("write: expected <addr> <value>")
	}
	addr, err := parseAddr(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	v, err := parseValue(flags.Arg(1), *width)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	err = s.withRegion(addr, *width, 1, func(r *devmem.Region) error {
		return store(r, addr, *width, v)
	})
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (s *session) modify(args []string) error {
	flags := s.flagSet("modify")
	width := widthFlag(flags)
	setArg := flags.String("set", "0", "bits to set")
	clearArg := flags.String("clear", "0", "bits to clear")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("modify: expected <addr>")
	}
	addr, err := parseAddr(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("modify: %w", err)
	}
	set, err := parseValue(*setArg, *width)
	if err != nil {
		return fmt.Errorf("modify: -set: %w", err)
	}
	clr, err := parseValue(*clearArg, *width)
	if err != nil {
		return fmt.Errorf("modify: -clear: %w", err)
	}

	var old, updated uint64
	err = s.withRegion(addr, *width, 1, func(r *devmem.Region) (err error) {
		old, updated, err = modify(r, addr, *width, set, clr)
		return err
	})
	if err != nil {
		return fmt.Errorf("modify: %w", err)
	}
	fmt.Fprintln(s.out, hex(old, *width), "->", hex(updated, *width))
	return nil
}

func (s *session) dump(args []string) error {
	flags := s.flagSet("dump")
	count := flags.Int("n", 16, "number of 32 bit registers")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("dump: expected <addr>")
	}
	addr, err := parseAddr(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if *count <= 0 {
		return fmt.Errorf("dump: invalid count %d", *count)
	}

	err = s.withRegion(addr, 32, *count, func(r *devmem.Region) error {
		regs, err := devmem.Registers[volreg.RO[uint32]](r, addr, *count)
		if err != nil {
			return err
		}
		snapshot := make([]byte, 0, 4*len(regs))
		for i := range regs {
			if i%4 == 0 {
				if i != 0 {
					fmt.Fprintln(s.out)
				}
				fmt.Fprintf(s.out, "%#010x:", addr+uintptr(4*i))
			}
			v := regs[i].Load()
			fmt.Fprintf(s.out, " %08x", v)
			snapshot = binary.NativeEndian.AppendUint32(snapshot, v)
		}
		fmt.Fprintf(s.out, "\ncrc8 0x%02x\n", crc8.Checksum(snapshot, crcTable))
		return nil
	})
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

// shell runs one command per line of s.in until EOF or "exit". Lines are
// split with shell quoting rules, "#" starts a comment. Failing commands are
// logged and don't end the shell.
func (s *session) shell(args []string) error {
	if len(args) != 0 {
		return errors.New("shell: unexpected arguments")
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellwords.Split(line)
		if err != nil {
			s.log.Println("shell:", err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "exit", "quit":
			return nil
		case "shell":
			s.log.Println("shell: already running")
			continue
		}
		if err := s.run(words); err != nil && !errors.Is(err, flag.ErrHelp) {
			s.log.Println(err)
		}
	}
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

// withRegion maps n registers of the given width at addr for the duration
// of f.
func (s *session) withRegion(addr uintptr, width uint, n int, f func(*devmem.Region) error) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	r, err := devmem.Open(s.path, addr, int(width/8)*n)
	if err != nil {
		return err
	}
	err = f(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return err
}

func checkWidth(width uint) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	}
	return fmt.Errorf("%w, got %d", errWidth, width)
}

func parseAddr(s string) (uintptr, error) {
	v, err := strconv.ParseUint(s, 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %w", err)
	}
	return uintptr(v), nil
}

func parseValue(s string, width uint) (uint64, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, int(width))
	if err != nil {
		return 0, fmt.Errorf("invalid %d bit value: %w", width, err)
	}
	return v, nil
}

func hex(v uint64, width uint) string {
	return fmt.Sprintf("%#0*x", int(width/4)+2, v)
}

func load(r *devmem.Region, addr uintptr, width uint) (uint64, error) {
	switch width {
	case 8:
		return loadAs[uint8](r, addr)
	case 16:
		return loadAs[uint16](r, addr)
	case 32:
		return loadAs[uint32](r, addr)
	case 64:
		return loadAs[uint64](r, addr)
	}
	return 0, errWidth
}

func store(r *devmem.Region, addr uintptr, width uint, v uint64) error {
	switch width {
	case 8:
		return storeAs(r, addr, uint8(v))
	case 16:
		return storeAs(r, addr, uint16(v))
	case 32:
		return storeAs(r, addr, uint32(v))
	case 64:
		return storeAs(r, addr, v)
	}
	return errWidth
}

func modify(r *devmem.Region, addr uintptr, width uint, set, clr uint64) (old, updated uint64, err error) {
	switch width {
	case 8:
		return modifyAs[uint8](r, addr, set, clr)
	case 16:
		return modifyAs[uint16](r, addr, set, clr)
	case 32:
		return modifyAs[uint32](r, addr, set, clr)
	case 64:
		return modifyAs[uint64](r, addr, set, clr)
	}
	return 0, 0, errWidth
}

func loadAs[T volreg.Scalar](r *devmem.Region, addr uintptr) (uint64, error) {
	reg, err := devmem.Layout[volreg.RO[T]](r, addr)
	if err != nil {
		return 0, err
	}
	return uint64(reg.Load()), nil
}

func storeAs[T volreg.Scalar](r *devmem.Region, addr uintptr, v T) error {
	reg, err := devmem.Layout[volreg.WO[T]](r, addr)
	if err != nil {
		return err
	}
	reg.Store(v)
	return nil
}

func modifyAs[T volreg.Scalar](r *devmem.Region, addr uintptr, set, clr uint64) (old, updated uint64, err error) {
	reg, err := devmem.Layout[volreg.RW[T]](r, addr)
	if err != nil {
		return 0, 0, err
	}
	reg.Modify(func(v T) T {
		old = uint64(v)
		v = v&^T(clr) | T(set)
		updated = uint64(v)
		return v
	})
	return old, updated, nil
}
