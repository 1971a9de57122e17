//go:build linux

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/volreg/devmem"
)

const usageString = `regpoke reads and writes memory mapped registers from Linux userspace.

Usage:

	%s [flags] <command> [arguments]

The commands are:

	read     load a register
	write    store a register
	modify   set and clear bits of a register
	dump     print consecutive 32 bit registers and their CRC-8
	shell    run commands read from stdin

Addresses and values accept Go integer syntax, e.g. 0x4001_0800.

`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	mem := flag.String("mem", devmem.DefaultPath, "file to map physical memory from")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	s := &session{
		path: *mem,
		in:   os.Stdin,
		out:  os.Stdout,
		log:  log.Default(),
	}
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		s.prompt = "regpoke> "
	}

	err := s.run(flag.Args())
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUnknownCommand):
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(1)
	default:
		log.Fatalln(err)
	}
}
