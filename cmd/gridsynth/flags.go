package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet wraps flag.FlagSet to add support for uint flags, which the
// standard flag package lacks.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior.
func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// UintVar defines a uint flag via a custom flag.Value implementation.
func (fs *flagSet) UintVar(p *uint, name string, value uint, usage string) {
	fs.FlagSet.Var(&uintValue{p: p}, name, usage)
	*p = value
}

// uintValue implements flag.Value for uint flags.
type uintValue struct {
	p *uint
}

func (v *uintValue) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v *uintValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint value %q", s)
	}
	*v.p = uint(n)
	return nil
}
