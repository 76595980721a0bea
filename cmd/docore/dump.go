package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"

	"github.com/ezrec/docore/cpu"
)

// dumpState prints the register bank, highlighting registers that differ
// from prior.
func dumpState(out io.Writer, au *aurora.Aurora, preamble string, regs, prior *cpu.Registers) {
	fmt.Fprintf(out, "%v\n", au.Bold(fmt.Sprintf("do-core1: %v:", preamble)))
	for n, value := range regs {
		text := fmt.Sprintf("%#x", value)
		if prior != nil && prior[n] != value {
			fmt.Fprintf(out, "\tR%d: %v\n", n, au.Yellow(text))
		} else {
			fmt.Fprintf(out, "\tR%d: %v\n", n, text)
		}
	}
}

// dumpError prints an error message.
func dumpError(out io.Writer, au *aurora.Aurora, err error) {
	fmt.Fprintf(out, "%v\n", au.Red(fmt.Sprintf("do-core1: %v", err)))
}
