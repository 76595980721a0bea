// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/internal"
)

const (
	REGISTER_SEED = 0x10 // Reset value of rN is N * REGISTER_SEED.
)

var _emulator_defines = map[string]string{
	"REGISTER_SEED": fmt.Sprintf("%#x", REGISTER_SEED),
}

// Emulator state. CPU + assembled program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Most recently assembled program.
}

// NewEmulator creates a new emulator, with registers at their reset values.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the register bank to arbitrary, but known, values.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	for n := range emu.Cpu.Register {
		emu.Cpu.Register[n] = uint32(n) * REGISTER_SEED
	}
}

// ParseWord parses a hexadecimal instruction word, with or without a
// leading '0x'.
func ParseWord(text string) (word uint32, err error) {
	str := strings.TrimSpace(text)
	str = strings.TrimPrefix(str, "0x")
	str = strings.TrimPrefix(str, "0X")
	str = strings.ReplaceAll(str, "_", "")

	value, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		err = ErrParseWord(text)
		return
	}

	word = uint32(value)

	return
}

// Assemble assembles a program, with the emulator's defines as equates.
func (emu *Emulator) Assemble(input io.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Step decodes and executes a single instruction word.
func (emu *Emulator) Step(word uint32) (insn cpu.Instruction, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Word: word, Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("emulator: step 0x%08x", word)
	}

	insn, err = emu.Cpu.Step(word)

	return
}

// StepText parses a hexadecimal instruction word, then steps it.
func (emu *Emulator) StepText(text string) (insn cpu.Instruction, err error) {
	word, err := ParseWord(text)
	if err != nil {
		return
	}

	return emu.Step(word)
}
