package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"
)

var _cpu_defines = map[string]string{
	"MAX_REGISTER_INDEX": fmt.Sprintf("%v", MAX_REGISTER_INDEX),
	"REGISTER_COUNT":     fmt.Sprintf("%v", REGISTER_COUNT),
	"OP_LDW":             fmt.Sprintf("0x%x", uint8(OP_LDW)),
	"OP_STW":             fmt.Sprintf("0x%x", uint8(OP_STW)),
	"OP_ADD":             fmt.Sprintf("0x%x", uint8(OP_ADD)),
	"OP_XOR":             fmt.Sprintf("0x%x", uint8(OP_XOR)),
}

// Registers is the general purpose register file.
type Registers [REGISTER_COUNT]uint32

// Execute applies a decoded instruction to the register file.
//
// At most one register, op0, is written. On error the register file is
// unchanged.
func Execute(insn Instruction, regs *Registers) (err error) {
	err = checkIndex(OPERAND_OP0, insn.Op0)
	if err != nil {
		return
	}
	err = checkIndex(OPERAND_OP1, insn.Op1)
	if err != nil {
		return
	}

	a := regs[insn.Op0]
	b := regs[insn.Op1]

	switch insn.OpCode {
	case OP_ADD:
		sum, carry := bits.Add32(a, b, 0)
		if carry != 0 {
			err = ErrOverflow{A: a, B: b}
			return
		}
		regs[insn.Op0] = sum
	case OP_XOR:
		regs[insn.Op0] = a ^ b
	default:
		// LDW and STW have no memory subsystem to act on.
		err = ErrOpcode(insn.OpCode)
	}

	return
}

// Cpu is the simulation context for a do-core1 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register Registers // Register bank.
}

// NewCpu creates a new CPU with a cleared register bank.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the register bank.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.Register {
		reg := fmt.Sprintf("r%d", n)
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg, val>>16, val&0xffff)
	}

	return
}

// Execute executes a single decoded instruction against the register bank.
func (cpu *Cpu) Execute(insn Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(insn), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %v", insn)
	}

	var prior uint32
	if insn.Op0 <= MAX_REGISTER_INDEX {
		prior = cpu.Register[insn.Op0]
	}

	err = Execute(insn, &cpu.Register)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: r%d 0x%08x -> 0x%08x", insn.Op0, prior, cpu.Register[insn.Op0])
	}

	return
}

// Step decodes an instruction word and executes it.
func (cpu *Cpu) Step(word uint32) (insn Instruction, err error) {
	insn, err = Disassemble(word)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: 0x%08x decoded into %#v", word, insn)
	}

	err = cpu.Execute(insn)

	return
}
