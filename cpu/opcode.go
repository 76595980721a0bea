package cpu

import (
	"fmt"
)

// Instruction word layout.
const (
	OPCODE_SHIFT = 0
	OPCODE_MASK  = 0x3f // 6 bits
	OP0_SHIFT    = 6
	OP0_MASK     = 0x1f // 5 bits
	OP1_SHIFT    = 11
	OP1_MASK     = 0x1f // 5 bits
)

const (
	MAX_REGISTER_INDEX = 7                      // Highest general purpose register.
	REGISTER_COUNT     = MAX_REGISTER_INDEX + 1 // Size of the register file.
)

// OpCode is an instruction operation code.
type OpCode uint8

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_LDW = OpCode(0x00) // ldw
	OP_STW = OpCode(0x01) // stw
	OP_ADD = OpCode(0x02) // add
	OP_XOR = OpCode(0x03) // xor
)

// Known returns true if the opcode is part of the instruction set.
func (op OpCode) Known() bool {
	return op <= OP_XOR
}

// Operand identifies a register operand field of the instruction word.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_OP0 = Operand(0) // op0
	OPERAND_OP1 = Operand(1) // op1
)

// Instruction is a decoded instruction word.
type Instruction struct {
	OpCode OpCode
	Op0    uint8 // Destination, and first source, register.
	Op1    uint8 // Second source register.
}

// MakeWord packs an opcode and two register indices into an instruction word.
// Each field is truncated to its width; no range checks are made.
func MakeWord(op OpCode, op0, op1 uint8) uint32 {
	return (uint32(op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint32(op0)&OP0_MASK)<<OP0_SHIFT |
		(uint32(op1)&OP1_MASK)<<OP1_SHIFT
}

// checkIndex verifies that a register index is addressable.
func checkIndex(field Operand, index uint8) (err error) {
	if index > MAX_REGISTER_INDEX {
		err = ErrRegisterIndex{Operand: field, Index: uint32(index)}
	}
	return
}

// Disassemble decodes an instruction word.
//
// Any opcode value decodes; unknown opcodes are rejected by Execute.
// Register indices above MAX_REGISTER_INDEX fail the decode.
func Disassemble(word uint32) (insn Instruction, err error) {
	op := OpCode((word >> OPCODE_SHIFT) & OPCODE_MASK)
	op0 := uint8((word >> OP0_SHIFT) & OP0_MASK)
	op1 := uint8((word >> OP1_SHIFT) & OP1_MASK)

	err = checkIndex(OPERAND_OP0, op0)
	if err != nil {
		return
	}

	err = checkIndex(OPERAND_OP1, op1)
	if err != nil {
		return
	}

	insn = Instruction{OpCode: op, Op0: op0, Op1: op1}

	return
}

// Valid returns an error if the instruction cannot be encoded or executed
// against the register file.
func (insn Instruction) Valid() (err error) {
	if insn.OpCode > OPCODE_MASK {
		err = ErrOpcodeRange
		return
	}

	err = checkIndex(OPERAND_OP0, insn.Op0)
	if err != nil {
		return
	}

	err = checkIndex(OPERAND_OP1, insn.Op1)

	return
}

// Encode returns the instruction word for the instruction.
func (insn Instruction) Encode() (word uint32, err error) {
	err = insn.Valid()
	if err != nil {
		return
	}

	word = MakeWord(insn.OpCode, insn.Op0, insn.Op1)

	return
}

// String returns the assembly language representation of this instruction.
func (insn Instruction) String() string {
	if !insn.OpCode.Known() {
		return fmt.Sprintf(".word %#x", MakeWord(insn.OpCode, insn.Op0, insn.Op1))
	}

	return fmt.Sprintf("%v r%d r%d", insn.OpCode.String(), insn.Op0, insn.Op1)
}
