package cpu

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// seeded returns a register file with each register set to index * 0x10.
func seeded() (regs Registers) {
	for n := range regs {
		regs[n] = uint32(n) * 0x10
	}
	return
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		word     uint32
		expected Registers
	}){
		{"add_r1_r3", 0x1842, Registers{0x00, 0x40, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}},
		{"add_r7_r2", 0x11c2, Registers{0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x90}},
		{"xor_r2_r3", 0x1883, Registers{0x00, 0x10, 0x10, 0x30, 0x40, 0x50, 0x60, 0x70}},
		{"add_r4_r4", MakeWord(OP_ADD, 4, 4), Registers{0x00, 0x10, 0x20, 0x30, 0x80, 0x50, 0x60, 0x70}},
		{"xor_r5_r5", MakeWord(OP_XOR, 5, 5), Registers{0x00, 0x10, 0x20, 0x30, 0x40, 0x00, 0x60, 0x70}},
	}

	for _, entry := range table {
		regs := seeded()

		insn, err := Disassemble(entry.word)
		assert.NoError(err, entry.name)

		err = Execute(insn, &regs)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expected, regs, entry.name)
	}
}

func TestExecute_Overflow(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs[0] = 0xffffffff
	regs[1] = 1
	prior := regs

	err := Execute(Instruction{OP_ADD, 0, 1}, &regs)
	assert.ErrorIs(err, ErrAdditionOverflow)
	assert.Equal(ErrOverflow{A: 0xffffffff, B: 1}, err)
	assert.Equal(prior, regs)

	// Largest sum that still fits.
	regs[0] = 0xfffffffe
	err = Execute(Instruction{OP_ADD, 0, 1}, &regs)
	assert.NoError(err)
	assert.Equal(uint32(0xffffffff), regs[0])
	assert.Equal(uint32(1), regs[1])

	// Self add overflows on the doubled value.
	regs[2] = 0x80000000
	prior = regs
	err = Execute(Instruction{OP_ADD, 2, 2}, &regs)
	assert.Equal(ErrOverflow{A: 0x80000000, B: 0x80000000}, err)
	assert.Equal(prior, regs)
}

func TestExecute_Unsupported(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint32{0x0800, 0x0141, MakeWord(OpCode(0x04), 1, 2), MakeWord(OpCode(0x3f), 0, 0)} {
		regs := seeded()
		prior := regs

		insn, err := Disassemble(word)
		assert.NoError(err)

		err = Execute(insn, &regs)
		assert.ErrorIs(err, ErrOpcodeUnsupported)
		assert.ErrorIs(err, ErrOpcode(insn.OpCode))
		assert.NotErrorIs(err, ErrOpcode(insn.OpCode+1))
		assert.Equal(ErrOpcode(insn.OpCode), err)
		assert.Equal(prior, regs)
	}
}

func TestExecute_Range(t *testing.T) {
	assert := assert.New(t)

	regs := seeded()
	prior := regs

	err := Execute(Instruction{OP_XOR, 8, 0}, &regs)
	assert.Equal(ErrRegisterIndex{Operand: OPERAND_OP0, Index: 8}, err)

	err = Execute(Instruction{OP_ADD, 0, 200}, &regs)
	assert.Equal(ErrRegisterIndex{Operand: OPERAND_OP1, Index: 200}, err)

	assert.Equal(prior, regs)
}

func TestExecute_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("self xor clears the register", prop.ForAll(
		func(index uint8, value uint32) bool {
			regs := seeded()
			regs[index] = value
			err := Execute(Instruction{OP_XOR, index, index}, &regs)
			return err == nil && regs[index] == 0
		},
		gen.UInt8Range(0, MAX_REGISTER_INDEX),
		gen.UInt32(),
	))

	properties.Property("add writes only op0", prop.ForAll(
		func(op0, op1 uint8, a, b uint32) bool {
			regs := seeded()
			regs[op0] = a
			regs[op1] = b
			prior := regs
			err := Execute(Instruction{OP_ADD, op0, op1}, &regs)
			if err != nil {
				return errors.Is(err, ErrAdditionOverflow) && regs == prior
			}
			for n := range regs {
				if n != int(op0) && regs[n] != prior[n] {
					return false
				}
			}
			return regs[op0] == prior[op0]+prior[op1]
		},
		gen.UInt8Range(0, MAX_REGISTER_INDEX),
		gen.UInt8Range(0, MAX_REGISTER_INDEX),
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.Property("add overflow leaves registers unchanged", prop.ForAll(
		func(a, b uint32) bool {
			regs := Registers{a, b}
			prior := regs
			err := Execute(Instruction{OP_ADD, 0, 1}, &regs)
			overflow := uint64(a)+uint64(b) > 0xffffffff
			return overflow == (err != nil) && (!overflow || regs == prior)
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register = seeded()

	insn, err := cpu.Step(0x1883)
	assert.NoError(err)
	assert.Equal(Instruction{OP_XOR, 2, 3}, insn)
	assert.Equal(uint32(0x10), cpu.Register[2])

	insn, err = cpu.Step(0x0800)
	assert.ErrorIs(err, ErrOpcodeUnsupported)
	assert.ErrorIs(err, ErrInstruction(insn))
	assert.Equal(Instruction{OP_LDW, 0, 1}, insn)

	_, err = cpu.Step(0x5002)
	assert.ErrorIs(err, ErrRegisterRange)

	cpu.Register[0] = 0xffffffff
	cpu.Register[1] = 1
	_, err = cpu.Step(MakeWord(OP_ADD, 0, 1))
	var overflow ErrOverflow
	if assert.ErrorAs(err, &overflow) {
		assert.Equal(uint32(0xffffffff), overflow.A)
		assert.Equal(uint32(1), overflow.B)
	}
	assert.Equal(uint32(0xffffffff), cpu.Register[0])

	cpu.Reset()
	assert.Equal(Registers{}, cpu.Register)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[1] = 0x12345678

	text := cpu.String()
	assert.Contains(text, "   r0: 0000_0000\n")
	assert.Contains(text, "   r1: 1234_5678\n")
	assert.Contains(text, "   r7: 0000_0000\n")
}

func TestCpu_Defines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range NewCpu().Defines() {
		defines[key] = value
	}

	assert.Equal("7", defines["MAX_REGISTER_INDEX"])
	assert.Equal("8", defines["REGISTER_COUNT"])
	assert.Equal("0x2", defines["OP_ADD"])
}
