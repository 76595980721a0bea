package cpu

import (
	"errors"

	"github.com/ezrec/docore/translate"
)

var f = translate.From

var (
	// Instruction errors
	ErrRegisterRange     = errors.New(f("register index out of range"))
	ErrOpcodeRange       = errors.New(f("opcode out of range"))
	ErrOpcodeUnsupported = errors.New(f("opcode unsupported"))
	ErrAdditionOverflow  = errors.New(f("addition overflow"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrWordSyntax         = errors.New(f(".word syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrRegisterIndex is returned when an operand field names a register
// outside of the register file.
type ErrRegisterIndex struct {
	Operand Operand
	Index   uint32
}

func (err ErrRegisterIndex) Error() string {
	return f("%v register index %d out of range (max %d)", err.Operand.String(), err.Index, MAX_REGISTER_INDEX)
}

func (err ErrRegisterIndex) Unwrap() error {
	return ErrRegisterRange
}

// ErrOverflow is returned when an ADD would overflow 32 bits.
type ErrOverflow struct {
	A uint32
	B uint32
}

func (err ErrOverflow) Error() string {
	return f("addition overflow 0x%08x + 0x%08x", err.A, err.B)
}

func (err ErrOverflow) Unwrap() error {
	return ErrAdditionOverflow
}

// ErrOpcode is returned when executing an opcode with no execution unit.
type ErrOpcode OpCode

func (eo ErrOpcode) Error() string {
	return f("unsupported opcode 0x%02x %v", uint8(eo), OpCode(eo).String())
}

func (eo ErrOpcode) Is(err error) bool {
	target, ok := err.(ErrOpcode)
	return ok && uint8(target) == uint8(eo)
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeUnsupported
}

// ErrInstruction annotates an execution error with the failing instruction.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction '%v'", Instruction(ei).String())
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
