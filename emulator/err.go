package emulator

import (
	"errors"

	"github.com/ezrec/docore/translate"
)

var f = translate.From

var (
	// Input errors
	ErrWord  = errors.New(f("instruction word invalid"))
	ErrState = errors.New(f("state invalid"))
)

// ErrRuntime indicates the instruction word of a runtime error.
type ErrRuntime struct {
	Word uint32
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("word 0x%08x %v", err.Word, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrParseWord is returned when text is not a 32-bit hexadecimal word.
type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a 32-bit hexadecimal word", string(err))
}

func (err ErrParseWord) Unwrap() error {
	return ErrWord
}

// ErrStateRegister is returned when a state file names an unknown register.
type ErrStateRegister string

func (err ErrStateRegister) Error() string {
	return f("state register '%v' unknown", string(err))
}

func (err ErrStateRegister) Unwrap() error {
	return ErrState
}
