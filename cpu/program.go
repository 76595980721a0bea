package cpu

import (
	"fmt"
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated instruction word.
type Opcode struct {
	LineNo int
	Words  []string
	Word   uint32
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
}

// Binary returns the instruction words of the program.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Codes() {
		bins = append(bins, word)
	}

	return
}

// Codes iterates over the program's source line numbers and instruction words.
func (prog *Program) Codes() iter.Seq2[int, uint32] {
	return func(yield func(lineno int, word uint32) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.LineNo, op.Word) {
				return
			}
		}
	}
}

// Listing returns a disassembly listing of the program.
func (prog *Program) Listing() (text string) {
	for lineno, word := range prog.Codes() {
		var str string
		insn, err := Disassemble(word)
		if err != nil {
			str = err.Error()
		} else {
			str = insn.String()
		}
		text += fmt.Sprintf("%4d: 0x%08x  %v\n", lineno, word, str)
	}

	return
}
