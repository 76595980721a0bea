// Package cpu implements the do-core1 instruction set: encoding, decoding,
// single-step execution and a small line assembler.
//
// An instruction is a 32-bit word. The low 6 bits hold the opcode, bits 6-10
// the first operand register (op0) and bits 11-15 the second operand register
// (op1). The upper 16 bits are ignored. The CPU has eight 32-bit general
// purpose registers (r0-r7); ADD and XOR write their result to op0.
//
// LDW and STW decode, but there is no memory subsystem to execute them
// against, so execution rejects them.
package cpu
