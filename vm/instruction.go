package vm

import (
	"fmt"
)

// Instruction is a single compiled tape machine instruction.
// The value of each instruction is its source symbol.
type Instruction byte

const (
	OP_RIGHT  = Instruction('>') // Move the head right.
	OP_LEFT   = Instruction('<') // Move the head left.
	OP_INC    = Instruction('+') // Increment the cell at the head.
	OP_DEC    = Instruction('-') // Decrement the cell at the head.
	OP_OUTPUT = Instruction('.') // Send the cell at the head to the output.
	OP_INPUT  = Instruction(',') // Read into the cell at the head (unsupported).
	OP_LOOP   = Instruction('[') // Loop start.
	OP_END    = Instruction(']') // Loop end.
)

// IsInstruction returns true if the byte is part of the instruction alphabet.
func IsInstruction(b byte) bool {
	switch Instruction(b) {
	case OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OUTPUT, OP_INPUT, OP_LOOP, OP_END:
		return true
	}
	return false
}

// String returns the source symbol of the instruction.
func (op Instruction) String() string {
	if op < ' ' || op > '~' {
		return fmt.Sprintf("\\x%02x", byte(op))
	}
	return string(rune(op))
}
