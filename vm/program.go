// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"iter"
	"strings"
)

// Position of an instruction in the program source text.
type Position struct {
	LineNo int // 1-based source line.
	Column int // 1-based byte column.
}

// Program is a compiled instruction sequence.
type Program struct {
	Code     []Instruction // Compiled instructions, without comments.
	Position []Position    // Source position of each instruction.
}

// Compile compacts source text into a program.
//
// Every byte outside of the instruction alphabet is a comment, and is
// dropped. Loop balance is checked by count only: a program with as many
// loop-starts as loop-ends always compiles.
func Compile(source string) (prog *Program, err error) {
	var count, loops, ends int

	for n := 0; n < len(source); n++ {
		b := source[n]
		if !IsInstruction(b) {
			continue
		}
		count++
		switch Instruction(b) {
		case OP_LOOP:
			loops++
		case OP_END:
			ends++
		}
	}

	if loops != ends {
		err = &ErrLoad{LoopStart: loops, LoopEnd: ends, Err: ErrUnbalancedLoops}
		return
	}

	prog = &Program{
		Code:     make([]Instruction, 0, count),
		Position: make([]Position, 0, count),
	}

	pos := Position{LineNo: 1, Column: 1}
	for n := 0; n < len(source); n++ {
		b := source[n]
		if IsInstruction(b) {
			prog.Code = append(prog.Code, Instruction(b))
			prog.Position = append(prog.Position, pos)
		}
		if b == '\n' {
			pos.LineNo++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Code)
}

// Debug returns the source position of the instruction at ip.
func (prog *Program) Debug(ip int) (pos Position, ok bool) {
	if prog == nil || ip < 0 || ip >= len(prog.Position) {
		return
	}

	return prog.Position[ip], true
}

// Codes returns an iterator over the program instructions.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, code Instruction) bool) {
		if prog == nil {
			return
		}
		for ip, code := range prog.Code {
			if !yield(ip, code) {
				return
			}
		}
	}
}

// String returns the compiled program text.
func (prog *Program) String() string {
	var sb strings.Builder

	for _, code := range prog.Codes() {
		sb.WriteByte(byte(code))
	}

	return sb.String()
}
