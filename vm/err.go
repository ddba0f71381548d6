package vm

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Load errors
	ErrUnbalancedLoops = errors.New(f("unbalanced loops"))
	ErrAllocation      = errors.New(f("program allocation failed"))

	// Engine errors
	ErrIpEmpty       = errors.New(f("ip empty"))
	ErrStackEmpty    = errors.New(f("stack empty"))
	ErrStackFull     = errors.New(f("stack full"))
	ErrLoopUnmatched = errors.New(f("loop start without matching loop end"))
	ErrEngineFaulted = errors.New(f("engine faulted"))
	ErrOutputInvalid = errors.New(f("output channel invalid"))
)

// ErrLoad describes a program that could not be loaded.
type ErrLoad struct {
	LoopStart int // Count of loop-start instructions seen.
	LoopEnd   int // Count of loop-end instructions seen.
	Err       error
}

func (err *ErrLoad) Error() string {
	return f("load: %v ('[' x %d, ']' x %d)", err.Err, err.LoopStart, err.LoopEnd)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrInstruction is the instruction being executed when a fault occurred.
type ErrInstruction struct {
	Ip          int
	Instruction Instruction
}

func (ei ErrInstruction) Error() string {
	return f("ip %d instruction '%v'", ei.Ip, ei.Instruction)
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
