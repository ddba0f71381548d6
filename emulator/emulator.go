// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/vm"
)

// Emulator state. Engine + output console.
type Emulator struct {
	Verbose    bool // If set, enables verbose logging.
	*vm.Engine      // Reference to the engine.

	Console  io.Console // Console output channel.
	MaxTicks int        // Tick budget per run, or 0 for no limit.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Engine = vm.NewEngine(&emu.Console)

	return
}

// Load a program, and reset the emulator.
func (emu *Emulator) Load(source string) (err error) {
	emu.Engine.Verbose = emu.Verbose

	err = emu.Engine.Load(source)
	emu.Console.Rewind()

	return
}

// Reset the emulator state, keeping the program.
func (emu *Emulator) Reset() {
	emu.Engine.Verbose = emu.Verbose

	emu.Engine.Reset()
	emu.Console.Rewind()
}

// Written returns the number of output bytes since the last reset.
func (emu *Emulator) Written() int {
	return emu.Console.Count
}

// LineNo returns the source line and column of the current instruction.
func (emu *Emulator) LineNo() (lineno int, column int) {
	pos, ok := emu.Program.Debug(emu.Ip)
	if !ok {
		return
	}

	return pos.LineNo, pos.Column
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set engine verbosity
	emu.Engine.Verbose = emu.Verbose

	lineno, column := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Column: column, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Ticks >= emu.MaxTicks && !emu.Done() {
		err = ErrTickLimit
		return
	}

	err = emu.Engine.Step()
	if errors.Is(err, vm.ErrIpEmpty) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Done()

	return
}

// Run ticks the emulator until the program ends, or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		emu.Logger().Printf("emulator: %d ticks, %d bytes output", emu.Ticks, emu.Written())
	}

	return
}

// Dump returns an iterator over the tape contents, one line per cell.
func (emu *Emulator) Dump() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for index, value := range emu.Tape.Dump() {
			if !yield(fmt.Sprintf("Tape at index: '%d' is '0x%X'", index, value)) {
				return
			}
		}
	}
}
