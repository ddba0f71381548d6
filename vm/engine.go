// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/translate"
)

// Channel is an output channel interface.
type Channel io.Channel

// Engine is the execution context for a single tape machine program.
//
// Each Engine owns its tape and stack; separate engines share no state and
// may be stepped from separate goroutines.
type Engine struct {
	Verbose bool        // Set to enable verbose logging.
	Log     *log.Logger // Diagnostic log, or the default logger if nil.

	Program *Program // Currently loaded program.
	Ip      int      // Index of the next instruction to execute.
	Tape    Tape     // Cell tape.
	Stack   Stack    // Loop entry stack.
	Output  Channel  // Destination of output instructions.

	Ticks int // Instructions executed since the last reset.

	fault error // Fatal fault, if any.
}

// NewEngine creates an engine with an empty program.
func NewEngine(output Channel) (eng *Engine) {
	eng = &Engine{
		Program: &Program{},
		Output:  output,
	}

	eng.Reset()

	return
}

// Logger returns the diagnostic log.
func (eng *Engine) Logger() *log.Logger {
	if eng.Log == nil {
		return log.Default()
	}
	return eng.Log
}

// Load compiles source text and installs it as the engine program.
//
// Load always resets the instruction pointer, tape, stack and tick counter,
// whether or not the program compiles. On error the engine is left with an
// empty program, and is done.
func (eng *Engine) Load(source string) (err error) {
	prog, err := Compile(source)
	if err != nil {
		prog = &Program{}
	}

	eng.Program = prog
	eng.Reset()

	if eng.Verbose && err == nil {
		eng.Logger().Printf("vm: loaded %d instructions", prog.Len())
	}

	return
}

// Reset the engine state, keeping the loaded program.
func (eng *Engine) Reset() {
	if eng.Verbose {
		eng.Logger().Printf("vm: reset")
	}

	eng.Ip = 0
	eng.Tape.Reset()
	eng.Stack.Reset()
	eng.Ticks = 0
	eng.fault = nil
}

// Done returns true when the instruction pointer is past the program end.
func (eng *Engine) Done() bool {
	return eng.Ip >= eng.Program.Len()
}

// Fault returns the fatal fault that stopped the engine, if any.
func (eng *Engine) Fault() error {
	return eng.fault
}

// Code returns the instruction at the instruction pointer.
func (eng *Engine) Code() (code Instruction, ok bool) {
	if eng.Done() {
		return
	}

	return eng.Program.Code[eng.Ip], true
}

// String returns the current engine state as a string.
func (eng *Engine) String() (text string) {
	regs := []string{"ip", "op", "head", "cell", "stack", "depth", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%d/%d", eng.Ip, eng.Program.Len())
		case "op":
			strval = "-"
			if code, ok := eng.Code(); ok {
				strval = code.String()
			}
		case "head":
			strval = fmt.Sprintf("%d/%d", eng.Tape.Head(), eng.Tape.Len())
		case "cell":
			strval = fmt.Sprintf("0x%02X", eng.Tape.Read())
		case "stack":
			val, ok := eng.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("%d", val)
			} else {
				strval = "-"
			}
		case "depth":
			strval = fmt.Sprintf("%d", eng.Stack.Depth())
		case "ticks":
			strval = fmt.Sprintf("%d", eng.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// match finds the loop end matching the loop start at ip.
func (eng *Engine) match(ip int) (end int, ok bool) {
	depth := 0
	for n := ip + 1; n < len(eng.Program.Code); n++ {
		switch eng.Program.Code[n] {
		case OP_LOOP:
			depth++
		case OP_END:
			if depth == 0 {
				return n, true
			}
			depth--
		}
	}

	return
}

// Step executes the instruction at the instruction pointer.
//
// Stepping a done engine returns ErrIpEmpty and changes nothing.
// Any other error is fatal: the engine refuses to step until reset or
// reloaded.
func (eng *Engine) Step() (err error) {
	if eng.fault != nil {
		return errors.Join(ErrEngineFaulted, eng.fault)
	}

	code, ok := eng.Code()
	if !ok {
		return ErrIpEmpty
	}

	ip := eng.Ip
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction{Ip: ip, Instruction: code}, err)
			eng.fault = err
		}
	}()

	if eng.Verbose {
		eng.Logger().Printf("%04d: %v", ip, code)
	}

	eng.Ticks++
	next_ip := ip + 1

	switch code {
	case OP_RIGHT:
		eng.Tape.Right()
	case OP_LEFT:
		_, ok := eng.Tape.Left()
		if !ok && eng.Verbose {
			eng.Logger().Printf("vm: head at tape origin")
		}
	case OP_INC:
		eng.Tape.Inc()
	case OP_DEC:
		eng.Tape.Dec()
	case OP_OUTPUT:
		if eng.Output == nil {
			err = ErrOutputInvalid
			return
		}
		err = eng.Output.Send(eng.Tape.Read())
		if err != nil {
			return
		}
	case OP_LOOP:
		if eng.Tape.Read() != 0 {
			_, err = eng.Stack.Push(ip)
			if err != nil {
				return
			}
		} else {
			end, ok := eng.match(ip)
			if !ok {
				err = ErrLoopUnmatched
				return
			}
			next_ip = end + 1
		}
	case OP_END:
		if eng.Tape.Read() != 0 {
			start, ok := eng.Stack.Peek()
			if !ok {
				err = ErrStackEmpty
				return
			}
			next_ip = start + 1
		} else {
			_, ok := eng.Stack.Pop()
			if !ok {
				err = ErrStackEmpty
				return
			}
		}
	default:
		translate.Logf(eng.Log, "vm: unknown command encountered: %v", code)
	}

	eng.Ip = next_ip

	return
}
