// Package vm implements the tape machine for the bfvm system.
//
// The machine consists of an instruction pointer (IP) over a compiled
// program, a cell tape of 8-bit cells that grows to the right on demand, and
// a control stack holding the IPs of the loops currently being executed.
//
// The loader compacts raw source text into the eight-symbol instruction
// alphabet, discarding everything else as comment, and rejects programs whose
// loop-start and loop-end counts differ.
package vm
