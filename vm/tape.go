package vm

import (
	"iter"
)

// Tape is a one-directional cell tape with a movable head.
//
// The zero value is a fresh tape: a single zero cell under the head.
// Storage grows one cell at a time as the head moves right, so the head is
// always a valid index into the cells.
type Tape struct {
	cells []uint8
	head  int
}

// grow ensures storage backs the head.
func (tp *Tape) grow() {
	for tp.head >= len(tp.cells) {
		tp.cells = append(tp.cells, 0)
	}
}

// Reset the tape to a single zero cell, with the head at the origin.
func (tp *Tape) Reset() {
	tp.cells = tp.cells[:0]
	tp.head = 0
	tp.grow()
}

// Head returns the head position.
func (tp *Tape) Head() int {
	return tp.head
}

// Len returns the number of allocated cells.
func (tp *Tape) Len() int {
	tp.grow()
	return len(tp.cells)
}

// Right moves the head right by one cell, returning the new head position.
func (tp *Tape) Right() (head int) {
	tp.head++
	tp.grow()
	return tp.head
}

// Left moves the head left by one cell.
// At the origin the head does not move, and ok is false.
func (tp *Tape) Left() (head int, ok bool) {
	if tp.head == 0 {
		return
	}

	tp.head--
	return tp.head, true
}

// Inc increments the cell at the head, modulo 256.
func (tp *Tape) Inc() (value uint8) {
	tp.grow()
	tp.cells[tp.head]++
	return tp.cells[tp.head]
}

// Dec decrements the cell at the head, modulo 256.
func (tp *Tape) Dec() (value uint8) {
	tp.grow()
	tp.cells[tp.head]--
	return tp.cells[tp.head]
}

// Read returns the cell at the head.
func (tp *Tape) Read() (value uint8) {
	tp.grow()
	return tp.cells[tp.head]
}

// ReadAt returns the cell at index.
// Cells outside of the allocated storage read as zero.
func (tp *Tape) ReadAt(index int) (value uint8) {
	if index < 0 || index >= len(tp.cells) {
		return
	}

	return tp.cells[index]
}

// Dump returns an iterator over all of the allocated cells.
func (tp *Tape) Dump() iter.Seq2[int, uint8] {
	return func(yield func(index int, value uint8) bool) {
		tp.grow()
		for n, value := range tp.cells {
			if !yield(n, value) {
				return
			}
		}
	}
}
