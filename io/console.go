package io

import (
	"io"
)

// Console sends output bytes to an io.Writer, unbuffered.
type Console struct {
	Output io.Writer

	Count int // Bytes sent since the last rewind.
}

var _ Channel = (*Console)(nil)

// Rewind resets the byte counter.
func (cc *Console) Rewind() {
	cc.Count = 0
}

// Send writes a byte to the output.
func (cc *Console) Send(value byte) (err error) {
	if cc.Output == nil {
		err = ErrChannelMissing
		return
	}

	n, err := cc.Output.Write([]byte{value})
	if err != nil {
		return
	}
	if n != 1 {
		err = io.ErrShortWrite
		return
	}

	cc.Count++

	return
}
