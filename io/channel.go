// Package io provides output channel implementations for the bfvm machine.
package io

// Channel defines the interface for all output channels in the bfvm system.
// Channels receive one byte per output instruction, in execution order.
type Channel interface {
	// Send writes a single byte to the channel.
	Send(value byte) error
}
