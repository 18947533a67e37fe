// Package io provides the I/O collaborators of the VC8000 assembler and
// emulator: the console channel used by READ and WRITE, and the sources
// of assembly lines.
package io

// Channel defines the interface for the word I/O channel of the VC8000.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Read returns the next word from the channel.
	Read() (value int64, err error)
	// Write sends a single word to the channel.
	Write(value int64) error
}
