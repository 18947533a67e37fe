package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Tape provides console I/O of decimal words. It wraps an io.Reader for
// input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // Written to Output before each Read, if not empty.

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind discards any buffered input. A tape cannot be rewound.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// SetInput replaces the input, discarding any buffered input.
func (tc *Tape) SetInput(input io.Reader) {
	tc.Input = input
	tc.scanner = nil
}

// Read writes the prompt, and returns the next whitespace separated
// word from the input as a decimal integer.
func (tc *Tape) Read() (value int64, err error) {
	if len(tc.Prompt) != 0 && tc.Output != nil {
		_, err = io.WriteString(tc.Output, tc.Prompt)
		if err != nil {
			return
		}
	}

	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrChannelEmpty
		}
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q", ErrNotNumber, word)
		return
	}

	return
}

// Write writes the word in decimal, followed by a newline.
func (tc *Tape) Write(value int64) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}
