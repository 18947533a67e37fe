package io

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// Lines is a source of assembly lines held in memory.
type Lines struct {
	Text []string

	index int
}

// NewLines creates a source over a list of lines.
func NewLines(lines ...string) *Lines {
	return &Lines{Text: slices.Clone(lines)}
}

// ReadLines reads an entire input stream into a source.
func ReadLines(input io.Reader) (src *Lines, err error) {
	src = &Lines{}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		src.Text = append(src.Text, scanner.Text())
	}

	err = scanner.Err()

	return
}

// SplitLines creates a source from newline separated text.
func SplitLines(text string) *Lines {
	return &Lines{Text: strings.Split(strings.TrimSuffix(text, "\n"), "\n")}
}

// NextLine returns the next line, or io.EOF.
func (src *Lines) NextLine() (line string, err error) {
	if src.index >= len(src.Text) {
		err = io.EOF
		return
	}

	line = src.Text[src.index]
	src.index++

	return
}

// Rewind restarts the source at its first line.
func (src *Lines) Rewind() error {
	src.index = 0
	return nil
}

// File is a source of assembly lines read from a seekable file.
type File struct {
	Input io.ReadSeeker

	scanner *bufio.Scanner
}

// NewFile creates a source over a seekable input.
func NewFile(input io.ReadSeeker) *File {
	return &File{Input: input}
}

// NextLine returns the next line, or io.EOF.
func (src *File) NextLine() (line string, err error) {
	if src.scanner == nil {
		src.scanner = bufio.NewScanner(src.Input)
	}

	if !src.scanner.Scan() {
		err = src.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = src.scanner.Text()

	return
}

// Rewind seeks the input back to its start.
func (src *File) Rewind() (err error) {
	_, err = src.Input.Seek(0, io.SeekStart)
	src.scanner = nil
	return
}
