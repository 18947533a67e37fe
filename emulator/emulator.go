// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/vc8000/cpu"
	"github.com/ezrec/vc8000/io"
)

// READ_PROMPT is written to the tape output before each READ.
const READ_PROMPT = "? "

// Emulator state. CPU + IO channel.
type Emulator struct {
	Verbose     bool             // If set, enables verbose logging.
	*cpu.Cpu                     // Reference to the CPU simulation.
	Translation *cpu.Translation // Reference to the currently running translation.

	Tape io.Tape // Console IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:         cpu.NewCpu(cpu.MEMORY_SIZE),
		Translation: &cpu.Translation{},
	}

	emu.Tape.Prompt = READ_PROMPT
	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Reset the emulator state, and load the translation into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	for loc, code := range emu.Translation.Codes() {
		err = emu.Cpu.Store(loc, code)
		if err != nil {
			lineno := 0
			if stmt := emu.Translation.Debug(loc); stmt != nil {
				lineno = stmt.LineNo
			}
			err = &ErrRuntime{LineNo: lineno, Location: loc, Err: err}
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d statements", emu.Translation.Len())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Statement returns the statement at the instruction pointer, or nil.
func (emu *Emulator) Statement() *cpu.Statement {
	return emu.Translation.Debug(emu.Cpu.Ip)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	stmt := emu.Statement()
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Tick performs a single tick of the emulator. Any error is fatal, and
// is returned with done set.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	loc := emu.Cpu.Ip
	defer func() {
		if err != nil {
			lineno := 0
			if stmt := emu.Translation.Debug(loc); stmt != nil {
				lineno = stmt.LineNo
			}
			done = true
			err = &ErrRuntime{LineNo: lineno, Location: loc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}

	return
}

// Run loads the translation, and executes it until HALT or a fatal
// error. ok is true only if the program reached HALT.
func (emu *Emulator) Run() (ok bool, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Ticks())
	}

	ok = true

	return
}
