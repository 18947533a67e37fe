// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"

	vcio "github.com/ezrec/vc8000/io"
)

// Source is a rewindable stream of source lines. NextLine returns io.EOF
// after the last line.
type Source interface {
	NextLine() (line string, err error)
	Rewind() error
}

// Assembler is a two pass assembler for the VC8000.
//
// Pass I assigns a location to every label. Pass II translates every
// line with the completed symbol table.
type Assembler struct {
	Verbose     bool         // If set, verbosely logs the assembler actions.
	Symbols     SymbolTable  // Labels found by Pass I.
	Translation *Translation // Statements produced by Pass II.
}

// PassI reads the source, and records the location of every label.
func (asm *Assembler) PassI(src Source) (err error) {
	asm.Symbols.Reset()

	loc := 0
	for lineno := 1; ; lineno++ {
		var line string
		line, err = src.NextLine()
		if errors.Is(err, io.EOF) {
			// A missing END is reported by Pass II.
			err = nil
			break
		}
		if err != nil {
			return
		}

		inst := ParseInstruction(line)
		if inst.Type == ST_END {
			break
		}

		if inst.Type == ST_COMMENT {
			continue
		}

		if inst.HasLabel() {
			if asm.Verbose {
				log.Printf("asm: %d: %v = %06d", lineno, inst.Label, loc)
			}
			asm.Symbols.AddSymbol(inst.Label, loc)
		}

		loc = inst.LocationNextInstruction(loc)
	}

	return
}

// PassII rewinds the source, and translates every line.
func (asm *Assembler) PassII(src Source) (trans *Translation, err error) {
	err = src.Rewind()
	if err != nil {
		err = errors.Join(ErrSourceUnrewindable, err)
		return
	}

	trans = &Translation{}

	loc := 0
	reachedEnd := false
	for lineno := 1; ; lineno++ {
		var line string
		line, err = src.NextLine()
		if errors.Is(err, io.EOF) {
			err = nil
			if !reachedEnd {
				trans.Append(Statement{
					LineNo:      lineno,
					Location:    loc,
					Suppress:    true,
					Diagnostics: []error{ErrMissingEnd},
				})
			}
			break
		}
		if err != nil {
			return
		}

		inst := ParseInstruction(line)
		stmt := inst.Translate(loc, &asm.Symbols)
		stmt.LineNo = lineno

		switch {
		case inst.Type == ST_END && reachedEnd:
			stmt.Diagnostics = append(stmt.Diagnostics, ErrMultipleEnd)
		case inst.Type == ST_END:
			reachedEnd = true
		case reachedEnd && inst.Type != ST_COMMENT:
			stmt.Diagnostics = append(stmt.Diagnostics, ErrStatementAfterEnd)
		}

		if asm.Verbose {
			log.Printf("asm: %d: %06d %v %v", lineno, loc, stmt.ContentsString(), stmt.Diagnostics)
		}

		trans.Append(stmt)

		loc = inst.LocationNextInstruction(loc)
	}

	asm.Translation = trans

	return
}

// Assemble runs both passes over the source.
func (asm *Assembler) Assemble(src Source) (trans *Translation, err error) {
	err = asm.PassI(src)
	if err != nil {
		return
	}

	return asm.PassII(src)
}

// Parse assembles all of the lines of an input stream.
func (asm *Assembler) Parse(input io.Reader) (trans *Translation, err error) {
	src, err := vcio.ReadLines(input)
	if err != nil {
		return
	}

	return asm.Assemble(src)
}
