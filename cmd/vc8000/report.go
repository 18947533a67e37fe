package main

import (
	"fmt"
	"io"

	"github.com/ezrec/vc8000/cpu"
	"github.com/ezrec/vc8000/emulator"
)

// writeSymbolTable lists the symbols in name order.
func writeSymbolTable(w io.Writer, symtab *cpu.SymbolTable) {
	fmt.Fprintf(w, "%10s%15s%15s\n", "Symbol #", "Symbol", "Location")

	index := 0
	for name, loc := range symtab.Symbols() {
		fmt.Fprintf(w, "%10d%15s%15d\n", index, name, loc)
		index++
	}
}

// writeStatement lists a single statement, followed by its errors.
func writeStatement(w io.Writer, stmt *cpu.Statement) {
	if stmt.Suppress {
		fmt.Fprintf(w, "%26s%s\n", "", stmt.Line)
	} else {
		contents := stmt.ContentsString()
		if len(contents) > 0 && contents[0] != '-' {
			contents = " " + contents
		}
		fmt.Fprintf(w, "%-10d%-16s%s\n", stmt.Location, contents, stmt.Line)
	}

	io.WriteString(w, stmt.ErrorText())
}

// writeTranslation lists every statement of the translation.
func writeTranslation(w io.Writer, trans *cpu.Translation) {
	fmt.Fprintf(w, "%-11s%-15s%s\n", "Location", "Contents", "Original Statement")

	for n := range trans.Statements {
		writeStatement(w, &trans.Statements[n])
	}
}

// writeEmulation runs the emulator, and reports how the run ended.
func writeEmulation(w io.Writer, emu *emulator.Emulator) (ok bool) {
	fmt.Fprintln(w, "Results from emulating program:")
	fmt.Fprintln(w)

	ok, err := emu.Run()
	if ok {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Program terminated successfully.")
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	fmt.Fprintln(w, "End of emulation")

	return
}
