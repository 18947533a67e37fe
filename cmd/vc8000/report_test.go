package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vc8000/cpu"
	"github.com/ezrec/vc8000/emulator"
)

func TestWriteSymbolTable(t *testing.T) {
	assert := assert.New(t)

	symtab := &cpu.SymbolTable{}
	symtab.AddSymbol("ZED", 7)
	symtab.AddSymbol("A", 4)
	symtab.AddSymbol("DUP", 1)
	symtab.AddSymbol("DUP", 2)

	out := &bytes.Buffer{}
	writeSymbolTable(out, symtab)

	expect := strings.Join([]string{
		"  Symbol #         Symbol       Location",
		"         0              A              4",
		"         1            DUP           -999",
		"         2            ZED              7",
		"",
	}, "\n")
	assert.Equal(expect, out.String())
}

func TestWriteTranslation(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; test",
		" ORG 100",
		" LOAD 0 UNDEF",
		"X DC -5",
		" END",
	}

	asm := &cpu.Assembler{}
	trans, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	out := &bytes.Buffer{}
	writeTranslation(out, trans)

	expect := strings.Join([]string{
		"Location   Contents       Original Statement",
		"                          ; test",
		"0                          ORG 100",
		"100        050??????       LOAD 0 UNDEF",
		"Error: label not found.",
		"101       -000000005      X DC -5",
		"                           END",
		"",
	}, "\n")
	assert.Equal(expect, out.String())
}

func doEmulation(program []string, t *testing.T) (ok bool, report string) {
	asm := &cpu.Assembler{}
	trans, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)

	emu := emulator.NewEmulator()
	emu.Translation = trans
	emu.Tape.Output = &bytes.Buffer{}

	out := &bytes.Buffer{}
	ok = writeEmulation(out, emu)
	report = out.String()

	return
}

func TestWriteEmulation(t *testing.T) {
	assert := assert.New(t)

	ok, report := doEmulation([]string{
		" ORG 100",
		" HALT 0",
		" END",
	}, t)
	assert.True(ok)
	assert.Equal(strings.Join([]string{
		"Results from emulating program:",
		"",
		"",
		"Program terminated successfully.",
		"End of emulation",
		"",
	}, "\n"), report)

	ok, report = doEmulation([]string{
		" ORG 100",
		" END",
	}, t)
	assert.False(ok)
	assert.Equal(strings.Join([]string{
		"Results from emulating program:",
		"",
		"Error: location 000100 missing halt statement",
		"End of emulation",
		"",
	}, "\n"), report)
}
