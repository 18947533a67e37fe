// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/vc8000/cpu"
	"github.com/ezrec/vc8000/emulator"
	"github.com/ezrec/vc8000/io"
	"github.com/ezrec/vc8000/translate"
)

const (
	EXIT_USAGE    = 1
	EXIT_ASSEMBLY = 2
	EXIT_RUNTIME  = 3
)

const separator = "__________________________________________________________"

func main() {
	var save bool
	var input string
	var output string
	var verbose bool
	var pause bool
	var lang string

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	flag.BoolVar(&save, "s", false, "Assemble only, do not execute")
	flag.StringVar(&input, "i", "-", "READ input")
	flag.StringVar(&output, "o", "-", "WRITE output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&pause, "p", interactive, "Pause between phases")
	flag.StringVar(&lang, "l", "", "Diagnostic language (BCP 47 tag)")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [flags] <source.asm>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(EXIT_USAGE)
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	if verbose {
		log.Printf("vc8000: language %v", translate.Language())
	}

	// Pacing reads from stdin, and so must not race a READ from stdin.
	stdin := bufio.NewReader(os.Stdin)
	interPass := func() {
		fmt.Printf("%v\n\n", separator)
		if !pause {
			return
		}
		fmt.Printf("Press Enter to continue...\n\n")
		stdin.ReadString('\n')
	}

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	src := io.NewFile(inf)

	asm := &cpu.Assembler{Verbose: verbose}
	err = asm.PassI(src)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	writeSymbolTable(os.Stdout, &asm.Symbols)
	interPass()

	trans, err := asm.PassII(src)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	writeTranslation(os.Stdout, trans)
	interPass()

	if trans.HasErrors() {
		fmt.Println("Errors were found in the translation. The program will not be emulated.")
		os.Exit(EXIT_ASSEMBLY)
	}

	if save {
		return
	}

	emu := emulator.NewEmulator()
	emu.Translation = trans
	emu.Verbose = verbose

	if input == "-" {
		emu.Tape.SetInput(stdin)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.SetInput(inf)
		emu.Tape.Prompt = ""
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if !writeEmulation(os.Stdout, emu) {
		os.Exit(EXIT_RUNTIME)
	}
}
