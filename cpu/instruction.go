// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operand is a single operand field of a source line.
type Operand struct {
	Text    string // Operand as written.
	Value   int64  // Numeric value, if Numeric.
	Numeric bool   // Text is an optionally signed decimal integer.
}

// makeOperand parses the numeric value of an operand.
func makeOperand(text string) (op Operand) {
	op.Text = text
	op.Numeric = isNumber(text)
	if op.Numeric {
		// Values beyond int64 saturate, and so fail every range check.
		op.Value, _ = strconv.ParseInt(text, 10, 64)
	}
	return
}

// Register returns the register number, if the operand is one.
func (op Operand) Register() (reg int, ok bool) {
	if !op.Numeric || op.Value < 0 || op.Value >= REGISTER_COUNT {
		return
	}
	return int(op.Value), true
}

// isNumber returns true if the text is an optionally signed string of
// decimal digits.
func isNumber(text string) bool {
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		text = text[1:]
	}
	if len(text) == 0 {
		return false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Instruction is a parsed source line. It is not modified after parsing.
type Instruction struct {
	Line     string  // Original source text.
	Label    string  // Label, if the line does not start with whitespace.
	Mnemonic string  // Upper case operation mnemonic.
	Operand1 Operand // First operand.
	Operand2 Operand // Second operand.
	Opcode   Opcode
	Type     InstructionType

	Diagnostics []error // Format and lexical errors found while parsing.
}

// ParseInstruction parses a single source line.
func ParseInstruction(line string) (inst *Instruction) {
	inst = &Instruction{Line: line}

	text, _, _ := strings.Cut(line, ";")

	text, err := expandExpressions(text)
	if err != nil {
		inst.Diagnostics = append(inst.Diagnostics, err)
	}

	text = strings.ReplaceAll(text, ",", " ")
	words := strings.Fields(text)

	if len(words) == 0 {
		inst.Opcode = OC_COMM
		inst.Type = ST_COMMENT
		return
	}

	// A line starting with whitespace has no label.
	if text[0] != ' ' && text[0] != '\t' {
		inst.Label = words[0]
		words = words[1:]
	}

	if len(words) > 3 {
		inst.Diagnostics = append(inst.Diagnostics, ErrExtraOperands)
	}

	field := func(n int) string {
		if n < len(words) {
			return words[n]
		}
		return ""
	}

	inst.Mnemonic = strings.ToUpper(field(0))
	inst.Operand1 = makeOperand(field(1))
	inst.Operand2 = makeOperand(field(2))

	op, ok := LookupMnemonic(inst.Mnemonic)
	if !ok {
		inst.Opcode = OC_ERR
		inst.Type = ST_ERROR
		inst.Diagnostics = append(inst.Diagnostics, ErrInvalidOperation)
		return
	}

	inst.Opcode = op
	inst.Type = op.Type()

	return
}

// HasLabel returns true if the line defines a label.
func (inst *Instruction) HasLabel() bool {
	return len(inst.Label) != 0
}

// LocationNextInstruction returns the location of the instruction that
// follows this one.
func (inst *Instruction) LocationNextInstruction(loc int) int {
	switch inst.Opcode {
	case OC_ORG:
		return int(inst.Operand1.Value)
	case OC_DS:
		size := inst.Operand1.Value
		if size < 1 || size > STORAGE_MAX {
			return loc + 1
		}
		return loc + int(size)
	case OC_COMM, OC_END:
		return loc
	}

	return loc + 1
}

// validLabel returns true if the label starts with a letter, and fits
// within LABEL_MAX characters.
func validLabel(label string) bool {
	if len(label) == 0 || utf8.RuneCountInString(label) > LABEL_MAX {
		return false
	}
	first, _ := utf8.DecodeRuneInString(label)
	return unicode.IsLetter(first)
}

// Translate converts the instruction into a statement at the given
// location, resolving addresses from the symbol table.
func (inst *Instruction) Translate(loc int, symtab *SymbolTable) (stmt Statement) {
	contents := Contents{
		Opcode: inst.Opcode,
		Reg1:   -1,
		Reg2:   -1,
		Addr:   -1,
		Value:  -1,
	}

	diags := append([]error(nil), inst.Diagnostics...)
	report := func(err error, invalid Invalid) {
		if err != nil {
			diags = append(diags, err)
		}
		contents.Invalid |= invalid
	}

	if inst.HasLabel() && !validLabel(inst.Label) {
		report(ErrLabelInvalid, 0)
	}

	op1 := inst.Operand1
	op2 := inst.Operand2

	switch inst.Opcode {
	case OC_ERR:
		report(nil, INVALID_OPCODE)
	case OC_ADD, OC_SUB, OC_MULT, OC_DIV, OC_LOAD, OC_STORE,
		OC_BM, OC_BZ, OC_BP, OC_READ, OC_WRITE, OC_B:
		switch {
		case len(op2.Text) == 0:
			report(ErrMissingOperands, INVALID_ADDR)
		case unicode.IsDigit(rune(op2.Text[0])):
			report(ErrAddressDigit, INVALID_ADDR)
		}
		if utf8.RuneCountInString(op2.Text) > LABEL_MAX {
			report(ErrAddressLength, INVALID_ADDR)
		}

		// A missing operand 1 was reported as a missing operand 2.
		reg, ok := op1.Register()
		switch {
		case len(op1.Text) == 0:
			report(nil, INVALID_REG1)
		case !ok:
			report(ErrRegister1Invalid, INVALID_REG1)
		default:
			contents.Reg1 = reg
		}

		if contents.Invalid.Has(INVALID_ADDR) {
			break
		}

		addr, ok := symtab.LookupSymbol(op2.Text)
		switch {
		case !ok:
			report(ErrLabelNotFound, INVALID_ADDR)
		case addr == MULTIPLY_DEFINED_SYMBOL:
			report(ErrMultiplyDefined, INVALID_ADDR)
		case addr < 0 || addr > ADDRESS_MAX:
			report(ErrAddressRange, INVALID_ADDR)
		default:
			contents.Addr = addr
		}
	case OC_ADDR, OC_SUBR, OC_MULTR, OC_DIVR:
		reg2, ok := op2.Register()
		switch {
		case len(op2.Text) == 0:
			report(ErrMissingOperands, INVALID_REG2)
		case !ok:
			report(ErrRegister2Invalid, INVALID_REG2)
		default:
			contents.Reg2 = reg2
		}

		reg1, ok := op1.Register()
		switch {
		case len(op1.Text) == 0:
			report(nil, INVALID_REG1)
		case !ok:
			report(ErrRegister1Invalid, INVALID_REG1)
		default:
			contents.Reg1 = reg1
		}
	case OC_HALT:
		if len(op1.Text) != 0 || len(op2.Text) != 0 {
			report(ErrExtraOperands, 0)
		}
		contents.Reg1 = 0
		contents.Addr = 0
	case OC_DC:
		if len(op2.Text) != 0 {
			report(ErrExtraOperands, 0)
		}
		if !op1.Numeric || op1.Value < -WORD_MAX || op1.Value > WORD_MAX {
			report(ErrConstantInvalid, INVALID_VALUE)
		}
		contents.Value = op1.Value
	case OC_DS:
		if len(op2.Text) != 0 {
			report(ErrExtraOperands, 0)
		}
		if !op1.Numeric || op1.Value < 1 || op1.Value > STORAGE_MAX {
			report(ErrStorageInvalid, INVALID_VALUE)
		}
	case OC_ORG:
		if len(op2.Text) != 0 {
			report(ErrExtraOperands, 0)
		}
		if !op1.Numeric || op1.Value < 0 || op1.Value > ADDRESS_MAX {
			report(ErrOriginInvalid, 0)
		}
	case OC_END:
		if len(op1.Text) != 0 || len(op2.Text) != 0 {
			report(ErrExtraOperands, 0)
		}
	}

	stmt = Statement{
		Location:    loc,
		Contents:    contents,
		Line:        inst.Line,
		Suppress:    inst.Opcode == OC_END || inst.Opcode == OC_COMM,
		Diagnostics: diags,
	}

	return
}
