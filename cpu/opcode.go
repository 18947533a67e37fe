// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Machine geometry.
const (
	MEMORY_SIZE    = 1_000_000     // Words of memory.
	REGISTER_COUNT = 10            // General purpose registers.
	PROGRAM_START  = 100           // Location of the first executed instruction.
	WORD_MAX       = 999_999_999   // Largest magnitude of a word.
	WORD_MODULUS   = 1_000_000_000 // Overflow wraps modulo this value.
	ADDRESS_MAX    = 999_999       // Largest encodable address.
	STORAGE_MAX    = 999_999       // Largest DS reservation.
	LABEL_MAX      = 10            // Longest label, in characters.
)

// Encoding field widths and scales.
const (
	CODE_OPCODE_SCALE = 10_000_000
	CODE_REG1_SCALE   = 1_000_000
	CODE_REG2_SCALE   = 100_000
	CODE_ADDR_SCALE   = 1_000_000
	CODE_WIDTH        = 9
)

// Opcode is a symbolic operation code.
//
// The numeric value of each opcode is its wire encoding, and is
// declared explicitly rather than by position.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OC_ERR   = Opcode(0)  // ERR
	OC_ADD   = Opcode(1)  // ADD
	OC_SUB   = Opcode(2)  // SUB
	OC_MULT  = Opcode(3)  // MULT
	OC_DIV   = Opcode(4)  // DIV
	OC_LOAD  = Opcode(5)  // LOAD
	OC_STORE = Opcode(6)  // STORE
	OC_ADDR  = Opcode(7)  // ADDR
	OC_SUBR  = Opcode(8)  // SUBR
	OC_MULTR = Opcode(9)  // MULTR
	OC_DIVR  = Opcode(10) // DIVR
	OC_READ  = Opcode(11) // READ
	OC_WRITE = Opcode(12) // WRITE
	OC_B     = Opcode(13) // B
	OC_BM    = Opcode(14) // BM
	OC_BZ    = Opcode(15) // BZ
	OC_BP    = Opcode(16) // BP
	OC_HALT  = Opcode(17) // HALT
	OC_ORG   = Opcode(18) // ORG
	OC_DC    = Opcode(19) // DC
	OC_DS    = Opcode(20) // DS
	OC_END   = Opcode(21) // END
	OC_COMM  = Opcode(22) // COMM
)

// InstructionType is the classification of a source line.
type InstructionType int

//go:generate go tool stringer -linecomment -type=InstructionType
const (
	ST_MACHINE_LANGUAGE = InstructionType(0) // machine
	ST_ASSEMBLER_INSTR  = InstructionType(1) // assembler
	ST_COMMENT          = InstructionType(2) // comment
	ST_END              = InstructionType(3) // end
	ST_ERROR            = InstructionType(4) // error
)

// OperandFormat is the operand family of an opcode.
type OperandFormat int

//go:generate go tool stringer -linecomment -type=OperandFormat
const (
	FMT_NONE     = OperandFormat(0) // none
	FMT_REG_ADDR = OperandFormat(1) // reg,addr
	FMT_REG_REG  = OperandFormat(2) // reg,reg
	FMT_VALUE    = OperandFormat(3) // value
)

// opcodeInfo describes the assembler-visible properties of an opcode.
type opcodeInfo struct {
	Type   InstructionType
	Format OperandFormat
}

var opcodeTable = map[Opcode]opcodeInfo{
	OC_ERR:   {ST_ERROR, FMT_NONE},
	OC_ADD:   {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_SUB:   {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_MULT:  {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_DIV:   {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_LOAD:  {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_STORE: {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_ADDR:  {ST_MACHINE_LANGUAGE, FMT_REG_REG},
	OC_SUBR:  {ST_MACHINE_LANGUAGE, FMT_REG_REG},
	OC_MULTR: {ST_MACHINE_LANGUAGE, FMT_REG_REG},
	OC_DIVR:  {ST_MACHINE_LANGUAGE, FMT_REG_REG},
	OC_READ:  {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_WRITE: {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_B:     {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_BM:    {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_BZ:    {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_BP:    {ST_MACHINE_LANGUAGE, FMT_REG_ADDR},
	OC_HALT:  {ST_MACHINE_LANGUAGE, FMT_NONE},
	OC_ORG:   {ST_ASSEMBLER_INSTR, FMT_VALUE},
	OC_DC:    {ST_ASSEMBLER_INSTR, FMT_VALUE},
	OC_DS:    {ST_ASSEMBLER_INSTR, FMT_VALUE},
	OC_END:   {ST_END, FMT_NONE},
	OC_COMM:  {ST_COMMENT, FMT_NONE},
}

// mnemonicMap maps upper case mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{
	"ADD":   OC_ADD,
	"SUB":   OC_SUB,
	"MULT":  OC_MULT,
	"DIV":   OC_DIV,
	"LOAD":  OC_LOAD,
	"STORE": OC_STORE,
	"ADDR":  OC_ADDR,
	"SUBR":  OC_SUBR,
	"MULTR": OC_MULTR,
	"DIVR":  OC_DIVR,
	"READ":  OC_READ,
	"WRITE": OC_WRITE,
	"B":     OC_B,
	"BM":    OC_BM,
	"BZ":    OC_BZ,
	"BP":    OC_BP,
	"HALT":  OC_HALT,
	"ORG":   OC_ORG,
	"DC":    OC_DC,
	"DS":    OC_DS,
	"END":   OC_END,
}

// LookupMnemonic returns the opcode for an upper case mnemonic.
func LookupMnemonic(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[mnemonic]
	return
}

// Type returns the classification of the opcode.
func (op Opcode) Type() InstructionType {
	info, ok := opcodeTable[op]
	if !ok {
		return ST_ERROR
	}
	return info.Type
}

// Format returns the operand family of the opcode.
func (op Opcode) Format() OperandFormat {
	return opcodeTable[op].Format
}

// Executable returns true if the opcode runs on the machine.
func (op Opcode) Executable() bool {
	return op.Type() == ST_MACHINE_LANGUAGE
}

// Code is a single decimal machine word as stored in memory.
type Code int64

// MakeCodeRegAddr encodes a register and address instruction.
func MakeCodeRegAddr(op Opcode, reg int, addr int) Code {
	return Code(int64(op)*CODE_OPCODE_SCALE + int64(reg)*CODE_REG1_SCALE + int64(addr))
}

// MakeCodeRegReg encodes a register to register instruction.
func MakeCodeRegReg(op Opcode, reg1 int, reg2 int) Code {
	return Code(int64(op)*CODE_OPCODE_SCALE + int64(reg1)*CODE_REG1_SCALE + int64(reg2)*CODE_REG2_SCALE)
}

// MakeCodeHalt encodes the halt instruction.
func MakeCodeHalt() Code {
	return MakeCodeRegAddr(OC_HALT, 0, 0)
}

// Opcode returns the leading two digits of the word.
func (code Code) Opcode() Opcode {
	return Opcode(code / CODE_OPCODE_SCALE)
}

// RegAddrDecode decodes the register and address fields.
func (code Code) RegAddrDecode() (reg int, addr int) {
	reg = int((code / CODE_REG1_SCALE) % 10)
	addr = int(code % CODE_ADDR_SCALE)
	return
}

// RegRegDecode decodes both register fields.
func (code Code) RegRegDecode() (reg1 int, reg2 int) {
	reg1 = int((code / CODE_REG1_SCALE) % 10)
	reg2 = int((code / CODE_REG2_SCALE) % 10)
	return
}

// String returns the assembly language representation of this word.
func (code Code) String() (out string) {
	if code < 0 {
		return fmt.Sprintf("%d", int64(code))
	}

	op := code.Opcode()
	switch op.Format() {
	case FMT_REG_ADDR:
		reg, addr := code.RegAddrDecode()
		out = fmt.Sprintf("%v %d,%06d", op, reg, addr)
	case FMT_REG_REG:
		reg1, reg2 := code.RegRegDecode()
		out = fmt.Sprintf("%v %d,%d", op, reg1, reg2)
	default:
		out = op.String()
	}

	return
}
