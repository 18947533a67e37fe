package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeType(t *testing.T) {
	assert := assert.New(t)

	for op := OC_ADD; op <= OC_HALT; op++ {
		assert.Equal(ST_MACHINE_LANGUAGE, op.Type(), op.String())
		assert.True(op.Executable(), op.String())
	}

	assert.Equal(ST_ASSEMBLER_INSTR, OC_ORG.Type())
	assert.Equal(ST_ASSEMBLER_INSTR, OC_DC.Type())
	assert.Equal(ST_ASSEMBLER_INSTR, OC_DS.Type())
	assert.Equal(ST_END, OC_END.Type())
	assert.Equal(ST_COMMENT, OC_COMM.Type())
	assert.Equal(ST_ERROR, OC_ERR.Type())
	assert.Equal(ST_ERROR, Opcode(99).Type())
	assert.False(OC_DC.Executable())
}

func TestOpcodeWire(t *testing.T) {
	assert := assert.New(t)

	// The wire values are fixed, whatever the declaration order.
	table := map[string]int{
		"ADD": 1, "SUB": 2, "MULT": 3, "DIV": 4, "LOAD": 5, "STORE": 6,
		"ADDR": 7, "SUBR": 8, "MULTR": 9, "DIVR": 10, "READ": 11, "WRITE": 12,
		"B": 13, "BM": 14, "BZ": 15, "BP": 16, "HALT": 17,
		"ORG": 18, "DC": 19, "DS": 20, "END": 21,
	}

	for mnemonic, value := range table {
		op, ok := LookupMnemonic(mnemonic)
		assert.True(ok, mnemonic)
		assert.Equal(value, int(op), mnemonic)
		assert.Equal(mnemonic, op.String())
	}

	_, ok := LookupMnemonic("COMM")
	assert.False(ok)
	_, ok = LookupMnemonic("add")
	assert.False(ok)
}

func TestCode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		word int64
	}){
		{"add", MakeCodeRegAddr(OC_ADD, 3, 5), 13000005},
		{"load", MakeCodeRegAddr(OC_LOAD, 9, 999999), 59999999},
		{"bp", MakeCodeRegAddr(OC_BP, 0, 100), 160000100},
		{"addr", MakeCodeRegReg(OC_ADDR, 1, 2), 71200000},
		{"divr", MakeCodeRegReg(OC_DIVR, 9, 0), 109000000},
		{"halt", MakeCodeHalt(), 170000000},
	}

	for _, entry := range table {
		assert.Equal(entry.word, int64(entry.code), entry.name)
	}

	reg, addr := Code(13000005).RegAddrDecode()
	assert.Equal(OC_ADD, Code(13000005).Opcode())
	assert.Equal(3, reg)
	assert.Equal(5, addr)

	reg1, reg2 := Code(71200000).RegRegDecode()
	assert.Equal(OC_ADDR, Code(71200000).Opcode())
	assert.Equal(1, reg1)
	assert.Equal(2, reg2)

	assert.Equal("ADD 3,000005", Code(13000005).String())
	assert.Equal("ADDR 1,2", Code(71200000).String())
	assert.Equal("HALT", MakeCodeHalt().String())
	assert.Equal("-1", Code(-1).String())
}

func FuzzCode(f *testing.F) {
	f.Add(uint8(1), uint8(0), uint8(0), uint32(0))
	f.Add(uint8(7), uint8(9), uint8(9), uint32(999999))
	f.Add(uint8(17), uint8(5), uint8(3), uint32(123456))

	f.Fuzz(func(t *testing.T, op_in uint8, reg1_in uint8, reg2_in uint8, addr_in uint32) {
		assert := assert.New(t)

		op := OC_ADD + Opcode(int(op_in)%int(OC_HALT))
		reg1 := int(reg1_in) % REGISTER_COUNT
		reg2 := int(reg2_in) % REGISTER_COUNT
		addr := int(addr_in) % (ADDRESS_MAX + 1)

		switch op.Format() {
		case FMT_REG_REG:
			code := MakeCodeRegReg(op, reg1, reg2)
			assert.Equal(op, code.Opcode())
			got1, got2 := code.RegRegDecode()
			assert.Equal(reg1, got1)
			assert.Equal(reg2, got2)

			contents := Contents{Opcode: op, Reg1: reg1, Reg2: reg2, Addr: -1}
			assert.Equal(code, contents.Code())
		default:
			code := MakeCodeRegAddr(op, reg1, addr)
			assert.Equal(op, code.Opcode())
			got1, got_addr := code.RegAddrDecode()
			assert.Equal(reg1, got1)
			assert.Equal(addr, got_addr)

			contents := Contents{Opcode: op, Reg1: reg1, Reg2: -1, Addr: addr}
			assert.Equal(code, contents.Code())
		}

		assert.LessOrEqual(int64(MakeCodeRegAddr(op, reg1, addr)), int64(WORD_MAX))
	})
}
