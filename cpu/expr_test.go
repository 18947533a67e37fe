package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParenEval(t *testing.T) {
	table := [](struct {
		expr  string
		value int64
		ok    bool
	}){
		{"1", 1, true},
		{"10*10", 100, true},
		{"PROGRAM_START + 5", 105, true},
		{"MEMORY_SIZE - 1", 999_999, true},
		{"WORD_MAX", 999_999_999, true},
		{"-REGISTER_COUNT", -10, true},
		{"7 // 2", 3, true},
		{"1 +", 0, false},
		{"\"text\"", 0, false},
		{"UNKNOWN", 0, false},
		{"1 << 70", 0, false},
	}

	for _, entry := range table {
		value, err := parenEval(entry.expr)
		if entry.ok {
			assert.NoError(t, err, entry.expr)
			assert.Equal(t, entry.value, value, entry.expr)
		} else {
			assert.ErrorIs(t, err, ErrExpressionInvalid, entry.expr)
			assert.Equal(t, ErrParseExpression(entry.expr), err, entry.expr)
		}
	}
}

func TestExpandExpressions(t *testing.T) {
	assert := assert.New(t)

	out, err := expandExpressions(" DS $(10*10)")
	assert.NoError(err)
	assert.Equal(" DS 100", out)

	out, err = expandExpressions(" ADD $(1+1),$(PROGRAM_START)")
	assert.NoError(err)
	assert.Equal(" ADD 2,100", out)

	out, err = expandExpressions(" DC $(1 +)")
	assert.ErrorIs(err, ErrExpressionInvalid)
	assert.Equal(" DC $(1 +)", out)

	out, err = expandExpressions(" no expressions")
	assert.NoError(err)
	assert.Equal(" no expressions", out)
}

func TestExpressionStatements(t *testing.T) {
	assert := assert.New(t)

	inst := ParseInstruction(" DS $(10*10)")
	assert.Equal(OC_DS, inst.Opcode)
	assert.Equal(105, inst.LocationNextInstruction(5))

	inst = ParseInstruction("X DC $(WORD_MAX)")
	assert.Equal("X", inst.Label)
	stmt := inst.Translate(0, &SymbolTable{})
	assert.Nil(stmt.Diagnostics)
	assert.Equal("999999999", stmt.ContentsString())

	inst = ParseInstruction(" DC $(1 +)")
	stmt = inst.Translate(0, &SymbolTable{})
	assert.ErrorIs(stmt.Diagnostics[0], ErrExpressionInvalid)
	assert.Equal(Code(-1), stmt.Code())
}
