package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}

	_, ok := st.LookupSymbol("X")
	assert.False(ok)

	st.AddSymbol("X", 1)
	st.AddSymbol("Y", 2)

	loc, ok := st.LookupSymbol("X")
	assert.True(ok)
	assert.Equal(1, loc)

	// Redefinition loses the first location.
	st.AddSymbol("X", 3)
	loc, ok = st.LookupSymbol("X")
	assert.True(ok)
	assert.Equal(MULTIPLY_DEFINED_SYMBOL, loc)

	st.AddSymbol("X", 4)
	loc, _ = st.LookupSymbol("X")
	assert.Equal(MULTIPLY_DEFINED_SYMBOL, loc)

	// Lookups are exact.
	_, ok = st.LookupSymbol("x")
	assert.False(ok)

	assert.Equal(2, st.Len())
	assert.Equal(map[string]int{"X": MULTIPLY_DEFINED_SYMBOL, "Y": 2}, maps.Collect(st.Symbols()))

	st.Reset()
	assert.Equal(0, st.Len())
}

func TestSymbolTableOrder(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}
	st.AddSymbol("ZETA", 3)
	st.AddSymbol("ALPHA", 1)
	st.AddSymbol("MID", 2)

	var names []string
	for name := range st.Symbols() {
		names = append(names, name)
	}

	assert.Equal([]string{"ALPHA", "MID", "ZETA"}, names)
}
