// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"iter"
	"maps"
	"slices"
)

// MULTIPLY_DEFINED_SYMBOL replaces the location of a symbol that was
// defined more than once.
const MULTIPLY_DEFINED_SYMBOL = -999

// SymbolTable maps labels to memory locations.
type SymbolTable struct {
	symbol map[string]int
}

// AddSymbol records the location of a label. A second definition of the
// same label replaces its location with MULTIPLY_DEFINED_SYMBOL.
func (st *SymbolTable) AddSymbol(name string, loc int) {
	if st.symbol == nil {
		st.symbol = make(map[string]int, 16)
	}

	_, ok := st.symbol[name]
	if ok {
		st.symbol[name] = MULTIPLY_DEFINED_SYMBOL
		return
	}

	st.symbol[name] = loc
}

// LookupSymbol returns the location of a label.
func (st *SymbolTable) LookupSymbol(name string) (loc int, ok bool) {
	loc, ok = st.symbol[name]
	return
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbol)
}

// Reset removes all symbols.
func (st *SymbolTable) Reset() {
	clear(st.symbol)
}

// Symbols iterates over the symbols in name order.
func (st *SymbolTable) Symbols() iter.Seq2[string, int] {
	return func(yield func(name string, loc int) bool) {
		for _, name := range slices.Sorted(maps.Keys(st.symbol)) {
			if !yield(name, st.symbol[name]) {
				return
			}
		}
	}
}
