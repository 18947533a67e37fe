package cpu

import (
	"iter"
)

// Translation is the ordered list of translated statements of a program.
type Translation struct {
	Statements []Statement
}

// Append adds a statement to the end of the translation.
func (trans *Translation) Append(stmt Statement) {
	trans.Statements = append(trans.Statements, stmt)
}

// Len returns the number of statements.
func (trans *Translation) Len() int {
	return len(trans.Statements)
}

// Debug returns the executable statement at a location, or nil.
func (trans *Translation) Debug(loc int) (stmt *Statement) {
	for n := range trans.Statements {
		st := &trans.Statements[n]
		if st.Location == loc && st.Code() != 0 {
			stmt = st
		}
	}

	return
}

// Codes iterates over the location and word of every statement with
// contents to load into memory.
func (trans *Translation) Codes() iter.Seq2[int, Code] {
	return func(yield func(loc int, code Code) bool) {
		for n := range trans.Statements {
			st := &trans.Statements[n]
			code := st.Code()
			if code == 0 {
				continue
			}
			if !yield(st.Location, code) {
				return
			}
		}
	}
}

// Errors iterates over every diagnostic in the translation.
func (trans *Translation) Errors() iter.Seq[error] {
	return func(yield func(err error) bool) {
		for _, st := range trans.Statements {
			for _, err := range st.Diagnostics {
				if !yield(ErrSyntax{LineNo: st.LineNo, Line: st.Line, Err: err}) {
					return
				}
			}
		}
	}
}

// HasErrors returns true if any statement has a diagnostic that is not a
// warning.
func (trans *Translation) HasErrors() bool {
	for err := range trans.Errors() {
		if !IsWarning(err) {
			return true
		}
	}
	return false
}
