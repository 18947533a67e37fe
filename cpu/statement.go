// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Invalid is the set of fields of a statement that could not be encoded.
type Invalid int

const (
	INVALID_OPCODE = Invalid(1 << iota)
	INVALID_REG1
	INVALID_REG2
	INVALID_ADDR
	INVALID_VALUE
)

// Has returns true if all of the fields in mask are invalid.
func (inv Invalid) Has(mask Invalid) bool {
	return inv&mask == mask
}

// Contents are the machine fields of a statement. Reg2 and Addr are -1
// when the opcode does not use them.
type Contents struct {
	Opcode  Opcode
	Reg1    int
	Reg2    int
	Addr    int
	Value   int64
	Invalid Invalid
}

// String returns the contents as a sequence of decimal digits, with '?'
// in place of each invalid field. Directives other than DC have no
// contents.
func (c Contents) String() string {
	var sb strings.Builder

	if c.Invalid.Has(INVALID_OPCODE) || c.Invalid.Has(INVALID_VALUE) {
		return strings.Repeat("?", CODE_WIDTH)
	}

	if c.Opcode == OC_DC {
		value := c.Value
		if value < 0 {
			sb.WriteByte('-')
			value = -value
		}
		fmt.Fprintf(&sb, "%0*d", CODE_WIDTH, value)
		return sb.String()
	}

	if !c.Opcode.Executable() {
		return ""
	}

	fmt.Fprintf(&sb, "%02d", int(c.Opcode))

	if c.Invalid.Has(INVALID_REG1) {
		sb.WriteString("?")
	} else {
		fmt.Fprintf(&sb, "%d", c.Reg1)
	}

	switch {
	case c.Invalid.Has(INVALID_REG2):
		sb.WriteString("?00000")
	case c.Reg2 >= 0:
		fmt.Fprintf(&sb, "%d00000", c.Reg2)
	}

	switch {
	case c.Invalid.Has(INVALID_ADDR):
		sb.WriteString("??????")
	case c.Addr >= 0:
		fmt.Fprintf(&sb, "%06d", c.Addr)
	}

	return sb.String()
}

// Code returns the numeric machine word. Empty contents are 0, and
// contents with any invalid field are -1.
func (c Contents) Code() Code {
	str := c.String()
	if len(str) == 0 {
		return 0
	}

	if strings.ContainsRune(str, '?') {
		return -1
	}

	value, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return -1
	}

	return Code(value)
}

// Statement is a single translated source line.
type Statement struct {
	LineNo      int      // Source line number, starting at 1.
	Location    int      // Memory location of the statement.
	Contents    Contents // Machine fields.
	Line        string   // Original source text.
	Suppress    bool     // Only the original text is meaningful.
	Diagnostics []error  // Errors found while translating this line.
}

// Code returns the word to load into memory for this statement.
func (st *Statement) Code() Code {
	if st.Suppress {
		return 0
	}
	return st.Contents.Code()
}

// ContentsString returns the encoded contents, or the empty string for
// suppressed statements.
func (st *Statement) ContentsString() string {
	if st.Suppress {
		return ""
	}
	return st.Contents.String()
}

// ErrorText returns the diagnostics, one per line.
func (st *Statement) ErrorText() string {
	var sb strings.Builder
	for _, err := range st.Diagnostics {
		if IsWarning(err) {
			sb.WriteString(f("Warning: %v.", err))
		} else {
			sb.WriteString(f("Error: %v.", err))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
