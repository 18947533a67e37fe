package cpu

import (
	"errors"

	"github.com/ezrec/vc8000/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted              = errors.New(f("halted"))
	ErrLocationOutOfBounds = errors.New(f("location out of bounds"))
	ErrMissingHalt         = errors.New(f("missing halt statement"))
	ErrBadInstruction      = errors.New(f("bad instruction reached"))
	ErrDivisionByZero      = errors.New(f("division by zero"))
	ErrInputInvalid        = errors.New(f("input was not an integer between -999,999,999 and 999,999,999"))
	ErrChannelInvalid      = errors.New(f("channel invalid"))

	// Assembler errors
	ErrExtraOperands      = errors.New(f("extra operands"))
	ErrInvalidOperation   = errors.New(f("invalid operation"))
	ErrMissingOperands    = errors.New(f("missing operands"))
	ErrAddressDigit       = errors.New(f("operand 2 is a label and cannot begin with a digit"))
	ErrAddressLength      = errors.New(f("operand 2 is too long, labels are a maximum of 10 characters"))
	ErrAddressRange       = errors.New(f("operand 2 resolves outside of memory"))
	ErrRegister1Invalid   = errors.New(f("operand 1 must be a register number between 0 and 9"))
	ErrRegister2Invalid   = errors.New(f("operand 2 must be a register number between 0 and 9"))
	ErrLabelNotFound      = errors.New(f("label not found"))
	ErrMultiplyDefined    = errors.New(f("multiply defined symbol"))
	ErrLabelInvalid       = errors.New(f("labels must start with a letter and be a maximum of 10 characters"))
	ErrConstantInvalid    = errors.New(f("operand 1 must be a value between -999,999,999 and 999,999,999"))
	ErrStorageInvalid     = errors.New(f("operand 1 must be a value between 1 and 999,999"))
	ErrOriginInvalid      = errors.New(f("operand 1 must be a location between 0 and 999,999"))
	ErrMissingEnd         = errors.New(f("missing end statement"))
	ErrMultipleEnd        = errors.New(f("multiple end statements"))
	ErrStatementAfterEnd  = errors.New(f("additional statement following end statement"))
	ErrExpressionInvalid  = errors.New(f("invalid expression"))
	ErrSourceUnrewindable = errors.New(f("source cannot be rewound"))
)

// warnings leave the contents of their statement intact.
var warnings = []error{
	ErrExtraOperands,
	ErrLabelInvalid,
	ErrOriginInvalid,
}

// IsWarning returns true if the diagnostic does not prevent the program
// from being run.
func IsWarning(err error) bool {
	for _, warning := range warnings {
		if errors.Is(err, warning) {
			return true
		}
	}
	return false
}

// ErrSyntax is an assembly diagnostic attached to a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseExpression is returned when a $(...) expression does not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrExpressionInvalid
}

// ErrOpcode is returned when a word cannot be executed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Code(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrBadInstruction {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}
