package emulator

import (
	"fmt"

	"github.com/ezrec/vc8000/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo   int
	Location int
	Err      error
}

func (err *ErrRuntime) Error() string {
	// Locations are shown undecorated by the locale.
	loc := fmt.Sprintf("%06d", err.Location)
	if err.LineNo == 0 {
		return f("location %v %v", loc, err.Err)
	}
	return f("line %d location %v %v", err.LineNo, loc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
