package io

import (
	"errors"

	"github.com/ezrec/vc8000/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelEmpty = errors.New(f("channel empty"))
	ErrNotNumber    = errors.New(f("not a number"))
)
