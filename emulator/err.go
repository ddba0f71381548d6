package emulator

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Column int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d column %d %v", err.LineNo, err.Column, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
