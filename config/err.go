package config

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrConfigConflict = errors.New(f("both program and sample are set"))
	ErrConfigRange    = errors.New(f("value out of range"))
)

// ErrConfigType is a configuration global with an unexpected type.
type ErrConfigType struct {
	Key  string
	Want string
	Got  string
}

func (err ErrConfigType) Error() string {
	return f("%v: expected %v, got %v", err.Key, err.Want, err.Got)
}

// ErrSampleUnknown is a sample name that is not shipped with bfvm.
type ErrSampleUnknown string

func (err ErrSampleUnknown) Error() string {
	return f("sample '%v' unknown", string(err))
}

// ErrConfig indicates the configuration file with an error.
type ErrConfig struct {
	Filename string
	Err      error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
