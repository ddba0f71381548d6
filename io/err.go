package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelMissing = errors.New(f("channel has no output"))
)
