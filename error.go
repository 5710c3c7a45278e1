package esolang

import (
	"github.com/pkg/errors"
)

// Configuration Errors
var (
	ErrCodelSize    = newError("Codel size must be a positive integer")
	ErrStepLimit    = newError("Step limit must be a positive integer")
	ErrImageLoad    = newError("Image load")
	ErrEmptyProgram = newError("Program image is smaller than one codel")
	ErrConfig       = newError("Config")
)

// Program Errors
var (
	ErrProgramFile = newError("Program file not found")
)

// Trace Errors
var (
	ErrTraceEncode = newError("Trace encode")
	ErrTraceDecode = newError("Trace decode")
)

// Processor Errors
var (
	ErrCanceled = newError("Execution canceled")
)

func newError(message string) error {
	return errors.New(message)
}

func newErrorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

func wrapError(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
