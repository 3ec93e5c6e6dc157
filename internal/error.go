package internal

import (
	"errors"
)

var (
	ErrNegativeLength = errors.New("length must not be negative")
	ErrNegativeOffset = errors.New("offset must not be negative")
	ErrNotExist       = errors.New("does not exist")
	ErrNotRegularFile = errors.New("is not a file")
	ErrUnknownAdvice  = errors.New("unknown advice")
	ErrUnknownShell   = errors.New("unknown shell")
	ErrUnsupported    = errors.New("fadvise not supported on this platform")
)
