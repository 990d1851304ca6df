package errs

import "errors"

var (
	ErrNoMemory    = errors.New("alloc: no memory")
	ErrBadArgument = errors.New("alloc: bad argument")
)
