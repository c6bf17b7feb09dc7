package vector

import (
	"errors"
	"fmt"
)

// Contract violations panic with an error wrapping one of these values, so a
// caller that recovers can classify the failure with errors.Is.
var (
	// ErrInvalidArgument is raised for a non-positive size or capacity,
	// a nil callback or a nil search key.
	ErrInvalidArgument = errors.New("vector: invalid argument")
	// ErrOutOfRange is raised when a position is outside the range the
	// operation accepts.
	ErrOutOfRange = errors.New("vector: position out of range")
	// ErrElementSize is raised when an element slice is not exactly
	// ElemSize bytes long.
	ErrElementSize = errors.New("vector: element size mismatch")
	// ErrDisposed is raised on any use after Dispose.
	ErrDisposed = errors.New("vector: use after Dispose()")
)

func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
