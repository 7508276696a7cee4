package arrayview

import "errors"

var (
	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrStride indicates a stride smaller than the element size.
	ErrStride = errors.New("stride smaller than element size")

	// ErrElemType indicates an element type that holds pointers.
	ErrElemType = errors.New("element type holds pointers")

	// ErrShortBuffer indicates a buffer too small for count elements at the given stride.
	ErrShortBuffer = errors.New("buffer too short")
)
