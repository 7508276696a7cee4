package arrayview

import "fmt"

// View is a non-owning view over a caller-owned slice.
// The caller keeps the backing array alive and unmodified in length for the
// lifetime of the view.
type View[T any] struct {
	data []T
}

// New creates a view over data without copying it.
func New[T any](data []T) *View[T] {
	return &View[T]{data: data}
}

// Len returns the number of elements.
func (v *View[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns element i. It panics when i is outside [0, Len).
func (v *View[T]) At(i int) T {
	return v.data[i]
}

// Ref returns a pointer to element i. It panics when i is outside [0, Len).
func (v *View[T]) Ref(i int) *T {
	return &v.data[i]
}

// Get returns element i, or ErrOutOfRange.
func (v *View[T]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}

	return v.data[i], nil
}

// Set stores val at index i, or returns ErrOutOfRange.
func (v *View[T]) Set(i int, val T) error {
	if err := v.check(i); err != nil {
		return err
	}

	v.data[i] = val
	return nil
}

// check validates index i.
func (v *View[T]) check(i int) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, v.Len())
	}

	return nil
}
