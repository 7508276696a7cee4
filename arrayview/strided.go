package arrayview

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Strided is a non-owning view over count elements of type T laid out in a
// byte buffer every stride bytes, such as one attribute of an interleaved
// vertex buffer. T must not hold pointers; NewStrided rejects such types.
type Strided[T any] struct {
	buf    []byte
	count  int
	stride int
}

// NewStrided creates a view of count elements starting at buf[0], one every
// stride bytes. The buffer must hold (count-1)*stride plus the element size.
func NewStrided[T any](buf []byte, count, stride int) (*Strided[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))

	if !isPlainData(reflect.TypeOf(&zero).Elem()) {
		return nil, fmt.Errorf("%w: %T", ErrElemType, zero)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrShortBuffer, count)
	}
	if stride < size {
		return nil, fmt.Errorf("%w: stride %d, element size %d", ErrStride, stride, size)
	}
	if count > 0 {
		if stride > 0 && count-1 > (math.MaxInt-size)/stride {
			return nil, fmt.Errorf("%w: %d elements at stride %d overflow", ErrShortBuffer, count, stride)
		}
		need := (count-1)*stride + size
		if len(buf) < need {
			return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, need, len(buf))
		}
	}

	return &Strided[T]{buf: buf, count: count, stride: stride}, nil
}

// Len returns the number of elements.
func (s *Strided[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.count
}

// Stride returns the distance between elements in bytes.
func (s *Strided[T]) Stride() int {
	if s == nil {
		return 0
	}

	return s.stride
}

// At returns the element at byte offset i*stride. It panics when i is
// outside [0, Len).
func (s *Strided[T]) At(i int) T {
	if uint(i) >= uint(s.count) {
		panic(fmt.Sprintf("arrayview: index %d out of range [0,%d)", i, s.count))
	}

	// Elements may be unaligned inside interleaved buffers.
	var out T
	size := int(unsafe.Sizeof(out))
	off := i * s.stride
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), size), s.buf[off:off+size])
	return out
}

// Get returns element i, or ErrOutOfRange.
func (s *Strided[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, s.Len())
	}

	return s.At(i), nil
}

// isPlainData reports whether values of t hold no pointers and can be read from raw bytes.
func isPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlainData(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
