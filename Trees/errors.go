package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by RankError.
	ErrOutOfRange = errors.New("rank out of range")
	// ErrExhausted is returned by Iterator.Next when there's nothing left.
	ErrExhausted = errors.New("iterator is exhausted")
)

// InvalidSliceError is the panic value of Build when the slice isn't strictly ascending.
// Prev and Next are the elements at Index-1 and Index.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v, %v", e.Index, e.Prev, e.Next)
}

// SizeOverflowError is the panic value of Build when Len elements don't fit in the size type,
// whose maximum is Max.
type SizeOverflowError struct {
	Len int
	Max uint64
}

func (e SizeOverflowError) Error() string {
	return fmt.Sprintf("%d elements exceed the maximum size %d", e.Len, e.Max)
}

// RankError is returned when asking for an iterator at rank K of a tree with Size elements,
// where K isn't in [0, Size].
type RankError struct {
	K, Size int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("rank %d not in [0, %d]", e.K, e.Size)
}

func (e *RankError) Unwrap() error {
	return ErrOutOfRange
}

// UnsupportedError reports an operation the receiver never supports.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return e.Op + " is unsupported"
}

func (e *UnsupportedError) Unwrap() error {
	return errors.ErrUnsupported
}
