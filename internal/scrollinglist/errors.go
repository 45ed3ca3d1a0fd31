package scrollinglist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an operation names an index outside
// the current item sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError carries the failing operation and the sequence length at the
// time of the call.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
