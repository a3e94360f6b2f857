package reflist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every IndexError.
	ErrIndexOutOfRange = errors.New("reflist: index out of range")
	// ErrArgumentOutOfRange is wrapped by every ArgumentError.
	ErrArgumentOutOfRange = errors.New("reflist: argument out of range")
)

// IndexError is the panic value of an access outside [0, Len()).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("reflist: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ArgumentError is the panic value of Swap when one of its arguments is
// outside [0, Len()).
type ArgumentError struct {
	Name  string
	Value int
	Len   int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("reflist: argument %s=%d out of range [0:%d]", e.Name, e.Value, e.Len)
}

func (e *ArgumentError) Unwrap() error {
	return ErrArgumentOutOfRange
}
