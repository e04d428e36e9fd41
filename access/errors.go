package access

import (
	"errors"
	"strconv"
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrCorrupt     = errors.New("corrupt packed buffer")
	ErrTooLarge    = errors.New("packed buffer exceeds 4GiB")
)

// IndexError reports an access past the live entries of a buffer.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return e.Op + ": index " + strconv.Itoa(e.Index) + " out of bounds for length " + strconv.Itoa(e.Len)
}

// Is makes errors.Is(err, ErrOutOfBounds) hold for every IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// CheckIndex returns an *IndexError unless 0 <= i < n.
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}
