package packed

import "errors"

var (
	// ErrArity is returned when decoding a fixed-arity container from input
	// holding a different number of strings.
	ErrArity = errors.New("packed: wrong number of strings")

	// ErrConcurrentModification is the panic value raised when a Vec is
	// mutated while one of its iterators is running.
	ErrConcurrentModification = errors.New("packed: vec mutated during iteration")
)
