package transfinite

import "errors"

var (
	// ErrInvalidType indicates a transfinite value was read as a finite count.
	ErrInvalidType = errors.New("transfinite: invalid type")
	// ErrTransfiniteArithmetic indicates an ill-defined operation such as subtraction underflow.
	ErrTransfiniteArithmetic = errors.New("transfinite: ill-defined arithmetic")
	// ErrMalformedOrdinal indicates text that is not an ordinal in Cantor normal form.
	ErrMalformedOrdinal = errors.New("transfinite: malformed ordinal")
)
