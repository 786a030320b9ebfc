package lazy

import (
	"errors"

	"github.com/on-the-ground/lazy_ive_go/shared/buffer"
	"github.com/on-the-ground/lazy_ive_go/shared/optional"
	"github.com/on-the-ground/lazy_ive_go/transfinite"
)

var (
	ErrInvalidType           = transfinite.ErrInvalidType
	ErrTransfiniteArithmetic = transfinite.ErrTransfiniteArithmetic
	ErrIndexOutOfBounds      = buffer.ErrIndexOutOfBounds
	ErrEmptyOption           = optional.ErrEmptyOption

	// ErrUnknownOrdinality is returned when a position cannot be resolved,
	// typically after Where.
	ErrUnknownOrdinality = errors.New("lazy: unknown ordinality")
	// ErrInfiniteCalculation is returned when a non-finite sequence would
	// have to be realized completely.
	ErrInfiniteCalculation = errors.New("lazy: infinite calculation")
	// ErrInconsistentChunkAccess is returned on positional access into a
	// chunked sequence, whose production cannot be replayed.
	ErrInconsistentChunkAccess = errors.New("lazy: inconsistent chunk access")
	ErrInvalidRecurrence       = errors.New("lazy: invalid recurrence")
	// ErrConcurrentPull is the panic value of overlapping pulls on one generator.
	ErrConcurrentPull = errors.New("lazy: concurrent pull")
)
