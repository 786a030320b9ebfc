package transfinite

import (
	"cmp"
	"fmt"
	"strconv"
)

type magnitude uint8

const (
	finiteMagnitude magnitude = iota
	countableMagnitude
	continuumMagnitude
)

// Cardinal is the magnitude of a sequence: a finite count, countable
// infinity (ℵ₀) or the continuum (𝔠). The zero value is the finite 0.
type Cardinal struct {
	mag   magnitude
	count uint64
}

// CardinalOf returns the finite cardinal n.
func CardinalOf(n uint64) Cardinal {
	return Cardinal{count: n}
}

// Countable returns ℵ₀.
func Countable() Cardinal {
	return Cardinal{mag: countableMagnitude}
}

// Continuum returns 𝔠.
func Continuum() Cardinal {
	return Cardinal{mag: continuumMagnitude}
}

// CardinalityOf returns the size of a sequence whose ordinality is o.
func CardinalityOf(o Ordinal) Cardinal {
	if o.IsTransfinite() {
		return Countable()
	}
	return CardinalOf(o.count)
}

func (c Cardinal) IsFinite() bool {
	return c.mag == finiteMagnitude
}

func (c Cardinal) IsTransfinite() bool {
	return c.mag != finiteMagnitude
}

func (c Cardinal) FiniteCount() (uint64, error) {
	if c.IsTransfinite() {
		return 0, fmt.Errorf("%w: %s is not finite", ErrInvalidType, c)
	}
	return c.count, nil
}

func (c Cardinal) Compare(other Cardinal) int {
	if c.mag != other.mag {
		return cmp.Compare(c.mag, other.mag)
	}
	return cmp.Compare(c.count, other.count)
}

func (c Cardinal) Equal(other Cardinal) bool {
	return c.Compare(other) == 0
}

func (c Cardinal) Less(other Cardinal) bool {
	return c.Compare(other) < 0
}

// larger returns the greater of c and other; transfinite operands absorb.
func (c Cardinal) larger(other Cardinal) Cardinal {
	if c.Compare(other) >= 0 {
		return c
	}
	return other
}

// Add returns c+other. With a transfinite operand the larger one wins.
func (c Cardinal) Add(other Cardinal) Cardinal {
	if c.IsFinite() && other.IsFinite() {
		return CardinalOf(c.count + other.count)
	}
	return c.larger(other)
}

// Multiply returns c·other. With a transfinite operand the larger one wins.
func (c Cardinal) Multiply(other Cardinal) Cardinal {
	if c.IsFinite() && other.IsFinite() {
		return CardinalOf(c.count * other.count)
	}
	return c.larger(other)
}

// Subtract removes other from c. A transfinite c is unchanged by any
// strictly smaller other and cancels to 0 against itself.
func (c Cardinal) Subtract(other Cardinal) (Cardinal, error) {
	switch {
	case c.IsFinite() && other.IsFinite():
		if c.count < other.count {
			return Cardinal{}, fmt.Errorf("%w: %d - %d", ErrTransfiniteArithmetic, c.count, other.count)
		}
		return CardinalOf(c.count - other.count), nil
	case c.Compare(other) > 0:
		return c, nil
	case c.Equal(other):
		return Cardinal{}, nil
	}
	return Cardinal{}, fmt.Errorf("%w: %s - %s", ErrTransfiniteArithmetic, c, other)
}

func (c Cardinal) String() string {
	switch c.mag {
	case finiteMagnitude:
		return strconv.FormatUint(c.count, 10)
	case countableMagnitude:
		return "ℵ₀"
	case continuumMagnitude:
		return "𝔠"
	default:
		panic(fmt.Sprintf("unknown magnitude: %d", c.mag))
	}
}
