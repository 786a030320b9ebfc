package optional

import (
	"errors"
	"fmt"
)

var ErrEmptyOption = errors.New("optional: empty option")

// Value is a maybe-absent T. The zero value is empty.
type Value[T any] struct {
	v       T
	present bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{v: v, present: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

func (o Value[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value or ErrEmptyOption.
func (o Value[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrEmptyOption, zero)
	}
	return o.v, nil
}

// Value is the comma-ok form of Get.
func (o Value[T]) Value() (T, bool) {
	return o.v, o.present
}

// MustGet is the panic-on-failure variant of Get.
func (o Value[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Value[T]) OrElse(fallback T) T {
	if o.present {
		return o.v
	}
	return fallback
}

func (o Value[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
