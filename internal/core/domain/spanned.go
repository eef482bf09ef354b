package domain

import "fmt"

// Spanned is a value object pairing a parsed configuration value with the
// source span it was parsed from. Equality of two spanned values is equality
// of the inner values: lookups and duplicate checks key on Value(), never on
// the wrapper, so the span does not influence validation results.
type Spanned[T comparable] struct {
	value T
	span  Span
}

// NewSpanned creates a Spanned value from a value and its source span.
func NewSpanned[T comparable](value T, span Span) Spanned[T] {
	return Spanned[T]{
		value: value,
		span:  span,
	}
}

// Value returns the inner value.
func (s Spanned[T]) Value() T {
	return s.value
}

// Span returns the source span the value was parsed from.
func (s Spanned[T]) Span() Span {
	return s.span
}

// String returns the inner value's string form.
func (s Spanned[T]) String() string {
	return fmt.Sprintf("%v", s.value)
}
