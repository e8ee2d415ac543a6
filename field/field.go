// Package field implements arithmetic in a prime finite field GF(p).
//
// A PrimeField is the context every element is built from. Elements are small
// immutable values holding their canonical representative in [0, p) and a
// reference to the field they belong to.
package field

import "errors"

var (
	// ErrInvalidPrime is returned when a field is requested for a modulus that
	// is not a prime number >= 2.
	ErrInvalidPrime = errors.New("field modulus must be a prime")

	// ErrNotConfigured is the panic value used when elements are built from a
	// nil or zero-value PrimeField.
	ErrNotConfigured = errors.New("field is not configured")

	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent is the panic value used when Pow receives n < 0.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrFieldMismatch is the panic value used when combining elements of
	// different fields.
	ErrFieldMismatch = errors.New("elements belong to different fields")
)
