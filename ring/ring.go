// Package ring implements arithmetic in the quotient ring GF(p)[x]/(m(x)).
//
// A Ring holds the coefficient field and the modulus m(x). Every arithmetic
// result is the plain polynomial result reduced modulo m(x). Elements built
// directly with NewElement are stored as given and are not reduced.
package ring

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ppopth/galois/field"
	"github.com/ppopth/galois/poly"
)

var (
	// ErrInvalidModulus is returned for a modulus of degree zero
	ErrInvalidModulus = errors.New("invalid ring modulus")

	// ErrRingMismatch is the panic value used when combining elements of different rings
	ErrRingMismatch = errors.New("elements belong to different rings")
)

// Ring represents GF(p)[x]/(m(x))
type Ring struct {
	field   *field.PrimeField
	modulus *poly.Polynomial
}

// New creates the quotient ring of f[x] by modulus
func New(f *field.PrimeField, modulus *poly.Polynomial) (*Ring, error) {
	if f == nil || modulus == nil {
		return nil, field.ErrNotConfigured
	}
	if !f.Equal(modulus.Field()) {
		return nil, fmt.Errorf("%w: modulus over %s, ring over %s", ErrInvalidModulus, modulus.Field(), f)
	}
	if modulus.Degree() < 1 {
		return nil, fmt.Errorf("%w: %s has degree 0", ErrInvalidModulus, modulus)
	}
	return &Ring{field: f, modulus: modulus}, nil
}

// Field returns the coefficient field
func (r *Ring) Field() *field.PrimeField {
	return r.field
}

// Modulus returns m(x)
func (r *Ring) Modulus() *poly.Polynomial {
	return r.modulus
}

// Degree returns the degree of m(x)
func (r *Ring) Degree() int {
	return r.modulus.Degree()
}

// Order returns the number of elements p^deg(m), and whether it overflowed 256 bits
func (r *Ring) Order() (*uint256.Int, bool) {
	return Power(r.field.Modulus(), r.Degree())
}

// String returns e.g. "GF(3)[x]/(1 0 2)"
func (r *Ring) String() string {
	return fmt.Sprintf("%s[x]/(%s)", r.field, r.modulus)
}

// Equal reports whether two rings share the same field and modulus
func (r *Ring) Equal(s *Ring) bool {
	if r == s {
		return true
	}
	if r == nil || s == nil {
		return false
	}
	return r.field.Equal(s.field) && r.modulus.Equal(s.modulus)
}

// Power returns base^exp and whether the result overflowed 256 bits
func Power(base uint64, exp int) (*uint256.Int, bool) {
	result := uint256.NewInt(1)
	b := uint256.NewInt(base)
	for i := 0; i < exp; i++ {
		var overflow bool
		result, overflow = new(uint256.Int).MulOverflow(result, b)
		if overflow {
			return nil, true
		}
	}
	return result, false
}

func (r *Ring) mustBeConfigured() {
	if r == nil {
		panic(field.ErrNotConfigured)
	}
}

// reduce returns raw mod m(x)
func (r *Ring) reduce(raw *poly.Polynomial) Element {
	r.mustBeConfigured()
	rem, err := raw.Mod(r.modulus)
	if err != nil {
		// m(x) is never zero, so the remainder is always defined
		panic(err)
	}
	return Element{ring: r, p: rem}
}

// NewElement creates an element from raw coefficients, most significant first.
// The result is not reduced modulo m(x).
func (r *Ring) NewElement(coeffs ...int64) Element {
	r.mustBeConfigured()
	return Element{ring: r, p: poly.New(r.field, coeffs...)}
}

// FromDigits creates an element from base-p digits, most significant first.
// The result is not reduced modulo m(x).
func (r *Ring) FromDigits(digits []uint64) Element {
	r.mustBeConfigured()
	return Element{ring: r, p: poly.FromDigits(r.field, digits)}
}

// Reduce returns the canonical representative of p modulo m(x)
func (r *Ring) Reduce(p *poly.Polynomial) Element {
	return r.reduce(p)
}

// Zero returns the additive identity
func (r *Ring) Zero() Element {
	r.mustBeConfigured()
	return Element{ring: r, p: poly.Zero(r.field)}
}

// One returns the multiplicative identity
func (r *Ring) One() Element {
	return r.reduce(poly.One(r.field))
}
