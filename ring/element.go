package ring

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ppopth/galois/field"
	"github.com/ppopth/galois/poly"
)

// Element is a polynomial in GF(p)[x]/(m(x))
type Element struct {
	ring *Ring
	p    *poly.Polynomial
}

func (e Element) mustBeConfigured() {
	e.ring.mustBeConfigured()
}

func (e Element) mustMatch(b Element) {
	e.mustBeConfigured()
	b.mustBeConfigured()
	if !e.ring.Equal(b.ring) {
		panic(fmt.Errorf("%w: %s and %s", ErrRingMismatch, e.ring, b.ring))
	}
}

// Ring returns the ring e belongs to
func (e Element) Ring() *Ring {
	return e.ring
}

// Polynomial returns the underlying polynomial
func (e Element) Polynomial() *poly.Polynomial {
	return e.p
}

// Add returns (e + b) mod m
func (e Element) Add(b Element) Element {
	e.mustMatch(b)
	return e.ring.reduce(e.p.Add(b.p))
}

// Sub returns (e - b) mod m
func (e Element) Sub(b Element) Element {
	e.mustMatch(b)
	return e.ring.reduce(e.p.Sub(b.p))
}

// Mul returns (e * b) mod m
func (e Element) Mul(b Element) Element {
	e.mustMatch(b)
	return e.ring.reduce(e.p.Mul(b.p))
}

// Scale returns (c * e) mod m for a field element c
func (e Element) Scale(c field.Element) Element {
	e.mustBeConfigured()
	return e.ring.reduce(e.p.Scale(c))
}

// Div returns the plain polynomial quotient e / b reduced mod m.
// This is not multiplication by an inverse in the ring.
func (e Element) Div(b Element) (Element, error) {
	e.mustMatch(b)
	quotient, err := e.p.Div(b.p)
	if err != nil {
		return Element{}, err
	}
	return e.ring.reduce(quotient), nil
}

// Mod returns the plain polynomial remainder e mod b, reduced mod m
func (e Element) Mod(b Element) (Element, error) {
	e.mustMatch(b)
	remainder, err := e.p.Mod(b.p)
	if err != nil {
		return Element{}, err
	}
	return e.ring.reduce(remainder), nil
}

// Pow returns e^n mod m. Pow(0) is one. It panics if n is negative.
func (e Element) Pow(n int) Element {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", field.ErrNegativeExponent, n))
	}
	return e.Exp(uint256.NewInt(uint64(n)))
}

// Exp returns e^x mod m, reducing after every multiplication
func (e Element) Exp(x *uint256.Int) Element {
	e.mustBeConfigured()
	result := e.ring.One()
	base := e.ring.reduce(e.p)
	for i := 0; i < x.BitLen(); i++ {
		if x[i/64]>>(i%64)&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// Equal compares the stored coefficients
func (e Element) Equal(b Element) bool {
	e.mustBeConfigured()
	b.mustBeConfigured()
	return e.p.Equal(b.p)
}

// IsZero returns true if the stored polynomial is zero
func (e Element) IsZero() bool {
	e.mustBeConfigured()
	return e.p.IsZero()
}

// IsOne returns true if the stored polynomial is [1]
func (e Element) IsOne() bool {
	e.mustBeConfigured()
	return e.p.Len() == 1 && e.p.Lead().IsOne()
}

// Len returns the number of stored coefficients
func (e Element) Len() int {
	e.mustBeConfigured()
	return e.p.Len()
}

// Ints returns the stored coefficients, most significant first
func (e Element) Ints() []int64 {
	e.mustBeConfigured()
	return e.p.Ints()
}

// Vector returns the coordinates of e in the basis x^(d-1), ..., x, 1 where
// d is the degree of m. e must be reduced.
func (e Element) Vector() []field.Element {
	e.mustBeConfigured()
	d := e.ring.Degree()
	vec := make([]field.Element, d)
	for i := range vec {
		vec[i] = e.p.Coefficient(d - 1 - i)
	}
	return vec
}

// String returns the stored coefficients separated by spaces
func (e Element) String() string {
	return e.p.String()
}
