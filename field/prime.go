package field

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/holiman/uint256"
)

// PrimeField represents a prime finite field F_p
type PrimeField struct {
	p uint64 // the prime modulus
}

// NewPrimeField creates a new prime field. The modulus must be a prime >= 2.
func NewPrimeField(p int64) (*PrimeField, error) {
	if p < 2 {
		return nil, fmt.Errorf("%w: %d is less than 2", ErrInvalidPrime, p)
	}
	// ProbablyPrime is exact for values below 2^64
	if !big.NewInt(p).ProbablyPrime(0) {
		return nil, fmt.Errorf("%w: %d is composite", ErrInvalidPrime, p)
	}
	return &PrimeField{p: uint64(p)}, nil
}

// Element represents an element in a prime field
type Element struct {
	value uint64      // element value in range [0, p-1]
	field *PrimeField // reference to parent field
}

func (f *PrimeField) mustBeConfigured() {
	if f == nil || f.p == 0 {
		panic(ErrNotConfigured)
	}
}

// Modulus returns the prime p
func (f *PrimeField) Modulus() uint64 {
	f.mustBeConfigured()
	return f.p
}

// Order returns the order (size) of the field, which is p for a prime field
func (f *PrimeField) Order() *uint256.Int {
	f.mustBeConfigured()
	return uint256.NewInt(f.p)
}

// Equal reports whether two fields share the same modulus
func (f *PrimeField) Equal(g *PrimeField) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.p == g.p
}

// String returns "GF(p)"
func (f *PrimeField) String() string {
	if f == nil {
		return "GF(?)"
	}
	return "GF(" + strconv.FormatUint(f.p, 10) + ")"
}

// NewElement returns v mod p. Negative values wrap around, so -1 maps to p-1.
func (f *PrimeField) NewElement(v int64) Element {
	f.mustBeConfigured()
	// p is a prime below 2^63, so it fits in an int64
	m := v % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}
	return Element{value: uint64(m), field: f}
}

// FromUint64 returns v mod p
func (f *PrimeField) FromUint64(v uint64) Element {
	f.mustBeConfigured()
	return Element{value: v % f.p, field: f}
}

// Zero returns the additive identity element (0)
func (f *PrimeField) Zero() Element {
	f.mustBeConfigured()
	return Element{value: 0, field: f}
}

// One returns the multiplicative identity element (1)
func (f *PrimeField) One() Element {
	f.mustBeConfigured()
	return Element{value: 1 % f.p, field: f}
}

// Elements returns every element of the field in increasing order
func (f *PrimeField) Elements() []Element {
	f.mustBeConfigured()
	elems := make([]Element, f.p)
	for i := range elems {
		elems[i] = Element{value: uint64(i), field: f}
	}
	return elems
}

// Element methods

func (e Element) mustMatch(b Element) {
	e.field.mustBeConfigured()
	b.field.mustBeConfigured()
	if !e.field.Equal(b.field) {
		panic(fmt.Errorf("%w: %s and %s", ErrFieldMismatch, e.field, b.field))
	}
}

// Field returns the field e belongs to
func (e Element) Field() *PrimeField {
	return e.field
}

// Add returns e + b in the field
func (e Element) Add(b Element) Element {
	e.mustMatch(b)
	// both operands are below 2^63, the sum cannot overflow
	return Element{value: (e.value + b.value) % e.field.p, field: e.field}
}

// Neg returns the additive complement (p - e) mod p. The complement of 0 is 0.
func (e Element) Neg() Element {
	e.field.mustBeConfigured()
	if e.value == 0 {
		return e
	}
	return Element{value: e.field.p - e.value, field: e.field}
}

// Sub returns e - b in the field
func (e Element) Sub(b Element) Element {
	return e.Add(b.Neg())
}

// Mul returns e * b in the field
func (e Element) Mul(b Element) Element {
	e.mustMatch(b)
	hi, lo := bits.Mul64(e.value, b.value)
	return Element{value: bits.Rem64(hi, lo, e.field.p), field: e.field}
}

// Inv returns the multiplicative inverse of e
func (e Element) Inv() (Element, error) {
	e.field.mustBeConfigured()
	if e.value == 0 {
		return Element{}, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(
		new(big.Int).SetUint64(e.value),
		new(big.Int).SetUint64(e.field.p),
	)
	if inv == nil {
		return Element{}, fmt.Errorf("%w: %d has no inverse modulo %d", ErrDivisionByZero, e.value, e.field.p)
	}
	return Element{value: inv.Uint64(), field: e.field}, nil
}

// Div returns the element q with q * b == e.
// Since p is prime the quotient is unique for every nonzero b.
func (e Element) Div(b Element) (Element, error) {
	e.mustMatch(b)
	inv, err := b.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// Pow returns e multiplied by itself n times. Pow(0) is one for every e,
// including zero. It panics if n is negative.
func (e Element) Pow(n int) Element {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeExponent, n))
	}
	return e.Exp(uint256.NewInt(uint64(n)))
}

// Exp returns e raised to the power x
func (e Element) Exp(x *uint256.Int) Element {
	result := e.field.One()
	base := e
	for i := 0; i < x.BitLen(); i++ {
		if x[i/64]>>(i%64)&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// IsZero returns true if e equals zero
func (e Element) IsZero() bool {
	return e.value == 0
}

// IsOne returns true if e equals one
func (e Element) IsOne() bool {
	return e.value == 1
}

// Equal compares values only; the fields are not checked
func (e Element) Equal(b Element) bool {
	return e.value == b.value
}

// Uint64 returns the canonical representative of e
func (e Element) Uint64() uint64 {
	return e.value
}

// Int64 returns the canonical representative of e as an int64
func (e Element) Int64() int64 {
	return int64(e.value)
}

// String returns the decimal representation of e
func (e Element) String() string {
	return strconv.FormatUint(e.value, 10)
}
