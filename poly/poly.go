// Package poly implements univariate polynomials with coefficients in a prime
// field GF(p).
//
// Coefficients are ordered from the highest-degree term to the constant term,
// so []int64{1, 0, 2} is x^2 + 2. Polynomials are normalized on construction:
// leading zero coefficients are stripped, and the zero polynomial is the
// single coefficient [0]. Instances are immutable.
package poly

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/ppopth/galois/field"
)

// ErrMalformed is returned when parsing a polynomial from malformed text
var ErrMalformed = errors.New("malformed polynomial")

// Polynomial represents a polynomial over a prime field
type Polynomial struct {
	field  *field.PrimeField
	coeffs []field.Element // most significant first, normalized
}

// New creates a polynomial from raw integer coefficients, most significant first.
// Every coefficient is reduced modulo p.
func New(f *field.PrimeField, coeffs ...int64) *Polynomial {
	elems := make([]field.Element, len(coeffs))
	for i, c := range coeffs {
		elems[i] = f.NewElement(c)
	}
	return wrap(f, elems)
}

// FromDigits creates a polynomial from unsigned digits, most significant first
func FromDigits(f *field.PrimeField, digits []uint64) *Polynomial {
	elems := make([]field.Element, len(digits))
	for i, d := range digits {
		elems[i] = f.FromUint64(d)
	}
	return wrap(f, elems)
}

// FromElements creates a polynomial from field elements, most significant first.
// The slice is copied.
func FromElements(f *field.PrimeField, elems []field.Element) *Polynomial {
	return wrap(f, slices.Clone(elems))
}

// Zero returns the canonical zero polynomial [0]
func Zero(f *field.PrimeField) *Polynomial {
	return &Polynomial{field: f, coeffs: []field.Element{f.Zero()}}
}

// One returns the constant polynomial [1]
func One(f *field.PrimeField) *Polynomial {
	return &Polynomial{field: f, coeffs: []field.Element{f.One()}}
}

// Parse reads coefficients separated by commas or white space, e.g. "1 0 2" or "1,0,2"
func Parse(f *field.PrimeField, s string) (*Polynomial, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no coefficients in %q", ErrMalformed, s)
	}

	coeffs := make([]int64, len(tokens))
	for i, tok := range tokens {
		c, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coefficient %q: %v", ErrMalformed, tok, err)
		}
		coeffs[i] = c
	}
	return New(f, coeffs...), nil
}

// wrap normalizes elems and takes ownership of the slice
func wrap(f *field.PrimeField, elems []field.Element) *Polynomial {
	i := 0
	for i < len(elems)-1 && elems[i].IsZero() {
		i++
	}
	elems = elems[i:]
	if len(elems) == 0 {
		return Zero(f)
	}
	return &Polynomial{field: f, coeffs: elems}
}

func (p *Polynomial) mustMatch(q *Polynomial) {
	if !p.field.Equal(q.field) {
		panic(fmt.Errorf("%w: %s and %s", field.ErrFieldMismatch, p.field, q.field))
	}
}

// Field returns the coefficient field
func (p *Polynomial) Field() *field.PrimeField {
	return p.field
}

// Len returns the number of stored coefficients
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Lead returns the leading coefficient
func (p *Polynomial) Lead() field.Element {
	return p.coeffs[0]
}

// Coefficient returns the coefficient of x^degree, zero when out of range
func (p *Polynomial) Coefficient(degree int) field.Element {
	if degree < 0 || degree >= len(p.coeffs) {
		return p.field.Zero()
	}
	return p.coeffs[len(p.coeffs)-1-degree]
}

// Coefficients returns a copy of the coefficients, most significant first
func (p *Polynomial) Coefficients() []field.Element {
	return slices.Clone(p.coeffs)
}

// Ints returns the coefficients as integers, most significant first
func (p *Polynomial) Ints() []int64 {
	ints := make([]int64, len(p.coeffs))
	for i, c := range p.coeffs {
		ints[i] = c.Int64()
	}
	return ints
}

// Equal compares the normalized integer coefficients. The fields are not compared.
func (p *Polynomial) Equal(q *Polynomial) bool {
	return slices.Equal(p.Ints(), q.Ints())
}

// String returns the coefficients separated by spaces, e.g. "1 0 23 0 12"
func (p *Polynomial) String() string {
	parts := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Add returns p + q. The operands are aligned on their constant terms.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	p.mustMatch(q)
	long, short := p.coeffs, q.coeffs
	if len(long) < len(short) {
		long, short = short, long
	}
	offset := len(long) - len(short)

	sum := make([]field.Element, len(long))
	copy(sum, long[:offset])
	for i, c := range short {
		sum[offset+i] = long[offset+i].Add(c)
	}
	return wrap(p.field, sum)
}

// Neg returns the complement of p, so that p + p.Neg() is zero
func (p *Polynomial) Neg() *Polynomial {
	neg := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		neg[i] = c.Neg()
	}
	return wrap(p.field, neg)
}

// Sub returns p - q
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// Scale returns p with every coefficient multiplied by e
func (p *Polynomial) Scale(e field.Element) *Polynomial {
	return wrap(p.field, scale(p.coeffs, e))
}

func scale(coeffs []field.Element, e field.Element) []field.Element {
	scaled := make([]field.Element, len(coeffs))
	for i, c := range coeffs {
		scaled[i] = c.Mul(e)
	}
	return scaled
}

// Mul returns p * q using schoolbook multiplication
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	p.mustMatch(q)
	product := make([]field.Element, len(p.coeffs)+len(q.coeffs)-1)
	for i := range product {
		product[i] = p.field.Zero()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			product[i+j] = product[i+j].Add(a.Mul(b))
		}
	}
	return wrap(p.field, product)
}

// DivMod performs long division and returns the quotient and the remainder.
//
// When q is longer than p the quotient is zero and the remainder is p itself.
// Otherwise one quotient digit is produced per step: the leading coefficient of
// the current window divided by the leading coefficient of q.
func (p *Polynomial) DivMod(q *Polynomial) (quotient, remainder *Polynomial, err error) {
	p.mustMatch(q)
	if q.IsZero() {
		return nil, nil, field.ErrDivisionByZero
	}

	s := len(q.coeffs)
	if s > len(p.coeffs) {
		return Zero(p.field), p, nil
	}

	window := slices.Clone(p.coeffs[:s])
	digits := make([]field.Element, 0, len(p.coeffs)-s+1)
	for next := s; ; next++ {
		digit, err := window[0].Div(q.coeffs[0])
		if err != nil {
			return nil, nil, err
		}
		digits = append(digits, digit)

		for j, c := range q.coeffs {
			window[j] = window[j].Sub(digit.Mul(c))
		}
		// the leading coefficient is now zero
		window = window[1:]

		if next == len(p.coeffs) {
			break
		}
		window = append(window, p.coeffs[next])
	}

	return wrap(p.field, digits), wrap(p.field, window), nil
}

// Div returns the quotient of p / q
func (p *Polynomial) Div(q *Polynomial) (*Polynomial, error) {
	quotient, _, err := p.DivMod(q)
	if err != nil {
		return nil, err
	}
	return quotient, nil
}

// Mod returns the remainder of p / q
func (p *Polynomial) Mod(q *Polynomial) (*Polynomial, error) {
	_, remainder, err := p.DivMod(q)
	if err != nil {
		return nil, err
	}
	return remainder, nil
}

// Pow returns p multiplied by itself n times. Pow(0) is [1] for every p,
// including zero. It panics if n is negative.
func (p *Polynomial) Pow(n int) *Polynomial {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", field.ErrNegativeExponent, n))
	}
	result := One(p.field)
	base := p
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return result
}

// Monic returns p scaled so that its leading coefficient is one
func (p *Polynomial) Monic() (*Polynomial, error) {
	inv, err := p.field.One().Div(p.coeffs[0])
	if err != nil {
		return nil, fmt.Errorf("monic of %s: %w", p, err)
	}
	return p.Scale(inv), nil
}

// Evaluate returns p(x)
func (p *Polynomial) Evaluate(x field.Element) field.Element {
	result := p.field.Zero()
	for _, c := range p.coeffs {
		result = result.Mul(x).Add(c)
	}
	return result
}
