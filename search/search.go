// Package search finds primitive roots of GF(p)[x]/(m(x)) and their minimal
// polynomials by exhaustive enumeration.
//
// Candidates are enumerated by integer: the base-p digits of i, most
// significant first, are the coefficients of the i-th candidate polynomial.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"
	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/galois/basen"
	"github.com/ppopth/galois/field"
	"github.com/ppopth/galois/poly"
	"github.com/ppopth/galois/ring"
)

var log = logging.Logger("search")

// DefaultMaxCandidates bounds the number of integers a single search enumerates
const DefaultMaxCandidates = 1 << 24

var (
	// ErrInvalidDegree is returned for a search degree below one
	ErrInvalidDegree = errors.New("search degree must be positive")

	// ErrSearchSpaceTooLarge is returned when p^degree exceeds the candidate limit
	ErrSearchSpaceTooLarge = errors.New("search space too large")

	// ErrNoMinimalPolynomial is returned when no annihilating polynomial is found
	// within the bounded search. Over a finite ring this indicates a bug.
	ErrNoMinimalPolynomial = errors.New("no minimal polynomial found")
)

// Option configures a Searcher during construction
type Option func(*Searcher) error

// WithMaxCandidates limits the number of integers enumerated by a single search
func WithMaxCandidates(n uint64) Option {
	return func(s *Searcher) error {
		if n < 2 || n > math.MaxInt64 {
			return fmt.Errorf("max candidates must be in [2, %d], got %d", uint64(math.MaxInt64), n)
		}
		s.maxCandidates = n
		return nil
	}
}

// Searcher runs primitive root and minimal polynomial searches over a ring
type Searcher struct {
	ring          *ring.Ring
	maxCandidates uint64
}

// New creates a Searcher over r and applies options
func New(r *ring.Ring, opts ...Option) (*Searcher, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: ring is required", field.ErrNotConfigured)
	}

	s := &Searcher{
		ring:          r,
		maxCandidates: DefaultMaxCandidates,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Ring returns the ring being searched
func (s *Searcher) Ring() *ring.Ring {
	return s.ring
}

// Pair is a primitive root together with its minimal polynomial
type Pair struct {
	Root    ring.Element
	Minimal *poly.Polynomial
}

// IsPrimitiveRoot reports whether x^(p^degree - 1) is one in the ring of x.
// It panics if x has no ring, degree is not positive or p^degree does not
// fit in 256 bits.
func IsPrimitiveRoot(x ring.Element, degree int) bool {
	if x.Ring() == nil {
		panic(field.ErrNotConfigured)
	}
	if degree < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidDegree, degree))
	}
	size, overflow := ring.Power(x.Ring().Field().Modulus(), degree)
	if overflow {
		panic(fmt.Errorf("%w: %d^%d", ErrSearchSpaceTooLarge, x.Ring().Field().Modulus(), degree))
	}
	return isPrimitiveRoot(x, new(uint256.Int).SubUint64(size, 1))
}

func isPrimitiveRoot(x ring.Element, exponent *uint256.Int) bool {
	return x.Exp(exponent).IsOne()
}

// candidateBound returns p^n as an int64, or an error if it exceeds the limit
func (s *Searcher) candidateBound(n int) (int64, error) {
	p := s.ring.Field().Modulus()
	size, overflow := ring.Power(p, n)
	if overflow || !size.IsUint64() || size.Uint64() > s.maxCandidates {
		return 0, fmt.Errorf("%w: %d^%d candidates, limit %d", ErrSearchSpaceTooLarge, p, n, s.maxCandidates)
	}
	return int64(size.Uint64()), nil
}

// PrimitiveRoots returns every candidate i in [2, p^degree), in increasing
// order, whose polynomial is a primitive root of the given degree.
func (s *Searcher) PrimitiveRoots(degree int) ([]ring.Element, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	size, err := s.candidateBound(degree)
	if err != nil {
		return nil, err
	}

	p := int64(s.ring.Field().Modulus())
	exponent := uint256.NewInt(uint64(size - 1))

	var roots []ring.Element
	for i := int64(2); i < size; i++ {
		x := s.ring.FromDigits(basen.Digits(i, p))
		if isPrimitiveRoot(x, exponent) {
			log.Debugf("candidate %d (%s) is a primitive root", i, x)
			roots = append(roots, x)
		}
	}

	log.Infof("found %d primitive roots of degree %d in %s", len(roots), degree, s.ring)
	return roots, nil
}

// MinimalPolynomial returns the annihilating polynomial of root with the
// smallest candidate index: the first i >= 1 whose base-p digits c satisfy
// sum(c_j * root^j) == 0 in the ring.
//
// Candidates with fewer digits than the degree k of the annihilator can never
// vanish, so k is found first by Gaussian elimination over the coordinate
// vectors of 1, root, root^2, ... The degree k annihilators are the multiples
// of a single monic one, so the first hit has leading digit 1 and only
// [p^k, 2*p^k) is enumerated.
func (s *Searcher) MinimalPolynomial(root ring.Element) (*poly.Polynomial, error) {
	if !s.ring.Equal(root.Ring()) {
		return nil, fmt.Errorf("%w: root of %s searched in %s", ring.ErrRingMismatch, root.Ring(), s.ring)
	}
	f := s.ring.Field()
	d := s.ring.Degree()

	// powers[j] = root^j, reduced
	powers := []ring.Element{s.ring.One()}
	var ref [][]field.Element
	k := -1
	for j := 0; j <= d; j++ {
		next, independent := field.IsLinearlyIndependentIncremental(ref, powers[j].Vector())
		if !independent {
			k = j
			break
		}
		ref = next
		powers = append(powers, powers[j].Mul(root))
	}
	if k < 1 {
		// d+1 vectors in a d-dimensional space are always dependent
		return nil, fmt.Errorf("%w: %s has no dependent powers up to degree %d", ErrNoMinimalPolynomial, root, d)
	}

	span, err := s.candidateBound(k)
	if err != nil {
		return nil, err
	}

	p := int64(f.Modulus())
	coeffs := make([]field.Element, k+1)
	for offset := int64(0); offset < span; offset++ {
		// candidate p^k + offset: a leading 1 followed by k digits of offset
		for j := range coeffs {
			coeffs[j] = f.Zero()
		}
		coeffs[0] = f.One()
		low := basen.Digits(offset, p)
		for j, c := range low {
			coeffs[k+1-len(low)+j] = f.FromUint64(c)
		}

		sum := s.ring.Zero()
		for j, c := range coeffs {
			sum = sum.Add(powers[k-j].Scale(c))
		}
		if sum.IsZero() {
			minimal := poly.FromElements(f, coeffs)
			log.Debugf("minimal polynomial of %s is %s (candidate %d^%d + %d)", root, minimal, p, k, offset)
			return minimal, nil
		}
	}

	return nil, fmt.Errorf("%w: %s, degree %d", ErrNoMinimalPolynomial, root, k)
}

// PrimitivePolynomials returns every primitive root of the given degree with
// its minimal polynomial, in the order of PrimitiveRoots.
func (s *Searcher) PrimitivePolynomials(degree int) ([]Pair, error) {
	roots, err := s.PrimitiveRoots(degree)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(roots))
	for _, root := range roots {
		minimal, err := s.MinimalPolynomial(root)
		if err != nil {
			return nil, fmt.Errorf("minimal polynomial of %s: %w", root, err)
		}
		pairs = append(pairs, Pair{Root: root, Minimal: minimal})
	}
	return pairs, nil
}
