// Package galois configures arithmetic over GF(p)[x]/(m(x)).
//
// A Config names the prime p and the modulus m(x); New validates it and
// returns the ring every element and search is built from. Rings are
// independent values: building a new one never affects elements of another.
package galois

import (
	"errors"
	"fmt"

	"github.com/ppopth/galois/field"
	"github.com/ppopth/galois/poly"
	"github.com/ppopth/galois/ring"
)

// Config describes a quotient ring GF(p)[x]/(m(x))
type Config struct {
	// Prime field modulus p
	Prime int64
	// Coefficients of m(x), most significant first, e.g. {1, 0, 2} is x^2 + 2
	Modulus []int64
}

// DefaultConfig returns GF(3)[x]/(x^2 + 2)
func DefaultConfig() *Config {
	return &Config{
		Prime:   3,
		Modulus: []int64{1, 0, 2},
	}
}

// Validate checks the prime and the modulus degree
func (c *Config) Validate() error {
	_, err := c.build()
	return err
}

func (c *Config) build() (*ring.Ring, error) {
	if len(c.Modulus) == 0 {
		return nil, fmt.Errorf("%w: no coefficients", ring.ErrInvalidModulus)
	}
	f, err := field.NewPrimeField(c.Prime)
	if err != nil {
		return nil, err
	}
	return ring.New(f, poly.New(f, c.Modulus...))
}

// New returns the ring described by cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) (*ring.Ring, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r, err := cfg.build()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return r, nil
}

// Parse builds a Config from a prime and a textual modulus such as "1,0,2"
func Parse(prime int64, modulus string) (*Config, error) {
	f, err := field.NewPrimeField(prime)
	if err != nil {
		return nil, err
	}
	m, err := poly.Parse(f, modulus)
	if err != nil {
		return nil, err
	}
	return &Config{Prime: prime, Modulus: m.Ints()}, nil
}

// IsConfigError reports whether err comes from an invalid prime or modulus
func IsConfigError(err error) bool {
	return errors.Is(err, field.ErrInvalidPrime) ||
		errors.Is(err, ring.ErrInvalidModulus) ||
		errors.Is(err, poly.ErrMalformed)
}
