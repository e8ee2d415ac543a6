package poly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ppopth/galois/field"
)

func randomPolynomial(rng *rand.Rand, f *field.PrimeField, maxLen int) *Polynomial {
	coeffs := make([]int64, 1+rng.Intn(maxLen))
	for i := range coeffs {
		coeffs[i] = rng.Int63n(int64(f.Modulus()))
	}
	return New(f, coeffs...)
}

func TestRingAxioms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, prime := range []int64{2, 3, 7} {
		f := setupField(t, prime)
		for i := 0; i < 200; i++ {
			p := randomPolynomial(rng, f, 6)
			q := randomPolynomial(rng, f, 6)
			r := randomPolynomial(rng, f, 6)

			require.True(t, p.Add(q).Add(r).Equal(p.Add(q.Add(r))), "(p+q)+r, p=%s q=%s r=%s", p, q, r)
			require.True(t, p.Add(q).Equal(q.Add(p)), "p+q, p=%s q=%s", p, q)
			require.True(t, p.Mul(q).Equal(q.Mul(p)), "p*q, p=%s q=%s", p, q)
			require.True(t, p.Mul(q).Mul(r).Equal(p.Mul(q.Mul(r))), "(p*q)*r, p=%s q=%s r=%s", p, q, r)
			require.True(t, p.Mul(q.Add(r)).Equal(p.Mul(q).Add(p.Mul(r))), "p*(q+r), p=%s q=%s r=%s", p, q, r)
			require.True(t, p.Sub(p).IsZero(), "p-p, p=%s", p)
		}
	}
}

func TestDivModRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, prime := range []int64{2, 3, 5, 11} {
		f := setupField(t, prime)
		for i := 0; i < 300; i++ {
			p := randomPolynomial(rng, f, 8)
			q := randomPolynomial(rng, f, 5)
			if q.IsZero() {
				continue
			}

			quotient, remainder, err := p.DivMod(q)
			require.NoError(t, err)
			require.True(t, quotient.Mul(q).Add(remainder).Equal(p),
				"p=%s q=%s quotient=%s remainder=%s", p, q, quotient, remainder)
			if p.Len() >= q.Len() {
				require.True(t, remainder.IsZero() || remainder.Degree() < q.Degree(),
					"p=%s q=%s remainder=%s", p, q, remainder)
			}
		}
	}
}

func TestMonicIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := setupField(t, 13)
	for i := 0; i < 100; i++ {
		p := randomPolynomial(rng, f, 6)
		if p.IsZero() {
			continue
		}
		m, err := p.Monic()
		require.NoError(t, err)
		require.True(t, m.Lead().IsOne())

		mm, err := m.Monic()
		require.NoError(t, err)
		require.Equal(t, m.Ints(), mm.Ints())
	}
}

func TestEvaluateHomomorphism(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	f := setupField(t, 7)
	for i := 0; i < 100; i++ {
		p := randomPolynomial(rng, f, 5)
		q := randomPolynomial(rng, f, 5)
		for _, x := range f.Elements() {
			require.Equal(t, p.Evaluate(x).Mul(q.Evaluate(x)).Uint64(), p.Mul(q).Evaluate(x).Uint64())
			require.Equal(t, p.Evaluate(x).Add(q.Evaluate(x)).Uint64(), p.Add(q).Evaluate(x).Uint64())
		}
	}
}
