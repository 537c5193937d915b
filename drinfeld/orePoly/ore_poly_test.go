package orePoly

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/functionRing"
)

// newTestRing returns GF(q^m){tau} with constant field GF(q) (q prime).
func newTestRing(t *testing.T, q uint64, m int) *Ring {
	t.Helper()
	fq, err := fieldElements.NewPrimeField(q)
	require.NoError(t, err)
	var k fieldElements.Field = fq
	if m > 1 {
		ext, err := fieldElements.NewFiniteExtension(fq, m, "z")
		require.NoError(t, err)
		k = ext
	}
	ring, err := NewRing(k, fq, "t")
	require.NoError(t, err)
	return ring
}

func randomOrePoly(r *Ring, rnd *rand.Rand, maxDeg int) Poly {
	coeffs := make([]fieldElements.Element, rnd.Intn(maxDeg+2))
	for i := range coeffs {
		coeffs[i] = r.CoefficientField().Rand(rnd)
	}
	return r.fromSlice(coeffs)
}

func TestNewRingValidation(t *testing.T) {
	fq, err := fieldElements.NewPrimeField(2)
	require.NoError(t, err)
	f3, err := fieldElements.NewPrimeField(3)
	require.NoError(t, err)

	// Constant field not a subfield of K.
	_, err = NewRing(fq, f3, "t")
	require.ErrorIs(t, err, ErrConstantFieldNotSubfield)

	// Infinite constant field.
	a, err := functionRing.NewRing(fq, "T")
	require.NoError(t, err)
	frac := functionRing.NewFractionField(a)
	_, err = NewRing(frac, frac, "t")
	require.ErrorIs(t, err, ErrConstantFieldNotFinite)

	// Fraction field over Fq is a valid coefficient field.
	ring, err := NewRing(frac, fq, "t")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), ring.ConstantFieldOrder())
}

func TestCommutationRule(t *testing.T) {
	// tau * lambda == lambda^q * tau in GF(4){tau} over GF(2).
	ring := newTestRing(t, 2, 2)
	k := ring.CoefficientField().(*fieldElements.ExtensionField)
	z := k.Gen()

	tau := ring.Gen()
	lambda, err := ring.Monomial(z, 0)
	require.NoError(t, err)

	lhs := tau.Mul(lambda)
	rhs, err := ring.Monomial(z.Pow(big.NewInt(2)), 1)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(rhs), "tau*z == z^2*tau")

	// z^2 = z + 1 in GF(4), so the tau-coefficient is z + 1.
	assert.True(t, lhs.Coefficient(1).Equal(z.Add(k.One())))
}

func TestTwistOrder(t *testing.T) {
	// sigma has order [K:Fq]; Twist must reduce exponents accordingly.
	ring := newTestRing(t, 3, 2)
	k := ring.CoefficientField()
	rnd := rand.New(rand.NewSource(20))
	for i := 0; i < 20; i++ {
		x := k.Rand(rnd)
		assert.True(t, ring.Twist(x, 2).Equal(x), "sigma^2 == id on GF(9)")
		assert.True(t, ring.Twist(x, 3).Equal(ring.Twist(x, 1)))
		assert.True(t, ring.Twist(ring.Twist(x, 1), 1).Equal(x))
		assert.True(t, ring.Twist(x, -1).Equal(ring.Twist(x, 1)), "sigma^-1 == sigma on a degree-2 extension")
	}
}

func TestRingAxioms(t *testing.T) {
	ring := newTestRing(t, 2, 2)
	rnd := rand.New(rand.NewSource(21))
	for i := 0; i < 100; i++ {
		a := randomOrePoly(ring, rnd, 3)
		b := randomOrePoly(ring, rnd, 3)
		c := randomOrePoly(ring, rnd, 3)
		assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "associativity")
		assert.True(t, a.Add(b).Mul(c).Equal(a.Mul(c).Add(b.Mul(c))), "right distributivity")
		assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "left distributivity")
		assert.True(t, a.Mul(ring.One()).Equal(a))
		assert.True(t, ring.One().Mul(a).Equal(a))
		assert.True(t, a.Sub(a).IsZero())
	}
}

func TestDegreeAndValuation(t *testing.T) {
	ring := newTestRing(t, 2, 2)
	k := ring.CoefficientField()

	p, err := ring.NewPoly([]fieldElements.Element{k.Zero(), k.Zero(), k.One(), k.One()})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Degree())
	v, ok := p.Valuation()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = ring.Zero().Valuation()
	assert.False(t, ok)
	assert.Equal(t, -1, ring.Zero().Degree())

	// Trailing zeros are trimmed.
	p, err = ring.NewPoly([]fieldElements.Element{k.One(), k.Zero()})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Degree())
}

func TestRightQuoRemProperty(t *testing.T) {
	for _, cfg := range []struct {
		q uint64
		m int
	}{{2, 2}, {3, 2}, {5, 1}} {
		ring := newTestRing(t, cfg.q, cfg.m)
		rnd := rand.New(rand.NewSource(int64(22 + cfg.m)))
		for i := 0; i < 150; i++ {
			a := randomOrePoly(ring, rnd, 5)
			b := randomOrePoly(ring, rnd, 3)
			if b.IsZero() {
				_, _, err := a.RightQuoRem(b)
				require.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			q, r, err := a.RightQuoRem(b)
			require.NoError(t, err)
			assert.True(t, q.Mul(b).Add(r).Equal(a), "a == q*b + r")
			assert.Less(t, r.Degree(), b.Degree())
		}
	}
}

func TestRightQuoRemExact(t *testing.T) {
	// In GF(4){tau} over GF(2): tau * (z + tau) has an exact right division
	// by (z + tau).
	ring := newTestRing(t, 2, 2)
	k := ring.CoefficientField().(*fieldElements.ExtensionField)
	z := k.Gen()

	b, err := ring.NewPoly([]fieldElements.Element{z, k.One()})
	require.NoError(t, err)
	a := ring.Gen().Mul(b)

	q, r, err := a.RightQuoRem(b)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, q.Equal(ring.Gen()))
	assert.True(t, b.RightDivides(a))
	assert.False(t, b.RightDivides(a.Add(ring.One())))
}

func TestRightDivisionOverFractionField(t *testing.T) {
	// The same contract must hold over an infinite coefficient field.
	fq, err := fieldElements.NewPrimeField(2)
	require.NoError(t, err)
	a, err := functionRing.NewRing(fq, "T")
	require.NoError(t, err)
	frac := functionRing.NewFractionField(a)
	ring, err := NewRing(frac, fq, "t")
	require.NoError(t, err)

	T := frac.Gen()
	g, err := ring.NewPoly([]fieldElements.Element{T, frac.One()})
	require.NoError(t, err)
	prod := g.Mul(g)
	q, r, err := prod.RightQuoRem(g)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, q.Equal(g))
}

func TestScalarMulLeft(t *testing.T) {
	ring := newTestRing(t, 2, 2)
	k := ring.CoefficientField().(*fieldElements.ExtensionField)
	z := k.Gen()

	p, err := ring.NewPoly([]fieldElements.Element{k.One(), z})
	require.NoError(t, err)
	scaled := p.ScalarMulLeft(z)
	assert.True(t, scaled.Coefficient(0).Equal(z))
	assert.True(t, scaled.Coefficient(1).Equal(z.Mul(z)))
}

func TestString(t *testing.T) {
	ring := newTestRing(t, 2, 2)
	k := ring.CoefficientField().(*fieldElements.ExtensionField)
	z := k.Gen()
	p, err := ring.NewPoly([]fieldElements.Element{k.One(), z.Add(k.One()), k.One()})
	require.NoError(t, err)
	assert.Equal(t, "t^2 + (z + 1)*t + 1", p.String())
	assert.Equal(t, "0", ring.Zero().String())
}
