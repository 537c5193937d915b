package drinfeldModules

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/functionRing"
)

// finiteFamily returns the family over K = GF(p^m) for A = GF(p)[T].
func finiteFamily(t *testing.T, p uint64, m int) *Family {
	t.Helper()
	fq, err := fieldElements.NewPrimeField(p)
	require.NoError(t, err)
	a, err := functionRing.NewRing(fq, "T")
	require.NoError(t, err)
	var k fieldElements.Field = fq
	if m > 1 {
		ext, err := fieldElements.NewFiniteExtension(fq, m, "z")
		require.NoError(t, err)
		k = ext
	}
	fam, err := NewFamily(a, k)
	require.NoError(t, err)
	return fam
}

// genericFamily returns the family over K = Frac(GF(p)[T]), where the
// characteristic is generic whenever gamma(T) is a non-constant fraction.
func genericFamily(t *testing.T, p uint64) (*Family, *functionRing.Ring, *functionRing.FractionField) {
	t.Helper()
	fq, err := fieldElements.NewPrimeField(p)
	require.NoError(t, err)
	a, err := functionRing.NewRing(fq, "T")
	require.NoError(t, err)
	frac := functionRing.NewFractionField(a)
	fam, err := NewFamily(a, frac)
	require.NoError(t, err)
	return fam, a, frac
}

func newModule(t *testing.T, fam *Family, coeffs ...fieldElements.Element) *DrinfeldModule {
	t.Helper()
	phi, err := fam.New(coeffs)
	require.NoError(t, err)
	return phi
}

// fp embeds the polynomial with the given integer coefficients into Fq(T).
func fp(frac *functionRing.FractionField, a *functionRing.Ring, coeffs ...int64) fieldElements.Element {
	return frac.FromPoly(a.FromInts(coeffs...))
}

func expInts(t *testing.T, p Parameter) []int64 {
	t.Helper()
	ret := make([]int64, len(p.Exponents))
	for i, e := range p.Exponents {
		require.True(t, e.IsInt64())
		ret[i] = e.Int64()
	}
	return ret
}

func TestNewValidation(t *testing.T) {
	fam := finiteFamily(t, 2, 2)
	k := fam.BaseField().(*fieldElements.ExtensionField)
	one, zero := k.One(), k.Zero()

	_, err := fam.New(nil)
	require.ErrorIs(t, err, drinfeldErrors.ErrGeneratorNonPositiveDegree)
	_, err = fam.New([]fieldElements.Element{one})
	require.ErrorIs(t, err, drinfeldErrors.ErrGeneratorNonPositiveDegree)

	_, err = fam.New([]fieldElements.Element{one, one, zero})
	require.ErrorIs(t, err, drinfeldErrors.ErrGeneratorLeadingZero)
	require.ErrorIs(t, err, drinfeldErrors.ErrInvalidGenerator)

	_, err = fam.New([]fieldElements.Element{zero, one})
	require.ErrorIs(t, err, drinfeldErrors.ErrGeneratorZeroConstantTerm)

	f3, err := fieldElements.NewPrimeField(3)
	require.NoError(t, err)
	_, err = fam.New([]fieldElements.Element{f3.One(), f3.One()})
	require.ErrorIs(t, err, drinfeldErrors.ErrGeneratorIncompatibleBase)

	// Rank 1 is allowed and has no basic j-invariant parameters.
	phi := newModule(t, fam, one, one)
	assert.Equal(t, 1, phi.Rank())
	params, err := phi.BasicJInvariantParameters(nil, false)
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestInterning(t *testing.T) {
	fam := finiteFamily(t, 2, 2)
	k := fam.BaseField()
	fq := fam.FunctionRing().Base()

	phi := newModule(t, fam, k.One(), k.One(), k.One())
	psi := newModule(t, fam, k.One(), k.One(), k.One())
	assert.Same(t, phi, psi)

	// Coefficients given in a subfield are coerced before interning.
	chi := newModule(t, fam, fq.One(), fq.One(), fq.One())
	assert.Same(t, phi, chi)

	other := newModule(t, fam, k.One(), k.Zero(), k.One())
	assert.NotSame(t, phi, other)

	// Constructing from an existing twisted polynomial goes through the
	// same interning.
	fromPoly, err := fam.NewFromPoly(phi.Gen())
	require.NoError(t, err)
	assert.Same(t, phi, fromPoly)
}

func TestCoefficientsAndString(t *testing.T) {
	fam := finiteFamily(t, 2, 2)
	k := fam.BaseField().(*fieldElements.ExtensionField)
	z := k.Gen()

	phi := newModule(t, fam, z, k.One(), k.One())
	assert.Equal(t, "Drinfeld module defined by T |--> t^2 + t + z", phi.String())
	assert.True(t, phi.IsFinite())

	c0, err := phi.Coefficient(0)
	require.NoError(t, err)
	assert.True(t, c0.Equal(z))
	_, err = phi.Coefficient(3)
	require.ErrorIs(t, err, drinfeldErrors.ErrIndexOutOfRange)
	_, err = phi.Coefficient(-1)
	require.ErrorIs(t, err, drinfeldErrors.ErrIndexOutOfRange)

	sparse := newModule(t, fam, z, k.Zero(), k.One())
	assert.Len(t, sparse.Coefficients(false), 3)
	assert.Len(t, sparse.Coefficients(true), 2)
}

func TestEvalIsMorphism(t *testing.T) {
	fam := finiteFamily(t, 2, 2)
	a := fam.FunctionRing()
	k := fam.BaseField().(*fieldElements.ExtensionField)
	phi := newModule(t, fam, k.Gen(), k.One(), k.One())

	// T maps to the generator, constants map to themselves.
	assert.True(t, phi.Eval(a.Gen()).Equal(phi.Gen()))
	assert.True(t, phi.Eval(a.One()).IsOne())
	assert.True(t, phi.Eval(a.Zero()).IsZero())

	randPoly := func(rnd *rand.Rand, maxDeg int) functionRing.Poly {
		coeffs := make([]fieldElements.Element, rnd.Intn(maxDeg+2))
		for i := range coeffs {
			coeffs[i] = a.Base().Rand(rnd)
		}
		p, err := a.NewPoly(coeffs)
		require.NoError(t, err)
		return p
	}
	rnd := rand.New(rand.NewSource(31))
	for i := 0; i < 50; i++ {
		x := randPoly(rnd, 4)
		y := randPoly(rnd, 4)
		assert.True(t, phi.Eval(x.Add(y)).Equal(phi.Eval(x).Add(phi.Eval(y))), "additive")
		assert.True(t, phi.Eval(x.Mul(y)).Equal(phi.Eval(x).Mul(phi.Eval(y))), "multiplicative")
		if !x.IsZero() {
			assert.False(t, phi.Eval(x).IsZero(), "injective")
		}
	}
}

func TestCharacteristic(t *testing.T) {
	// Constant coefficient in the prime field: minimal polynomial T - g0.
	fam := finiteFamily(t, 2, 1)
	a := fam.FunctionRing()
	phi := newModule(t, fam, a.Base().One(), a.Base().One(), a.Base().One())
	charPoly, err := phi.Characteristic()
	require.NoError(t, err)
	assert.True(t, charPoly.Equal(a.FromInts(1, 1)), "T + 1 over GF(2)")

	// g0 = z generates GF(4) over GF(2): minimal polynomial T^2 + T + 1.
	fam4 := finiteFamily(t, 2, 2)
	a4 := fam4.FunctionRing()
	k4 := fam4.BaseField().(*fieldElements.ExtensionField)
	phi4 := newModule(t, fam4, k4.Gen(), k4.One(), k4.One())
	charPoly4, err := phi4.Characteristic()
	require.NoError(t, err)
	assert.True(t, charPoly4.Equal(a4.FromInts(1, 1, 1)))
	again, err := phi4.Characteristic()
	require.NoError(t, err)
	assert.True(t, again.Equal(charPoly4))

	// Transcendental g0 over an infinite base: generic characteristic.
	gfam, ga, gfrac := genericFamily(t, 5)
	gphi := newModule(t, gfam, gfrac.Gen(), gfrac.One())
	_, err = gphi.Characteristic()
	require.ErrorIs(t, err, drinfeldErrors.ErrGenericCharacteristic)

	// Constant g0 over an infinite base: T - g0.
	cphi := newModule(t, gfam, gfrac.FromInt(2), gfrac.One())
	ccp, err := cphi.Characteristic()
	require.NoError(t, err)
	assert.True(t, ccp.Equal(ga.FromInts(3, 1)), "T - 2 == T + 3 over GF(5)")
}

func TestHeight(t *testing.T) {
	fam := finiteFamily(t, 2, 1)
	fq := fam.BaseField()

	// phi_p = tau^2 + tau for p = T + 1: height 1, ordinary.
	ord := newModule(t, fam, fq.One(), fq.One(), fq.One())
	h, err := ord.Height()
	require.NoError(t, err)
	assert.Equal(t, 1, h)
	b, err := ord.IsOrdinary()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = ord.IsSupersingular()
	require.NoError(t, err)
	assert.False(t, b)

	// phi_p = tau^2: height 2, supersingular.
	ss := newModule(t, fam, fq.One(), fq.Zero(), fq.One())
	h, err = ss.Height()
	require.NoError(t, err)
	assert.Equal(t, 2, h)
	b, err = ss.IsSupersingular()
	require.NoError(t, err)
	assert.True(t, b)

	rank3 := newModule(t, fam, fq.One(), fq.One(), fq.One(), fq.One())
	_, err = rank3.IsSupersingular()
	require.ErrorIs(t, err, drinfeldErrors.ErrRankNotTwo)

	gfam, _, gfrac := genericFamily(t, 5)
	gphi := newModule(t, gfam, gfrac.Gen(), gfrac.One())
	_, err = gphi.Height()
	require.ErrorIs(t, err, drinfeldErrors.ErrHeightUndefined)
	require.ErrorIs(t, err, drinfeldErrors.ErrGenericCharacteristic)
}

func TestVeluEndomorphisms(t *testing.T) {
	fam := finiteFamily(t, 2, 1)
	fq := fam.BaseField()
	ore := fam.OreRing()
	phi := newModule(t, fam, fq.One(), fq.One(), fq.One())

	_, err := phi.Velu(ore.Zero())
	require.ErrorIs(t, err, drinfeldErrors.ErrNotAnIsogeny)

	// phi(a) is an endomorphism for every nonzero a; the codomain is phi
	// itself, as a pointer.
	a := fam.FunctionRing()
	for _, img := range []functionRing.Poly{a.Gen(), a.FromInts(0, 0, 1), a.FromInts(1, 1)} {
		psi, err := phi.Velu(phi.Eval(img))
		require.NoError(t, err)
		assert.Same(t, phi, psi)
	}

	// tau itself: tau * phi_T right-divided by tau gives back phi_T.
	psi, err := phi.Velu(ore.Gen())
	require.NoError(t, err)
	assert.Same(t, phi, psi)
}

func TestVeluRejections(t *testing.T) {
	// Characteristic degree 2 (g0 = z in GF(4)): tau has valuation 1 and is
	// rejected, tau^2 is an endomorphism.
	fam := finiteFamily(t, 2, 2)
	k := fam.BaseField().(*fieldElements.ExtensionField)
	z := k.Gen()
	ore := fam.OreRing()
	phi := newModule(t, fam, z, z, k.One())

	_, err := phi.Velu(ore.Gen())
	require.ErrorIs(t, err, drinfeldErrors.ErrNotAnIsogeny)

	psi, err := phi.Velu(ore.Gen().Mul(ore.Gen()))
	require.NoError(t, err)
	assert.Same(t, phi, psi)

	// Rank 1, phi_T = z + tau: tau + 1 leaves a nonzero remainder, tau + z
	// is an endomorphism.
	rank1 := newModule(t, fam, z, k.One())
	badIsog, err := ore.NewPoly([]fieldElements.Element{k.One(), k.One()})
	require.NoError(t, err)
	_, err = rank1.Velu(badIsog)
	require.ErrorIs(t, err, drinfeldErrors.ErrNotAnIsogeny)

	goodIsog, err := ore.NewPoly([]fieldElements.Element{z, k.One()})
	require.NoError(t, err)
	endo, err := rank1.Velu(goodIsog)
	require.NoError(t, err)
	assert.Same(t, rank1, endo)
}

func TestVeluGenericCharacteristic(t *testing.T) {
	fam, a, frac := genericFamily(t, 5)
	ore := fam.OreRing()
	T := frac.Gen()
	phi := newModule(t, fam, T, frac.One())

	// Conjugating by the constant T gives the codomain T + T^(1-q) tau.
	isog, err := ore.NewPoly([]fieldElements.Element{T})
	require.NoError(t, err)
	psi, err := phi.Velu(isog)
	require.NoError(t, err)
	c0, err := psi.Coefficient(0)
	require.NoError(t, err)
	assert.True(t, c0.Equal(T))
	c1, err := psi.Coefficient(1)
	require.NoError(t, err)
	want, err := frac.FromFraction(a.One(), a.Gen().Pow(4))
	require.NoError(t, err)
	assert.True(t, c1.Equal(want))
	assert.True(t, phi.HomContains(psi, isog))
	assert.True(t, phi.HomContains(psi, ore.Zero()))
	assert.False(t, phi.HomContains(phi, isog))

	// tau would shift gamma(T) to gamma(T)^q, so it is not an isogeny from
	// phi in generic characteristic.
	_, err = phi.Velu(ore.Gen())
	require.ErrorIs(t, err, drinfeldErrors.ErrNotAnIsogeny)
}

func TestJInvariantRank2(t *testing.T) {
	fam := finiteFamily(t, 2, 2)
	k := fam.BaseField().(*fieldElements.ExtensionField)
	z := k.Gen()

	// j = g1^(q+1) / g2 = z^3 / z^2 = z for q = 2.
	phi := newModule(t, fam, z, z, z.Mul(z))
	j, err := phi.JInvariant()
	require.NoError(t, err)
	assert.True(t, j.Equal(z))

	// The single-index shortcut agrees with the generic formula.
	j1, err := phi.JInvariantAt(1)
	require.NoError(t, err)
	assert.True(t, j1.Equal(j))

	rank3 := newModule(t, fam, z, z, z, k.One())
	_, err = rank3.JInvariant()
	require.ErrorIs(t, err, drinfeldErrors.ErrRankNotTwo)
	_, err = phi.JInvariantAt(0)
	require.ErrorIs(t, err, drinfeldErrors.ErrIndexOutOfRange)
	_, err = phi.JInvariantAt(2)
	require.ErrorIs(t, err, drinfeldErrors.ErrIndexOutOfRange)
}

func TestJInvariantOf(t *testing.T) {
	fam, a, frac := genericFamily(t, 5)
	phi := newModule(t, fam,
		frac.Gen(),          // T
		fp(frac, a, 0, 0, 1), // T^2
		frac.One(),
		fp(frac, a, 1, 1), // T + 1
		fp(frac, a, 0, 0, 0, 1), // T^3
	)

	// (4, 3, 7) violates the weight-0 condition; without checking it
	// evaluates to (T^2)^4 * 1^3 / (T^3)^7 = 1/T^13.
	p := Parameter{Indices: []int{1, 2}, Exponents: []*big.Int{big.NewInt(4), big.NewInt(3), big.NewInt(7)}}
	_, err := phi.JInvariantOf(p, true)
	require.ErrorIs(t, err, drinfeldErrors.ErrInvalidParameter)
	j, err := phi.JInvariantOf(p, false)
	require.NoError(t, err)
	want, err := frac.FromFraction(a.One(), a.Gen().Pow(13))
	require.NoError(t, err)
	assert.True(t, j.Equal(want))

	// A weight-0 parameter passes the check and matches JInvariantAt.
	single := Parameter{Indices: []int{1}, Exponents: []*big.Int{big.NewInt(156), big.NewInt(1)}}
	j, err = phi.JInvariantOf(single, true)
	require.NoError(t, err)
	jAt, err := phi.JInvariantAt(1)
	require.NoError(t, err)
	assert.True(t, j.Equal(jAt))

	_, err = phi.JInvariantOf(Parameter{Indices: []int{1, 10}, Exponents: []*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}}, false)
	require.ErrorIs(t, err, drinfeldErrors.ErrInvalidIndices)
	_, err = phi.JInvariantOf(Parameter{Indices: []int{1}, Exponents: []*big.Int{big.NewInt(1)}}, false)
	require.ErrorIs(t, err, drinfeldErrors.ErrInvalidParameter)
	_, err = phi.JInvariantOf(Parameter{Indices: []int{1}, Exponents: []*big.Int{big.NewInt(-1), big.NewInt(1)}}, false)
	require.ErrorIs(t, err, drinfeldErrors.ErrInvalidParameter)
}

func TestBasicJInvariantParameters(t *testing.T) {
	fam, a, frac := genericFamily(t, 5)
	phi := newModule(t, fam,
		frac.Gen(),
		frac.Zero(),
		fp(frac, a, 1, 1),    // T + 1
		fp(frac, a, 1, 0, 1), // T^2 + 1
	)

	params, err := phi.BasicJInvariantParameters(nil, false)
	require.NoError(t, err)
	require.Len(t, params, 20)
	var got [][]int64
	for _, p := range params {
		assert.Equal(t, []int{1, 2}, p.Indices)
		got = append(got, expInts(t, p))
	}
	assert.ElementsMatch(t, [][]int64{
		{1, 5, 1}, {7, 4, 1}, {13, 3, 1}, {19, 2, 1}, {25, 1, 1}, {31, 0, 1},
		{8, 9, 2}, {20, 7, 2},
		{9, 14, 3}, {15, 13, 3}, {27, 11, 3},
		{10, 19, 4}, {22, 17, 4},
		{11, 24, 5}, {17, 23, 5}, {23, 22, 5}, {29, 21, 5},
		{0, 31, 6}, {12, 29, 6},
		{31, 31, 7},
	}, got)

	// g1 == 0: the nonzero filter leaves only index 2.
	nz, err := phi.BasicJInvariantParameters(nil, true)
	require.NoError(t, err)
	require.Len(t, nz, 1)
	assert.Equal(t, []int{2}, nz[0].Indices)
	assert.Equal(t, []int64{31, 6}, expInts(t, nz[0]))

	only1, err := phi.BasicJInvariantParameters([]int{1}, false)
	require.NoError(t, err)
	require.Len(t, only1, 1)
	assert.Equal(t, []int64{31, 1}, expInts(t, only1[0]))

	for _, bad := range [][]int{{1, 10}, {0, 1}, {1, 1}, {2, 1}} {
		_, err = phi.BasicJInvariantParameters(bad, false)
		require.ErrorIs(t, err, drinfeldErrors.ErrInvalidIndices, "indices %v", bad)
	}

	// Rank 2 over GF(5): the unique basic parameter is (6, 1).
	fam5 := finiteFamily(t, 5, 1)
	f5 := fam5.BaseField()
	psi := newModule(t, fam5, f5.One(), f5.One(), f5.One())
	p5, err := psi.BasicJInvariantParameters(nil, false)
	require.NoError(t, err)
	require.Len(t, p5, 1)
	assert.Equal(t, []int{1}, p5[0].Indices)
	assert.Equal(t, []int64{6, 1}, expInts(t, p5[0]))
}

func TestBasicJInvariants(t *testing.T) {
	fam := finiteFamily(t, 2, 1)
	fq := fam.BaseField()
	phi := newModule(t, fam, fq.One(), fq.One(), fq.One())

	invs, err := phi.BasicJInvariants()
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, []int{1}, invs[0].Parameter.Indices)
	assert.Equal(t, []int64{3, 1}, expInts(t, invs[0].Parameter))
	assert.True(t, invs[0].Value.IsOne())
}

func TestIsIsomorphic(t *testing.T) {
	fam, a, frac := genericFamily(t, 5)
	T := frac.Gen()
	one := frac.One()

	phi := newModule(t, fam, T, one, one)
	same, err := phi.IsIsomorphic(phi)
	require.NoError(t, err)
	assert.True(t, same)

	// Twisting by u = T scales g1 by u^(q-1) and g2 by u^(q^2-1).
	psi := newModule(t, fam, T, fp(frac, a, 0, 0, 0, 0, 1), frac.FromPoly(a.Gen().Pow(24)))
	isom, err := phi.IsIsomorphic(psi)
	require.NoError(t, err)
	assert.True(t, isom)

	diff := newModule(t, fam, T, T, one)
	isom, err = phi.IsIsomorphic(diff)
	require.NoError(t, err)
	assert.False(t, isom)

	rank1 := newModule(t, fam, T, one)
	isom, err = phi.IsIsomorphic(rank1)
	require.NoError(t, err)
	assert.False(t, isom, "rank mismatch")

	rank1b := newModule(t, fam, T, T)
	isom, err = rank1.IsIsomorphic(rank1b)
	require.NoError(t, err)
	assert.True(t, isom, "rank 1 modules are all isomorphic")

	// Differing zero patterns short-circuit to false.
	patterned := newModule(t, fam, T, one, frac.Zero(), one)
	full := newModule(t, fam, T, one, one, one)
	isom, err = patterned.IsIsomorphic(full)
	require.NoError(t, err)
	assert.False(t, isom)

	// Modules of distinct families are never isomorphic.
	fam2, _, frac2 := genericFamily(t, 5)
	foreign := newModule(t, fam2, frac2.Gen(), frac2.One(), frac2.One())
	isom, err = phi.IsIsomorphic(foreign)
	require.NoError(t, err)
	assert.False(t, isom)
}
