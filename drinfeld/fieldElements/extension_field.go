package fieldElements

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// ExtensionField is the field base[t]/(modulus) for a monic irreducible
// modulus over an arbitrary base field. Elements are dense coefficient
// vectors of length deg(modulus) over the base.
type ExtensionField struct {
	base    Field
	modulus []Element // monic, length deg+1
	deg     int
	varName string
	char    *big.Int
	order   *big.Int // nil if the base field is infinite
}

// NewExtensionField constructs base[varName]/(modulus). The modulus is given
// as a low-to-high coefficient slice over base and is normalized to monic
// form. For a finite base field the modulus is verified to be irreducible
// (Rabin's test); construction fails with ErrReducibleModulus otherwise.
// Over an infinite base irreducibility is the caller's responsibility.
func NewExtensionField(base Field, modulus []Element, varName string) (*ExtensionField, error) {
	for _, c := range modulus {
		if c.Field() != base {
			return nil, ErrInvalidModulus
		}
	}
	deg := polyDeg(modulus)
	if deg < 1 {
		return nil, ErrInvalidModulus
	}
	f := &ExtensionField{
		base:    base,
		modulus: polyMonic(modulus),
		deg:     deg,
		varName: varName,
		char:    base.Characteristic(),
	}
	if base.IsFinite() {
		f.order = utils.BigPow(base.Order(), deg)
		if deg > 1 && !f.modulusIrreducible() {
			return nil, ErrReducibleModulus
		}
	}
	return f, nil
}

// NewFiniteField returns the field GF(p^m), built over GF(p) with the
// lexicographically smallest irreducible monic modulus. The choice of
// modulus is deterministic, so repeated calls with the same (p, m) give
// structurally identical (but distinct) fields.
func NewFiniteField(p uint64, m int) (Field, error) {
	base, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	if m == 1 {
		return base, nil
	}
	return NewFiniteExtension(base, m, fmt.Sprintf("z%d", m))
}

// NewFiniteExtension returns a degree-m extension of the given finite base
// field, using the lexicographically smallest irreducible monic modulus.
// Use this (rather than NewFiniteField) when the new field must sit on top
// of an already existing field instance, e.g. to build the coefficient field
// K of a twisted polynomial ring over its constant field Fq.
func NewFiniteExtension(base Field, m int, varName string) (*ExtensionField, error) {
	if !base.IsFinite() {
		return nil, ErrInvalidModulus
	}
	if m < 1 {
		return nil, ErrInvalidModulus
	}
	// Enumerate lower coefficient vectors (c_0, ..., c_{m-1}) in base-q
	// counting order, materialized through elementOfIndex; the first
	// irreducible t^m + sum c_i t^i wins. Irreducible polynomials are
	// dense, so the search is short.
	q := base.Order()
	modulus := make([]Element, m+1)
	bound := utils.BigPow(q, m)
	for n := new(big.Int).SetInt64(1); n.Cmp(bound) < 0; n.Add(n, big.NewInt(1)) {
		digits := new(big.Int).Set(n)
		rem := new(big.Int)
		for i := 0; i < m; i++ {
			digits.QuoRem(digits, q, rem)
			modulus[i] = elementOfIndex(base, rem)
		}
		modulus[m] = base.One()
		f, err := NewExtensionField(base, modulus, varName)
		if err == nil {
			return f, nil
		}
	}
	return nil, ErrNoSearchSpace
}

// elementOfIndex maps an integer in [0, |base|) to a field element, by
// base-p digits along the tower. Index 0 is zero and index 1 is one; the
// ordering of the remaining elements is unspecified but fixed.
func elementOfIndex(base Field, idx *big.Int) Element {
	if prime, ok := base.(*PrimeField); ok {
		return prime.FromInt(idx.Int64())
	}
	ext := base.(*ExtensionField)
	sub := ext.base
	subOrder := sub.Order()
	digits := new(big.Int).Set(idx)
	rem := new(big.Int)
	coeffs := make([]Element, ext.deg)
	for i := range coeffs {
		digits.QuoRem(digits, subOrder, rem)
		coeffs[i] = elementOfIndex(sub, rem)
	}
	return ext.element(coeffs)
}

type extElement struct {
	field  *ExtensionField
	coeffs []Element // dense, length field.deg, over field.base
}

func (f *ExtensionField) element(coeffs []Element) extElement {
	utils.Assert(len(coeffs) == f.deg)
	return extElement{field: f, coeffs: coeffs}
}

// fromSlice reduces an arbitrary-length coefficient slice modulo the modulus
// and pads it to full length.
func (f *ExtensionField) fromSlice(coeffs []Element) extElement {
	if polyDeg(coeffs) >= f.deg {
		_, coeffs = polyQuoRem(f.base, coeffs, f.modulus)
	}
	ret := make([]Element, f.deg)
	zero := f.base.Zero()
	for i := range ret {
		if i < len(coeffs) {
			ret[i] = coeffs[i]
		} else {
			ret[i] = zero
		}
	}
	return f.element(ret)
}

func (f *ExtensionField) Zero() Element {
	return f.fromSlice(nil)
}

func (f *ExtensionField) One() Element {
	return f.fromSlice([]Element{f.base.One()})
}

func (f *ExtensionField) FromInt(n int64) Element {
	return f.fromSlice([]Element{f.base.FromInt(n)})
}

// Gen returns the residue class of the variable, i.e. a root of the modulus.
func (f *ExtensionField) Gen() Element {
	return f.fromSlice([]Element{f.base.Zero(), f.base.One()})
}

// Modulus returns a copy of the (monic) modulus polynomial over the base
// field, low-to-high.
func (f *ExtensionField) Modulus() []Element {
	return append([]Element(nil), f.modulus...)
}

func (f *ExtensionField) Characteristic() *big.Int { return f.char }
func (f *ExtensionField) Order() *big.Int          { return f.order }
func (f *ExtensionField) IsFinite() bool           { return f.order != nil }
func (f *ExtensionField) BaseField() Field         { return f.base }
func (f *ExtensionField) ExtensionDegree() int     { return f.deg }

func (f *ExtensionField) Embed(x Element) Element {
	if x.Field() != f.base {
		panic(ErrMixedFields)
	}
	return f.fromSlice([]Element{x})
}

func (f *ExtensionField) Retract(x Element) (Element, bool) {
	xx, ok := x.(extElement)
	if !ok || xx.field != f {
		panic(ErrMixedFields)
	}
	for _, c := range xx.coeffs[1:] {
		if !c.IsZero() {
			return nil, false
		}
	}
	return xx.coeffs[0], true
}

func (f *ExtensionField) Rand(rnd *rand.Rand) Element {
	coeffs := make([]Element, f.deg)
	for i := range coeffs {
		coeffs[i] = f.base.Rand(rnd)
	}
	return f.element(coeffs)
}

func (f *ExtensionField) String() string {
	if f.order != nil {
		return fmt.Sprintf("Finite Field in %s of size %v", f.varName, f.order)
	}
	return fmt.Sprintf("Extension in %s of degree %d over %v", f.varName, f.deg, f.base)
}

// modulusIrreducible runs Rabin's irreducibility test: with q the base field
// order and m the degree, the modulus is irreducible iff t^(q^m) == t and
// gcd(t^(q^(m/l)) - t, modulus) == 1 for every prime divisor l of m.
// The arithmetic below only uses reduction modulo the modulus, which is
// well-defined whether or not the modulus is irreducible.
func (f *ExtensionField) modulusIrreducible() bool {
	q := f.base.Order()
	t := f.Gen().(extElement)
	frob := func(x extElement, k int) extElement {
		for i := 0; i < k; i++ {
			x = genericPow(x, q).(extElement)
		}
		return x
	}
	if !frob(t, f.deg).Equal(t) {
		return false
	}
	for _, l := range primeDivisors(f.deg) {
		u := frob(t, f.deg/l)
		diff := polySub(f.base, u.coeffs, t.coeffs)
		g := polyGcdMonic(f.base, diff, f.modulus)
		if polyDeg(g) != 0 {
			return false
		}
	}
	return true
}

func primeDivisors(n int) []int {
	var ret []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			ret = append(ret, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		ret = append(ret, n)
	}
	return ret
}

func (x extElement) Field() Field { return x.field }

func (x extElement) same(y Element) extElement {
	yy, ok := y.(extElement)
	if !ok || yy.field != x.field {
		panic(ErrMixedFields)
	}
	return yy
}

func (x extElement) Add(y Element) Element {
	yy := x.same(y)
	coeffs := make([]Element, x.field.deg)
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Add(yy.coeffs[i])
	}
	return x.field.element(coeffs)
}

func (x extElement) Sub(y Element) Element {
	yy := x.same(y)
	coeffs := make([]Element, x.field.deg)
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Sub(yy.coeffs[i])
	}
	return x.field.element(coeffs)
}

func (x extElement) Neg() Element {
	coeffs := make([]Element, x.field.deg)
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Neg()
	}
	return x.field.element(coeffs)
}

func (x extElement) Mul(y Element) Element {
	yy := x.same(y)
	return x.field.fromSlice(polyMul(x.field.base, x.coeffs, yy.coeffs))
}

func (x extElement) Inv() Element {
	if x.IsZero() {
		panic(ErrDivisionByZero)
	}
	return x.field.fromSlice(polyInvMod(x.field.base, x.coeffs, x.field.modulus))
}

func (x extElement) Pow(e *big.Int) Element {
	if x.field.order != nil && !x.IsZero() {
		// The multiplicative group has order |F| - 1.
		groupOrder := new(big.Int).Sub(x.field.order, big.NewInt(1))
		e = new(big.Int).Mod(e, groupOrder)
		return genericPow(x, e)
	}
	return GenericPow(x, e)
}

func (x extElement) IsZero() bool {
	for _, c := range x.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func (x extElement) IsOne() bool {
	if !x.coeffs[0].IsOne() {
		return false
	}
	for _, c := range x.coeffs[1:] {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func (x extElement) Equal(y Element) bool {
	yy, ok := y.(extElement)
	if !ok || yy.field != x.field {
		return false
	}
	for i := range x.coeffs {
		if !x.coeffs[i].Equal(yy.coeffs[i]) {
			return false
		}
	}
	return true
}

func (x extElement) String() string {
	return FormatPoly(x.coeffs, x.field.varName)
}
