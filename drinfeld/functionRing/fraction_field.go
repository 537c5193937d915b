package functionRing

import (
	"math/big"
	"math/rand"

	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// FractionField is the field of rational functions Fq(T) over the base
// field of a function ring. It implements fieldElements.Field, with the
// finite field Fq as its base, so it can serve as the coefficient field of
// a twisted polynomial ring whose constant field is Fq.
//
// The base morphism Fq[T] -> Fq(T) is injective, so Drinfeld modules over
// this field have generic characteristic.
type FractionField struct {
	ring *Ring
}

// NewFractionField returns Frac(ring) = Fq(T).
func NewFractionField(ring *Ring) *FractionField {
	return &FractionField{ring: ring}
}

// Ring returns the underlying polynomial ring.
func (f *FractionField) Ring() *Ring { return f.ring }

// fracElement is a reduced fraction num/den: den is monic and
// gcd(num, den) == 1; the zero element is 0/1.
type fracElement struct {
	field    *FractionField
	num, den Poly
}

// reduce normalizes num/den. It panics with ErrDivisionByZero for a zero
// denominator.
func (f *FractionField) reduce(num, den Poly) fracElement {
	if den.IsZero() {
		panic(ErrDivisionByZero)
	}
	if num.IsZero() {
		return fracElement{field: f, num: f.ring.Zero(), den: f.ring.One()}
	}
	g := num.Gcd(den)
	if !g.IsOne() {
		var err error
		num, _, err = num.QuoRem(g)
		utils.Assert(err == nil)
		den, _, err = den.QuoRem(g)
		utils.Assert(err == nil)
	}
	if !den.IsMonic() {
		leadInv := den.Leading().Inv()
		num = num.ScalarMul(leadInv)
		den = den.ScalarMul(leadInv)
	}
	return fracElement{field: f, num: num, den: den}
}

// FromPoly embeds a polynomial as the fraction p/1.
func (f *FractionField) FromPoly(p Poly) fieldElements.Element {
	if p.Ring() != f.ring {
		panic(ErrMixedRings)
	}
	return f.reduce(p, f.ring.One())
}

// FromFraction returns num/den, failing with ErrDivisionByZero for a zero
// denominator.
func (f *FractionField) FromFraction(num, den Poly) (fieldElements.Element, error) {
	if num.Ring() != f.ring || den.Ring() != f.ring {
		panic(ErrMixedRings)
	}
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}
	return f.reduce(num, den), nil
}

// Gen returns the rational function T.
func (f *FractionField) Gen() fieldElements.Element {
	return f.FromPoly(f.ring.Gen())
}

func (f *FractionField) Zero() Element        { return f.reduce(f.ring.Zero(), f.ring.One()) }
func (f *FractionField) One() Element         { return f.reduce(f.ring.One(), f.ring.One()) }
func (f *FractionField) FromInt(n int64) Element {
	return f.reduce(f.ring.FromInts(n), f.ring.One())
}

// Element is a local alias to keep the Field interface methods readable.
type Element = fieldElements.Element

func (f *FractionField) Characteristic() *big.Int { return f.ring.base.Characteristic() }
func (f *FractionField) Order() *big.Int          { return nil }
func (f *FractionField) IsFinite() bool           { return false }
func (f *FractionField) BaseField() fieldElements.Field { return f.ring.base }
func (f *FractionField) ExtensionDegree() int     { return 0 }

func (f *FractionField) Embed(x Element) Element {
	if x.Field() != f.ring.base {
		panic(ErrMixedRings)
	}
	return f.reduce(f.ring.fromSlice([]Element{x}), f.ring.One())
}

func (f *FractionField) Retract(x Element) (Element, bool) {
	xx := f.same(x)
	if !xx.den.IsOne() || xx.num.Degree() > 0 {
		return nil, false
	}
	if xx.num.IsZero() {
		return f.ring.base.Zero(), true
	}
	return xx.num.Coefficient(0), true
}

// Rand returns a rational function with small random numerator and a small
// random nonzero denominator. Used for sampling in tests.
func (f *FractionField) Rand(rnd *rand.Rand) Element {
	randPoly := func(deg int) Poly {
		coeffs := make([]Element, deg+1)
		for i := range coeffs {
			coeffs[i] = f.ring.base.Rand(rnd)
		}
		return f.ring.fromSlice(coeffs)
	}
	num := randPoly(2)
	den := randPoly(1)
	for den.IsZero() {
		den = randPoly(1)
	}
	return f.reduce(num, den)
}

func (f *FractionField) String() string {
	return "Fraction Field of " + f.ring.String()
}

func (f *FractionField) same(x Element) fracElement {
	xx, ok := x.(fracElement)
	if !ok || xx.field != f {
		panic(ErrMixedRings)
	}
	return xx
}

func (x fracElement) Field() fieldElements.Field { return x.field }

func (x fracElement) Add(y Element) Element {
	yy := x.field.same(y)
	num := x.num.Mul(yy.den).Add(yy.num.Mul(x.den))
	return x.field.reduce(num, x.den.Mul(yy.den))
}

func (x fracElement) Sub(y Element) Element {
	return x.Add(y.Neg())
}

func (x fracElement) Mul(y Element) Element {
	yy := x.field.same(y)
	return x.field.reduce(x.num.Mul(yy.num), x.den.Mul(yy.den))
}

func (x fracElement) Neg() Element {
	return fracElement{field: x.field, num: x.num.Neg(), den: x.den}
}

func (x fracElement) Inv() Element {
	if x.num.IsZero() {
		panic(fieldElements.ErrDivisionByZero)
	}
	return x.field.reduce(x.den, x.num)
}

func (x fracElement) Pow(e *big.Int) Element {
	return fieldElements.GenericPow(x, e)
}

func (x fracElement) IsZero() bool { return x.num.IsZero() }

func (x fracElement) IsOne() bool { return x.num.IsOne() && x.den.IsOne() }

func (x fracElement) Equal(y Element) bool {
	yy, ok := y.(fracElement)
	if !ok || yy.field != x.field {
		return false
	}
	return x.num.Equal(yy.num) && x.den.Equal(yy.den)
}

func (x fracElement) String() string {
	if x.den.IsOne() {
		return x.num.String()
	}
	return parenthesize(x.num.String()) + "/" + parenthesize(x.den.String())
}

func parenthesize(s string) string {
	for _, c := range s {
		if c == ' ' || c == '*' {
			return "(" + s + ")"
		}
	}
	return s
}
