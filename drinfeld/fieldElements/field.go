// Package fieldElements implements the field arithmetic consumed by the
// twisted polynomial and Drinfeld module packages.
//
// Fields are built as towers: a prime field GF(p) at the bottom and
// arbitrary extension fields stacked on top of it, each represented by
// coefficient vectors modulo a monic irreducible polynomial over its base.
// The fraction field Fq(T) (an infinite field over a finite constant field)
// lives in the functionRing package and implements the same interfaces.
//
// Elements are immutable values: every arithmetic method returns a fresh
// Element and never modifies its receiver or arguments. This matches the
// resource model of the consuming packages, where all derived objects are
// pure functions of immutable state.
package fieldElements

import (
	"math/big"
	"math/rand"
)

// Element is an element of a Field. The concrete dynamic type is determined
// by the field the element belongs to; elements of different fields must not
// be mixed in a single operation (the implementations panic with
// ErrMixedFields). Use Coerce to move elements along an extension tower.
type Element interface {
	// Field returns the field this element belongs to.
	Field() Field

	Add(Element) Element
	Sub(Element) Element
	Mul(Element) Element
	Neg() Element

	// Inv returns the multiplicative inverse. Inv panics with
	// ErrDivisionByZero on the zero element; callers are expected to check
	// IsZero first where zero input is reachable.
	Inv() Element

	// Pow returns the e-th power, with negative exponents going through Inv.
	// Pow(0) is One, also for the zero element.
	Pow(e *big.Int) Element

	IsZero() bool
	IsOne() bool

	// Equal reports whether the two elements belong to the same field and
	// are equal. Elements of different fields are never equal.
	Equal(Element) bool

	String() string
}

// Field describes a field of an extension tower. Implementations are
// pointer-shaped; two Field interface values describe the same field exactly
// if they are ==.
type Field interface {
	Zero() Element
	One() Element

	// FromInt returns the image of the integer n under the unique ring
	// morphism Z -> field.
	FromInt(n int64) Element

	// Characteristic returns the characteristic p. Callers must not modify
	// the returned value.
	Characteristic() *big.Int

	// Order returns the number of elements, or nil for an infinite field.
	// Callers must not modify the returned value.
	Order() *big.Int

	IsFinite() bool

	// BaseField returns the field this field is an extension of, or nil for
	// a prime field.
	BaseField() Field

	// ExtensionDegree returns the degree over BaseField. A prime field has
	// degree 1 (over itself); an infinite extension reports 0.
	ExtensionDegree() int

	// Embed lifts an element of BaseField into this field. It panics with
	// ErrMixedFields if x does not belong to BaseField.
	Embed(x Element) Element

	// Retract is the partial inverse of Embed: it expresses x (an element of
	// this field) as an element of BaseField if x lies in the image of Embed,
	// and reports success in the second return value.
	Retract(x Element) (Element, bool)

	// Rand returns a uniformly random element for finite fields and an
	// unspecified distribution of small elements otherwise. Used for
	// sampling in tests; not cryptographic.
	Rand(rnd *rand.Rand) Element

	String() string
}

// Coerce maps x into the field `into`, walking up the extension tower from
// the field of x. It fails with ErrNoCoercion if x's field is not reachable
// from `into` via BaseField.
func Coerce(x Element, into Field) (Element, error) {
	if x.Field() == into {
		return x, nil
	}
	base := into.BaseField()
	if base == nil {
		return nil, ErrNoCoercion
	}
	y, err := Coerce(x, base)
	if err != nil {
		return nil, err
	}
	return into.Embed(y), nil
}

// RetractTo expresses x as an element of the subfield `down`, failing with
// ErrNoCoercion if x does not lie in (the embedded image of) that subfield.
func RetractTo(x Element, down Field) (Element, error) {
	for x.Field() != down {
		f := x.Field()
		if f.BaseField() == nil {
			return nil, ErrNoCoercion
		}
		y, ok := f.Retract(x)
		if !ok {
			return nil, ErrNoCoercion
		}
		x = y
	}
	return x, nil
}

// DegreeOver returns the extension degree of k over base, walking the tower.
// The second return value is false if base is not a subfield of k. A degree
// of 0 with ok == true means the extension is infinite.
func DegreeOver(k Field, base Field) (deg int, ok bool) {
	deg = 1
	for k != base {
		d := k.ExtensionDegree()
		k = k.BaseField()
		if k == nil {
			return 0, false
		}
		if d == 0 {
			// Infinite step; still check reachability below.
			deg = 0
			continue
		}
		if deg != 0 {
			deg *= d
		}
	}
	return deg, true
}

// genericPow is square-and-multiply on an arbitrary Element. Exponent e >= 0.
func genericPow(x Element, e *big.Int) Element {
	one := x.Field().One()
	if e.Sign() == 0 {
		return one
	}
	ret := one
	for i := e.BitLen() - 1; i >= 0; i-- {
		ret = ret.Mul(ret)
		if e.Bit(i) == 1 {
			ret = ret.Mul(x)
		}
	}
	return ret
}

// GenericPow computes x^e for any Element, routing negative exponents
// through Inv (and hence panicking with ErrDivisionByZero for x == 0 and
// e < 0). Concrete element types use this as their Pow fallback.
func GenericPow(x Element, e *big.Int) Element {
	if e.Sign() < 0 {
		return genericPow(x.Inv(), new(big.Int).Neg(e))
	}
	return genericPow(x, e)
}
