package functionRing

import (
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Poly is a dense polynomial over the base field of its ring.
//
// The coefficient slice is normalized: no trailing zero coefficients, and
// the zero polynomial has an empty slice. Poly values are immutable; all
// methods return fresh values.
type Poly struct {
	ring   *Ring
	coeffs []fieldElements.Element // low-to-high, normalized
}

// NewPoly builds a polynomial from a low-to-high coefficient slice. All
// coefficients must belong to the ring's base field; trailing zeros are
// trimmed.
func (r *Ring) NewPoly(coeffs []fieldElements.Element) (Poly, error) {
	for _, c := range coeffs {
		if c.Field() != r.base {
			return Poly{}, ErrWrongCoefficientField
		}
	}
	return r.fromSlice(coeffs), nil
}

// FromInts builds a polynomial from integer coefficients, low-to-high,
// mapped into the base field. Convenient for literals in tests and
// examples.
func (r *Ring) FromInts(coeffs ...int64) Poly {
	elems := make([]fieldElements.Element, len(coeffs))
	for i, c := range coeffs {
		elems[i] = r.base.FromInt(c)
	}
	return r.fromSlice(elems)
}

// fromSlice trims and copies. Internal constructor; assumes coefficients
// belong to the base field.
func (r *Ring) fromSlice(coeffs []fieldElements.Element) Poly {
	deg := -1
	for i := len(coeffs) - 1; i >= 0; i-- {
		if !coeffs[i].IsZero() {
			deg = i
			break
		}
	}
	return Poly{ring: r, coeffs: append([]fieldElements.Element(nil), coeffs[:deg+1]...)}
}

func (r *Ring) Zero() Poly { return Poly{ring: r} }
func (r *Ring) One() Poly  { return r.fromSlice([]fieldElements.Element{r.base.One()}) }

// Gen returns the ring variable T.
func (r *Ring) Gen() Poly {
	return r.fromSlice([]fieldElements.Element{r.base.Zero(), r.base.One()})
}

// Ring returns the ring this polynomial belongs to (nil for the zero value
// of Poly, which should not escape).
func (a Poly) Ring() *Ring { return a.ring }

// Degree returns the degree, with -1 for the zero polynomial.
func (a Poly) Degree() int { return len(a.coeffs) - 1 }

func (a Poly) IsZero() bool { return len(a.coeffs) == 0 }

func (a Poly) IsOne() bool { return len(a.coeffs) == 1 && a.coeffs[0].IsOne() }

// Coefficient returns the i-th coefficient, with zero beyond the degree.
// Negative indices panic.
func (a Poly) Coefficient(i int) fieldElements.Element {
	utils.Assert(i >= 0, ErrorPrefix+"negative coefficient index")
	if i >= len(a.coeffs) {
		return a.ring.base.Zero()
	}
	return a.coeffs[i]
}

// Coefficients returns a copy of the normalized coefficient slice.
func (a Poly) Coefficients() []fieldElements.Element {
	return append([]fieldElements.Element(nil), a.coeffs...)
}

// Leading returns the leading coefficient; it panics on the zero
// polynomial.
func (a Poly) Leading() fieldElements.Element {
	utils.Assert(!a.IsZero(), ErrorPrefix+"leading coefficient of the zero polynomial")
	return a.coeffs[len(a.coeffs)-1]
}

// IsMonic reports whether the leading coefficient is one. The zero
// polynomial is not monic.
func (a Poly) IsMonic() bool {
	return !a.IsZero() && a.Leading().IsOne()
}

func (a Poly) sameRing(b Poly) {
	if a.ring != b.ring {
		panic(ErrMixedRings)
	}
}

func (a Poly) Add(b Poly) Poly {
	a.sameRing(b)
	n := len(a.coeffs)
	if len(b.coeffs) > n {
		n = len(b.coeffs)
	}
	sum := make([]fieldElements.Element, n)
	zero := a.ring.base.Zero()
	for i := 0; i < n; i++ {
		x, y := zero, zero
		if i < len(a.coeffs) {
			x = a.coeffs[i]
		}
		if i < len(b.coeffs) {
			y = b.coeffs[i]
		}
		sum[i] = x.Add(y)
	}
	return a.ring.fromSlice(sum)
}

func (a Poly) Neg() Poly {
	neg := make([]fieldElements.Element, len(a.coeffs))
	for i, c := range a.coeffs {
		neg[i] = c.Neg()
	}
	return Poly{ring: a.ring, coeffs: neg}
}

func (a Poly) Sub(b Poly) Poly {
	return a.Add(b.Neg())
}

func (a Poly) Mul(b Poly) Poly {
	a.sameRing(b)
	if a.IsZero() || b.IsZero() {
		return a.ring.Zero()
	}
	prod := make([]fieldElements.Element, len(a.coeffs)+len(b.coeffs)-1)
	zero := a.ring.base.Zero()
	for i := range prod {
		prod[i] = zero
	}
	for i, x := range a.coeffs {
		if x.IsZero() {
			continue
		}
		for j, y := range b.coeffs {
			prod[i+j] = prod[i+j].Add(x.Mul(y))
		}
	}
	return a.ring.fromSlice(prod)
}

// ScalarMul multiplies every coefficient by c (an element of the base
// field).
func (a Poly) ScalarMul(c fieldElements.Element) Poly {
	if c.Field() != a.ring.base {
		panic(ErrMixedRings)
	}
	prod := make([]fieldElements.Element, len(a.coeffs))
	for i, x := range a.coeffs {
		prod[i] = x.Mul(c)
	}
	return a.ring.fromSlice(prod)
}

// Pow returns a^n for n >= 0 by square-and-multiply.
func (a Poly) Pow(n int) Poly {
	utils.Assert(n >= 0, ErrorPrefix+"negative exponent")
	ret := a.ring.One()
	sq := a
	for n > 0 {
		if n&1 == 1 {
			ret = ret.Mul(sq)
		}
		n >>= 1
		if n > 0 {
			sq = sq.Mul(sq)
		}
	}
	return ret
}

// QuoRem divides a by b, returning (quo, rem) with a = quo*b + rem and
// deg(rem) < deg(b). It fails with ErrDivisionByZero for b == 0.
func (a Poly) QuoRem(b Poly) (Poly, Poly, error) {
	a.sameRing(b)
	if b.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	if a.Degree() < b.Degree() {
		return a.ring.Zero(), a, nil
	}
	rem := a.Coefficients()
	quo := make([]fieldElements.Element, a.Degree()-b.Degree()+1)
	zero := a.ring.base.Zero()
	for i := range quo {
		quo[i] = zero
	}
	leadInv := b.Leading().Inv()
	db := b.Degree()
	for d := len(rem) - 1; d >= db; d-- {
		if rem[d].IsZero() {
			continue
		}
		c := rem[d].Mul(leadInv)
		quo[d-db] = c
		for j := 0; j <= db; j++ {
			rem[d-db+j] = rem[d-db+j].Sub(c.Mul(b.coeffs[j]))
		}
	}
	return a.ring.fromSlice(quo), a.ring.fromSlice(rem), nil
}

// Monic returns the polynomial scaled to leading coefficient one; the zero
// polynomial is returned unchanged.
func (a Poly) Monic() Poly {
	if a.IsZero() || a.IsMonic() {
		return a
	}
	return a.ScalarMul(a.Leading().Inv())
}

// Gcd returns the monic greatest common divisor of a and b, with
// Gcd(0, 0) == 0.
func (a Poly) Gcd(b Poly) Poly {
	a.sameRing(b)
	for !b.IsZero() {
		_, r, err := a.QuoRem(b)
		utils.Assert(err == nil)
		a, b = b, r
	}
	return a.Monic()
}

// Equal reports whether a and b are the same polynomial of the same ring.
func (a Poly) Equal(b Poly) bool {
	if a.ring != b.ring || len(a.coeffs) != len(b.coeffs) {
		return false
	}
	for i := range a.coeffs {
		if !a.coeffs[i].Equal(b.coeffs[i]) {
			return false
		}
	}
	return true
}

// Evaluate computes a(x) by Horner's rule, where x may live in any
// extension of the base field; coefficients are coerced into x's field.
// This is the image of a under the ring morphism Fq[T] -> K, T |-> x.
func (a Poly) Evaluate(x fieldElements.Element) (fieldElements.Element, error) {
	k := x.Field()
	ret := k.Zero()
	for i := len(a.coeffs) - 1; i >= 0; i-- {
		c, err := fieldElements.Coerce(a.coeffs[i], k)
		if err != nil {
			return nil, err
		}
		ret = ret.Mul(x).Add(c)
	}
	return ret, nil
}

func (a Poly) String() string {
	return fieldElements.FormatPoly(a.coeffs, a.ring.varName)
}
