package orePoly

import (
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Poly is a twisted polynomial sum_i c_i tau^i with coefficients in K.
//
// The coefficient slice is normalized: no trailing zero coefficients, and
// the zero polynomial has an empty slice. Poly values are immutable.
type Poly struct {
	ring   *Ring
	coeffs []fieldElements.Element // low-to-high, normalized
}

// NewPoly builds a twisted polynomial from a low-to-high coefficient slice.
// Coefficients may live in K or in any subfield of K reachable through the
// extension tower; they are coerced into K. Trailing zeros are trimmed.
func (r *Ring) NewPoly(coeffs []fieldElements.Element) (Poly, error) {
	lifted := make([]fieldElements.Element, len(coeffs))
	for i, c := range coeffs {
		l, err := fieldElements.Coerce(c, r.k)
		if err != nil {
			return Poly{}, err
		}
		lifted[i] = l
	}
	return r.fromSlice(lifted), nil
}

// fromSlice trims trailing zeros. Internal; assumes coefficients are in K.
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
func (r *Ring) One() Poly  { return r.fromSlice([]fieldElements.Element{r.k.One()}) }

// Gen returns the twist variable tau.
func (r *Ring) Gen() Poly {
	return r.fromSlice([]fieldElements.Element{r.k.Zero(), r.k.One()})
}

// Monomial returns c * tau^n. The coefficient is coerced into K.
func (r *Ring) Monomial(c fieldElements.Element, n int) (Poly, error) {
	utils.Assert(n >= 0, ErrorPrefix+"negative monomial degree")
	lifted, err := fieldElements.Coerce(c, r.k)
	if err != nil {
		return Poly{}, err
	}
	coeffs := make([]fieldElements.Element, n+1)
	zero := r.k.Zero()
	for i := 0; i < n; i++ {
		coeffs[i] = zero
	}
	coeffs[n] = lifted
	return r.fromSlice(coeffs), nil
}

// Ring returns the twisted polynomial ring this polynomial belongs to.
func (a Poly) Ring() *Ring { return a.ring }

// Degree returns the tau-degree, with -1 for the zero polynomial.
func (a Poly) Degree() int { return len(a.coeffs) - 1 }

func (a Poly) IsZero() bool { return len(a.coeffs) == 0 }

func (a Poly) IsOne() bool { return len(a.coeffs) == 1 && a.coeffs[0].IsOne() }

// Valuation returns the index of the lowest nonzero coefficient. The second
// return value is false for the zero polynomial (whose valuation is +inf).
func (a Poly) Valuation() (int, bool) {
	for i, c := range a.coeffs {
		if !c.IsZero() {
			return i, true
		}
	}
	return 0, false
}

// Coefficient returns the i-th coefficient, with zero beyond the degree.
// Negative indices panic.
func (a Poly) Coefficient(i int) fieldElements.Element {
	utils.Assert(i >= 0, ErrorPrefix+"negative coefficient index")
	if i >= len(a.coeffs) {
		return a.ring.k.Zero()
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
	zero := a.ring.k.Zero()
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

// Mul is the twisted product:
//
//	(sum_i a_i tau^i)(sum_j b_j tau^j) = sum_{i,j} a_i * sigma^i(b_j) * tau^(i+j)
//
// with sigma(x) = x^q. Cost is O(deg a * deg b) coefficient multiplications
// plus as many twist applications.
func (a Poly) Mul(b Poly) Poly {
	a.sameRing(b)
	if a.IsZero() || b.IsZero() {
		return a.ring.Zero()
	}
	prod := make([]fieldElements.Element, len(a.coeffs)+len(b.coeffs)-1)
	zero := a.ring.k.Zero()
	for i := range prod {
		prod[i] = zero
	}
	for i, x := range a.coeffs {
		if x.IsZero() {
			continue
		}
		for j, y := range b.coeffs {
			if y.IsZero() {
				continue
			}
			prod[i+j] = prod[i+j].Add(x.Mul(a.ring.Twist(y, i)))
		}
	}
	return a.ring.fromSlice(prod)
}

// ScalarMulLeft multiplies from the left by a scalar c in K: c * a. Left
// multiplication by scalars is coefficient-wise; no twist is applied.
func (a Poly) ScalarMulLeft(c fieldElements.Element) Poly {
	lifted, err := fieldElements.Coerce(c, a.ring.k)
	if err != nil {
		panic(ErrMixedRings)
	}
	prod := make([]fieldElements.Element, len(a.coeffs))
	for i, x := range a.coeffs {
		prod[i] = lifted.Mul(x)
	}
	return a.ring.fromSlice(prod)
}

// Equal reports whether a and b are the same twisted polynomial of the same
// ring.
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

func (a Poly) String() string {
	return fieldElements.FormatPoly(a.coeffs, a.ring.varName)
}
