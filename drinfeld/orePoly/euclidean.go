package orePoly

import (
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
)

// RightQuoRem performs right Euclidean division: it returns (quo, rem) with
//
//	a = quo * b + rem  and  deg(rem) < deg(b).
//
// The pair is unique. At each step the leading term of the running
// remainder, r * tau^n, is cancelled by subtracting (c * tau^(n-m)) * b with
// c = r / sigma^(n-m)(lead(b)); the division in K is possible because K is
// a field. Fails with ErrDivisionByZero for b == 0.
func (a Poly) RightQuoRem(b Poly) (Poly, Poly, error) {
	a.sameRing(b)
	if b.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	m := b.Degree()
	if a.Degree() < m {
		return a.ring.Zero(), a, nil
	}
	rem := a.Coefficients()
	quo := make([]fieldElements.Element, a.Degree()-m+1)
	zero := a.ring.k.Zero()
	for i := range quo {
		quo[i] = zero
	}
	lead := b.Leading()
	for n := len(rem) - 1; n >= m; n-- {
		if rem[n].IsZero() {
			continue
		}
		c := rem[n].Mul(a.ring.Twist(lead, n-m).Inv())
		quo[n-m] = c
		// rem -= (c tau^(n-m)) * b
		for j := 0; j <= m; j++ {
			rem[n-m+j] = rem[n-m+j].Sub(c.Mul(a.ring.Twist(b.coeffs[j], n-m)))
		}
	}
	return a.ring.fromSlice(quo), a.ring.fromSlice(rem), nil
}

// RightDivides reports whether b right-divides a, i.e. a = q * b for some
// twisted polynomial q. The zero polynomial right-divides only itself.
func (b Poly) RightDivides(a Poly) bool {
	a.sameRing(b)
	if b.IsZero() {
		return a.IsZero()
	}
	_, rem, err := a.RightQuoRem(b)
	return err == nil && rem.IsZero()
}
