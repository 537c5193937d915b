package fieldElements

// Internal dense polynomial arithmetic on coefficient slices over an
// arbitrary base field. This is what extension field elements are made of;
// the public commutative polynomial type (with a ring attached) lives in the
// functionRing package.
//
// Convention: coefficient slices are low-to-high and need not be normalized;
// polyDeg skips trailing zeros. The zero polynomial has degree -1.

func polyDeg(a []Element) int {
	for i := len(a) - 1; i >= 0; i-- {
		if !a[i].IsZero() {
			return i
		}
	}
	return -1
}

func polyTrim(a []Element) []Element {
	return a[:polyDeg(a)+1]
}

func polyAdd(f Field, a, b []Element) []Element {
	if len(b) > len(a) {
		a, b = b, a
	}
	ret := make([]Element, len(a))
	for i := range a {
		if i < len(b) {
			ret[i] = a[i].Add(b[i])
		} else {
			ret[i] = a[i]
		}
	}
	return ret
}

func polySub(f Field, a, b []Element) []Element {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	ret := make([]Element, n)
	zero := f.Zero()
	for i := 0; i < n; i++ {
		x, y := zero, zero
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		ret[i] = x.Sub(y)
	}
	return ret
}

func polyMul(f Field, a, b []Element) []Element {
	da, db := polyDeg(a), polyDeg(b)
	if da < 0 || db < 0 {
		return nil
	}
	ret := make([]Element, da+db+1)
	zero := f.Zero()
	for i := range ret {
		ret[i] = zero
	}
	for i := 0; i <= da; i++ {
		if a[i].IsZero() {
			continue
		}
		for j := 0; j <= db; j++ {
			ret[i+j] = ret[i+j].Add(a[i].Mul(b[j]))
		}
	}
	return ret
}

func polyScale(c Element, a []Element) []Element {
	ret := make([]Element, len(a))
	for i := range a {
		ret[i] = c.Mul(a[i])
	}
	return ret
}

// polyQuoRem divides a by b (b nonzero), returning quotient and remainder
// with deg(rem) < deg(b).
func polyQuoRem(f Field, a, b []Element) (quo, rem []Element) {
	db := polyDeg(b)
	if db < 0 {
		panic(ErrDivisionByZero)
	}
	rem = polyTrim(append([]Element(nil), a...))
	da := polyDeg(rem)
	if da < db {
		return nil, rem
	}
	leadInv := b[db].Inv()
	quo = make([]Element, da-db+1)
	zero := f.Zero()
	for i := range quo {
		quo[i] = zero
	}
	for polyDeg(rem) >= db {
		d := polyDeg(rem)
		c := rem[d].Mul(leadInv)
		quo[d-db] = c
		for j := 0; j <= db; j++ {
			rem[d-db+j] = rem[d-db+j].Sub(c.Mul(b[j]))
		}
		rem = polyTrim(rem)
	}
	return quo, rem
}

// polyMonic scales a nonzero polynomial to leading coefficient one.
func polyMonic(a []Element) []Element {
	d := polyDeg(a)
	if d < 0 {
		return nil
	}
	if a[d].IsOne() {
		return polyTrim(a)
	}
	return polyScale(a[d].Inv(), polyTrim(a))
}

// polyGcdMonic returns the monic gcd of a and b (zero polynomial if both
// are zero).
func polyGcdMonic(f Field, a, b []Element) []Element {
	a = polyTrim(append([]Element(nil), a...))
	b = polyTrim(append([]Element(nil), b...))
	for polyDeg(b) >= 0 {
		_, r := polyQuoRem(f, a, b)
		a, b = b, r
	}
	return polyMonic(a)
}

// polyInvMod returns the inverse of a modulo m (extended Euclid), assuming
// gcd(a, m) = 1. It panics with ErrDivisionByZero if a is zero modulo m and
// asserts coprimality otherwise.
func polyInvMod(f Field, a, m []Element) []Element {
	// Invariant: r0 = u0 * a (mod m), r1 = u1 * a (mod m).
	r0 := polyTrim(append([]Element(nil), a...))
	r1 := polyTrim(append([]Element(nil), m...))
	if polyDeg(r0) < 0 {
		panic(ErrDivisionByZero)
	}
	u0 := []Element{f.One()}
	u1 := []Element(nil)
	for polyDeg(r1) >= 0 {
		q, r := polyQuoRem(f, r0, r1)
		r0, r1 = r1, r
		u0, u1 = u1, polySub(f, u0, polyMul(f, q, u1))
	}
	// r0 is now gcd(a, m); it must be a nonzero constant.
	d := polyDeg(r0)
	if d != 0 {
		panic(ErrorPrefix + "polyInvMod: element is not invertible modulo m")
	}
	return polyScale(r0[0].Inv(), u0)
}
