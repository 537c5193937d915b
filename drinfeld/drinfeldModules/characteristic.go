package drinfeldModules

import (
	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/functionRing"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Characteristic returns the function field characteristic: the monic
// generator of the kernel of gamma: Fq[T] -> K, T |--> phi_T[0]. This is the
// minimal polynomial of the constant coefficient over Fq. When gamma is
// injective (an infinite K with a constant coefficient transcendental over
// Fq), the kernel is zero and Characteristic fails with
// ErrGenericCharacteristic.
//
// The result is memoized.
func (phi *DrinfeldModule) Characteristic() (functionRing.Poly, error) {
	phi.mu.Lock()
	defer phi.mu.Unlock()
	if !phi.charDone {
		phi.charPoly, phi.charErr = phi.computeCharacteristic()
		phi.charDone = true
	}
	return phi.charPoly, phi.charErr
}

func (phi *DrinfeldModule) computeCharacteristic() (functionRing.Poly, error) {
	a := phi.fam.a
	fq := a.Base()
	g0 := phi.gen.Coefficient(0)

	if !phi.fam.k.IsFinite() {
		// Over an infinite K, gamma has a kernel exactly when the constant
		// coefficient already lies in Fq; the minimal polynomial then is
		// T - g0.
		c, err := fieldElements.RetractTo(g0, fq)
		if err != nil {
			return functionRing.Poly{}, drinfeldErrors.ErrGenericCharacteristic
		}
		return a.NewPoly([]fieldElements.Element{c.Neg(), fq.One()})
	}

	// For finite K the minimal polynomial is the product of X - c over the
	// Frobenius orbit {g0, sigma(g0), sigma^2(g0), ...} of g0; its
	// coefficients are fixed by sigma and therefore retract to Fq.
	k := phi.fam.k
	minpoly := []fieldElements.Element{k.One()}
	for c := g0; ; {
		minpoly = mulLinearFactor(k, minpoly, c)
		c = phi.fam.ore.Twist(c, 1)
		if c.Equal(g0) {
			break
		}
	}
	coeffs := make([]fieldElements.Element, len(minpoly))
	for i, c := range minpoly {
		down, err := fieldElements.RetractTo(c, fq)
		utils.Assert(err == nil, err)
		coeffs[i] = down
	}
	return a.NewPoly(coeffs)
}

// mulLinearFactor multiplies a dense polynomial over k by (X - c).
func mulLinearFactor(k fieldElements.Field, p []fieldElements.Element, c fieldElements.Element) []fieldElements.Element {
	ret := make([]fieldElements.Element, len(p)+1)
	zero := k.Zero()
	for i := range ret {
		ret[i] = zero
	}
	for i, x := range p {
		ret[i+1] = ret[i+1].Add(x)
		ret[i] = ret[i].Sub(x.Mul(c))
	}
	return ret
}

// Height returns the height of the module: with p the characteristic and
//
//	phi_p = a_s tau^s + ... + tau^(rank * deg p),
//
// the height is s / deg(p), a positive integer. In the generic
// characteristic case the height is undefined and Height fails with
// ErrHeightUndefined.
func (phi *DrinfeldModule) Height() (int, error) {
	charPoly, err := phi.Characteristic()
	if err != nil {
		return 0, drinfeldErrors.ErrHeightUndefined
	}
	img := phi.Eval(charPoly)
	v, ok := img.Valuation()
	utils.Assert(ok)
	d := charPoly.Degree()
	utils.Assert(v%d == 0)
	return v / d, nil
}

// IsSupersingular reports whether a rank-2 module is supersingular, i.e. has
// height equal to its rank. It fails with ErrRankNotTwo for other ranks and
// with ErrHeightUndefined in the generic characteristic case.
func (phi *DrinfeldModule) IsSupersingular() (bool, error) {
	if phi.rank != 2 {
		return false, drinfeldErrors.ErrRankNotTwo
	}
	h, err := phi.Height()
	if err != nil {
		return false, err
	}
	return h == 2, nil
}

// IsOrdinary reports whether a rank-2 module has height 1. It fails like
// IsSupersingular.
func (phi *DrinfeldModule) IsOrdinary() (bool, error) {
	ss, err := phi.IsSupersingular()
	if err != nil {
		return false, err
	}
	return !ss, nil
}
