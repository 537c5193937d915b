package drinfeldModules

import (
	"errors"
	"fmt"

	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/orePoly"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Velu constructs the unique Drinfeld module psi such that isog is an
// isogeny phi -> psi, i.e. psi_T * isog == isog * phi_T. The candidate
// isog defines an isogeny exactly when
//
//   - isog is nonzero,
//   - the degree of the characteristic divides the tau-valuation of isog
//     (no condition in the generic characteristic case), and
//   - the remainder of the right division of isog * phi_T by isog is zero;
//
// the codomain generator then is the quotient of that division. Velu fails
// with ErrNotAnIsogeny otherwise. An endomorphism returns phi itself:
// interning makes the codomain pointer-identical to the domain.
func (phi *DrinfeldModule) Velu(isog orePoly.Poly) (*DrinfeldModule, error) {
	if isog.Ring() != phi.fam.ore {
		panic(orePoly.ErrMixedRings)
	}
	if isog.IsZero() {
		return nil, drinfeldErrors.ErrNotAnIsogeny
	}
	charPoly, err := phi.Characteristic()
	switch {
	case err == nil:
		v, ok := isog.Valuation()
		utils.Assert(ok)
		if v%charPoly.Degree() != 0 {
			return nil, drinfeldErrors.ErrNotAnIsogeny
		}
	case errors.Is(err, drinfeldErrors.ErrGenericCharacteristic):
		// The zero characteristic divides every valuation.
	default:
		return nil, err
	}
	quo, rem, err := isog.Mul(phi.gen).RightQuoRem(isog)
	utils.Assert(err == nil)
	if !rem.IsZero() {
		return nil, drinfeldErrors.ErrNotAnIsogeny
	}
	// The codomain must define the same morphism gamma, i.e. keep the
	// constant coefficient. For prime characteristic the valuation check
	// above already guarantees this; for generic characteristic it rules
	// out candidates with positive tau-valuation.
	if !quo.Coefficient(0).Equal(phi.gen.Coefficient(0)) {
		return nil, drinfeldErrors.ErrNotAnIsogeny
	}
	psi, err := phi.fam.fromPoly(quo)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", drinfeldErrors.ErrNotAnIsogeny, err)
	}
	return psi, nil
}

// HomContains reports whether f lies in Hom(phi, psi), i.e. whether
// psi_T * f == f * phi_T. The zero polynomial is a morphism between any two
// modules. Mixing families (or foreign twisted polynomials) panics.
func (phi *DrinfeldModule) HomContains(psi *DrinfeldModule, f orePoly.Poly) bool {
	if phi.fam != psi.fam {
		panic(orePoly.ErrMixedRings)
	}
	if f.IsZero() {
		return true
	}
	return psi.gen.Mul(f).Equal(f.Mul(phi.gen))
}
