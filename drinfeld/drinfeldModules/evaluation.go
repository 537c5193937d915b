package drinfeldModules

import (
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/functionRing"
	"github.com/drinfeldlab/drinfeld/drinfeld/orePoly"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Eval computes phi(a), the image of a function ring element under the
// Fq-algebra morphism Fq[T] -> K{tau} determined by T |--> phi_T:
//
//	phi(sum_i a_i T^i) = sum_i gamma(a_i) * phi_T^i
//
// with gamma the inclusion Fq -> K. The morphism is injective, so phi(a)
// is zero exactly for a == 0. Eval panics on a polynomial of a foreign
// function ring.
func (phi *DrinfeldModule) Eval(a functionRing.Poly) orePoly.Poly {
	if a.Ring() != phi.fam.a {
		panic(functionRing.ErrMixedRings)
	}
	ret := phi.fam.ore.Zero()
	for i, c := range a.Coefficients() {
		if c.IsZero() {
			continue
		}
		lifted, err := fieldElements.Coerce(c, phi.fam.k)
		utils.Assert(err == nil, err)
		ret = ret.Add(phi.genPower(i).ScalarMulLeft(lifted))
	}
	return ret
}
