// Package drinfeldModules implements Drinfeld Fq[T]-modules over a field K:
// ring morphisms phi: Fq[T] -> K{tau} determined by the image of T, a
// twisted polynomial with nonzero constant term. On top of the module
// objects the package provides the evaluation morphism, the function field
// characteristic and height, the Vélu isogeny construction and the basic
// j-invariant machinery.
package drinfeldModules

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/functionRing"
	"github.com/drinfeldlab/drinfeld/drinfeld/orePoly"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// internCacheSize bounds the number of modules a family keeps interned.
// Interning gives pointer identity to equal modules, which in particular
// makes an endomorphism's Vélu codomain == its domain.
const internCacheSize = 1024

// Family collects the Drinfeld modules over a fixed function ring A = Fq[T]
// and base field K (with Fq a subfield of K). It owns the twisted polynomial
// ring K{tau} that the generators live in.
//
// A Family is safe for concurrent use.
type Family struct {
	a   *functionRing.Ring
	k   fieldElements.Field
	ore *orePoly.Ring

	interned *lru.Cache // generator string -> *DrinfeldModule
}

// NewFamily constructs the family of Drinfeld A-modules over K. The constant
// field of A must be a subfield of K; otherwise the orePoly ring construction
// fails and its error is returned.
func NewFamily(a *functionRing.Ring, k fieldElements.Field) (*Family, error) {
	ore, err := orePoly.NewRing(k, a.Base(), "t")
	if err != nil {
		return nil, err
	}
	interned, err := lru.New(internCacheSize)
	if err != nil {
		return nil, err
	}
	return &Family{a: a, k: k, ore: ore, interned: interned}, nil
}

// FunctionRing returns A = Fq[T].
func (fam *Family) FunctionRing() *functionRing.Ring { return fam.a }

// BaseField returns K.
func (fam *Family) BaseField() fieldElements.Field { return fam.k }

// OreRing returns the twisted polynomial ring K{tau}.
func (fam *Family) OreRing() *orePoly.Ring { return fam.ore }

// New constructs the Drinfeld module with generator
//
//	phi_T = coeffs[0] + coeffs[1]*tau + ... + coeffs[r]*tau^r.
//
// The coefficient list is taken literally: it must have length at least 2
// (rank >= 1), its last entry must be nonzero and its first entry, the image
// gamma(T) of T in K, must be nonzero. Coefficients may live in any subfield
// of K. Equal generators yield the same (pointer-identical) module.
func (fam *Family) New(coeffs []fieldElements.Element) (*DrinfeldModule, error) {
	if len(coeffs) < 2 {
		return nil, drinfeldErrors.ErrGeneratorNonPositiveDegree
	}
	if coeffs[len(coeffs)-1].IsZero() {
		return nil, drinfeldErrors.ErrGeneratorLeadingZero
	}
	gen, err := fam.ore.NewPoly(coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", drinfeldErrors.ErrGeneratorIncompatibleBase, err)
	}
	return fam.fromPoly(gen)
}

// NewFromPoly constructs the Drinfeld module whose generator is an existing
// twisted polynomial of the family's Ore ring. Validation and interning are
// the same as for New.
func (fam *Family) NewFromPoly(gen orePoly.Poly) (*DrinfeldModule, error) {
	if gen.Ring() != fam.ore {
		return nil, drinfeldErrors.ErrGeneratorIncompatibleBase
	}
	return fam.fromPoly(gen)
}

// fromPoly validates and interns a generator already living in K{tau}.
func (fam *Family) fromPoly(gen orePoly.Poly) (*DrinfeldModule, error) {
	if gen.Degree() < 1 {
		return nil, drinfeldErrors.ErrGeneratorNonPositiveDegree
	}
	if gen.Coefficient(0).IsZero() {
		return nil, drinfeldErrors.ErrGeneratorZeroConstantTerm
	}
	key := gen.String()
	if cached, ok := fam.interned.Get(key); ok {
		return cached.(*DrinfeldModule), nil
	}
	phi := &DrinfeldModule{fam: fam, gen: gen, rank: gen.Degree()}
	fam.interned.Add(key, phi)
	return phi, nil
}

func (fam *Family) String() string {
	return "Drinfeld modules over " + fam.k.String() + " for " + fam.a.String()
}

// DrinfeldModule is a Drinfeld Fq[T]-module, identified with its generator
// phi_T in K{tau}. The observable state is immutable; derived quantities
// (powers of the generator, the characteristic, parameter lists) are
// memoized behind a mutex, so modules are safe for concurrent use.
type DrinfeldModule struct {
	fam  *Family
	gen  orePoly.Poly
	rank int

	mu          sync.Mutex
	genPowers   []orePoly.Poly
	charDone    bool
	charPoly    functionRing.Poly
	charErr     error
	basicParams map[string][]Parameter
}

// Family returns the family this module belongs to.
func (phi *DrinfeldModule) Family() *Family { return phi.fam }

// Gen returns the generator phi_T.
func (phi *DrinfeldModule) Gen() orePoly.Poly { return phi.gen }

// Rank returns the rank, i.e. the tau-degree of the generator.
func (phi *DrinfeldModule) Rank() int { return phi.rank }

// IsFinite reports whether the base field K is finite.
func (phi *DrinfeldModule) IsFinite() bool { return phi.fam.k.IsFinite() }

// Coefficient returns the n-th coefficient of the generator, failing with
// ErrIndexOutOfRange outside [0, rank].
func (phi *DrinfeldModule) Coefficient(n int) (fieldElements.Element, error) {
	if n < 0 || n > phi.rank {
		return nil, drinfeldErrors.ErrIndexOutOfRange
	}
	return phi.gen.Coefficient(n), nil
}

// Coefficients returns the coefficients of the generator, low-to-high. With
// sparse == true only the nonzero coefficients are returned; otherwise the
// slice has length rank+1.
func (phi *DrinfeldModule) Coefficients(sparse bool) []fieldElements.Element {
	full := make([]fieldElements.Element, phi.rank+1)
	for i := range full {
		full[i] = phi.gen.Coefficient(i)
	}
	if !sparse {
		return full
	}
	var ret []fieldElements.Element
	for _, c := range full {
		if !c.IsZero() {
			ret = append(ret, c)
		}
	}
	return ret
}

// genPower returns phi_T^n, memoized.
func (phi *DrinfeldModule) genPower(n int) orePoly.Poly {
	utils.Assert(n >= 0)
	phi.mu.Lock()
	defer phi.mu.Unlock()
	if phi.genPowers == nil {
		phi.genPowers = []orePoly.Poly{phi.fam.ore.One()}
	}
	for len(phi.genPowers) <= n {
		last := phi.genPowers[len(phi.genPowers)-1]
		phi.genPowers = append(phi.genPowers, last.Mul(phi.gen))
	}
	return phi.genPowers[n]
}

func (phi *DrinfeldModule) String() string {
	return "Drinfeld module defined by " + phi.fam.a.VarName() + " |--> " + phi.gen.String()
}
