// Package orePoly implements twisted (Ore) polynomial arithmetic: the
// non-commutative ring K{tau} over a field K, with the multiplication rule
//
//	tau * lambda = lambda^q * tau
//
// for lambda in K, where q is the order of the constant field Fq contained
// in K. The package provides the right Euclidean division underlying the
// isogeny test in the drinfeldModules package.
package orePoly

import (
	"errors"
	"math/big"
	"sync"

	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
)

// ErrorPrefix is the prefix used by all error message strings originating
// from this package.
const ErrorPrefix = "drinfeld / orePoly: "

var (
	// ErrDivisionByZero is returned by RightQuoRem with a zero divisor.
	ErrDivisionByZero = errors.New(ErrorPrefix + "right division by zero")

	// ErrConstantFieldNotFinite is returned by NewRing when the constant
	// field is infinite; the twist x -> x^q needs a finite q.
	ErrConstantFieldNotFinite = errors.New(ErrorPrefix + "constant field must be finite")

	// ErrConstantFieldNotSubfield is returned by NewRing when the constant
	// field is not part of the extension tower of K.
	ErrConstantFieldNotSubfield = errors.New(ErrorPrefix + "constant field is not a subfield of the coefficient field")

	// ErrMixedRings is the panic value of arithmetic on polynomials of
	// different rings.
	ErrMixedRings = errors.New(ErrorPrefix + "operands belong to different rings")
)

// Ring is the twisted polynomial ring K{tau} for a coefficient field K and
// a finite constant field Fq inside K.
type Ring struct {
	k       fieldElements.Field
	fq      fieldElements.Field
	q       *big.Int
	varName string

	// degOverFq is [K : Fq] for finite K and 0 otherwise. For finite K the
	// twist has multiplicative order degOverFq, which lets Twist reduce its
	// exponent.
	degOverFq int

	mu         sync.Mutex
	twistCache map[int]*big.Int // n -> q^n (n already reduced)
}

// NewRing constructs K{varName} with twist x -> x^q, q = |Fq|. Fq must be
// finite and a subfield of K (reachable through the extension tower).
func NewRing(k, fq fieldElements.Field, varName string) (*Ring, error) {
	if !fq.IsFinite() {
		return nil, ErrConstantFieldNotFinite
	}
	deg, ok := fieldElements.DegreeOver(k, fq)
	if !ok {
		return nil, ErrConstantFieldNotSubfield
	}
	return &Ring{
		k:          k,
		fq:         fq,
		q:          fq.Order(),
		varName:    varName,
		degOverFq:  deg,
		twistCache: make(map[int]*big.Int),
	}, nil
}

// CoefficientField returns K.
func (r *Ring) CoefficientField() fieldElements.Field { return r.k }

// ConstantField returns Fq.
func (r *Ring) ConstantField() fieldElements.Field { return r.fq }

// ConstantFieldOrder returns q = |Fq|. Callers must not modify the returned
// value.
func (r *Ring) ConstantFieldOrder() *big.Int { return r.q }

// VarName returns the name of the twist variable.
func (r *Ring) VarName() string { return r.varName }

// Twist applies sigma^n to x, i.e. computes x^(q^n). For finite K the twist
// has finite order [K : Fq], so the exponent is reduced before the power is
// taken. Negative n is only meaningful for finite K, where it is reduced
// into range; for infinite K negative n panics.
func (r *Ring) Twist(x fieldElements.Element, n int) fieldElements.Element {
	if r.degOverFq > 0 {
		n = n % r.degOverFq
		if n < 0 {
			n += r.degOverFq
		}
	} else if n < 0 {
		panic(ErrorPrefix + "negative twist over an infinite coefficient field")
	}
	if n == 0 {
		return x
	}
	return x.Pow(r.twistExponent(n))
}

func (r *Ring) twistExponent(n int) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.twistCache[n]; ok {
		return e
	}
	e := new(big.Int).Exp(r.q, big.NewInt(int64(n)), nil)
	r.twistCache[n] = e
	return e
}

func (r *Ring) String() string {
	return "Ore Polynomial Ring in " + r.varName + " over " + r.k.String() +
		" twisted by Frob over " + r.fq.String()
}
