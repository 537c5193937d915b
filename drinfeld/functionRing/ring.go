// Package functionRing implements the function ring A = Fq[T]: dense
// univariate polynomials over a finite field, together with the fraction
// field Fq(T). The fraction field implements the fieldElements interfaces
// and can therefore serve as the base field of a twisted polynomial ring,
// giving an infinite base with a finite constant field.
package functionRing

import (
	"errors"

	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
)

// ErrorPrefix is the prefix used by all error message strings originating
// from this package.
const ErrorPrefix = "drinfeld / functionRing: "

var (
	// ErrDivisionByZero is returned by QuoRem with a zero divisor and is the
	// panic value of fraction normalization with a zero denominator.
	ErrDivisionByZero = errors.New(ErrorPrefix + "division by zero")

	// ErrWrongCoefficientField is returned by NewPoly when a coefficient does
	// not belong to the ring's base field.
	ErrWrongCoefficientField = errors.New(ErrorPrefix + "coefficient does not belong to the base field")

	// ErrMixedRings is the panic value of arithmetic on polynomials of
	// different rings.
	ErrMixedRings = errors.New(ErrorPrefix + "operands belong to different rings")
)

// Ring is the univariate polynomial ring base[varName] over a finite field.
type Ring struct {
	base    fieldElements.Field
	varName string
}

// NewRing constructs Fq[varName]. It fails with ErrUnsupportedFunctionRing
// if the coefficient field is not finite.
func NewRing(base fieldElements.Field, varName string) (*Ring, error) {
	if base == nil || !base.IsFinite() {
		return nil, drinfeldErrors.ErrUnsupportedFunctionRing
	}
	return &Ring{base: base, varName: varName}, nil
}

// Base returns the coefficient field Fq.
func (r *Ring) Base() fieldElements.Field { return r.base }

// VarName returns the name of the ring variable.
func (r *Ring) VarName() string { return r.varName }

func (r *Ring) String() string {
	return "Univariate Polynomial Ring in " + r.varName + " over " + r.base.String()
}
