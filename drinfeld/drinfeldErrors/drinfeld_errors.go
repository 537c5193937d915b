// Package drinfeldErrors defines the error values reported by the Drinfeld
// module packages.
//
// All errors defined here are sentinel values; functions usually return
// errors *wrapping* these, adding context about the particular failure.
// Callers should consequently test with [errors.Is] rather than ==.
package drinfeldErrors

import (
	"errors"
	"fmt"
)

// ErrorPrefix is the prefix used by all error message strings originating
// from the drinfeld module packages.
const ErrorPrefix = "drinfeld: "

// ErrInvalidGenerator is the base error for rejected generator inputs.
// The concrete errors below wrap it; errors.Is(err, ErrInvalidGenerator)
// matches all of them.
var ErrInvalidGenerator = errors.New(ErrorPrefix + "invalid generator")

var (
	// The generator must have degree >= 1 as a twisted polynomial.
	ErrGeneratorNonPositiveDegree = fmt.Errorf("%w: non-positive degree", ErrInvalidGenerator)
	// The constant coefficient is gamma(T) and must be nonzero.
	ErrGeneratorZeroConstantTerm = fmt.Errorf("%w: zero constant term", ErrInvalidGenerator)
	// An explicit coefficient list must not carry zero leading coefficients.
	ErrGeneratorLeadingZero = fmt.Errorf("%w: zero leading coefficient", ErrInvalidGenerator)
	// All coefficients must coerce into the base field of the family.
	ErrGeneratorIncompatibleBase = fmt.Errorf("%w: incompatible base", ErrInvalidGenerator)
)

// ErrUnsupportedFunctionRing is returned when the function ring is not a
// univariate polynomial ring over a finite field.
var ErrUnsupportedFunctionRing = errors.New(ErrorPrefix + "function ring must be a univariate polynomial ring over a finite field")

// ErrNotAnIsogeny is returned by the Vélu construction when the candidate
// twisted polynomial does not define an isogeny.
var ErrNotAnIsogeny = errors.New(ErrorPrefix + "the input does not define an isogeny")

// ErrInvalidIndices is returned for malformed coefficient index lists in the
// j-invariant engine (out of range, unsorted or repeated entries).
var ErrInvalidIndices = errors.New(ErrorPrefix + "invalid coefficient indices")

// ErrInvalidParameter is returned for malformed j-invariant parameters,
// including parameters violating the weight-0 condition when checking is
// requested.
var ErrInvalidParameter = errors.New(ErrorPrefix + "invalid j-invariant parameter")

// ErrGenericCharacteristic is returned when the base morphism gamma is
// injective, so no characteristic polynomial exists.
var ErrGenericCharacteristic = errors.New(ErrorPrefix + "characteristic is generic")

// ErrHeightUndefined is returned by height computations in the generic
// characteristic case.
var ErrHeightUndefined = fmt.Errorf(ErrorPrefix+"height undefined (%w)", ErrGenericCharacteristic)

// ErrIndexOutOfRange is returned by coefficient accessors for indices
// outside [0, rank].
var ErrIndexOutOfRange = errors.New(ErrorPrefix + "coefficient index out of range")

// ErrRankNotTwo is returned by operations that are only defined for rank-2
// modules (supersingularity / ordinarity predicates).
var ErrRankNotTwo = errors.New(ErrorPrefix + "rank must be 2")
