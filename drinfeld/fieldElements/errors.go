package fieldElements

import "errors"

// This file collects all errors that can be returned (or used as panic
// values) by functions in this package.
//
// Functions may return errors wrapping the values given here; callers
// should test with [errors.Is].

// ErrorPrefix is the prefix used by all error message strings originating
// from this package.
const ErrorPrefix = "drinfeld / fieldElements: "

var (
	// ErrDivisionByZero is the panic value of Inv on a zero element.
	ErrDivisionByZero = errors.New(ErrorPrefix + "division by zero")

	// ErrNotPrime is returned by NewPrimeField for composite input.
	ErrNotPrime = errors.New(ErrorPrefix + "characteristic is not prime")

	// ErrCharacteristicTooLarge is returned by NewPrimeField when p does not
	// fit the internal word representation.
	ErrCharacteristicTooLarge = errors.New(ErrorPrefix + "characteristic too large")

	// ErrInvalidModulus is returned by NewExtensionField for a modulus of
	// degree < 1, a zero leading coefficient, or coefficients outside the
	// base field.
	ErrInvalidModulus = errors.New(ErrorPrefix + "invalid modulus polynomial")

	// ErrReducibleModulus is returned by NewExtensionField when the modulus
	// fails the irreducibility test over a finite base field.
	ErrReducibleModulus = errors.New(ErrorPrefix + "modulus polynomial is reducible")

	// ErrNoCoercion is returned by Coerce and RetractTo when the two fields
	// are not part of the same extension tower, or the element is not a
	// constant of the smaller field.
	ErrNoCoercion = errors.New(ErrorPrefix + "no coercion between the given fields")

	// ErrMixedFields is the panic value of arithmetic on elements of
	// different fields. Mixing fields in a single operation is a programming
	// error, not an input error; use Coerce first.
	ErrMixedFields = errors.New(ErrorPrefix + "operands belong to different fields")

	// ErrNoSearchSpace is returned by NewFiniteField when no irreducible
	// modulus was found. This cannot happen for valid (p, m).
	ErrNoSearchSpace = errors.New(ErrorPrefix + "no irreducible modulus found")
)
