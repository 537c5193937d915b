// Package utils collects small internal helpers shared across the drinfeld
// packages. Nothing in here is part of the public API.
package utils

import (
	"fmt"
	"math/big"
)

const ErrorPrefix = "drinfeld / internal / utils: "

// Assert(condition) panics if condition is false; the optional second argument
// is used as the panic value. This is intended for internal invariants that
// cannot be triggered by caller input; caller-facing validation returns errors
// instead.
func Assert(condition bool, args ...any) {
	if len(args) > 1 {
		panic(ErrorPrefix + "Assert can only handle 1 extra argument")
	}
	if !condition {
		if len(args) == 0 {
			panic(ErrorPrefix + "assertion failed")
		}
		panic(args[0])
	}
}

// Assertf is like Assert with a formatted panic message.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic(ErrorPrefix + fmt.Sprintf(format, args...))
	}
}

// GcdInt returns the (nonnegative) greatest common divisor of a and b,
// with GcdInt(0, 0) == 0.
func GcdInt(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// InitIntFromString initializes a big.Int from a given string.
// This essentially is big.Int's SetString, except that it panics on failure.
// It is intended to initialize package-level constants from literals, where
// failure means the source itself is broken.
func InitIntFromString(input string) *big.Int {
	ret := new(big.Int)
	_, ok := ret.SetString(input, 0)
	if !ok {
		panic(ErrorPrefix + "InitIntFromString failed to parse " + input)
	}
	return ret
}

// BigPow returns base^exp for a nonnegative int exponent as a fresh big.Int.
func BigPow(base *big.Int, exp int) *big.Int {
	Assert(exp >= 0, ErrorPrefix+"BigPow called with negative exponent")
	return new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
}
