package fieldElements

import (
	"strconv"
	"strings"
)

// FormatPoly renders a coefficient slice (low-to-high) as a polynomial in
// varName, highest term first, skipping zero terms: "z^2 + 2*z + 1".
// Coefficients whose own rendering contains spaces (i.e. are sums
// themselves) are parenthesized, as in "(z2 + 1)*t^2 + z2".
//
// This is shared by extension field elements, function ring polynomials and
// twisted polynomials, which only differ in the variable name and in the
// multiplication law, not in how they print.
func FormatPoly(coeffs []Element, varName string) string {
	deg := polyDeg(coeffs)
	if deg < 0 {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := deg; i >= 0; i-- {
		c := coeffs[i]
		if c.IsZero() {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(formatTerm(c, varName, i))
	}
	return b.String()
}

func formatTerm(c Element, varName string, power int) string {
	if power == 0 {
		return c.String()
	}
	base := varName
	if power > 1 {
		base = varName + "^" + strconv.Itoa(power)
	}
	if c.IsOne() {
		return base
	}
	cs := c.String()
	if strings.Contains(cs, " ") {
		cs = "(" + cs + ")"
	}
	return cs + "*" + base
}
