package drinfeldModules

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/drinfeldlab/drinfeld/drinfeld/drinfeldErrors"
	"github.com/drinfeldlab/drinfeld/drinfeld/fieldElements"
	"github.com/drinfeldlab/drinfeld/drinfeld/polytope"
	"github.com/drinfeldlab/drinfeld/internal/utils"
)

// Parameter selects a j-invariant of a rank-r module: a strictly increasing
// list of coefficient indices k_1 < ... < k_n in [1, r-1] together with
// nonnegative exponents (d_{k_1}, ..., d_{k_n}, d_r). The associated
// j-invariant is
//
//	j = g_{k_1}^{d_{k_1}} * ... * g_{k_n}^{d_{k_n}} / g_r^{d_r},
//
// which is an isomorphism invariant exactly when the weight-0 condition
//
//	d_{k_1} (q^{k_1} - 1) + ... + d_{k_n} (q^{k_n} - 1) = d_r (q^r - 1)
//
// holds. A parameter is basic when its exponent vector is a nonzero integral
// point of the associated weight-0 polytope with coprime entries.
type Parameter struct {
	Indices   []int
	Exponents []*big.Int
}

func (p Parameter) String() string {
	return fmt.Sprintf("(%v, %v)", p.Indices, p.Exponents)
}

// JInvariant returns the j-invariant g_1^(q+1) / g_2 of a rank-2 module and
// fails with ErrRankNotTwo for any other rank. Higher ranks must select an
// invariant through JInvariantAt or JInvariantOf.
func (phi *DrinfeldModule) JInvariant() (fieldElements.Element, error) {
	if phi.rank != 2 {
		return nil, drinfeldErrors.ErrRankNotTwo
	}
	e := new(big.Int).Add(phi.fam.ore.ConstantFieldOrder(), big.NewInt(1))
	g1 := phi.gen.Coefficient(1)
	g2 := phi.gen.Coefficient(2)
	return g1.Pow(e).Mul(g2.Inv()), nil
}

// JInvariantAt returns the j-invariant of the single-index parameter at k:
// with d = gcd(k, r),
//
//	j_k = g_k^((q^r - 1)/(q^d - 1)) / g_r^((q^k - 1)/(q^d - 1)).
//
// It fails with ErrIndexOutOfRange unless 1 <= k < rank.
func (phi *DrinfeldModule) JInvariantAt(k int) (fieldElements.Element, error) {
	if k < 1 || k >= phi.rank {
		return nil, drinfeldErrors.ErrIndexOutOfRange
	}
	q := phi.fam.ore.ConstantFieldOrder()
	d := utils.GcdInt(k, phi.rank)
	denom := qPowMinusOne(q, d)
	dk := exactQuo(qPowMinusOne(q, phi.rank), denom)
	dr := exactQuo(qPowMinusOne(q, k), denom)
	gk := phi.gen.Coefficient(k)
	gr := phi.gen.Coefficient(phi.rank)
	return gk.Pow(dk).Mul(gr.Pow(dr).Inv()), nil
}

// JInvariantOf returns the j-invariant selected by the given parameter.
// The index list and exponent vector are validated structurally
// (ErrInvalidIndices, ErrInvalidParameter); with check == true the weight-0
// condition is verified as well and its violation reported as
// ErrInvalidParameter. Zero coefficients raised to the zeroth power
// contribute 1.
func (phi *DrinfeldModule) JInvariantOf(p Parameter, check bool) (fieldElements.Element, error) {
	if err := phi.validateIndices(p.Indices); err != nil {
		return nil, err
	}
	if len(p.Exponents) != len(p.Indices)+1 {
		return nil, drinfeldErrors.ErrInvalidParameter
	}
	for _, d := range p.Exponents {
		if d == nil || d.Sign() < 0 {
			return nil, drinfeldErrors.ErrInvalidParameter
		}
	}
	q := phi.fam.ore.ConstantFieldOrder()
	if check {
		left := new(big.Int)
		for i, k := range p.Indices {
			left.Add(left, new(big.Int).Mul(p.Exponents[i], qPowMinusOne(q, k)))
		}
		right := new(big.Int).Mul(p.Exponents[len(p.Indices)], qPowMinusOne(q, phi.rank))
		if left.Cmp(right) != 0 {
			return nil, drinfeldErrors.ErrInvalidParameter
		}
	}
	num := phi.fam.k.One()
	for i, k := range p.Indices {
		d := p.Exponents[i]
		if d.Sign() == 0 {
			continue
		}
		num = num.Mul(phi.gen.Coefficient(k).Pow(d))
	}
	den := phi.gen.Coefficient(phi.rank).Pow(p.Exponents[len(p.Indices)])
	return num.Mul(den.Inv()), nil
}

// validateIndices checks that indices are strictly increasing and lie in
// [1, rank-1].
func (phi *DrinfeldModule) validateIndices(indices []int) error {
	for i, k := range indices {
		if k < 1 || k >= phi.rank {
			return drinfeldErrors.ErrInvalidIndices
		}
		if i > 0 && indices[i-1] >= k {
			return drinfeldErrors.ErrInvalidIndices
		}
	}
	return nil
}

// BasicJInvariantParameters returns the basic j-invariant parameters
// involving the given coefficient indices (all of 1..rank-1 for a nil list).
// With nonzero == true, indices whose generator coefficient is zero are
// dropped, leaving only parameters whose j-invariant can be nonzero.
//
// The exponent vectors are the integral points with coprime entries of the
// polytope cut out by the weight-0 equation and the bounds
// 0 <= d_{k_i} <= (q^r - 1)/(q^gcd(k_i, r) - 1). The result is sorted
// lexicographically by exponent vector and memoized; callers must not
// modify it.
func (phi *DrinfeldModule) BasicJInvariantParameters(coeffIndices []int, nonzero bool) ([]Parameter, error) {
	var indices []int
	if coeffIndices == nil {
		for k := 1; k < phi.rank; k++ {
			indices = append(indices, k)
		}
	} else {
		if err := phi.validateIndices(coeffIndices); err != nil {
			return nil, err
		}
		indices = append(indices, coeffIndices...)
	}
	if nonzero {
		kept := indices[:0]
		for _, k := range indices {
			if !phi.gen.Coefficient(k).IsZero() {
				kept = append(kept, k)
			}
		}
		indices = kept
	}
	if len(indices) == 0 {
		return nil, nil
	}

	phi.mu.Lock()
	defer phi.mu.Unlock()
	key := fmt.Sprint(indices)
	if phi.basicParams == nil {
		phi.basicParams = make(map[string][]Parameter)
	}
	if params, ok := phi.basicParams[key]; ok {
		return params, nil
	}
	params, err := phi.computeBasicParameters(indices)
	if err != nil {
		return nil, err
	}
	phi.basicParams[key] = params
	return params, nil
}

func (phi *DrinfeldModule) computeBasicParameters(indices []int) ([]Parameter, error) {
	q := phi.fam.ore.ConstantFieldOrder()
	r := phi.rank
	n := len(indices)
	qr1 := qPowMinusOne(q, r)

	sys := polytope.NewSystem(n + 1)
	equation := make([]*big.Int, n+2)
	equation[0] = new(big.Int)
	for i, k := range indices {
		equation[i+1] = qPowMinusOne(q, k)
	}
	equation[n+1] = new(big.Int).Neg(qr1)
	if err := sys.AddEquality(equation); err != nil {
		return nil, err
	}
	for i, k := range indices {
		lower := zeroRow(n + 2)
		lower[i+1] = big.NewInt(1)
		upper := zeroRow(n + 2)
		upper[0] = exactQuo(qr1, qPowMinusOne(q, utils.GcdInt(k, r)))
		upper[i+1] = big.NewInt(-1)
		if err := sys.AddInequality(lower); err != nil {
			return nil, err
		}
		if err := sys.AddInequality(upper); err != nil {
			return nil, err
		}
	}
	// d_r >= 0; already implied by the equality, but stated explicitly.
	lowerLast := zeroRow(n + 2)
	lowerLast[n+1] = big.NewInt(1)
	if err := sys.AddInequality(lowerLast); err != nil {
		return nil, err
	}
	points, err := sys.IntegralPoints()
	if err != nil {
		return nil, err
	}

	one := big.NewInt(1)
	var params []Parameter
	for _, pt := range points {
		g := new(big.Int)
		for _, v := range pt {
			g.GCD(nil, nil, g, v)
		}
		if g.Cmp(one) != 0 {
			continue
		}
		params = append(params, Parameter{Indices: indices, Exponents: pt})
	}
	sort.Slice(params, func(i, j int) bool {
		return lessExponents(params[i].Exponents, params[j].Exponents)
	})
	return params, nil
}

func lessExponents(a, b []*big.Int) bool {
	for i := range a {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func zeroRow(n int) []*big.Int {
	row := make([]*big.Int, n)
	for i := range row {
		row[i] = new(big.Int)
	}
	return row
}

// BasicInvariant pairs a basic parameter with the value of its j-invariant.
type BasicInvariant struct {
	Parameter Parameter
	Value     fieldElements.Element
}

// BasicJInvariants returns all basic j-invariants of the module, in the
// parameter order of BasicJInvariantParameters(nil, false).
func (phi *DrinfeldModule) BasicJInvariants() ([]BasicInvariant, error) {
	params, err := phi.BasicJInvariantParameters(nil, false)
	if err != nil {
		return nil, err
	}
	ret := make([]BasicInvariant, len(params))
	for i, p := range params {
		v, err := phi.JInvariantOf(p, false)
		utils.Assert(err == nil, err)
		ret[i] = BasicInvariant{Parameter: p, Value: v}
	}
	return ret, nil
}

// IsIsomorphic reports whether phi and psi are isomorphic Drinfeld modules.
// Modules of different families are never isomorphic. After the trivial
// checks (equal generators, rank mismatch, rank 1, differing zero patterns
// of the coefficients) the decision compares all nonzero basic j-invariants.
func (phi *DrinfeldModule) IsIsomorphic(psi *DrinfeldModule) (bool, error) {
	if phi.fam != psi.fam {
		return false, nil
	}
	if phi.gen.Equal(psi.gen) {
		return true, nil
	}
	if phi.rank != psi.rank {
		return false, nil
	}
	if phi.rank == 1 {
		return true, nil
	}
	for i := 0; i <= phi.rank; i++ {
		if phi.gen.Coefficient(i).IsZero() != psi.gen.Coefficient(i).IsZero() {
			return false, nil
		}
	}
	params, err := phi.BasicJInvariantParameters(nil, true)
	if err != nil {
		return false, err
	}
	for _, p := range params {
		jPhi, err := phi.JInvariantOf(p, false)
		utils.Assert(err == nil, err)
		jPsi, err := psi.JInvariantOf(p, false)
		utils.Assert(err == nil, err)
		if !jPhi.Equal(jPsi) {
			return false, nil
		}
	}
	return true, nil
}

// qPowMinusOne returns q^e - 1.
func qPowMinusOne(q *big.Int, e int) *big.Int {
	return new(big.Int).Sub(utils.BigPow(q, e), big.NewInt(1))
}

// exactQuo returns a / b, asserting that the division is exact.
func exactQuo(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	utils.Assert(r.Sign() == 0)
	return q
}
