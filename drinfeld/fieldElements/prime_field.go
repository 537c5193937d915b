package fieldElements

import (
	"math/big"
	"math/bits"
	"math/rand"
	"strconv"
)

// PrimeField is the field GF(p) for a prime p < 2^62. Elements are single
// uint64 words holding the canonical representative in [0, p).
//
// The implementation favors simplicity over speed (big.Int fallbacks for
// wide products and inverses); the consuming packages spend their time in
// polynomial arithmetic, not here.
type PrimeField struct {
	p    uint64
	pInt *big.Int
}

// maxPrime bounds p so that sums of two representatives never overflow and
// ProbablyPrime stays cheap.
const maxPrime = uint64(1) << 62

// NewPrimeField returns GF(p). It fails with ErrNotPrime for composite p and
// with ErrCharacteristicTooLarge for p >= 2^62.
func NewPrimeField(p uint64) (*PrimeField, error) {
	if p >= maxPrime {
		return nil, ErrCharacteristicTooLarge
	}
	pInt := new(big.Int).SetUint64(p)
	// ProbablyPrime is exact for inputs below 2^64.
	if !pInt.ProbablyPrime(20) {
		return nil, ErrNotPrime
	}
	return &PrimeField{p: p, pInt: pInt}, nil
}

type primeElement struct {
	field *PrimeField
	v     uint64
}

func (f *PrimeField) element(v uint64) primeElement {
	return primeElement{field: f, v: v}
}

func (f *PrimeField) Zero() Element { return f.element(0) }
func (f *PrimeField) One() Element  { return f.element(1 % f.p) }

func (f *PrimeField) FromInt(n int64) Element {
	r := n % int64(f.p)
	if r < 0 {
		r += int64(f.p)
	}
	return f.element(uint64(r))
}

func (f *PrimeField) Characteristic() *big.Int { return f.pInt }
func (f *PrimeField) Order() *big.Int          { return f.pInt }
func (f *PrimeField) IsFinite() bool           { return true }
func (f *PrimeField) BaseField() Field         { return nil }
func (f *PrimeField) ExtensionDegree() int     { return 1 }

func (f *PrimeField) Embed(Element) Element {
	panic(ErrorPrefix + "Embed called on a prime field, which has no base field")
}

func (f *PrimeField) Retract(Element) (Element, bool) { return nil, false }

func (f *PrimeField) Rand(rnd *rand.Rand) Element {
	return f.element(uint64(rnd.Int63n(int64(f.p))))
}

func (f *PrimeField) String() string {
	return "Finite Field of size " + strconv.FormatUint(f.p, 10)
}

func (x primeElement) Field() Field { return x.field }

func (x primeElement) same(y Element) primeElement {
	yy, ok := y.(primeElement)
	if !ok || yy.field != x.field {
		panic(ErrMixedFields)
	}
	return yy
}

func (x primeElement) Add(y Element) Element {
	yy := x.same(y)
	s := x.v + yy.v // no overflow: both < p < 2^62
	if s >= x.field.p {
		s -= x.field.p
	}
	return x.field.element(s)
}

func (x primeElement) Sub(y Element) Element {
	yy := x.same(y)
	if x.v >= yy.v {
		return x.field.element(x.v - yy.v)
	}
	return x.field.element(x.field.p - yy.v + x.v)
}

func (x primeElement) Neg() Element {
	if x.v == 0 {
		return x
	}
	return x.field.element(x.field.p - x.v)
}

func (x primeElement) Mul(y Element) Element {
	yy := x.same(y)
	hi, lo := bits.Mul64(x.v, yy.v)
	if hi == 0 {
		return x.field.element(lo % x.field.p)
	}
	// hi may reach or exceed p for small p, so bits.Div64 is not applicable
	// directly; fall back to big.Int.
	prod := new(big.Int).Mul(new(big.Int).SetUint64(x.v), new(big.Int).SetUint64(yy.v))
	return x.field.element(prod.Mod(prod, x.field.pInt).Uint64())
}

func (x primeElement) Inv() Element {
	if x.v == 0 {
		panic(ErrDivisionByZero)
	}
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(x.v), x.field.pInt)
	return x.field.element(inv.Uint64())
}

func (x primeElement) Pow(e *big.Int) Element {
	base := x
	if e.Sign() < 0 {
		base = x.Inv().(primeElement)
		e = new(big.Int).Neg(e)
	}
	ret := new(big.Int).Exp(new(big.Int).SetUint64(base.v), e, x.field.pInt)
	return x.field.element(ret.Uint64())
}

func (x primeElement) IsZero() bool { return x.v == 0 }
func (x primeElement) IsOne() bool  { return x.v == 1%x.field.p }

func (x primeElement) Equal(y Element) bool {
	yy, ok := y.(primeElement)
	return ok && yy.field == x.field && yy.v == x.v
}

func (x primeElement) String() string {
	return strconv.FormatUint(x.v, 10)
}
