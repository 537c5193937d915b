// Package polytope enumerates the integer points of a bounded polyhedron
// given by linear equalities and inequalities over the integers.
//
// Constraint rows use the coefficient convention
//
//	row = (b, a_1, ..., a_n)  meaning  b + a_1*x_1 + ... + a_n*x_n >= 0
//
// (respectively == 0 for equalities). The enumerator derives per-variable
// integer intervals by bound propagation and then walks the search tree
// depth-first, re-propagating after each assignment; every emitted point is
// verified against all constraints exactly.
package polytope

import (
	"errors"
	"math/big"
)

// ErrorPrefix is the prefix used by all error message strings originating
// from this package.
const ErrorPrefix = "drinfeld / polytope: "

var (
	// ErrUnbounded is returned by IntegralPoints when the constraints do not
	// confine every variable to a finite interval.
	ErrUnbounded = errors.New(ErrorPrefix + "feasible region is unbounded")

	// ErrBadConstraint is returned when a constraint row has the wrong
	// length for the system's dimension.
	ErrBadConstraint = errors.New(ErrorPrefix + "constraint row has wrong length")
)

// System is a set of integer linear constraints in a fixed dimension.
type System struct {
	dim  int
	ieqs [][]*big.Int // rows (b, a_1..a_n): b + a.x >= 0
}

// NewSystem creates an empty constraint system in the given dimension.
func NewSystem(dim int) *System {
	return &System{dim: dim}
}

// Dim returns the number of variables.
func (s *System) Dim() int { return s.dim }

// AddInequality adds the constraint row[0] + sum_i row[i]*x_i >= 0.
func (s *System) AddInequality(row []*big.Int) error {
	if len(row) != s.dim+1 {
		return ErrBadConstraint
	}
	s.ieqs = append(s.ieqs, copyRow(row))
	return nil
}

// AddEquality adds the constraint row[0] + sum_i row[i]*x_i == 0, stored as
// the pair of opposite inequalities.
func (s *System) AddEquality(row []*big.Int) error {
	if len(row) != s.dim+1 {
		return ErrBadConstraint
	}
	s.ieqs = append(s.ieqs, copyRow(row), negateRow(row))
	return nil
}

func copyRow(row []*big.Int) []*big.Int {
	ret := make([]*big.Int, len(row))
	for i, c := range row {
		ret[i] = new(big.Int).Set(c)
	}
	return ret
}

func negateRow(row []*big.Int) []*big.Int {
	ret := make([]*big.Int, len(row))
	for i, c := range row {
		ret[i] = new(big.Int).Neg(c)
	}
	return ret
}

// interval is a (possibly half-open) integer interval; nil bounds mean
// unbounded.
type interval struct {
	lo, hi *big.Int
}

func (iv interval) empty() bool {
	return iv.lo != nil && iv.hi != nil && iv.lo.Cmp(iv.hi) > 0
}

// IntegralPoints returns all integer points satisfying every constraint.
// It fails with ErrUnbounded if bound propagation cannot confine every
// variable to a finite interval (in particular for systems whose feasible
// region genuinely is unbounded). An infeasible system yields an empty
// list.
func (s *System) IntegralPoints() ([][]*big.Int, error) {
	ivs := make([]interval, s.dim)
	if infeasible := s.propagate(ivs); infeasible {
		return nil, nil
	}
	for _, iv := range ivs {
		if iv.lo == nil || iv.hi == nil {
			return nil, ErrUnbounded
		}
	}
	var points [][]*big.Int
	value := make([]*big.Int, s.dim)
	s.enumerate(ivs, value, 0, &points)
	return points, nil
}

// propagationRoundCap bounds the number of tightening passes. Systems with
// a bounded feasible region reach their fixpoint long before this; the cap
// only cuts off pathological unbounded systems where bounds ratchet
// indefinitely. Cutting off early is sound: enumeration re-checks every
// constraint exactly.
const propagationRoundCap = 1024

// propagate tightens the intervals using every constraint until a fixpoint
// is reached. Returns true if some interval became empty (infeasible).
//
// For a constraint b + sum a_i x_i >= 0 and a variable j with a_j != 0,
// every feasible point satisfies
//
//	a_j x_j >= -b - sum_{i != j} a_i x_i >= -b - max(sum_{i != j} a_i x_i),
//
// where the max ranges over the current intervals of the other variables.
// Missing bounds on the other variables make the constraint uninformative
// for x_j.
func (s *System) propagate(ivs []interval) (infeasible bool) {
	for changed, round := true, 0; changed && round < propagationRoundCap; round++ {
		changed = false
		for _, row := range s.ieqs {
			for j := 1; j <= s.dim; j++ {
				aj := row[j]
				if aj.Sign() == 0 {
					continue
				}
				rhs, ok := s.maxOthers(row, j, ivs)
				if !ok {
					continue
				}
				rhs.Neg(rhs)
				rhs.Sub(rhs, row[0]) // a_j x_j >= -b - max(sum others)
				iv := &ivs[j-1]
				if aj.Sign() > 0 {
					lo := ceilDiv(rhs, aj)
					if iv.lo == nil || lo.Cmp(iv.lo) > 0 {
						iv.lo = lo
						changed = true
					}
				} else {
					hi := floorDiv(rhs, aj)
					if iv.hi == nil || hi.Cmp(iv.hi) < 0 {
						iv.hi = hi
						changed = true
					}
				}
				if iv.empty() {
					return true
				}
			}
		}
	}
	return false
}

// maxOthers returns the maximum possible value of sum_{i != j} a_i x_i over
// the current intervals, or ok == false if that maximum is not finite.
func (s *System) maxOthers(row []*big.Int, j int, ivs []interval) (*big.Int, bool) {
	ret := new(big.Int)
	term := new(big.Int)
	for i := 1; i <= s.dim; i++ {
		if i == j {
			continue
		}
		ai := row[i]
		switch {
		case ai.Sign() == 0:
			continue
		case ai.Sign() > 0:
			if ivs[i-1].hi == nil {
				return nil, false
			}
			ret.Add(ret, term.Mul(ai, ivs[i-1].hi))
		default:
			if ivs[i-1].lo == nil {
				return nil, false
			}
			ret.Add(ret, term.Mul(ai, ivs[i-1].lo))
		}
	}
	return ret, true
}

func (s *System) enumerate(ivs []interval, value []*big.Int, depth int, points *[][]*big.Int) {
	if depth == s.dim {
		if s.satisfied(value) {
			*points = append(*points, copyRow(value))
		}
		return
	}
	iv := ivs[depth]
	for v := new(big.Int).Set(iv.lo); v.Cmp(iv.hi) <= 0; v.Add(v, big.NewInt(1)) {
		value[depth] = new(big.Int).Set(v)
		// Re-propagate with x_depth pinned to v to narrow the deeper
		// variables before descending.
		narrowed := make([]interval, s.dim)
		copy(narrowed, ivs)
		narrowed[depth] = interval{lo: value[depth], hi: value[depth]}
		if infeasible := s.propagate(narrowed); infeasible {
			continue
		}
		s.enumerate(narrowed, value, depth+1, points)
	}
	value[depth] = nil
}

// satisfied checks every constraint exactly at the given point.
func (s *System) satisfied(value []*big.Int) bool {
	acc := new(big.Int)
	term := new(big.Int)
	for _, row := range s.ieqs {
		acc.Set(row[0])
		for i := 1; i <= s.dim; i++ {
			acc.Add(acc, term.Mul(row[i], value[i-1]))
		}
		if acc.Sign() < 0 {
			return false
		}
	}
	return true
}

// floorDiv returns floor(a / b) for b != 0.
func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// ceilDiv returns ceil(a / b) for b != 0.
func ceilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) == (b.Sign() < 0) {
		q.Add(q, big.NewInt(1))
	}
	return q
}
