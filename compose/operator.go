// SPDX-License-Identifier: MIT
// Package: lvlalg/compose
//
// operator.go — operators, weighted pools and operator draws.
//
// Pools are multisets of PoolEntry; a draw picks one entry uniformly, so the
// multiplicity is the weight. Entries resolve at draw time:
//   • Additive       → Add or Subtract with a fair coin;
//   • Multiplicative → Multiply;
//   • PowerOrDivide  → Divide with DivideProbability, otherwise Power(k),
//                      k ~ U[2, MaxPower]; MaxPower < 2 always divides.

package compose

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlalg/randx"
)

// OpKind tags an Operator.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpPower:
		return "power"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Operator is one step of a chain. Divide carries Exponent −1, Power an
// exponent ≥ 2; the others carry 0.
type Operator struct {
	Kind     OpKind
	Exponent int
}

func Add() Operator      { return Operator{Kind: OpAdd} }
func Subtract() Operator { return Operator{Kind: OpSubtract} }
func Multiply() Operator { return Operator{Kind: OpMultiply} }
func Divide() Operator   { return Operator{Kind: OpDivide, Exponent: -1} }

// Power raises the accumulated value to k. Values below 2 are clamped to 2.
func Power(k int) Operator {
	if k < 2 {
		k = 2
	}
	return Operator{Kind: OpPower, Exponent: k}
}

func (o Operator) String() string {
	if o.Kind == OpPower {
		return fmt.Sprintf("power(%d)", o.Exponent)
	}
	return o.Kind.String()
}

// PoolEntry is one weighted slot of an operator pool.
type PoolEntry uint8

const (
	Additive PoolEntry = iota
	Multiplicative
	PowerOrDivide
)

// Pool is a multiset of entries.
type Pool []PoolEntry

// Standard pools: additive steps dominate, numeric chains also exponentiate.
var (
	NumericPool   = Pool{Additive, Additive, Additive, Multiplicative, Multiplicative, PowerOrDivide, PowerOrDivide}
	AlgebraicPool = Pool{Additive, Additive, Multiplicative, PowerOrDivide}
)

// Default resolution of PowerOrDivide in numeric chains.
const DefaultDivideProbability = 0.6

// DrawSpec parameterizes operator draws.
type DrawSpec struct {
	Pool              Pool
	DivideProbability float64 // chance that PowerOrDivide resolves to Divide
	MaxPower          int     // largest Power exponent; < 2 disables Power
}

// NumericDrawSpec mixes in powers up to maxPower.
func NumericDrawSpec(maxPower int) DrawSpec {
	return DrawSpec{Pool: NumericPool, DivideProbability: DefaultDivideProbability, MaxPower: maxPower}
}

// AlgebraicDrawSpec never exponentiates: PowerOrDivide always divides.
func AlgebraicDrawSpec() DrawSpec {
	return DrawSpec{Pool: AlgebraicPool, DivideProbability: 1}
}

// DrawOperator draws one operator. An empty pool draws from AlgebraicPool.
func DrawOperator(rng *rand.Rand, s DrawSpec) Operator {
	r := randx.OrDefault(rng)
	pool := s.Pool
	if len(pool) == 0 {
		pool = AlgebraicPool
	}
	switch pool[r.Intn(len(pool))] {
	case Additive:
		if r.Intn(2) == 0 {
			return Add()
		}
		return Subtract()
	case Multiplicative:
		return Multiply()
	default:
		if s.MaxPower < 2 || r.Float64() < s.DivideProbability {
			return Divide()
		}
		return Power(2 + r.Intn(s.MaxPower-1))
	}
}

// DrawOperators draws n operators independently.
func DrawOperators(rng *rand.Rand, n int, s DrawSpec) []Operator {
	r := randx.OrDefault(rng)
	if n < 0 {
		n = 0
	}
	ops := make([]Operator, n)
	for i := range ops {
		ops[i] = DrawOperator(r, s)
	}
	return ops
}
