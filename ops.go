package calculator

import (
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Assoc is the associativity of an operator.
type Assoc int8

const (
	Left Assoc = iota
	Right
)

// OpDef describes an operator.
type OpDef struct {
	// Op identifies the operator.
	Op Op
	// Symbol is the text that names the operator in expressions.
	Symbol string
	// Prec is the precedence. Higher binds tighter.
	Prec int
	// Arity is the number of operands, 0, 1, or 2.
	Arity int
	// Assoc is the declared associativity. It affects parsing only with the
	// HonorAssociativity option.
	Assoc Assoc

	unary  func(x float64) (float64, error)
	binary func(x, y float64) (float64, error)
}

// Apply evaluates the operator on args, which must have length equal to the
// operator's arity. For binary operators, args[0] is the left operand. The
// error, if any, is a Kind.
func (d *OpDef) Apply(args ...float64) (float64, error) {
	if len(args) != d.Arity {
		panic("calculator: wrong number of arguments to " + d.Symbol)
	}
	switch d.Arity {
	case 1:
		return d.unary(args[0])
	case 2:
		return d.binary(args[0], args[1])
	default:
		return 0, nil
	}
}

var optab = [opCount]OpDef{
	opOpen: {Op: opOpen, Symbol: "(", Prec: 0, Arity: 0},

	OpAdd: {Op: OpAdd, Symbol: "+", Prec: 2, Arity: 2, binary: func(x, y float64) (float64, error) { return x + y, nil }},
	OpSub: {Op: OpSub, Symbol: "-", Prec: 2, Arity: 2, binary: func(x, y float64) (float64, error) { return x - y, nil }},
	OpMul: {Op: OpMul, Symbol: "*", Prec: 3, Arity: 2, binary: func(x, y float64) (float64, error) { return x * y, nil }},
	OpDiv: {Op: OpDiv, Symbol: "/", Prec: 3, Arity: 2, binary: divide},
	OpPow: {Op: OpPow, Symbol: "^", Prec: 4, Arity: 2, Assoc: Right, binary: func(x, y float64) (float64, error) { return math.Pow(x, y), nil }},

	OpFact: {Op: OpFact, Symbol: "!", Prec: 5, Arity: 1, unary: factorial},
	OpSin:  {Op: OpSin, Symbol: "sin", Prec: 5, Arity: 1, Assoc: Right, unary: monadic(math.Sin)},
	OpCos:  {Op: OpCos, Symbol: "cos", Prec: 5, Arity: 1, Assoc: Right, unary: monadic(math.Cos)},
	OpTan:  {Op: OpTan, Symbol: "tan", Prec: 5, Arity: 1, Assoc: Right, unary: monadic(math.Tan)},
	OpCot:  {Op: OpCot, Symbol: "cot", Prec: 5, Arity: 1, Assoc: Right, unary: cot},
}

// opsyms maps operator symbols to operators. It is filled once from optab.
var opsyms = func() map[string]Op {
	m := make(map[string]Op, len(optab))
	for op := OpAdd; op < opCount; op++ {
		m[optab[op].Symbol] = op
	}
	return m
}()

// Operators returns the definitions of all operators.
func Operators() []OpDef {
	r := make([]OpDef, 0, opCount-OpAdd)
	return append(r, optab[OpAdd:]...)
}

// LookupOperator finds the operator with the given symbol, ignoring case.
func LookupOperator(symbol string) (Op, bool) {
	op, ok := opsyms[strings.ToLower(symbol)]
	return op, ok
}

// Def returns the definition of op. Panics if op is not an operator.
func (op Op) Def() OpDef {
	if op < OpAdd || op >= opCount {
		panic("calculator: invalid operator " + op.String())
	}
	return optab[op]
}

func monadic(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

func divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, DivisionByZero
	}
	return x / y, nil
}

func cot(x float64) (float64, error) {
	return divide(1, math.Tan(x))
}

// factorial computes x! for non-negative integers x, except that 0! is 0.
func factorial(x float64) (float64, error) {
	switch {
	case math.IsNaN(x), x < 0, x != math.Trunc(x):
		return 0, Domain
	case x == 0:
		return 0, nil
	case x > 170:
		// 171! overflows float64.
		return math.Inf(1), nil
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

// Constant is a named constant.
type Constant struct {
	Name  string
	Value float64
}

// constprec is the precision used to compute constants before rounding them
// to float64.
const constprec = 64

var constants = []Constant{
	constant("pi", bigfloat.Pi),
	constant("e", func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(constprec).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

func constant(name string, f func(out *big.Float) *big.Float) Constant {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	v, _ := r.Float64()
	return Constant{Name: name, Value: v}
}

// Constants returns the named constants.
func Constants() []Constant {
	return append([]Constant(nil), constants...)
}

// LookupConstant finds the constant with the given name, ignoring case.
func LookupConstant(name string) (float64, bool) {
	for _, c := range constants {
		if strings.EqualFold(c.Name, name) {
			return c.Value, true
		}
	}
	return 0, false
}
