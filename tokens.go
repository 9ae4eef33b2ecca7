package calculator

import "strconv"

// Op identifies an operator.
type Op uint8

const (
	opNone Op = iota
	// opOpen marks an open parenthesis on the operator stack. It never appears
	// in a parsed expression.
	opOpen

	OpAdd  // x + y
	OpSub  // x - y
	OpMul  // x * y
	OpDiv  // x / y
	OpPow  // x ^ y
	OpFact // x!
	OpSin  // sin x
	OpCos  // cos x
	OpTan  // tan x
	OpCot  // cot x

	opCount
)

// String returns the operator's symbol.
func (op Op) String() string {
	if op < opCount && optab[op].Symbol != "" {
		return optab[op].Symbol
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Token is an element of a postfix expression: either a number or an operator.
type Token struct {
	// op is the operator, or opNone for a number.
	op  Op
	num float64
	// pos is the column where the token appeared in the source. Constants and
	// synthetic zeros take the position of the text that produced them.
	pos int
}

// IsNum returns whether the token is a number.
func (t Token) IsNum() bool {
	return t.op == opNone
}

// Num returns the token's value. It is 0 for operators.
func (t Token) Num() float64 {
	return t.num
}

// Op returns the token's operator. It is 0 for numbers.
func (t Token) Op() Op {
	return t.op
}

// Pos returns the column of the input where the token appeared.
func (t Token) Pos() int {
	return t.pos
}

func (t Token) String() string {
	if t.IsNum() {
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	}
	return t.op.String()
}
