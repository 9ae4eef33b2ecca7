package calculator

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator/dynamic"
)

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	q := e.rpn.Clone()
	// Each token pushes at most one value, so the operand stack never needs
	// to grow.
	stack, err := dynamic.NewFixedStack[float64](q.Len())
	if err != nil {
		panic(err)
	}
	push := func(x float64) {
		if err := stack.Push(x); err != nil {
			panic("calculator: operand stack overflow")
		}
	}
	var args [2]float64
	for q.Len() > 0 {
		tok, err := q.Dequeue()
		if err != nil {
			panic(err)
		}
		if tok.IsNum() {
			push(tok.num)
			continue
		}
		d := &optab[tok.op]
		if d.Arity == 0 {
			continue
		}
		// Pop in reverse so that args holds operands in source order.
		for i := d.Arity - 1; i >= 0; i-- {
			x, err := stack.Pop()
			if err != nil {
				return 0, &Error{Kind: StackUnderflow, Col: tok.pos, Text: strconv.Quote(d.Symbol) + " needs " + strconv.Itoa(d.Arity) + " operands", Err: err}
			}
			args[i] = x
		}
		r, err := d.Apply(args[:d.Arity]...)
		if err != nil {
			var k Kind
			if !errors.As(err, &k) {
				k = Domain
			}
			return 0, &Error{Kind: k, Col: tok.pos, Text: strconv.Quote(d.Symbol), Err: err}
		}
		push(r)
	}
	if stack.Len() != 1 {
		return 0, &Error{Kind: MalformedResult, Text: strconv.Itoa(stack.Len()) + " values instead of 1"}
	}
	r, _ := stack.Pop()
	return r, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// Evaluate parses and evaluates an expression. Empty or all-whitespace input
// evaluates to 0, and input that is only a number evaluates to that number.
// Every error is an *Error.
func Evaluate(expression string, opts ...ParseOption) (float64, error) {
	s := strings.TrimSpace(expression)
	if s == "" {
		return 0, nil
	}
	if strings.IndexFunc(s, func(r rune) bool { return !isNumeral(r) }) < 0 {
		if x, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(x, 0) {
			return x, nil
		}
	}
	return Eval(strings.NewReader(expression), opts...)
}
