package calculator

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator/dynamic"
)

// Expr is a parsed expression in postfix order. An Expr is immutable and safe
// to evaluate concurrently.
type Expr struct {
	rpn *dynamic.Queue[Token]
}

// converter holds the state of a shunting-yard conversion.
type converter struct {
	scan *lexer
	p    parsectx
	// out receives tokens in postfix order.
	out *dynamic.Queue[Token]
	// ops holds pending operators and open parenthesis markers. The marker
	// for the implicit parenthesis around the whole input has position 0.
	ops *dynamic.Stack[Token]
	// sym accumulates runes of an operator or constant name, starting at
	// sympos.
	sym    strings.Builder
	sympos int
}

// Parse parses an expression into postfix order. The given options are
// applied in order. Errors resulting from invalid input are *Error; other
// errors come from src.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	c := converter{
		scan: lex(src),
		out:  dynamic.NewQueue[Token](),
		ops:  dynamic.NewStack[Token](),
	}
	for _, opt := range opts {
		c.p = opt.parseOption(c.p)
	}
	// The whole input is wrapped in an implicit pair of parentheses so that
	// its end flushes the operator stack.
	if err := c.open(0); err != nil {
		return nil, err
	}
	for {
		tok, err := c.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenSym && c.sym.Len() > 0 {
			// Anything but another symbol rune ends a name that matched
			// nothing.
			return nil, &Error{Kind: UnknownOperator, Col: c.sympos, Text: strconv.Quote(c.sym.String())}
		}
		switch tok.kind {
		case tokenEOF:
			if err := c.close(tok, true); err != nil {
				return nil, err
			}
			return &Expr{rpn: c.out}, nil
		case tokenSpace:
			// do nothing
		case tokenNum:
			x, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, &Error{Kind: InvalidNumber, Col: tok.pos, Text: strconv.Quote(tok.text), Err: err}
			}
			c.out.Enqueue(Token{num: x, pos: tok.pos})
		case tokenOpen:
			if err := c.open(tok.pos); err != nil {
				return nil, err
			}
		case tokenClose:
			if err := c.close(tok, false); err != nil {
				return nil, err
			}
		case tokenSym:
			c.symbol(tok)
		default:
			panic("calculator: invalid token " + tok.String())
		}
	}
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// open pushes an open parenthesis marker. If the next significant token is a
// minus sign, it also outputs a zero so that the minus is a subtraction from
// zero.
func (c *converter) open(pos int) error {
	c.ops.Push(Token{op: opOpen, pos: pos})
	tok, err := c.scan.nextSignificant()
	if err != nil {
		return err
	}
	if tok.kind == tokenSym && tok.text == "-" {
		c.out.Enqueue(Token{num: 0, pos: tok.pos})
	}
	c.scan.push(tok)
	return nil
}

// close outputs operators down to the nearest open parenthesis marker and
// discards the marker. implicit indicates the close of the parenthesis around
// the entire input.
func (c *converter) close(tok lexToken, implicit bool) error {
	for {
		top, err := c.ops.Pop()
		if err != nil {
			// Only possible after the implicit parenthesis is gone, which
			// is already an error.
			return &Error{Kind: UnbalancedParenthesis, Col: tok.pos, Text: "unmatched )", Err: err}
		}
		if top.op != opOpen {
			c.out.Enqueue(top)
			continue
		}
		switch {
		case implicit && top.pos != 0:
			return &Error{Kind: UnbalancedParenthesis, Col: top.pos, Text: "unmatched ("}
		case !implicit && top.pos == 0:
			return &Error{Kind: UnbalancedParenthesis, Col: tok.pos, Text: "unmatched )"}
		}
		return nil
	}
}

// symbol extends the name being accumulated and handles it if it matches an
// operator or constant.
func (c *converter) symbol(tok lexToken) {
	if c.sym.Len() == 0 {
		c.sympos = tok.pos
	}
	c.sym.WriteString(tok.text)
	name := c.sym.String()
	if op, ok := LookupOperator(name); ok {
		c.sym.Reset()
		c.operator(op, c.sympos)
		return
	}
	if v, ok := LookupConstant(name); ok {
		c.sym.Reset()
		c.out.Enqueue(Token{num: v, pos: c.sympos})
	}
}

// operator outputs pending operators that bind at least as tightly as op, then
// pushes op.
func (c *converter) operator(op Op, pos int) {
	for {
		top, err := c.ops.Peek()
		if errors.Is(err, dynamic.ErrEmpty) || !c.p.yields(top.op, op) {
			break
		}
		c.ops.Pop()
		c.out.Enqueue(top)
	}
	c.ops.Push(Token{op: op, pos: pos})
}

// Tokens returns the expression's tokens in postfix order.
func (e *Expr) Tokens() []Token {
	return slices.Collect(e.rpn.All())
}

// String formats the expression in postfix order with tokens separated by
// spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for tok := range e.rpn.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
