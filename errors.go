package calculator

import "strconv"

// Kind classifies an evaluation failure. Kind implements error so that it can
// be the target of errors.Is.
type Kind int8

const (
	kindNone Kind = iota
	// UnbalancedParenthesis is a close parenthesis with no matching open
	// parenthesis or the reverse.
	UnbalancedParenthesis
	// UnknownOperator is text that is neither a number nor the name of an
	// operator or constant.
	UnknownOperator
	// StackUnderflow is an operator without enough operands.
	StackUnderflow
	// DivisionByZero is a division with a zero divisor.
	DivisionByZero
	// MalformedResult is an expression that leaves other than exactly one
	// value after evaluation, e.g. "2 3" or "()".
	MalformedResult
	// InvalidNumber is a run of digits and decimal points that is not a
	// number, e.g. "1.2.3".
	InvalidNumber
	// Domain is an operator applied outside its domain, e.g. the factorial of
	// a negative number.
	Domain
)

func (k Kind) String() string {
	switch k {
	case UnbalancedParenthesis:
		return "unbalanced parenthesis"
	case UnknownOperator:
		return "unknown operator"
	case StackUnderflow:
		return "missing operand"
	case DivisionByZero:
		return "division by zero"
	case MalformedResult:
		return "malformed expression"
	case InvalidNumber:
		return "invalid number"
	case Domain:
		return "argument outside domain"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string {
	return k.String()
}

// Error is an error from parsing or evaluating an expression.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Col is the position of the token that caused the error as the number of
	// runes up to and including its first rune. It is 0 when the error is not
	// attributable to a single token.
	Col int
	// Text describes the offending input.
	Text string
	// Err is the underlying error, if any.
	Err error
}

func (err *Error) Error() string {
	msg := err.Kind.String()
	if err.Text != "" {
		msg += ": " + err.Text
	}
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

// Unwrap returns the underlying error.
func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is the Kind of err.
func (err *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.Kind
}

// Pos returns the position of the error.
func (err *Error) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
