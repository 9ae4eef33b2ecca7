// Package calculator evaluates arithmetic expressions written as text.
//
// Expressions use the binary operators + - * / ^, the postfix factorial !, the
// prefix functions sin, cos, tan, and cot (in radians), parentheses, and the
// named constants pi and e. Names are matched without regard to case. A minus
// sign immediately after an open parenthesis, or at the start of the
// expression, negates the term that follows it: "(-5)+3" is -2.
//
// Parsing converts the infix text to postfix (reverse Polish) order with the
// shunting-yard algorithm. An Expr holds the postfix sequence and can be
// evaluated any number of times. Evaluate is a shortcut that does both.
//
// Precedence runs, from loosest to tightest, + and -, then * and /, then ^,
// then ! and the functions. Operators of equal precedence group to the left,
// so "2^3^2" is 64; the HonorAssociativity option makes ^ group to the right.
//
// All arithmetic is float64. Every failure is reported as an *Error whose Kind
// classifies it, so errors.Is(err, calculator.DivisionByZero) and the like
// work on anything Parse, Eval, or Evaluate return.
package calculator
