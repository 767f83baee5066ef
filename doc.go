// Package polish implements a calculator for arithmetic in prefix notation.
//
// An expression is a sequence of whitespace-separated tokens in which each
// operator precedes its two operands, so "+ - 4 1 3" is "(4-1)+3" and
// "* 2 + 3 4" is "2*(3+4)". The operators are + - * and /. Operands are
// decimal integers, which are exact and unbounded, or decimal floating-point
// numbers, which are computed to a configurable precision.
//
// Expressions are evaluated by reducing the rightmost operator with the two
// operands following it until a single number remains. There is no operator
// stack; the expression's own token sequence is collapsed in place, so an Expr
// can be evaluated only once.
//
package polish
