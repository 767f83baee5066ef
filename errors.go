package polish

import "strconv"

// EmptyExpressionError is an error indicating an expression with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// UnknownTokenError is an error indicating a token that is neither a number
// nor an operator. It implements EvalError.
type UnknownTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *UnknownTokenError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Text))
}

func (err *UnknownTokenError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating an expression that is not
// valid prefix notation: an operator without two operands, or operands left
// over after every operator is applied. It implements EvalError.
type MalformedExpressionError struct {
	// Col is the position of the operator missing an operand, or of the first
	// leftover operand.
	Col int
	// Text is the token at Col.
	Text string
	// Reason describes what is wrong.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, "malformed expression at "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
// It implements EvalError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error indicating an operation with no defined result,
// such as the difference of two equal infinities. It implements EvalError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Op
	// X and Y are the operands.
	X, Y Number
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X.String()+" "+err.Op.String()+" "+err.Y.String()+" is undefined")
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// EvalError is an error with position information. Every error resulting from
// evaluating an invalid expression implements EvalError.
type EvalError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error is not associated with a token.
	Pos() int
}

var (
	_ EvalError = (*EmptyExpressionError)(nil)
	_ EvalError = (*UnknownTokenError)(nil)
	_ EvalError = (*MalformedExpressionError)(nil)
	_ EvalError = (*DivisionByZeroError)(nil)
	_ EvalError = (*DomainError)(nil)
)
