package polish

import (
	"math/big"
	"strconv"
)

// Op is an arithmetic operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Operators contains the symbols which are considered to be operators, in the
// order of their Op values starting from OpAdd.
const Operators = "+-*/"

var opsyms = map[string]Op{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
}

func (op Op) String() string {
	if op <= OpNone || int(op) > len(Operators) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// apply computes x op y. Integer operands give an exact integer result except
// for division, which always gives a float. Float results have precision prec.
// col is the operator position used in errors.
func (op Op) apply(x, y Number, prec uint, col int) (Number, error) {
	if op == OpDiv {
		if y.isZero() {
			return Number{}, &DivisionByZeroError{Col: col}
		}
	} else if x.IsInt() && y.IsInt() {
		return Number{i: op.int(x.i, y.i)}, nil
	}
	if undefined(op, x, y) {
		return Number{}, &DomainError{Col: col, Op: op, X: x, Y: y}
	}
	a, b := x.float(prec), y.float(prec)
	r := new(big.Float).SetPrec(prec)
	switch op {
	case OpAdd:
		r.Add(a, b)
	case OpSub:
		r.Sub(a, b)
	case OpMul:
		r.Mul(a, b)
	case OpDiv:
		r.Quo(a, b)
	default:
		panic("polish: invalid operator " + op.String())
	}
	return Number{f: r}, nil
}

// int computes x op y for op other than OpDiv. Nil operands are zero.
func (op Op) int(x, y *big.Int) *big.Int {
	var zero big.Int
	if x == nil {
		x = &zero
	}
	if y == nil {
		y = &zero
	}
	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(x, y)
	case OpSub:
		r.Sub(x, y)
	case OpMul:
		r.Mul(x, y)
	default:
		panic("polish: invalid integer operator " + op.String())
	}
	return r
}

// undefined reports whether x op y has no value, i.e. whether math/big would
// panic with ErrNaN. Division by zero is checked separately.
func undefined(op Op, x, y Number) bool {
	switch op {
	case OpAdd:
		return x.isInf() && y.isInf() && x.f.Signbit() != y.f.Signbit()
	case OpSub:
		return x.isInf() && y.isInf() && x.f.Signbit() == y.f.Signbit()
	case OpMul:
		return x.isInf() && y.isZero() || x.isZero() && y.isInf()
	case OpDiv:
		return x.isInf() && y.isInf()
	}
	return false
}
