package polish

import (
	"fmt"
	"math/big"
)

// Number is the value of an operand. It is either an exact integer or a
// floating-point number. The zero Number is the integer 0.
type Number struct {
	// i is the integer value, if f is nil.
	i *big.Int
	// f is the float value. Numbers are never modified after they are
	// created, so f may be shared.
	f *big.Float
}

// IntNumber creates an integer Number with the value of x.
func IntNumber(x *big.Int) Number {
	return Number{i: new(big.Int).Set(x)}
}

// FloatNumber creates a floating-point Number with the value and precision of
// x.
func FloatNumber(x *big.Float) Number {
	return Number{f: new(big.Float).Copy(x)}
}

// IsInt returns whether n is an exact integer. Floating-point numbers with
// integral values are not integers.
func (n Number) IsInt() bool {
	return n.f == nil
}

// Int returns a copy of the value of n if it is an integer. If n is a float,
// the result is nil and false.
func (n Number) Int() (*big.Int, bool) {
	if n.f != nil {
		return nil, false
	}
	if n.i == nil {
		return new(big.Int), true
	}
	return new(big.Int).Set(n.i), true
}

// Float returns a copy of the value of n as a float. Integers are converted
// exactly.
func (n Number) Float() *big.Float {
	if n.f != nil {
		return new(big.Float).Copy(n.f)
	}
	if n.i == nil {
		return new(big.Float)
	}
	return new(big.Float).SetInt(n.i)
}

// Float64 returns the float64 nearest to n and the accuracy of the
// conversion.
func (n Number) Float64() (float64, big.Accuracy) {
	if n.f != nil {
		return n.f.Float64()
	}
	return n.Float().Float64()
}

// isZero returns whether n is zero, including negative zero.
func (n Number) isZero() bool {
	if n.f != nil {
		return n.f.Sign() == 0
	}
	return n.i == nil || n.i.Sign() == 0
}

// isInf returns whether n is an infinity.
func (n Number) isInf() bool {
	return n.f != nil && n.f.IsInf()
}

// float returns n as a float to a given precision. Float operands are
// returned as-is if they already have that precision.
func (n Number) float(prec uint) *big.Float {
	if n.f != nil {
		if n.f.Prec() == prec {
			return n.f
		}
		return new(big.Float).SetPrec(prec).Set(n.f)
	}
	r := new(big.Float).SetPrec(prec)
	if n.i != nil {
		r.SetInt(n.i)
	}
	return r
}

func (n Number) String() string {
	if n.f != nil {
		return n.f.Text('g', -1)
	}
	if n.i == nil {
		return "0"
	}
	return n.i.String()
}

// Format implements fmt.Formatter. Integers accept the verbs of *big.Int and
// additionally the floating-point verbs, which format the integer as a float.
// Floats accept the verbs of *big.Float. Any other verb formats integers like
// %d and floats like %g.
func (n Number) Format(s fmt.State, verb rune) {
	if n.f != nil {
		switch verb {
		case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'p', 'v': // do nothing
		default:
			verb = 'g'
		}
		n.f.Format(s, verb)
		return
	}
	i := n.i
	if i == nil {
		i = new(big.Int)
	}
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec := uint(i.BitLen())
		if prec < 64 {
			prec = 64
		}
		new(big.Float).SetPrec(prec).SetInt(i).Format(s, verb)
	case 'b', 'o', 'O', 'd', 's', 'v', 'x', 'X':
		i.Format(s, verb)
	default:
		i.Format(s, 'd')
	}
}
