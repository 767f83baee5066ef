package polish

import "strconv"

// Token is a classified unit of an expression.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Text is the source text of the token. Tokens produced by applying an
	// operator have the result's text.
	Text string
	// Col is the position of the token as the number of runes up to and
	// including its first rune.
	Col int
	// Num is the value of a TokenNum.
	Num Number
	// Op is the operator of a TokenOp.
	Op Op
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the classification of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is an integer or floating-point operand.
	TokenNum
	// TokenOp is one of the operators in Operators.
	TokenOp
	// TokenUnknown is any token that is neither a number nor an operator.
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenUnknown:
		return "Unknown"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}
