package polish

import (
	"math/big"
	"strings"
	"unicode"
)

// classify splits src into tokens and classifies each one. Tokens are
// separated by runs of whitespace. The second result is the index of the last
// operator token, or -1 if there are none.
func classify(src string, prec uint) ([]Token, int) {
	var toks []Token
	last := -1
	start, col, scol := -1, 0, 0
	emit := func(text string) {
		tok := token(text, scol, prec)
		if tok.Kind == TokenOp {
			last = len(toks)
		}
		toks = append(toks, tok)
	}
	for i, r := range src {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				emit(src[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start, scol = i, col
		}
	}
	if start >= 0 {
		emit(src[start:])
	}
	return toks, last
}

// token classifies a single piece of text. Integers take priority over
// floats, which take priority over operators, so "-1" is a number.
func token(text string, col int, prec uint) Token {
	tok := Token{Text: text, Col: col}
	if i, ok := new(big.Int).SetString(text, 10); ok {
		tok.Kind = TokenNum
		tok.Num = Number{i: i}
		return tok
	}
	if f, ok := parseFloat(text, prec); ok {
		tok.Kind = TokenNum
		tok.Num = Number{f: f}
		return tok
	}
	if op, ok := opsyms[text]; ok {
		tok.Kind = TokenOp
		tok.Op = op
		return tok
	}
	tok.Kind = TokenUnknown
	return tok
}

// parseFloat parses a decimal float literal. Literals too large or too small
// in magnitude for the exponent range become infinities or zeros.
func parseFloat(s string, prec uint) (*big.Float, bool) {
	if strings.ContainsAny(s, "pP") {
		// big.Float accepts binary exponents in any base.
		return nil, false
	}
	r, _, err := new(big.Float).SetPrec(prec).Parse(s, 10)
	switch {
	case err == nil:
		return r, true
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// N.B. s is non-empty, otherwise we couldn't overflow.
		r = new(big.Float).SetPrec(prec)
		if k := strings.LastIndexAny(s, "eE"); k >= 0 && strings.HasPrefix(s[k+1:], "-") {
			// Underflow.
			if s[0] == '-' {
				r.Neg(r)
			}
			return r, true
		}
		return r.SetInf(s[0] == '-'), true
	default:
		return nil, false
	}
}

// Tokenize splits src into classified tokens. Only the Prec option affects
// the result.
func Tokenize(src string, opts ...Option) []Token {
	toks, _ := classify(src, config(opts).prec)
	return toks
}
