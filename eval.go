package polish

// Expr is an expression in prefix notation. It is not safe to use an Expr
// concurrently, and evaluating an Expr consumes it.
type Expr struct {
	src  string
	toks []Token
	// cur is the index of the rightmost operator left to reduce, or -1.
	cur  int
	prec uint
	obs  func(Step)
}

// New tokenizes src into an expression. Problems with the expression, such as
// unknown tokens or missing operands, are reported by Eval.
func New(src string, opts ...Option) *Expr {
	o := config(opts)
	toks, cur := classify(src, o.prec)
	return &Expr{
		src:  src,
		toks: toks,
		cur:  cur,
		prec: o.prec,
		obs:  o.obs,
	}
}

// Source returns the text from which e was created.
func (e *Expr) Source() string {
	return e.src
}

// Tokens returns a copy of the current token sequence. Before evaluation, this
// is the classified source. After a successful evaluation, it is the single
// result token.
func (e *Expr) Tokens() []Token {
	return append([]Token(nil), e.toks...)
}

// Eval evaluates the expression and returns the result. Each operator is
// applied to the two operands following it. Errors from invalid expressions
// implement EvalError.
//
// Eval reduces e in place. If it returns an error, e is left at the reduction
// that failed.
func (e *Expr) Eval() (Number, error) {
	if len(e.toks) == 0 {
		return Number{}, &EmptyExpressionError{}
	}
	for e.cur >= 0 {
		if err := e.reduce(); err != nil {
			return Number{}, err
		}
	}
	for _, tok := range e.toks {
		if tok.Kind == TokenUnknown {
			return Number{}, &UnknownTokenError{Col: tok.Col, Text: tok.Text}
		}
	}
	if len(e.toks) != 1 {
		tok := e.toks[1]
		return Number{}, &MalformedExpressionError{Col: tok.Col, Text: tok.Text, Reason: "too many operands"}
	}
	return e.toks[0].Num, nil
}

// reduce applies the operator at the cursor, replaces it and its operands with
// the result, and moves the cursor to the next operator to its left. Since the
// cursor is always the rightmost operator, its operands in a valid expression
// are the two tokens immediately following it.
func (e *Expr) reduce() error {
	i := e.cur
	op := e.toks[i]
	if i+2 >= len(e.toks) {
		return &MalformedExpressionError{Col: op.Col, Text: op.Text, Reason: "missing operand"}
	}
	x, y := e.toks[i+1], e.toks[i+2]
	for _, t := range [...]Token{x, y} {
		switch t.Kind {
		case TokenNum: // do nothing
		case TokenUnknown:
			return &UnknownTokenError{Col: t.Col, Text: t.Text}
		default:
			return &MalformedExpressionError{Col: t.Col, Text: t.Text, Reason: "operator in operand position"}
		}
	}
	r, err := op.Op.apply(x.Num, y.Num, e.prec, op.Col)
	if err != nil {
		return err
	}
	e.toks[i] = Token{Kind: TokenNum, Text: r.String(), Col: op.Col, Num: r}
	e.toks = append(e.toks[:i+1], e.toks[i+3:]...)
	e.cur = -1
	for k := i - 1; k >= 0; k-- {
		if e.toks[k].Kind == TokenOp {
			e.cur = k
			break
		}
	}
	if e.obs != nil {
		e.obs(Step{Index: i, Op: op.Op, X: x.Num, Y: y.Num, Result: r, Next: e.cur, Len: len(e.toks)})
	}
	return nil
}

// EvalString is a shortcut to create and evaluate an expression.
func EvalString(src string, opts ...Option) (Number, error) {
	return New(src, opts...).Eval()
}
