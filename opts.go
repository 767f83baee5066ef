package polish

// Option is an option used when creating an expression.
type Option interface {
	exprOption()
}

type (
	precopt    uint
	observeopt func(Step)
)

func (precopt) exprOption()    {}
func (observeopt) exprOption() {}

// Prec sets the precision in bits of floating-point calculations. The default
// is 64, and a precision of 0 leaves the setting unchanged. Integer
// calculations are always exact.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Observe sets a function to be called after each reduction during
// evaluation.
func Observe(f func(Step)) Option {
	return observeopt(f)
}

// Step describes one reduction: the operator at Index was applied to the two
// tokens following it, and the three tokens were replaced by the result.
type Step struct {
	// Index is the position of the operator in the token sequence.
	Index int
	// Op is the operator that was applied.
	Op Op
	// X and Y are the operands, and Result is the value of X Op Y.
	X, Y, Result Number
	// Next is the index of the next operator to reduce, or -1 if there are
	// none left.
	Next int
	// Len is the length of the token sequence after the reduction.
	Len int
}

type options struct {
	prec uint
	obs  func(Step)
}

// config applies options. Later options override earlier ones.
func config(opts []Option) options {
	o := options{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			if opt != 0 {
				o.prec = uint(opt)
			}
		case observeopt:
			o.obs = opt
		default:
			panic("polish: unknown option type")
		}
	}
	return o
}
