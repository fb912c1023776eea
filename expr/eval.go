package expr

import "math"

// evalState carries one evaluation's parameter vector and error slot.
// The first error recorded wins; later failures in the same evaluation do
// not overwrite it, so the reported code identifies the root cause.
type evalState struct {
	params  []float64
	errcode int
}

// fail records code unless an earlier error already fired.
func (st *evalState) fail(code int) {
	if st.errcode == EvalOK {
		st.errcode = code
	}
}

// param reads the idx-th parameter, treating missing trailing entries as 0
// so that closed-form expressions can be evaluated with a nil vector.
func (st *evalState) param(idx int) float64 {
	if idx < len(st.params) {
		return st.params[idx]
	}

	return 0
}

// walk evaluates the expression tree by structural recursion. Domain errors
// are recorded on st and the offending subexpression evaluates to 0; the
// caller converts the code into NaN or a fatal failure (evaluator package).
func walk(n node, st *evalState) float64 {
	switch v := n.(type) {
	case *numNode:
		return v.v
	case *varNode:
		return st.param(v.idx)
	case *negNode:
		return -walk(v.x, st)
	case *binNode:
		return walkBin(v, st)
	case *callNode:
		args := make([]float64, len(v.args))
		for i, a := range v.args {
			args[i] = walk(a, st)
		}

		return v.fn.eval(st, args)
	}

	return 0
}

// walkBin evaluates one binary operation with the fparse error contract:
// division and modulo by exact zero record EvalDivisionByZero.
func walkBin(n *binNode, st *evalState) float64 {
	l := walk(n.l, st)
	r := walk(n.r, st)

	switch n.op {
	case tokPlus:
		return l + r
	case tokMinus:
		return l - r
	case tokStar:
		return l * r
	case tokSlash:
		if r == 0 {
			st.fail(EvalDivisionByZero)

			return 0
		}

		return l / r
	case tokPercent:
		if r == 0 {
			st.fail(EvalDivisionByZero)

			return 0
		}

		return math.Mod(l, r)
	case tokCaret:
		return evalPow(st, []float64{l, r})
	}

	return 0
}
