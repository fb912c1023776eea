package expr

import "math"

// Closure compilation — the JIT fast path. Instead of re-dispatching on node
// types every evaluation, the tree is translated once into a chain of
// closures, each capturing its compiled children. Repeated Eval calls then
// run straight-line closure calls with no type switches.
//
// This stands in for native code generation: it is portable across every Go
// platform, so JITSupported reports true unconditionally. The feature flag
// still exists so hosts can opt out and so capability probing has a single
// authoritative answer.

// jitSupported is the platform capability for the closure-compiled fast
// path. Pure Go closures need no architecture support, hence the constant.
const jitSupported = true

// JITSupported reports whether the running platform supports the JIT fast
// path. Feature resolution (features.Resolve) consults this to decide the
// default for enable_jit and to downgrade unsatisfiable requests.
func JITSupported() bool { return jitSupported }

// program is a compiled evaluation routine over one evalState.
type program func(st *evalState) float64

// compile translates an (optimized) tree into a closure program.
func compile(n node) program {
	switch v := n.(type) {
	case *numNode:
		c := v.v

		return func(*evalState) float64 { return c }

	case *varNode:
		idx := v.idx

		return func(st *evalState) float64 { return st.param(idx) }

	case *negNode:
		x := compile(v.x)

		return func(st *evalState) float64 { return -x(st) }

	case *binNode:
		return compileBin(v)

	case *callNode:
		fn := v.fn
		args := make([]program, len(v.args))
		for i, a := range v.args {
			args[i] = compile(a)
		}

		return func(st *evalState) float64 {
			buf := make([]float64, len(args))
			for i, p := range args {
				buf[i] = p(st)
			}

			return fn.eval(st, buf)
		}
	}

	return func(*evalState) float64 { return 0 }
}

// compileBin specializes each binary operator into its own closure so the
// hot path carries no operator switch.
func compileBin(n *binNode) program {
	l, r := compile(n.l), compile(n.r)

	switch n.op {
	case tokPlus:
		return func(st *evalState) float64 { return l(st) + r(st) }
	case tokMinus:
		return func(st *evalState) float64 { return l(st) - r(st) }
	case tokStar:
		return func(st *evalState) float64 { return l(st) * r(st) }
	case tokSlash:
		return func(st *evalState) float64 {
			lv, rv := l(st), r(st)
			if rv == 0 {
				st.fail(EvalDivisionByZero)

				return 0
			}

			return lv / rv
		}
	case tokPercent:
		return func(st *evalState) float64 {
			lv, rv := l(st), r(st)
			if rv == 0 {
				st.fail(EvalDivisionByZero)

				return 0
			}

			return math.Mod(lv, rv)
		}
	case tokCaret:
		return func(st *evalState) float64 {
			lv, rv := l(st), r(st)

			return evalPow(st, []float64{lv, rv})
		}
	}

	return func(*evalState) float64 { return 0 }
}
