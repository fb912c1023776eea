package expr

// Algebraic auto-optimization: a post-parse simplification pass enabled by
// Flags.AutoOptimize. Two rewrites are applied bottom-up:
//
//  1. Constant folding — a subtree whose leaves are all literals is replaced
//     by its value, PROVIDED the fold evaluates without a domain error.
//     Subtrees like 1/0 are kept intact so the error surfaces at Eval time
//     with its proper code instead of being baked in silently.
//  2. Identity elimination — x+0, 0+x, x-0, x*1, 1*x, x*0, 0*x, x/1, x^1,
//     x^0 and --x reduce to their trivial forms.
//
// The pass is pure: it returns a new tree and never mutates its input, so a
// Func can re-prepare under different flags from the same parsed source.

// optimize simplifies the tree rooted at n and returns the replacement root.
func optimize(n node) node {
	switch v := n.(type) {
	case *numNode, *varNode:
		return n

	case *negNode:
		x := optimize(v.x)
		// --x => x
		if inner, ok := x.(*negNode); ok {
			return inner.x
		}
		if c, ok := x.(*numNode); ok {
			return &numNode{v: -c.v}
		}

		return &negNode{x: x}

	case *binNode:
		return optimizeBin(&binNode{op: v.op, l: optimize(v.l), r: optimize(v.r)})

	case *callNode:
		args := make([]node, len(v.args))
		for i, a := range v.args {
			args[i] = optimize(a)
		}
		folded := &callNode{fn: v.fn, args: args}
		if out, ok := tryFoldCall(folded); ok {
			return out
		}

		return folded
	}

	return n
}

// optimizeBin folds constant operands and applies identity rewrites.
// Children are already optimized on entry.
func optimizeBin(n *binNode) node {
	lc, lNum := n.l.(*numNode)
	rc, rNum := n.r.(*numNode)

	if lNum && rNum {
		st := evalState{}
		v := walkBin(n, &st)
		if st.errcode == EvalOK {
			return &numNode{v: v}
		}

		return n // fold would hide a domain error; evaluate lazily
	}

	switch n.op {
	case tokPlus:
		if lNum && lc.v == 0 {
			return n.r
		}
		if rNum && rc.v == 0 {
			return n.l
		}
	case tokMinus:
		if rNum && rc.v == 0 {
			return n.l
		}
	case tokStar:
		if lNum && lc.v == 1 {
			return n.r
		}
		if rNum && rc.v == 1 {
			return n.l
		}
		// x*0 folds to 0; NaN-propagation through a deliberately zeroed
		// branch is not preserved, same trade-off the classic fpoptimizer makes.
		if lNum && lc.v == 0 || rNum && rc.v == 0 {
			return &numNode{v: 0}
		}
	case tokSlash:
		if rNum && rc.v == 1 {
			return n.l
		}
	case tokCaret:
		if rNum && rc.v == 1 {
			return n.l
		}
		if rNum && rc.v == 0 {
			return &numNode{v: 1}
		}
	}

	return n
}

// tryFoldCall evaluates a call whose arguments are all literals, keeping the
// call intact when folding would trigger a domain error.
func tryFoldCall(n *callNode) (node, bool) {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		c, ok := a.(*numNode)
		if !ok {
			return nil, false
		}
		args[i] = c.v
	}

	st := evalState{}
	v := n.fn.eval(&st, args)
	if st.errcode != EvalOK {
		return nil, false
	}

	return &numNode{v: v}, true
}
