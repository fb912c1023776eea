package expr

import "math"

// node is one vertex of the parsed expression tree.
type node interface {
	// height returns the nesting depth of the subtree rooted at this node.
	height() int
}

// numNode is a numeric literal (or a folded constant subtree).
type numNode struct {
	v float64
}

// varNode reads one entry of the evaluation parameter vector.
type varNode struct {
	idx int
}

// negNode is unary minus.
type negNode struct {
	x node
}

// binNode is a binary arithmetic operation.
type binNode struct {
	op   tokenKind // tokPlus, tokMinus, tokStar, tokSlash, tokPercent, tokCaret
	l, r node
}

// callNode applies a built-in function to its evaluated arguments.
type callNode struct {
	fn   *builtin
	args []node
}

func (n *numNode) height() int { return 1 }
func (n *varNode) height() int { return 1 }
func (n *negNode) height() int { return 1 + n.x.height() }

func (n *binNode) height() int {
	hl, hr := n.l.height(), n.r.height()
	if hr > hl {
		hl = hr
	}

	return 1 + hl
}

func (n *callNode) height() int {
	h := 0
	for _, a := range n.args {
		if ah := a.height(); ah > h {
			h = ah
		}
	}

	return 1 + h
}

// builtin describes a built-in function: fixed arity plus an evaluation
// routine that may record a domain-error code on the evaluation state.
type builtin struct {
	name  string
	arity int
	eval  func(st *evalState, args []float64) float64
}

// pure wraps an error-free unary math function as a builtin eval routine.
func pure(f func(float64) float64) func(*evalState, []float64) float64 {
	return func(_ *evalState, a []float64) float64 { return f(a[0]) }
}

// pure2 wraps an error-free binary math function.
func pure2(f func(float64, float64) float64) func(*evalState, []float64) float64 {
	return func(_ *evalState, a []float64) float64 { return f(a[0], a[1]) }
}

// checkedLog guards log-family functions: non-positive arguments record
// EvalNegativeLog and evaluate to 0.
func checkedLog(f func(float64) float64) func(*evalState, []float64) float64 {
	return func(st *evalState, a []float64) float64 {
		if a[0] <= 0 {
			st.fail(EvalNegativeLog)

			return 0
		}

		return f(a[0])
	}
}

// checkedTrig guards asin/acos: arguments outside [-1,1] record
// EvalTrigDomain and evaluate to 0.
func checkedTrig(f func(float64) float64) func(*evalState, []float64) float64 {
	return func(st *evalState, a []float64) float64 {
		if a[0] < -1 || a[0] > 1 {
			st.fail(EvalTrigDomain)

			return 0
		}

		return f(a[0])
	}
}

// builtins is the fixed function table. Names here are reserved tokens:
// AddConstant refuses them and the parser resolves them before constants.
var builtins = map[string]*builtin{
	"sin":  {name: "sin", arity: 1, eval: pure(math.Sin)},
	"cos":  {name: "cos", arity: 1, eval: pure(math.Cos)},
	"tan":  {name: "tan", arity: 1, eval: pure(math.Tan)},
	"asin": {name: "asin", arity: 1, eval: checkedTrig(math.Asin)},
	"acos": {name: "acos", arity: 1, eval: checkedTrig(math.Acos)},
	"atan": {name: "atan", arity: 1, eval: pure(math.Atan)},
	"sinh": {name: "sinh", arity: 1, eval: pure(math.Sinh)},
	"cosh": {name: "cosh", arity: 1, eval: pure(math.Cosh)},
	"tanh": {name: "tanh", arity: 1, eval: pure(math.Tanh)},
	"exp":  {name: "exp", arity: 1, eval: pure(math.Exp)},
	"log":  {name: "log", arity: 1, eval: checkedLog(math.Log)},
	"log10": {name: "log10", arity: 1, eval: checkedLog(math.Log10)},
	"log2":  {name: "log2", arity: 1, eval: checkedLog(math.Log2)},
	"sqrt": {name: "sqrt", arity: 1, eval: func(st *evalState, a []float64) float64 {
		if a[0] < 0 {
			st.fail(EvalNegativeSqrt)

			return 0
		}

		return math.Sqrt(a[0])
	}},
	"abs":   {name: "abs", arity: 1, eval: pure(math.Abs)},
	"floor": {name: "floor", arity: 1, eval: pure(math.Floor)},
	"ceil":  {name: "ceil", arity: 1, eval: pure(math.Ceil)},
	"trunc": {name: "trunc", arity: 1, eval: pure(math.Trunc)},
	"round": {name: "round", arity: 1, eval: pure(math.Round)},
	"min":   {name: "min", arity: 2, eval: pure2(math.Min)},
	"max":   {name: "max", arity: 2, eval: pure2(math.Max)},
	"atan2": {name: "atan2", arity: 2, eval: pure2(math.Atan2)},
	"hypot": {name: "hypot", arity: 2, eval: pure2(math.Hypot)},
	"pow":   {name: "pow", arity: 2, eval: evalPow},
}

// evalPow implements pow(x, y) and the '^' operator: 0 raised to a negative
// exponent records EvalDivisionByZero, everything else defers to math.Pow.
func evalPow(st *evalState, a []float64) float64 {
	if a[0] == 0 && a[1] < 0 {
		st.fail(EvalDivisionByZero)

		return 0
	}

	return math.Pow(a[0], a[1])
}

// builtinConstants are predefined named values resolvable in any expression.
// AddConstant refuses these names.
var builtinConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// reservedName reports whether name collides with a built-in function or
// constant and therefore cannot be used for user constants or variables.
func reservedName(name string) bool {
	if _, ok := builtins[name]; ok {
		return true
	}
	_, ok := builtinConstants[name]

	return ok
}
