package exprlang

import (
	"fmt"
	"math"
	"strings"

	elang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/fparse/expr"
)

// unknownEvalError is reported for runtime failures this backend cannot
// attribute to a specific taxonomy entry; it lies outside 0–5 on purpose so
// the evaluator classifies it as Unknown.
const unknownEvalError = -1

// Engine is an expr.Expression backed by the expr-lang compiler and VM.
// Like the native backend, a single Engine must not be evaluated
// concurrently: Eval records the last error code on the instance.
type Engine struct {
	flags   expr.Flags
	consts  map[string]float64
	vars    []string // declared variable names, parameter order
	prog    *vm.Program
	errcode int
}

// New returns an empty expr-lang-backed expression.
func New() *Engine {
	return &Engine{consts: make(map[string]float64)}
}

// Configure records the feature flags. They are advisory here: expr-lang
// always bytecode-compiles and constant-folds on its own.
func (g *Engine) Configure(flags expr.Flags) { g.flags = flags }

// AddConstant registers a named constant for subsequent Parse calls. It
// reports false for invalid identifiers and for names reserved by this
// backend (the math shims, pi and e).
func (g *Engine) AddConstant(name string, value float64) bool {
	if !validName(name) || reserved(name) {
		return false
	}
	g.consts[name] = value

	return true
}

// Parse compiles text against a comma-separated variable list. The previous
// program is discarded on failure.
func (g *Engine) Parse(text string, variables string) error {
	g.prog, g.vars, g.errcode = nil, nil, 0

	if strings.TrimSpace(text) == "" {
		return expr.ErrEmptyExpression
	}

	vars, err := splitVariables(variables)
	if err != nil {
		return err
	}

	env := g.environment(make([]float64, len(vars)), vars)
	prog, err := elang.Compile(text, elang.Env(env), elang.AsFloat64())
	if err != nil {
		if strings.Contains(err.Error(), "unknown name") {
			return fmt.Errorf("%w: %v", expr.ErrUnknownIdent, err)
		}

		return fmt.Errorf("%w: %v", expr.ErrSyntax, err)
	}

	g.prog = prog
	g.vars = vars

	return nil
}

// Eval runs the compiled program against the parameter vector. On failure
// it returns 0 and records the mapped error code for EvalError.
func (g *Engine) Eval(params []float64) float64 {
	g.errcode = 0
	if g.prog == nil {
		return 0
	}

	out, err := elang.Run(g.prog, g.environment(params, g.vars))
	if err != nil {
		g.fail(classifyRuntime(err))

		return 0
	}

	result, ok := out.(float64)
	if !ok {
		g.fail(unknownEvalError)

		return 0
	}

	switch {
	case math.IsInf(result, 0):
		// float division by zero surfaces as ±Inf in expr-lang
		g.fail(expr.EvalDivisionByZero)

		return 0
	case math.IsNaN(result):
		g.fail(unknownEvalError)

		return 0
	}

	if g.errcode != 0 {
		return 0
	}

	return result
}

// EvalError returns the mapped error code of the most recent Eval.
func (g *Engine) EvalError() int { return g.errcode }

// fail records code unless a shim already recorded a more specific one.
func (g *Engine) fail(code int) {
	if g.errcode == 0 {
		g.errcode = code
	}
}

// environment assembles the evaluation environment: constants, pi/e,
// variables bound by position (missing trailing parameters read as 0) and
// the domain-checked shims.
func (g *Engine) environment(params []float64, vars []string) map[string]interface{} {
	env := make(map[string]interface{}, len(g.consts)+len(vars)+8)
	for name, v := range g.consts {
		env[name] = v
	}
	env["pi"] = math.Pi
	env["e"] = math.E
	for i, name := range vars {
		var v float64
		if i < len(params) {
			v = params[i]
		}
		env[name] = v
	}

	env["sqrt"] = g.checked(expr.EvalNegativeSqrt, func(x float64) bool { return x < 0 }, math.Sqrt)
	env["log"] = g.checked(expr.EvalNegativeLog, nonPositive, math.Log)
	env["log10"] = g.checked(expr.EvalNegativeLog, nonPositive, math.Log10)
	env["log2"] = g.checked(expr.EvalNegativeLog, nonPositive, math.Log2)
	env["asin"] = g.checked(expr.EvalTrigDomain, outsideUnit, math.Asin)
	env["acos"] = g.checked(expr.EvalTrigDomain, outsideUnit, math.Acos)

	return env
}

// checked wraps a math function with a domain guard that records code on
// this engine when bad(x) holds.
func (g *Engine) checked(code int, bad func(float64) bool, f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		if bad(x) {
			g.fail(code)

			return 0
		}

		return f(x)
	}
}

func nonPositive(x float64) bool { return x <= 0 }

func outsideUnit(x float64) bool { return x < -1 || x > 1 }

// classifyRuntime maps an expr-lang runtime error onto the code contract.
func classifyRuntime(err error) int {
	if strings.Contains(err.Error(), "divide by zero") ||
		strings.Contains(err.Error(), "division by zero") {
		return expr.EvalDivisionByZero
	}

	return unknownEvalError
}

// validName applies the same identifier rule as the native backend:
// [A-Za-z_][A-Za-z0-9_]*.
func validName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		letter := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}

	return name != ""
}

// reserved lists names this backend claims for shims and constants.
func reserved(name string) bool {
	switch name {
	case "sqrt", "log", "log10", "log2", "asin", "acos", "pi", "e":
		return true
	}

	return false
}

// splitVariables parses the comma-separated variable declaration.
func splitVariables(variables string) ([]string, error) {
	if strings.TrimSpace(variables) == "" {
		return nil, nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, raw := range strings.Split(variables, ",") {
		name := strings.TrimSpace(raw)
		if !validName(name) {
			return nil, fmt.Errorf("%w: bad name %q", expr.ErrBadVariable, name)
		}
		if reserved(name) {
			return nil, fmt.Errorf("%w: %q is a reserved token", expr.ErrBadVariable, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", expr.ErrBadVariable, name)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out, nil
}

// compile-time check: Engine satisfies the capability surface.
var _ expr.Expression = (*Engine)(nil)
