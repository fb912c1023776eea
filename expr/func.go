package expr

import (
	"fmt"
	"strings"
)

// Func is the native Expression backend: a lexer/recursive-descent parser,
// a tree-walking interpreter, and — under Flags.JIT — a closure-compiled
// fast path. The zero value is NOT ready for use; construct with New.
//
// Lifecycle: Configure and AddConstant first, Parse once (or again to
// recompile new source), then Eval repeatedly. Eval records the last error
// code on the instance, so a single Func must not be evaluated concurrently.
type Func struct {
	flags  Flags
	consts map[string]float64 // user constants, bound at Parse time
	nvars  int

	src    string
	ast    node    // raw parse tree, kept so Configure can re-prepare
	tree   node    // optimized tree used by the interpreter
	run    program // compiled fast path; nil when JIT is off
	height int

	errcode int
}

// New returns an empty expression with default (all-off) feature flags.
func New() *Func {
	return &Func{consts: make(map[string]float64)}
}

// Configure applies feature flags. When called after a successful Parse the
// expression is re-prepared in place, so flag changes take effect without
// re-parsing the source text.
func (f *Func) Configure(flags Flags) {
	f.flags = flags
	if f.ast != nil {
		f.prepare()
	}
}

// AddConstant registers a named constant visible to subsequent Parse calls.
// It reports false when name is not a valid identifier or collides with a
// reserved token (built-in function or constant). Re-registering an existing
// user constant overwrites its value.
func (f *Func) AddConstant(name string, value float64) bool {
	if !validIdent(name) || reservedName(name) {
		return false
	}
	f.consts[name] = value

	return true
}

// Parse compiles text against a comma-separated variable list; pass the
// empty string for a closed-form expression. Variables occupy parameter-
// vector slots in declaration order. On error the previous parse result is
// discarded and the expression is left unparsed.
func (f *Func) Parse(text string, variables string) error {
	f.ast, f.tree, f.run, f.height = nil, nil, nil, 0
	f.errcode = EvalOK

	if strings.TrimSpace(text) == "" {
		return ErrEmptyExpression
	}

	vars, err := parseVariableList(variables)
	if err != nil {
		return err
	}

	root, err := parseSource(text, vars, f.consts)
	if err != nil {
		return err
	}

	f.src = text
	f.nvars = len(vars)
	f.ast = root
	f.prepare()

	return nil
}

// prepare derives the executable form from the raw tree under current flags.
func (f *Func) prepare() {
	t := f.ast
	if f.flags.AutoOptimize {
		t = optimize(t)
	}
	f.tree = t
	f.height = t.height()
	f.run = nil
	if f.flags.JIT && jitSupported {
		f.run = compile(t)
	}
}

// Eval computes the expression for the given parameter vector (one entry
// per declared variable, in declaration order; nil is fine for closed-form
// expressions). On evaluation error it returns 0 and EvalError reports the
// code. Calling Eval before a successful Parse returns 0 with no error code.
func (f *Func) Eval(params []float64) float64 {
	f.errcode = EvalOK
	if f.tree == nil {
		return 0
	}
	if f.height > maxEvalDepth {
		f.errcode = EvalMaxRecursion

		return 0
	}

	st := evalState{params: params}
	var result float64
	if f.run != nil {
		result = f.run(&st)
	} else {
		result = walk(f.tree, &st)
	}
	f.errcode = st.errcode
	if f.errcode != EvalOK {
		return 0
	}

	return result
}

// EvalError returns the error code of the most recent Eval, 0 on success.
func (f *Func) EvalError() int { return f.errcode }

// NumVars returns the number of variables declared by the last Parse.
func (f *Func) NumVars() int { return f.nvars }

// Source returns the text of the last successfully parsed expression.
func (f *Func) Source() string { return f.src }

// parseVariableList splits a comma-separated variable declaration into a
// name→slot index map, validating names and rejecting duplicates and
// collisions with reserved tokens.
func parseVariableList(variables string) (map[string]int, error) {
	vars := make(map[string]int)
	if strings.TrimSpace(variables) == "" {
		return vars, nil
	}

	for i, raw := range strings.Split(variables, ",") {
		name := strings.TrimSpace(raw)
		if !validIdent(name) {
			return nil, fmt.Errorf("%w: bad name %q", ErrBadVariable, name)
		}
		if reservedName(name) {
			return nil, fmt.Errorf("%w: %q is a reserved token", ErrBadVariable, name)
		}
		if _, dup := vars[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadVariable, name)
		}
		vars[name] = i
	}

	return vars, nil
}

// compile-time check: Func satisfies the capability surface.
var _ Expression = (*Func)(nil)
