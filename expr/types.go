// Package expr core types: the Expression capability surface, feature flags,
// evaluation error codes and sentinel parse errors.
package expr

import "errors"

// Evaluation error codes reported by EvalError after a call to Eval.
// Code 0 means success; codes 1–5 form a fixed contract consumed by the
// evaluator package's taxonomy. Backends must not reassign these meanings.
const (
	// EvalOK indicates the last evaluation completed without error.
	EvalOK = 0

	// EvalDivisionByZero is reported for x/0, x%0 and 0^y with y < 0.
	EvalDivisionByZero = 1

	// EvalNegativeSqrt is reported for sqrt(x) with x < 0.
	EvalNegativeSqrt = 2

	// EvalNegativeLog is reported for log/log10/log2 of a non-positive value.
	EvalNegativeLog = 3

	// EvalTrigDomain is reported for asin/acos arguments outside [-1, 1].
	EvalTrigDomain = 4

	// EvalMaxRecursion is reported when expression nesting exceeds the
	// evaluation depth cap (maxEvalDepth).
	EvalMaxRecursion = 5
)

// maxEvalDepth caps the nesting depth of an evaluated expression tree.
// Trees deeper than this evaluate to 0 with EvalMaxRecursion.
const maxEvalDepth = 256

// Sentinel errors returned by Parse.
var (
	// ErrEmptyExpression indicates Parse was called with empty or blank text.
	ErrEmptyExpression = errors.New("expr: expression text is empty")

	// ErrSyntax indicates malformed expression text; the wrapping error
	// carries the byte offset and a diagnostic message.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdent indicates an identifier that is neither a declared
	// variable, a registered constant, a built-in constant nor a function.
	ErrUnknownIdent = errors.New("expr: unknown identifier")

	// ErrBadVariable indicates an invalid or duplicate name in the variable
	// list passed to Parse.
	ErrBadVariable = errors.New("expr: invalid variable list")
)

// Flags carries the per-expression feature configuration. It is a plain
// immutable value: construct it (usually via features.Flags.Apply) and pass
// it to Configure before Parse.
//
// Fields:
//   - JIT              — compile the parsed tree into a closure program for
//     faster repeated evaluation; ignored when the platform lacks support
//     (see JITSupported).
//   - CacheDerivatives — reserved for derivative-bearing backends; the
//     native backend records it but performs no differentiation.
//   - AutoOptimize     — run the algebraic simplification pass after parsing.
type Flags struct {
	JIT              bool
	CacheDerivatives bool
	AutoOptimize     bool
}

// Expression is the compiled-expression capability consumed by the
// evaluator and constants packages. Implementations must keep the error-code
// contract documented on the Eval* constants.
//
// Call order: Configure and AddConstant first, then Parse, then Eval any
// number of times. EvalError reports the code of the most recent Eval.
type Expression interface {
	// Configure applies feature flags. Calling it after Parse re-prepares
	// the expression under the new flags.
	Configure(Flags)

	// AddConstant registers a named numeric constant for subsequent Parse
	// calls. It reports false when the name is not a valid identifier or
	// collides with a reserved token (built-in function or constant).
	AddConstant(name string, value float64) bool

	// Parse compiles source text against a comma-separated variable list
	// (empty string for a closed-form expression). On failure the expression
	// is left unparsed and the returned error wraps a sentinel from this
	// package together with a positional diagnostic.
	Parse(text string, variables string) error

	// Eval computes the expression value for the given parameter vector,
	// one entry per declared variable in declaration order. On evaluation
	// error it returns 0 and records a nonzero code for EvalError.
	Eval(params []float64) float64

	// EvalError returns the error code of the most recent Eval
	// (0 on success), per the Eval* constants.
	EvalError() int
}
