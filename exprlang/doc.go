// Package exprlang adapts github.com/expr-lang/expr to the fparse
// expression capability (expr.Expression), demonstrating that any compliant
// compilation backend can be substituted without changing the evaluator or
// constant-resolver contracts.
//
// Overview:
//
//   - Engine compiles source text with expr-lang against an environment
//     holding registered constants, the built-in constants pi and e, the
//     declared variables and a set of domain-checked math shims
//     (sqrt, log, log10, log2, asin, acos).
//   - The shims record exact fparse error codes 2–4 when their argument is
//     out of domain, so the taxonomy behaves identically to the native
//     backend for those functions.
//
// Error-code mapping (documented, deliberately lossy):
//
//   - Codes 2–4 are exact, recorded by the shims.
//   - Division by zero (code 1) is inferred: an integer-division runtime
//     error, or a ±Inf result with no shim-recorded code, classifies as 1.
//     Float division by zero in expr-lang yields ±Inf rather than an error,
//     so inference is the best this backend can do.
//   - Code 5 has no equivalent: expr-lang enforces its own compile-time
//     limits instead of an evaluation recursion cap.
//   - Any other runtime failure (or an unexplained NaN result) reports -1,
//     which the evaluator taxonomy collapses to Unknown.
//
// Feature flags are advisory for this backend: expr-lang always compiles to
// its own bytecode and runs its own constant folding, so JIT and
// AutoOptimize are inherently on and CacheDerivatives has no effect. The
// flags are recorded for inspection but do not alter behavior.
//
// Use with the constant resolver:
//
//	res, err := constants.Resolve(names, exprs, flags,
//	    constants.WithBackend(func() expr.Expression { return exprlang.New() }),
//	)
package exprlang
