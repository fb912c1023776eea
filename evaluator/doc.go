// Package evaluator wraps a single evaluation call against a compiled
// expression: it translates backend error codes into a fixed six-entry
// taxonomy and applies the session's fail-fast vs. NaN-propagation policy.
//
// Overview:
//
//   - Compiled is an explicit optional over expr.Expression. Zero() denotes
//     "the zero function" — the shortcut used when a derivative is
//     structurally known to vanish. Evaluating it returns exactly 0.0 and
//     never touches a backend. Of(e) wraps a real expression.
//   - Evaluate runs the backend, reads its post-evaluation error code and
//     returns either the numeric result, NaN (the degenerate-but-valid
//     outcome), or a fatal error, depending on flags.FailOnEvalError.
//
// Error taxonomy (fixed, ordinal-indexed; codes outside 0–5 collapse to Unknown):
//
//	0 — Unknown
//	1 — Division by zero
//	2 — Square root of a negative value
//	3 — Logarithm of negative value
//	4 — Trigonometric error (asin or acos of illegal value)
//	5 — Maximum recursion level reached
//
// The taxonomy texts are an external contract: hosts grep logs for them and
// tests pin them verbatim. If a backend ever reassigns its code meanings,
// this mapping must be revalidated.
//
// Policy:
//
//   - flags.FailOnEvalError == true  → a nonzero code is fatal: Evaluate
//     returns an error wrapping ErrEvaluation whose message carries the
//     classified taxonomy text. Hard stop, no retry.
//   - flags.FailOnEvalError == false → Evaluate returns NaN with a nil
//     error; the caller propagates it through downstream numerics.
//
// Evaluation is synchronous, CPU-bound and free of side effects beyond the
// fatal-failure escape; there is no retry, cancellation or timeout.
//
// Example:
//
//	v, err := evaluator.Evaluate(evaluator.Of(parser), params, flags)
//	if err != nil { ... }         // only under FailOnEvalError
//	if math.IsNaN(v) { ... }      // degenerate outcome under NaN policy
package evaluator
