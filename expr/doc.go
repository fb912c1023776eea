// Package expr provides the compiled-expression capability: parse a textual
// mathematical formula once, then evaluate it repeatedly against a numeric
// parameter vector.
//
// Overview:
//
//   - Expression is the capability surface consumed by the rest of fparse:
//     Configure(Flags), AddConstant, Parse, Eval, EvalError. Any compliant
//     backend may implement it; Func is the native pure-Go implementation.
//   - Func parses with a hand-written lexer and recursive-descent parser into
//     an expression tree, then evaluates either by tree-walking or — when the
//     JIT flag is enabled — through a closure-compiled program that removes
//     the interpreter dispatch from the hot path.
//   - The AutoOptimize flag runs an algebraic simplification pass after
//     parsing: constant subtrees are folded and trivial identities
//     (x+0, x*1, x*0, x^1, --x, ...) are eliminated before evaluation.
//
// Grammar (EBNF, usual precedence, '^' binds tightest and is right-associative):
//
//	expr    = term   { ("+" | "-") term } .
//	term    = unary  { ("*" | "/" | "%") unary } .
//	unary   = [ "-" | "+" ] power .
//	power   = primary [ "^" unary ] .
//	primary = number | ident | ident "(" expr { "," expr } ")" | "(" expr ")" .
//
// Identifiers resolve, in order, to: declared variables (by position in the
// comma-separated variable list given to Parse), constants registered via
// AddConstant, then the built-in constants pi and e. Unknown identifiers are
// a parse error. Built-in functions: sin, cos, tan, asin, acos, atan, sinh,
// cosh, tanh, exp, log, log10, log2, sqrt, abs, floor, ceil, trunc, round,
// and the two-argument min, max, pow, atan2, hypot.
//
// Evaluation error codes (fixed contract, reported by EvalError after Eval):
//
//	0 — no error
//	1 — division by zero (also x%0 and 0^negative)
//	2 — square root of a negative value
//	3 — logarithm of a non-positive value
//	4 — asin/acos argument outside [-1, 1]
//	5 — maximum recursion level reached (expression nesting beyond the cap)
//
// A failed evaluation yields 0.0 and the first error code encountered; the
// caller decides whether that is fatal (see the evaluator package).
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrEmptyExpression — Parse called with empty or blank source text.
//   - ErrSyntax          — malformed source; the wrapped message carries the
//     byte offset and a human-readable diagnostic.
//   - ErrUnknownIdent    — an identifier that is neither a variable, a
//     registered constant, a built-in constant, nor a function.
//   - ErrBadVariable     — the variable list passed to Parse contains an
//     invalid or duplicate name.
//
// Concurrency:
//
//   - Configure, AddConstant and Parse are build-time operations and must not
//     race with each other or with Eval.
//   - Eval records the last error code on the instance, so concurrent Eval
//     calls on ONE Func must be serialized by the caller. Distinct Func
//     instances evaluate independently and may run in parallel.
//
// Complexity:
//
//   - Parse: O(n) in source length; optimization O(k) in tree size.
//   - Eval: O(k) in tree size, with a lower constant under the JIT fast path.
package expr
