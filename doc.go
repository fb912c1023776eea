// Package fparse is a configurable parsing-and-evaluation core for textual
// mathematical expressions — from feature-flag resolution to ordered
// named-constant resolution and NaN-safe evaluation.
//
// 🚀 What is fparse?
//
//	A small, deterministic library that brings together:
//		• Compiled expressions: parse once, evaluate many times against a parameter vector
//		• Feature flags: JIT fast path, derivative caching, algebraic auto-optimization
//		• A fixed evaluation-error taxonomy (division by zero, domain errors, recursion cap)
//		• Fail-fast or NaN-propagation policy, chosen per session
//		• Ordered constant resolution: constants defined by expressions over earlier constants
//
// ✨ Why choose fparse?
//
//   - Deterministic by construction – no global state, bit-identical re-runs
//   - Explicit configuration – immutable Flags passed into every expression, never ambient
//   - Swappable backend – any engine implementing expr.Expression plugs in unchanged
//   - Pure Go – the native backend has no cgo and no hidden dependencies
//
// Everything is organized under five subpackages:
//
//	expr/      — the Expression capability: lexer, parser, interpreter, optimizer, JIT
//	exprlang/  — substitute backend adapter over github.com/expr-lang/expr
//	features/  — feature-flag resolution from host settings (+ YAML loader)
//	evaluator/ — one evaluation call: taxonomy, fail-fast vs. NaN policy
//	constants/ — ordered, prefix-only resolution of named numeric constants
//
// Quick taste:
//
//	flags := features.Resolve(features.Settings{})
//	res, err := constants.Resolve(
//	    []string{"a", "b"},
//	    []string{"2", "a*3"},
//	    flags,
//	)
//	// res: a=2, b=6 — later constants may reference earlier ones only.
//
// Dive into each package's doc.go for full contracts, sentinel errors and
// worked examples.
package fparse
