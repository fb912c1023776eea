// Package evaluator types: the EvalError taxonomy, the explicit Compiled
// optional and the package's sentinel error.
package evaluator

import (
	"errors"

	"github.com/katalvlaran/fparse/expr"
)

// ErrEvaluation is the sentinel wrapped by every fatal evaluation failure.
// Match with errors.Is; the full message carries the taxonomy text.
var ErrEvaluation = errors.New("evaluator: expression evaluation encountered an error")

// EvalError classifies one evaluation failure. Values mirror the backend
// error-code contract ordinally; Classify collapses anything outside the
// range to Unknown.
type EvalError int

const (
	// Unknown covers code 0 misuse and every out-of-range code.
	Unknown EvalError = iota

	// DivisionByZero — code 1.
	DivisionByZero

	// NegativeSquareRoot — code 2.
	NegativeSquareRoot

	// NegativeLogarithm — code 3.
	NegativeLogarithm

	// TrigonometricDomainError — code 4.
	TrigonometricDomainError

	// MaxRecursionReached — code 5.
	MaxRecursionReached
)

// evalErrorText holds the fixed human-readable taxonomy, ordinal-indexed.
// These strings are an external contract; do not reword them.
var evalErrorText = [...]string{
	"Unknown",
	"Division by zero",
	"Square root of a negative value",
	"Logarithm of negative value",
	"Trigonometric error (asin or acos of illegal value)",
	"Maximum recursion level reached",
}

// String returns the fixed taxonomy text for the classification.
func (e EvalError) String() string {
	if e < 0 || int(e) >= len(evalErrorText) {
		return evalErrorText[Unknown]
	}

	return evalErrorText[e]
}

// Classify maps a raw backend error code onto the taxonomy. Codes outside
// 0–5 collapse to Unknown; code 0 (success) is never passed here by
// Evaluate, but classifies to Unknown for robustness.
func Classify(code int) EvalError {
	if code < 0 || code > int(MaxRecursionReached) {
		return Unknown
	}

	return EvalError(code)
}

// Compiled is an explicit optional over the expression capability. The zero
// value is the "zero function": evaluation short-circuits to 0.0 without
// invoking any backend. Use Of to wrap a real expression.
type Compiled struct {
	e expr.Expression
}

// Of wraps a compiled expression for evaluation. A nil e yields Zero().
func Of(e expr.Expression) Compiled { return Compiled{e: e} }

// Zero returns the absent expression standing for a structurally vanishing
// result (e.g., a derivative known to be identically zero).
func Zero() Compiled { return Compiled{} }

// IsZero reports whether c is the zero-function shortcut.
func (c Compiled) IsZero() bool { return c.e == nil }
