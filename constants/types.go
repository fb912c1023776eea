// Package constants types: sentinel errors, the order-preserving Resolved
// mapping and functional options for Resolve.
package constants

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fparse/expr"
)

// Sentinel errors returned by Resolve and Resolved.Inject.
var (
	// ErrLengthMismatch indicates the name and expression lists differ in
	// length — a fatal configuration error detected before any compilation.
	ErrLengthMismatch = errors.New("constants: constant_names and constant_expressions must have equal length")

	// ErrBadConstantName indicates the backend rejected a constant name
	// (invalid identifier or collision with a reserved token).
	ErrBadConstantName = errors.New("constants: invalid constant name")

	// ErrBadExpression indicates a defining expression failed to parse; the
	// wrapping error carries the literal text and the parser diagnostic.
	ErrBadExpression = errors.New("constants: invalid constant expression")
)

// Resolved is the order-preserving outcome of one constant resolution:
// a name → value mapping built incrementally in definition order. It is
// immutable once returned by Resolve.
type Resolved struct {
	names  []string
	values map[string]float64
}

// Len returns the number of resolved constants.
func (r Resolved) Len() int { return len(r.names) }

// Names returns the constant names in original definition order.
// The returned slice is a copy; mutating it does not affect r.
func (r Resolved) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Value returns the resolved value for name and whether it exists.
func (r Resolved) Value(name string) (float64, bool) {
	v, ok := r.values[name]

	return v, ok
}

// Inject adds every resolved constant to target in original definition
// order. Injection failure is fatal and names the offending constant.
func (r Resolved) Inject(target expr.Expression) error {
	for _, name := range r.names {
		if !target.AddConstant(name, r.values[name]) {
			return fmt.Errorf("%w: %q", ErrBadConstantName, name)
		}
	}

	return nil
}

// Option customizes Resolve. Safe to apply repeatedly; last writer wins.
type Option func(*settings)

// settings holds Resolve collaborators.
type settings struct {
	newBackend func() expr.Expression
}

// WithBackend substitutes the expression backend used to compile each
// constant's defining expression. The default constructs the native
// expr.Func; pass a different constructor to resolve constants through an
// alternative engine (e.g., exprlang.New).
func WithBackend(constructor func() expr.Expression) Option {
	return func(s *settings) { s.newBackend = constructor }
}
