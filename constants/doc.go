// Package constants resolves an ordered list of named numeric constants,
// each defined by a closed-form expression that may reference only constants
// EARLIER in the list, and injects the resolved values into further
// expressions.
//
// Overview:
//
//   - Resolve takes parallel name/expression slices plus the session's
//     feature flags and produces a Resolved mapping in definition order.
//   - Each constant is compiled in a FRESH backend expression into which
//     exactly the strict prefix of already-resolved constants has been
//     injected. Forward and self references are therefore structurally
//     impossible — a constant's own name is never visible to its defining
//     expression — so resolution is deterministic and acyclic by
//     construction, with no runtime cycle detection.
//   - Resolved.Inject adds every entry, in original definition order, to a
//     caller-supplied target expression (the host's long-lived parser).
//
// The algorithm is inherently sequential: entry i depends on all entries
// j < i. Do not parallelize across entries.
//
// Error handling (all fatal, surfaced immediately, no partial results):
//
//   - ErrLengthMismatch   — names and expressions differ in length; detected
//     before any expression is compiled.
//   - ErrBadConstantName  — a name was rejected by the backend (invalid
//     identifier or reserved token); the message names the offender.
//   - ErrBadExpression    — a defining expression failed to parse; the
//     message carries the literal expression text and the parser diagnostic.
//
// Example:
//
//	flags := features.Resolve(features.Settings{})
//	res, err := constants.Resolve(
//	    []string{"a", "b", "c"},
//	    []string{"2", "a*3", "a+b"},
//	    flags,
//	) // a=2, b=6, c=8
//	if err != nil { ... }
//	if err = res.Inject(parser); err != nil { ... }
//
// Complexity: O(n²) constant injections for n constants (prefix injection
// per entry), plus n parses — n is tiny in practice.
package constants
