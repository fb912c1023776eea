package constants

import (
	"fmt"

	"github.com/katalvlaran/fparse/expr"
	"github.com/katalvlaran/fparse/features"
)

// Resolve evaluates an ordered list of named constants, each defined by a
// closed-form expression over the constants BEFORE it in the list.
//
// Algorithm (sequential, order-sensitive):
//
//	for each index i:
//	  1. construct a fresh backend expression;
//	  2. apply flags to it — the same mechanism as any other expression, so
//	     constant resolution shares the session's JIT/cache/optimize setup;
//	  3. inject constants 0..i-1 in order (the strict prefix: entry i's own
//	     name is never visible to its defining expression);
//	  4. parse expressions[i] with an empty variable list;
//	  5. evaluate with no runtime parameters and record the value.
//
// All failures are fatal and return immediately with no partial result.
// Identical inputs and flags produce bit-identical values.
func Resolve(names, expressions []string, flags features.Flags, opts ...Option) (Resolved, error) {
	if len(names) != len(expressions) {
		return Resolved{}, ErrLengthMismatch
	}

	cfg := settings{newBackend: func() expr.Expression { return expr.New() }}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := Resolved{
		names:  make([]string, 0, len(names)),
		values: make(map[string]float64, len(names)),
	}

	for i, name := range names {
		if _, dup := r.values[name]; dup {
			return Resolved{}, fmt.Errorf("%w: duplicate %q", ErrBadConstantName, name)
		}

		e := cfg.newBackend()
		flags.Apply(e)

		// strict prefix only: constants resolved so far
		if err := r.Inject(e); err != nil {
			return Resolved{}, err
		}

		if err := e.Parse(expressions[i], ""); err != nil {
			return Resolved{}, fmt.Errorf("%w: %q: %v", ErrBadExpression, expressions[i], err)
		}

		// closed-form by contract: no parameter vector
		value := evalConstant(e)

		// register under entry i's name; rejection here catches names the
		// backend considers reserved before any later entry depends on them
		if !e.AddConstant(name, value) {
			return Resolved{}, fmt.Errorf("%w: %q", ErrBadConstantName, name)
		}

		r.names = append(r.names, name)
		r.values[name] = value
	}

	return r, nil
}

// evalConstant runs one parameterless evaluation. Evaluation errors inside a
// constant's defining expression are not classified here: the value is
// recorded as computed (0 on error), mirroring the evaluator's non-fatal
// treatment of constant prework.
func evalConstant(e expr.Expression) float64 {
	return e.Eval(nil)
}
