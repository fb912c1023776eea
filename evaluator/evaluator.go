package evaluator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fparse/features"
)

// Evaluate runs one evaluation of c against params under the session flags.
//
// Behavior:
//
//  1. c.IsZero() — return 0.0 immediately; the backend is never invoked and
//     no error classification applies.
//  2. Otherwise Eval the backend and read its post-evaluation error code.
//  3. Code 0 — return the numeric result.
//  4. Nonzero — classify via the fixed taxonomy. Under
//     flags.FailOnEvalError the failure is fatal: the returned error wraps
//     ErrEvaluation and carries the taxonomy text. Otherwise return NaN
//     with a nil error so the caller can propagate it numerically.
//
// Evaluate is pure and idempotent; it never retries.
func Evaluate(c Compiled, params []float64, flags features.Flags) (float64, error) {
	// absent expression is the vanishing-derivative shortcut
	if c.IsZero() {
		return 0.0, nil
	}

	result := c.e.Eval(params)

	code := c.e.EvalError()
	if code == 0 {
		return result, nil
	}

	if flags.FailOnEvalError {
		return 0, fmt.Errorf("%w: %s", ErrEvaluation, Classify(code))
	}

	return math.NaN(), nil
}
