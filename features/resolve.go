package features

import (
	"log/slog"

	"github.com/katalvlaran/fparse/expr"
)

// Resolve computes the effective feature Flags from host Settings.
//
// Resolution cannot fail. Absent fields take their documented defaults; the
// only correction applied is the JIT platform fallback: a request for JIT on
// a platform without native-code-generation support resolves to false and
// emits exactly one warning. AutoOptimize is computed, not copied — a
// disabled fpoptimizer forces it off regardless of the requested value.
//
// Complexity: O(1). No side effects beyond the single warning.
func Resolve(s Settings, opts ...Option) Flags {
	r := resolver{log: slog.Default(), jitProbe: expr.JITSupported}
	for _, opt := range opts {
		opt(&r)
	}

	jitAvailable := r.jitProbe()
	jit := boolOr(s.EnableJIT, jitAvailable)
	if jit && !jitAvailable {
		r.log.Warn("JIT compilation requested but native code generation is not available on this platform; " +
			"falling back to interpreted evaluation")
		jit = false
	}

	disableOpt := boolOr(s.DisableFPOptimizer, DefaultFPOptimizerDisabled)

	return Flags{
		JIT:                 jit,
		ADCache:             boolOr(s.EnableADCache, DefaultADCache),
		AutoOptimize:        boolOr(s.EnableAutoOptimize, DefaultAutoOptimize) && !disableOpt,
		FPOptimizerDisabled: disableOpt,
		FailOnEvalError:     boolOr(s.FailOnEvalError, DefaultFailOnEvalError),
	}
}

// boolOr dereferences an optional boolean, substituting def when absent.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}

	return *p
}
