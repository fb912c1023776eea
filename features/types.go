// Package features types: host-facing Settings, resolved immutable Flags,
// documented defaults and functional options for Resolve.
package features

import (
	"log/slog"

	"github.com/katalvlaran/fparse/expr"
)

// Defaults applied by Resolve for absent Settings fields.
// DefaultJIT is not a constant: it is the platform capability,
// expr.JITSupported(), probed at resolution time.
const (
	// DefaultADCache enables derivative caching unless the host disables it.
	DefaultADCache = true

	// DefaultAutoOptimize requests the algebraic optimizer unless disabled.
	DefaultAutoOptimize = true

	// DefaultFPOptimizerDisabled keeps the optimizer available.
	DefaultFPOptimizerDisabled = false

	// DefaultFailOnEvalError propagates NaN instead of failing hard.
	DefaultFailOnEvalError = false
)

// Settings is the raw host configuration for one evaluation session.
// Every field is optional: nil means "use the documented default". The YAML
// keys match the historical option names consumed by Load.
type Settings struct {
	// EnableJIT requests just-in-time compilation of expressions.
	// Default: platform capability (expr.JITSupported).
	EnableJIT *bool `yaml:"enable_jit"`

	// EnableADCache requests caching of function derivatives for faster
	// startup. Default: true.
	EnableADCache *bool `yaml:"enable_ad_cache"`

	// EnableAutoOptimize requests automatic algebraic optimization.
	// Default: true. Effective only while the fpoptimizer is not disabled.
	EnableAutoOptimize *bool `yaml:"enable_auto_optimize"`

	// DisableFPOptimizer switches the algebraic optimizer off entirely,
	// overriding EnableAutoOptimize. Default: false.
	DisableFPOptimizer *bool `yaml:"disable_fpoptimizer"`

	// FailOnEvalError makes an evaluation error fatal instead of yielding
	// NaN. Default: false.
	FailOnEvalError *bool `yaml:"fail_on_evalerror"`
}

// Flags is the resolved, immutable feature configuration. Construct it with
// Resolve; share it freely across goroutines — it is a plain value and never
// mutated after construction.
type Flags struct {
	// JIT is the effective just-in-time flag after platform fallback.
	JIT bool

	// ADCache is the effective derivative-cache flag.
	ADCache bool

	// AutoOptimize is the effective optimizer flag:
	// requested && !FPOptimizerDisabled.
	AutoOptimize bool

	// FPOptimizerDisabled records that the algebraic optimizer was switched
	// off for the session.
	FPOptimizerDisabled bool

	// FailOnEvalError selects the fail-fast evaluation policy.
	FailOnEvalError bool
}

// Apply configures e with this feature set. Constant resolution and host
// expressions go through this single mechanism, so every compiled expression
// in a session carries identical JIT/cache/optimize behavior.
func (f Flags) Apply(e expr.Expression) {
	e.Configure(expr.Flags{
		JIT:              f.JIT,
		CacheDerivatives: f.ADCache,
		AutoOptimize:     f.AutoOptimize,
	})
}

// Option customizes Resolve. Safe to apply repeatedly; last writer wins.
type Option func(*resolver)

// resolver holds the collaborators Resolve works against.
type resolver struct {
	log      *slog.Logger
	jitProbe func() bool
}

// WithLogger directs the JIT-fallback warning to log instead of
// slog.Default(). Resolve emits nothing else.
func WithLogger(log *slog.Logger) Option {
	return func(r *resolver) { r.log = log }
}

// WithJITProbe overrides the platform-capability probe (default
// expr.JITSupported). Intended for hosts embedding an alternative backend
// and for tests simulating a platform without native code generation.
func WithJITProbe(probe func() bool) Option {
	return func(r *resolver) { r.jitProbe = probe }
}
