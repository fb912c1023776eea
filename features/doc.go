// Package features resolves the boolean feature flags that govern how an
// expression is compiled: JIT fast path, derivative caching, algebraic
// auto-optimization, and the fail-fast vs. NaN evaluation policy.
//
// Overview:
//
//   - Settings is the host-facing input: five independently optional
//     booleans with documented defaults. Absent fields (nil pointers) take
//     their default; a YAML settings file can be loaded with Load.
//   - Resolve turns Settings into an immutable Flags value. Resolution
//     cannot fail — malformed settings are the host configuration layer's
//     concern, not this package's.
//   - Flags.Apply pushes the resolved configuration into any
//     expr.Expression, so constant resolution and main-computation
//     expressions are configured through one mechanism.
//
// Resolution rules:
//
//   - enable_jit          — default is the platform capability
//     (expr.JITSupported). When requested true on a platform without
//     support, the result is forced false and exactly one warning goes to
//     the logger; this downgrade is the only silent correction in fparse.
//   - enable_ad_cache     — default true, copied verbatim.
//   - enable_auto_optimize — default true, but COMPUTED, not copied:
//     the effective value is request && !disable_fpoptimizer.
//   - disable_fpoptimizer — default false, copied verbatim.
//   - fail_on_evalerror   — default false, copied verbatim; consumed by the
//     evaluator package's policy branch.
//
// Flags is immutable after construction and safely shareable by reference
// across concurrent evaluation sessions.
//
// Example:
//
//	s, err := features.Load("settings.yaml")
//	if err != nil { ... }
//	flags := features.Resolve(s, features.WithLogger(slog.Default()))
//	flags.Apply(parser) // parser is any expr.Expression
package features
