package features_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fparse/expr"
	"github.com/katalvlaran/fparse/features"
)

// countingHandler is a slog.Handler that counts records at Warn and above.
type countingHandler struct {
	warns atomic.Int64
}

func (h *countingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *countingHandler) Handle(_ context.Context, _ slog.Record) error {
	h.warns.Add(1)

	return nil
}

func (h *countingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(_ string) slog.Handler      { return h }

// boolPtr is a test shorthand for optional Settings fields.
func boolPtr(v bool) *bool { return &v }

// TestResolve_Defaults checks the documented defaults for empty Settings.
func TestResolve_Defaults(t *testing.T) {
	flags := features.Resolve(features.Settings{})

	assert.True(t, flags.JIT, "JIT defaults to the platform capability (available here)")
	assert.True(t, flags.ADCache, "derivative cache defaults to enabled")
	assert.True(t, flags.AutoOptimize, "auto-optimization defaults to enabled")
	assert.False(t, flags.FPOptimizerDisabled, "fpoptimizer defaults to available")
	assert.False(t, flags.FailOnEvalError, "NaN propagation is the default policy")
}

// TestResolve_FPOptimizerForcesAutoOptimizeOff: disable_fpoptimizer=true
// must yield AutoOptimize=false regardless of the requested value.
func TestResolve_FPOptimizerForcesAutoOptimizeOff(t *testing.T) {
	for _, requested := range []*bool{nil, boolPtr(true), boolPtr(false)} {
		flags := features.Resolve(features.Settings{
			EnableAutoOptimize: requested,
			DisableFPOptimizer: boolPtr(true),
		})

		assert.False(t, flags.AutoOptimize, "disabled fpoptimizer must force AutoOptimize off (requested=%v)", requested)
		assert.True(t, flags.FPOptimizerDisabled, "the disable decision must be recorded")
	}

	// Sanity: with the optimizer available, the request passes through.
	flags := features.Resolve(features.Settings{EnableAutoOptimize: boolPtr(true)})
	assert.True(t, flags.AutoOptimize, "request honored when fpoptimizer is available")
}

// TestResolve_JITFallback: requesting JIT on a platform without support
// yields JIT=false and exactly one warning — the sole silent correction.
func TestResolve_JITFallback(t *testing.T) {
	h := &countingHandler{}
	noJIT := func() bool { return false }

	flags := features.Resolve(
		features.Settings{EnableJIT: boolPtr(true)},
		features.WithLogger(slog.New(h)),
		features.WithJITProbe(noJIT),
	)

	assert.False(t, flags.JIT, "unsupported platform must force JIT off")
	assert.Equal(t, int64(1), h.warns.Load(), "exactly one warning on the fallback")
}

// TestResolve_JITDefaultFollowsPlatform: with no request, the default is the
// platform capability and no warning is emitted either way.
func TestResolve_JITDefaultFollowsPlatform(t *testing.T) {
	h := &countingHandler{}

	flags := features.Resolve(
		features.Settings{},
		features.WithLogger(slog.New(h)),
		features.WithJITProbe(func() bool { return false }),
	)
	assert.False(t, flags.JIT, "default follows the (absent) platform capability")
	assert.Zero(t, h.warns.Load(), "no warning when nothing was requested")

	flags = features.Resolve(
		features.Settings{EnableJIT: boolPtr(false)},
		features.WithLogger(slog.New(h)),
	)
	assert.False(t, flags.JIT, "explicit false is honored")
	assert.Zero(t, h.warns.Load(), "no warning when JIT was declined")
}

// TestFlags_Apply pushes the resolved flags into a backend expression and
// verifies the session-wide mechanism produces a working configuration.
func TestFlags_Apply(t *testing.T) {
	flags := features.Resolve(features.Settings{EnableJIT: boolPtr(true)})

	f := expr.New()
	flags.Apply(f)
	require.NoError(t, f.Parse("2*3+1", ""), "configured expression must parse")
	assert.Equal(t, 7.0, f.Eval(nil), "configured expression must evaluate")
}

// TestLoad_RoundTrip reads a YAML settings file and resolves it.
func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "enable_jit: false\ndisable_fpoptimizer: true\nfail_on_evalerror: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := features.Load(path)
	require.NoError(t, err, "well-formed settings must load")

	flags := features.Resolve(s)
	assert.False(t, flags.JIT, "enable_jit: false honored")
	assert.False(t, flags.AutoOptimize, "disable_fpoptimizer forces the optimizer off")
	assert.True(t, flags.FailOnEvalError, "fail_on_evalerror: true honored")
	assert.True(t, flags.ADCache, "absent enable_ad_cache keeps its default")
}

// TestLoad_Strictness rejects unknown keys, bad values and missing files.
func TestLoad_Strictness(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("enable_jitt: true\n"), 0o600))
	_, err := features.Load(unknown)
	assert.ErrorIs(t, err, features.ErrBadSettingsFile, "unknown key must be rejected")
	assert.Contains(t, err.Error(), "enable_jitt", "diagnostic names the offending key")

	badValue := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badValue, []byte("enable_jit: maybe\n"), 0o600))
	_, err = features.Load(badValue)
	assert.ErrorIs(t, err, features.ErrBadSettingsFile, "non-boolean value must be rejected")

	_, err = features.Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, features.ErrBadSettingsFile, "missing file must be rejected")
}
