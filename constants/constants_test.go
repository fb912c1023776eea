package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fparse/constants"
	"github.com/katalvlaran/fparse/expr"
	"github.com/katalvlaran/fparse/features"
)

// defaultFlags resolves an all-default feature configuration.
func defaultFlags() features.Flags {
	return features.Resolve(features.Settings{})
}

// value is a test shorthand that asserts presence and returns the number.
func value(t *testing.T, r constants.Resolved, name string) float64 {
	t.Helper()

	v, ok := r.Value(name)
	require.True(t, ok, "constant %q must be resolved", name)

	return v
}

// TestResolve_PrefixChain is the canonical ordered-resolution scenario:
// a=2, b=a*3=6, c=a+b=8.
func TestResolve_PrefixChain(t *testing.T) {
	r, err := constants.Resolve(
		[]string{"a", "b", "c"},
		[]string{"2", "a*3", "a+b"},
		defaultFlags(),
	)
	require.NoError(t, err, "well-ordered chain must resolve")

	assert.Equal(t, 3, r.Len(), "three constants resolved")
	assert.Equal(t, []string{"a", "b", "c"}, r.Names(), "definition order preserved")
	assert.Equal(t, 2.0, value(t, r, "a"))
	assert.Equal(t, 6.0, value(t, r, "b"))
	assert.Equal(t, 8.0, value(t, r, "c"))
}

// TestResolve_NoForwardOrSelfReference: an expression referencing its own
// name, or a later name, fails because only the strict prefix is injected.
func TestResolve_NoForwardOrSelfReference(t *testing.T) {
	// self reference: c's own name is never visible to c's expression
	_, err := constants.Resolve(
		[]string{"a", "c"},
		[]string{"1", "c+1"},
		defaultFlags(),
	)
	require.ErrorIs(t, err, constants.ErrBadExpression, "self reference must fail")
	assert.Contains(t, err.Error(), `"c+1"`, "message carries the literal expression text")

	// forward reference: b is defined after a, so a cannot see it
	_, err = constants.Resolve(
		[]string{"a", "b"},
		[]string{"b*2", "3"},
		defaultFlags(),
	)
	require.ErrorIs(t, err, constants.ErrBadExpression, "forward reference must fail")
}

// TestResolve_LengthMismatch fails before any expression is compiled.
func TestResolve_LengthMismatch(t *testing.T) {
	calls := 0
	counting := func() expr.Expression {
		calls++

		return expr.New()
	}

	_, err := constants.Resolve(
		[]string{"a", "b"},
		[]string{"1"},
		defaultFlags(),
		constants.WithBackend(counting),
	)
	require.ErrorIs(t, err, constants.ErrLengthMismatch)
	assert.Zero(t, calls, "no expression may be constructed on a length mismatch")
}

// TestResolve_BadName: reserved tokens and invalid identifiers are fatal and
// the error names the offender.
func TestResolve_BadName(t *testing.T) {
	for _, bad := range []string{"sin", "pi", "2bad", ""} {
		_, err := constants.Resolve(
			[]string{"ok", bad},
			[]string{"1", "2"},
			defaultFlags(),
		)
		require.ErrorIs(t, err, constants.ErrBadConstantName, "name %q must be rejected", bad)
		assert.Contains(t, err.Error(), `"`+bad+`"`, "message names the offender %q", bad)
	}
}

// TestResolve_DuplicateName rejects a name that already resolved.
func TestResolve_DuplicateName(t *testing.T) {
	_, err := constants.Resolve(
		[]string{"a", "a"},
		[]string{"1", "2"},
		defaultFlags(),
	)
	require.ErrorIs(t, err, constants.ErrBadConstantName, "duplicate name must be rejected")
	assert.Contains(t, err.Error(), "duplicate", "message says why")
}

// TestResolve_ParseFailureDiagnostic carries text and parser diagnostic.
func TestResolve_ParseFailureDiagnostic(t *testing.T) {
	_, err := constants.Resolve(
		[]string{"a"},
		[]string{"1+*2"},
		defaultFlags(),
	)
	require.ErrorIs(t, err, constants.ErrBadExpression)
	assert.Contains(t, err.Error(), `"1+*2"`, "literal expression text included")
	assert.Contains(t, err.Error(), "syntax error", "parser diagnostic included")
}

// TestResolve_Deterministic: identical inputs and flags give bit-identical
// values across repeated invocations and across flag-equivalent sessions.
func TestResolve_Deterministic(t *testing.T) {
	names := []string{"kB", "T", "kT", "beta"}
	exprs := []string{"8.6173e-5", "273.15+25", "kB*T", "1/kT"}

	first, err := constants.Resolve(names, exprs, defaultFlags())
	require.NoError(t, err)

	for run := 0; run < 5; run++ {
		again, err := constants.Resolve(names, exprs, defaultFlags())
		require.NoError(t, err, "run %d", run)
		for _, n := range names {
			assert.Equal(t, value(t, first, n), value(t, again, n), "run %d: %q must match bit-for-bit", run, n)
		}
	}
}

// TestResolve_FlagsReachSubExpressions: resolution uses the session flags
// (here: optimizer disabled) and still yields the same values — flags are a
// speed trade, not a semantic one.
func TestResolve_FlagsReachSubExpressions(t *testing.T) {
	names := []string{"a", "b"}
	exprs := []string{"sqrt(16)", "a^2-1"}

	off := true
	noOpt := features.Resolve(features.Settings{DisableFPOptimizer: &off})
	withOpt := defaultFlags()

	r1, err := constants.Resolve(names, exprs, noOpt)
	require.NoError(t, err)
	r2, err := constants.Resolve(names, exprs, withOpt)
	require.NoError(t, err)

	assert.Equal(t, value(t, r1, "b"), value(t, r2, "b"), "optimizer flag must not change constant values")
	assert.Equal(t, 15.0, value(t, r1, "b"))
}

// TestResolved_Inject adds every constant to a target expression in order,
// making them usable from host source text.
func TestResolved_Inject(t *testing.T) {
	r, err := constants.Resolve(
		[]string{"half", "quarter"},
		[]string{"0.5", "half/2"},
		defaultFlags(),
	)
	require.NoError(t, err)

	target := expr.New()
	require.NoError(t, r.Inject(target), "injection into a fresh target succeeds")
	require.NoError(t, target.Parse("half+quarter+x", "x"))
	assert.Equal(t, 1.75, target.Eval([]float64{1}), "injected constants resolve in host source")
}

// TestResolved_InjectCollision: injecting into a target that reserves one of
// the names fails and names the offending constant.
func TestResolved_InjectCollision(t *testing.T) {
	r, err := constants.Resolve([]string{"tau"}, []string{"2*pi"}, defaultFlags())
	require.NoError(t, err)

	reject := &rejectingExpr{reject: "tau"}
	err = r.Inject(reject)
	require.ErrorIs(t, err, constants.ErrBadConstantName)
	assert.Contains(t, err.Error(), `"tau"`, "offending constant is named")
}

// rejectingExpr is an expr.Expression stub whose AddConstant refuses one name.
type rejectingExpr struct {
	reject string
}

func (r *rejectingExpr) Configure(expr.Flags) {}

func (r *rejectingExpr) AddConstant(name string, _ float64) bool { return name != r.reject }

func (r *rejectingExpr) Parse(string, string) error { return nil }

func (r *rejectingExpr) Eval([]float64) float64 { return 0 }

func (r *rejectingExpr) EvalError() int { return 0 }

// TestResolve_EmptyLists: zero constants is a valid, empty resolution.
func TestResolve_EmptyLists(t *testing.T) {
	r, err := constants.Resolve(nil, nil, defaultFlags())
	require.NoError(t, err)
	assert.Zero(t, r.Len(), "empty input resolves to an empty mapping")
	assert.NoError(t, r.Inject(expr.New()), "injecting nothing succeeds")
}
