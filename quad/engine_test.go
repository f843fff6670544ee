package quad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gokronrod/quad"
	"github.com/stretchr/testify/require"
)

func scalar(f func(float64) float64) quad.Func {
	return func(x float64) quad.Vector { return quad.Vector{f(x)} }
}

func TestInvalidToleranceBelowFloor(t *testing.T) {
	_, err := quad.Integrate(scalar(math.Sin), 0, 1, quad.WithAbsTol(0), quad.WithRelTol(0))
	require.ErrorIs(t, err, quad.ErrInvalid)
}

func TestDegenerateIntervalIsZero(t *testing.T) {
	res, err := quad.Integrate(scalar(math.Sin), 1.5, 1.5, quad.WithDiagnostics())
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Value[0])
	require.Equal(t, 0.0, res.AbsErr)
	require.NotNil(t, res.Diagnostics)
	require.Equal(t, 1, res.Diagnostics.Last)
}

func TestMaxIterationWithLimitOne(t *testing.T) {
	f := scalar(func(x float64) float64 { return math.Sin(100 * x) })
	_, err := quad.Integrate(f, 0, 10, quad.WithAbsTol(1e-14), quad.WithRelTol(0), quad.WithLimit(1))
	require.ErrorIs(t, err, quad.ErrMaxIteration)
}

func TestIntegrateConverges(t *testing.T) {
	res, err := quad.Integrate(scalar(math.Cos), 0, 1)
	require.NoError(t, err)
	require.InDelta(t, math.Sin(1), res.Value[0], 1e-7)
}

func TestBreakpointsDoNotChangeTheResult(t *testing.T) {
	f := scalar(func(x float64) float64 { return math.Sin(x) * math.Sin(x) })
	plain, err := quad.Integrate(f, 0, 10)
	require.NoError(t, err)
	withPts, err := quad.Integrate(f, 0, 10, quad.WithBreakpoints(3, 6))
	require.NoError(t, err)
	require.InDelta(t, plain.Value[0], withPts.Value[0], 1e-6)
}

func TestAdditivityOverSubintervals(t *testing.T) {
	f := scalar(math.Exp)
	whole, err := quad.Integrate(f, 0, 2)
	require.NoError(t, err)
	left, err := quad.Integrate(f, 0, 1)
	require.NoError(t, err)
	right, err := quad.Integrate(f, 1, 2)
	require.NoError(t, err)
	require.InDelta(t, whole.Value[0], left.Value[0]+right.Value[0], 1e-7)
}

func TestVectorIntegrandMatchesScalarComponents(t *testing.T) {
	f := func(x float64) quad.Vector { return quad.Vector{math.Cos(x), math.Sin(x)} }
	res, err := quad.Integrate(f, 0, math.Pi/2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Value[0], 1e-7)
	require.InDelta(t, 1.0, res.Value[1], 1e-7)
}

func TestSemiInfiniteInterval(t *testing.T) {
	f := scalar(func(x float64) float64 { return math.Exp(-2 * x) })
	res, err := quad.Integrate(f, 0, math.Inf(1))
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.Value[0], 1e-6)
}

func TestDoublyInfiniteInterval(t *testing.T) {
	res, err := quad.Integrate(scalar(func(x float64) float64 { return math.Exp(-x * x) }), math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(math.Pi), res.Value[0], 1e-6)
}

func TestIntegrateParallelMatchesSequential(t *testing.T) {
	f := scalar(func(x float64) float64 { return math.Exp(-x * x) })
	seq, err := quad.Integrate(f, -5, 5)
	require.NoError(t, err)
	par, err := quad.IntegrateParallel(f, -5, 5, quad.WithThreads(4))
	require.NoError(t, err)
	require.InDelta(t, seq.Value[0], par.Value[0], 1e-6)
}

func TestIntegrateParallelWithDiagnostics(t *testing.T) {
	f := scalar(math.Cos)
	res, err := quad.IntegrateParallel(f, 0, 1, quad.WithDiagnostics())
	require.NoError(t, err)
	require.NotNil(t, res.Diagnostics)
	require.Greater(t, res.Diagnostics.NEval, 0)
	require.GreaterOrEqual(t, len(res.Diagnostics.Intervals), res.Diagnostics.Last)
}

func TestWithRuleClampsOutOfRange(t *testing.T) {
	_, err1 := quad.Integrate(scalar(math.Cos), 0, 1, quad.WithRule(-3))
	_, err2 := quad.Integrate(scalar(math.Cos), 0, 1, quad.WithRule(99))
	require.NoError(t, err1)
	require.NoError(t, err2)
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	require.True(t, errors.Is(quad.ErrInvalid, quad.ErrInvalid))
	require.False(t, errors.Is(quad.ErrInvalid, quad.ErrMaxIteration))
	require.Equal(t, "Invalid", quad.ErrInvalid.Kind.String())
	require.Equal(t, "MaxIteration", quad.ErrMaxIteration.Kind.String())
}
