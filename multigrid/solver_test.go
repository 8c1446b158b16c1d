package multigrid_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmg/multigrid"
)

// TestNewSolver_OddGridFailsFast: n=65 cannot be halved even once, so the
// solver refuses it instead of truncating.
func TestNewSolver_OddGridFailsFast(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	cfg.N, cfg.NLevel, cfg.NCoarse = 65, 1, 1

	s, err := multigrid.NewSolver(cfg)

	assert.Nil(t, s)
	require.ErrorIs(t, err, multigrid.ErrGridSize)
	require.ErrorIs(t, err, multigrid.ErrConfiguration)

	var ce *multigrid.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "n", ce.Param)
	assert.Equal(t, 65, ce.Value)
}

// TestNewSolver_InvalidConfigs walks every validator branch.
func TestNewSolver_InvalidConfigs(t *testing.T) {
	mod := func(fn func(*multigrid.Config)) multigrid.Config {
		c := multigrid.DefaultConfig()
		fn(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  multigrid.Config
		err  error
	}{
		{"NTooSmall", mod(func(c *multigrid.Config) { c.N, c.NLevel, c.NCoarse = 1, 0, 0 }), multigrid.ErrGridSize},
		{"NNotDivisibleByCoarse", mod(func(c *multigrid.Config) { c.N, c.NCoarse = 48, 5 }), multigrid.ErrGridSize},
		{"CoarsestTooSmall", mod(func(c *multigrid.Config) { c.N, c.NLevel, c.NCoarse = 16, 4, 4 }), multigrid.ErrGridSize},
		{"OmegaZero", mod(func(c *multigrid.Config) { c.Omega = 0 }), multigrid.ErrOmega},
		{"OmegaTwo", mod(func(c *multigrid.Config) { c.Omega = 2 }), multigrid.ErrOmega},
		{"OmegaNaN", mod(func(c *multigrid.Config) { c.Omega = math.NaN() }), multigrid.ErrOmega},
		{"NegativeLevel", mod(func(c *multigrid.Config) { c.NLevel = -1 }), multigrid.ErrDepth},
		{"LevelAboveCoarse", mod(func(c *multigrid.Config) { c.NLevel, c.NCoarse = 4, 3 }), multigrid.ErrDepth},
		{"CoarseTooDeep", mod(func(c *multigrid.Config) { c.NCoarse = 31 }), multigrid.ErrDepth},
		{"ZeroVIter", mod(func(c *multigrid.Config) { c.VIter = 0 }), multigrid.ErrIterations},
		{"NegativeCycles", mod(func(c *multigrid.Config) { c.NCycle = -1 }), multigrid.ErrIterations},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := multigrid.NewSolver(tc.cfg)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, multigrid.ErrConfiguration)
		})
	}
}

// TestNewSolver_ShallowerFMGThanVCycle accepts nLevel < nCoarse.
func TestNewSolver_ShallowerFMGThanVCycle(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	cfg.NLevel, cfg.NCoarse = 2, 4

	s, err := multigrid.NewSolver(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, s.Config())
	assert.Equal(t, 4, cfg.CoarsestPoints())
}

// TestSolve_ReferenceScenario reproduces the reference driver end to end.
func TestSolve_ReferenceScenario(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	s, err := multigrid.NewSolver(cfg)
	require.NoError(t, err)

	v := referenceField(cfg.N)
	f := make([]float64, cfg.N+1)
	v0 := append([]float64(nil), v...)

	res, err := s.Solve(v, f)
	require.NoError(t, err)

	assert.Equal(t, cfg.NCycle, res.Cycles)
	assert.False(t, res.Converged, "no tolerance configured")
	require.Len(t, res.History, cfg.NCycle+1)
	assert.Equal(t, multigrid.InfNorm(v0), res.History[0])
	assert.Equal(t, multigrid.InfNorm(res.Field), res.History[cfg.NCycle])
	assert.Less(t, res.History[cfg.NCycle], 1e-6)
	assert.Equal(t, v0, v, "caller field must not be modified")
}

// TestSolve_FieldLengthMismatch rejects slices that are not n+1 long.
func TestSolve_FieldLengthMismatch(t *testing.T) {
	s, err := multigrid.NewSolver(multigrid.DefaultConfig())
	require.NoError(t, err)

	_, err = s.Solve(make([]float64, 64), make([]float64, 65))
	assert.ErrorIs(t, err, multigrid.ErrFieldLength)

	_, err = s.Solve(make([]float64, 65), make([]float64, 66))
	assert.ErrorIs(t, err, multigrid.ErrFieldLength)

	_, err = s.Step(nil, make([]float64, 65))
	assert.ErrorIs(t, err, multigrid.ErrConfiguration)
}

// TestSolve_ZeroCycles returns the initial state only.
func TestSolve_ZeroCycles(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	cfg.NCycle = 0
	s, err := multigrid.NewSolver(cfg)
	require.NoError(t, err)

	v := referenceField(cfg.N)
	res, err := s.Solve(v, make([]float64, cfg.N+1))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Cycles)
	assert.Equal(t, []float64{multigrid.InfNorm(v)}, res.History)
	assert.Equal(t, v, res.Field)
}

// TestSolve_ToleranceStopsEarly: the loop ends at the first norm ≤ tol.
func TestSolve_ToleranceStopsEarly(t *testing.T) {
	const tol = 1e-6
	cfg := multigrid.DefaultConfig()
	s, err := multigrid.NewSolver(cfg, multigrid.WithTolerance(tol))
	require.NoError(t, err)

	res, err := s.Solve(referenceField(cfg.N), make([]float64, cfg.N+1))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, res.Cycles, cfg.NCycle)
	require.Len(t, res.History, res.Cycles+1)
	assert.LessOrEqual(t, res.History[res.Cycles], tol)
	assert.Greater(t, res.History[res.Cycles-1], tol)
}

// TestSolve_ToleranceAlreadyMet runs no FMG step at all.
func TestSolve_ToleranceAlreadyMet(t *testing.T) {
	s, err := multigrid.NewSolver(multigrid.DefaultConfig(), multigrid.WithTolerance(1))
	require.NoError(t, err)

	res, err := s.Solve(make([]float64, 65), make([]float64, 65))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Cycles)
	assert.True(t, res.Converged)
	assert.Len(t, res.History, 1)
}

// TestSolve_ResidualMonitor records ‖f - A·v‖∞ instead of ‖v‖∞.
func TestSolve_ResidualMonitor(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	cfg.NCycle = 5
	s, err := multigrid.NewSolver(cfg, multigrid.WithMonitor(multigrid.MonitorResidual))
	require.NoError(t, err)

	v := make([]float64, cfg.N+1)
	f := poissonRHS(cfg.N)
	res, err := s.Solve(v, f)
	require.NoError(t, err)

	assert.Equal(t, multigrid.InfNorm(f), res.History[0], "residual of zero field is f's interior")
	assert.Equal(t, multigrid.InfNorm(multigrid.Residual(res.Field, f, cfg.N)), res.History[cfg.NCycle])
	assert.Less(t, res.History[cfg.NCycle], res.History[0])
}

// TestSolve_ObserverSeesEveryEntry: observer calls mirror the history.
func TestSolve_ObserverSeesEveryEntry(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	cfg.NCycle = 7

	var cycles []int
	var norms []float64
	s, err := multigrid.NewSolver(cfg, multigrid.WithObserver(func(cycle int, norm float64) {
		cycles = append(cycles, cycle)
		norms = append(norms, norm)
	}))
	require.NoError(t, err)

	res, err := s.Solve(referenceField(cfg.N), make([]float64, cfg.N+1))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, cycles)
	assert.Equal(t, res.History, norms)
}

// TestSolve_Logging emits start/finish at Info and per-cycle at Debug.
func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := multigrid.DefaultConfig()
	cfg.NCycle = 3
	s, err := multigrid.NewSolver(cfg, multigrid.WithLogger(logger))
	require.NoError(t, err)

	_, err = s.Solve(referenceField(cfg.N), make([]float64, cfg.N+1))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "multigrid: solve started")
	assert.Contains(t, out, "multigrid: solve finished")
	assert.Contains(t, out, "cycle=3")
	assert.Equal(t, 4, strings.Count(out, "multigrid: cycle"))
}

// TestStep_MatchesFMGStep: Solver.Step is FMGStep with the Config's parameters.
func TestStep_MatchesFMGStep(t *testing.T) {
	cfg := multigrid.DefaultConfig()
	s, err := multigrid.NewSolver(cfg)
	require.NoError(t, err)

	v := referenceField(cfg.N)
	f := make([]float64, cfg.N+1)
	got, err := s.Step(v, f)
	require.NoError(t, err)

	want := multigrid.FMGStep(v, f, cfg.N, cfg.NLevel, cfg.NCoarse, cfg.Omega, cfg.VIter)
	assert.Equal(t, want, got)
}
